package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"doctors-portal-api/internal/auth"
	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

type ctxKey string

const subjectKey ctxKey = "subject"

// Subject returns the verified token subject (email) stored by Require.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

// UserDirectory is the user-lookup collaborator for the admin-role policy.
type UserDirectory interface {
	UserByEmail(ctx context.Context, email string) (*model.User, error)
}

type Auth struct {
	secret string
	users  UserDirectory
	log    *zap.Logger
}

func NewAuth(secret string, users UserDirectory, log *zap.Logger) *Auth {
	return &Auth{secret: secret, users: users, log: log}
}

// Require distinguishes the two failure kinds: no token at all is 401,
// a token that does not verify is 403.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "unauthorized access", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ParseToken(raw, a.secret)
		if err != nil {
			a.log.Debug("token rejected", zap.Error(err))
			http.Error(w, "forbidden access", http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSelf pins the token subject to the identity named by a query
// parameter. Runs after Require.
func (a *Auth) RequireSelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get(param) != Subject(r.Context()) {
				http.Error(w, "forbidden access", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin looks the subject up and demands the admin role. A missing
// user record and a non-admin role are separate cases; neither passes.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := a.users.UserByEmail(r.Context(), Subject(r.Context()))
		switch {
		case errors.Is(err, store.ErrNotFound):
			// a token can outlive its user record
			http.Error(w, "forbidden access", http.StatusForbidden)
		case err != nil:
			a.log.Error("admin lookup failed", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		case u.Role == model.RoleAdmin:
			next.ServeHTTP(w, r)
		default:
			// patient, or any role the enum does not know
			http.Error(w, "forbidden access", http.StatusForbidden)
		}
	})
}
