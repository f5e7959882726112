package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type createAck struct {
	Acknowledged bool   `json:"acknowledged"`
	ID           string `json:"id,omitempty"`
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	u := &model.User{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Email: req.Email,
		Role:  model.RolePatient,
	}
	if err := h.users.CreateUser(r.Context(), u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			h.respond(w, http.StatusConflict, messageResponse{Message: "user already exists"})
			return
		}
		h.storeError(w, "create user", err)
		return
	}
	h.respond(w, http.StatusOK, createAck{Acknowledged: true, ID: u.ID})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.storeError(w, "list users", err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	h.respond(w, http.StatusOK, users)
}

type isAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// CheckAdmin is an open read used by the UI to toggle the dashboard; an
// unknown email is simply not an admin.
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	u, err := h.users.UserByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		h.respond(w, http.StatusOK, isAdminResponse{IsAdmin: false})
		return
	}
	if err != nil {
		h.storeError(w, "check admin", err)
		return
	}
	h.respond(w, http.StatusOK, isAdminResponse{IsAdmin: u.Role == model.RoleAdmin})
}

// GrantAdmin promotes the user with the given id. The admin-role policy has
// already run; the write itself is an upsert.
func (h *Handler) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.users.GrantAdmin(r.Context(), id); err != nil {
		h.storeError(w, "grant admin", err)
		return
	}
	h.respond(w, http.StatusOK, createAck{Acknowledged: true, ID: id})
}
