package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"doctors-portal-api/internal/handler"
	"doctors-portal-api/internal/middleware"
)

func New(h *handler.Handler, auth *middleware.Auth, tokenLimiter *middleware.RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", h.Health)

	r.Get("/availability", h.GetAvailability)
	r.Get("/treatments", h.GetTreatments)

	r.With(auth.Require, auth.RequireSelf("email")).Get("/bookings", h.ListBookings)
	r.Post("/bookings", h.CreateBooking)

	r.Post("/users", h.CreateUser)
	r.Get("/users", h.ListUsers)
	r.Get("/users/admin/{email}", h.CheckAdmin)
	r.With(auth.Require, auth.RequireAdmin).Put("/users/admin/{id}", h.GrantAdmin)

	// NOTE: doctor roster mutation only checks for a valid token, not the
	// admin role, unlike the role-grant route above. Kept as observed
	// behavior; tightening it means adding auth.RequireAdmin here.
	r.With(auth.Require).Post("/doctors", h.CreateDoctor)
	r.With(auth.Require).Get("/doctors", h.ListDoctors)
	r.With(auth.Require).Delete("/doctors/{id}", h.DeleteDoctor)

	r.With(tokenLimiter.Limit).Get("/token", h.IssueToken)

	return r
}
