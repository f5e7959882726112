package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/schedule"
)

// Store collaborators, one interface per concern. *store.Store satisfies
// all of them.
type (
	Users interface {
		CreateUser(ctx context.Context, u *model.User) error
		ListUsers(ctx context.Context) ([]model.User, error)
		UserByEmail(ctx context.Context, email string) (*model.User, error)
		GrantAdmin(ctx context.Context, id string) error
	}

	Doctors interface {
		CreateDoctor(ctx context.Context, d *model.Doctor) error
		ListDoctors(ctx context.Context) ([]model.Doctor, error)
		DeleteDoctor(ctx context.Context, id string) error
	}

	Treatments interface {
		ListTreatmentNames(ctx context.Context) ([]string, error)
	}

	Bookings interface {
		BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error)
	}
)

type Deps struct {
	Availability *schedule.AvailabilityEngine
	Guard        *schedule.BookingGuard
	Users        Users
	Doctors      Doctors
	Treatments   Treatments
	Bookings     Bookings
	Secret       string
	Log          *zap.Logger
}

type Handler struct {
	availability *schedule.AvailabilityEngine
	guard        *schedule.BookingGuard
	users        Users
	doctors      Doctors
	treatments   Treatments
	bookings     Bookings
	secret       string
	validate     *validator.Validate
	log          *zap.Logger
}

func New(d Deps) *Handler {
	return &Handler{
		availability: d.Availability,
		guard:        d.Guard,
		users:        d.Users,
		doctors:      d.Doctors,
		treatments:   d.Treatments,
		bookings:     d.Bookings,
		secret:       d.Secret,
		validate:     validator.New(),
		log:          d.Log,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("write response", zap.Error(err))
	}
}

// decode unmarshals and validates a request body. A false return means the
// 400 has already been written.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respond(w, http.StatusBadRequest, messageResponse{Message: "malformed request body"})
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		h.respond(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return false
	}
	return true
}

// storeError is the StoreError boundary: log it, return an opaque 500.
func (h *Handler) storeError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op, zap.Error(err))
	h.respond(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("doctors portal server is running"))
}
