package handler

import (
	"errors"
	"net/http"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/schedule"
)

type bookingAck struct {
	Acknowledged bool   `json:"acknowledged"`
	ID           string `json:"id,omitempty"`
	Message      string `json:"message,omitempty"`
}

// CreateBooking commits a reservation or reports the conflict. A rejection
// is a 200 with acknowledged:false — callers check the flag, not the status.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req schedule.BookingRequest
	if !h.decode(w, r, &req) {
		return
	}

	b, err := h.guard.Book(r.Context(), req)
	var rejected *schedule.AlreadyBookedError
	if errors.As(err, &rejected) {
		h.respond(w, http.StatusOK, bookingAck{Acknowledged: false, Message: rejected.Error()})
		return
	}
	if err != nil {
		h.storeError(w, "create booking", err)
		return
	}
	h.respond(w, http.StatusOK, bookingAck{Acknowledged: true, ID: b.ID})
}

// ListBookings returns one patient's bookings. RequireSelf has already
// pinned the email parameter to the token subject.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	bookings, err := h.bookings.BookingsByEmail(r.Context(), email)
	if err != nil {
		h.storeError(w, "list bookings", err)
		return
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	h.respond(w, http.StatusOK, bookings)
}
