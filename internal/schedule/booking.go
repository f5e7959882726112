package schedule

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

// AlreadyBookedError rejects a booking request. It is a business outcome,
// not a transport failure; handlers turn it into acknowledged:false.
type AlreadyBookedError struct {
	Date string
}

func (e *AlreadyBookedError) Error() string {
	return "You already have a booking on " + e.Date
}

type BookingRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Treatment       string `json:"treatment" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	Slot            string `json:"slot" validate:"required"`
}

type BookingWriter interface {
	HasPatientBooking(ctx context.Context, date, email, treatment string) (bool, error)
	// CreateBooking must be an atomic conditional insert: it fails with
	// store.ErrDuplicate when either uniqueness rule (per-slot or
	// per-patient) already holds.
	CreateBooking(ctx context.Context, b *model.Booking) error
}

type BookingGuard struct {
	bookings BookingWriter
	log      *zap.Logger
}

func NewBookingGuard(bookings BookingWriter, log *zap.Logger) *BookingGuard {
	return &BookingGuard{bookings: bookings, log: log}
}

// Book commits the request or rejects it. The pre-insert read catches the
// common duplicate early; the insert itself is what actually decides a race,
// so a constraint loss is translated to the same rejection rather than
// bubbling up as a store error.
func (g *BookingGuard) Book(ctx context.Context, req BookingRequest) (*model.Booking, error) {
	dup, err := g.bookings.HasPatientBooking(ctx, req.AppointmentDate, req.Email, req.Treatment)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, &AlreadyBookedError{Date: req.AppointmentDate}
	}

	b := &model.Booking{
		ID:              uuid.New().String(),
		Email:           req.Email,
		Treatment:       req.Treatment,
		AppointmentDate: req.AppointmentDate,
		Slot:            req.Slot,
	}
	if err := g.bookings.CreateBooking(ctx, b); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			g.log.Info("booking lost to concurrent insert",
				zap.String("date", req.AppointmentDate),
				zap.String("treatment", req.Treatment),
				zap.String("slot", req.Slot),
			)
			return nil, &AlreadyBookedError{Date: req.AppointmentDate}
		}
		return nil, err
	}
	return b, nil
}
