// Package schedule holds the slot-availability computation and the
// booking-conflict guard. Both talk to the store through narrow interfaces
// so the arithmetic stays testable without a database.
package schedule

import (
	"context"

	"go.uber.org/zap"

	"doctors-portal-api/internal/model"
)

type Catalog interface {
	ListOptions(ctx context.Context) ([]model.Option, error)
}

type BookingReader interface {
	BookingsByDate(ctx context.Context, date string) ([]model.Booking, error)
}

// AvailableOption is one treatment with only its still-open slots for the
// requested date.
type AvailableOption struct {
	Treatment string   `json:"treatment"`
	Slots     []string `json:"slots"`
}

type AvailabilityEngine struct {
	catalog  Catalog
	bookings BookingReader
	log      *zap.Logger
}

func NewAvailabilityEngine(catalog Catalog, bookings BookingReader, log *zap.Logger) *AvailabilityEngine {
	return &AvailabilityEngine{catalog: catalog, bookings: bookings, log: log}
}

// Available subtracts the date's booked slots from the full catalog. The
// date is an opaque match key: an empty one matches no bookings, so every
// slot comes back open. Results are freshly built on every call; the catalog
// snapshot is never written to, since other requests may be reading it.
func (e *AvailabilityEngine) Available(ctx context.Context, date string) ([]AvailableOption, error) {
	options, err := e.catalog.ListOptions(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := e.bookings.BookingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]AvailableOption, 0, len(options))
	for _, opt := range options {
		taken := make(map[string]bool)
		for _, b := range booked {
			if b.Treatment == opt.Name {
				taken[b.Slot] = true
			}
		}
		remaining := make([]string, 0, len(opt.Slots))
		for _, slot := range opt.Slots {
			if !taken[slot] {
				remaining = append(remaining, slot)
			}
		}
		out = append(out, AvailableOption{Treatment: opt.Name, Slots: remaining})
	}

	e.log.Debug("computed availability",
		zap.String("date", date),
		zap.Int("treatments", len(out)),
		zap.Int("booked", len(booked)),
	)
	return out, nil
}
