package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"doctors-portal-api/internal/model"
)

// CreateBooking inserts atomically. Both uniqueness rules — one booking per
// (date, treatment, slot) and one per (date, treatment, email) — live as
// unique constraints on the bookings table, so a racing insert surfaces
// here as ErrDuplicate instead of a second confirmed booking.
func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO bookings (id, email, treatment, appointment_date, slot)
		 VALUES ($1,$2,$3,$4,$5)`,
		b.ID, b.Email, b.Treatment, b.AppointmentDate, b.Slot,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// HasPatientBooking reports whether the patient already holds any slot for
// the treatment on that date.
func (s *Store) HasPatientBooking(ctx context.Context, date, email, treatment string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE appointment_date = $1 AND email = $2 AND treatment = $3
		)`, date, email, treatment,
	).Scan(&exists)
	return exists, err
}

func (s *Store) BookingsByDate(ctx context.Context, date string) ([]model.Booking, error) {
	return s.queryBookings(ctx,
		`SELECT id, email, treatment, appointment_date, slot, created_at
		 FROM bookings WHERE appointment_date = $1`, date)
}

func (s *Store) BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return s.queryBookings(ctx,
		`SELECT id, email, treatment, appointment_date, slot, created_at
		 FROM bookings WHERE email = $1 ORDER BY appointment_date, slot`, email)
}

func (s *Store) queryBookings(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Email, &b.Treatment, &b.AppointmentDate, &b.Slot, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
