package store

import (
	"context"

	"doctors-portal-api/internal/model"
)

// ListOptions returns the full treatment catalog in display order.
func (s *Store) ListOptions(ctx context.Context) ([]model.Option, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, slots FROM appointment_options ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Option
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.ID, &o.Name, &o.Slots); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListTreatmentNames is the name-only projection used by the treatments
// endpoint.
func (s *Store) ListTreatmentNames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name FROM appointment_options ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
