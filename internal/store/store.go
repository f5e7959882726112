package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound means the keyed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means an insert lost to a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
