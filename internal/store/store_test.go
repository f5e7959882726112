package store_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

func setup(t *testing.T) *store.Store {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	migration, err := os.ReadFile("../../db/migrations/001_init.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	return store.New(pool)
}

func booking(date, email, treatment, slot string) *model.Booking {
	return &model.Booking{
		ID:              uuid.New().String(),
		Email:           email,
		Treatment:       treatment,
		AppointmentDate: date,
		Slot:            slot,
	}
}

func TestCreateBookingConstraints(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	// unique coordinates per run so reruns don't collide
	date := fmt.Sprintf("it-%s", uuid.New().String()[:8])

	if err := st.CreateBooking(ctx, booking(date, "a@x.com", "Cleaning", "9am")); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	// same slot, different patient
	err := st.CreateBooking(ctx, booking(date, "b@x.com", "Cleaning", "9am"))
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("slot collision: want ErrDuplicate, got %v", err)
	}

	// same patient, different slot
	err = st.CreateBooking(ctx, booking(date, "a@x.com", "Cleaning", "10am"))
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("patient collision: want ErrDuplicate, got %v", err)
	}

	got, err := st.BookingsByDate(ctx, date)
	if err != nil {
		t.Fatalf("bookings by date: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 booking, got %d", len(got))
	}
}

func TestUserByEmailNotFound(t *testing.T) {
	st := setup(t)

	_, err := st.UserByEmail(context.Background(), uuid.New().String()+"@nowhere.test")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGrantAdminUpsert(t *testing.T) {
	st := setup(t)
	ctx := context.Background()

	// grant for an id that does not exist yet inserts the row
	id := uuid.New().String()
	if err := st.GrantAdmin(ctx, id); err != nil {
		t.Fatalf("grant unknown id: %v", err)
	}

	// grant for an existing user flips the role
	email := fmt.Sprintf("it-%s@x.com", uuid.New().String()[:8])
	u := &model.User{ID: uuid.New().String(), Name: "IT", Email: email, Role: model.RolePatient}
	if err := st.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := st.GrantAdmin(ctx, u.ID); err != nil {
		t.Fatalf("grant existing: %v", err)
	}
	got, err := st.UserByEmail(ctx, email)
	if err != nil {
		t.Fatalf("user by email: %v", err)
	}
	if got.Role != model.RoleAdmin {
		t.Fatalf("want admin, got %q", got.Role)
	}
}
