package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

// fakeBookingStore enforces both unique keys under a mutex, so racing
// inserts behave like the real constraints.
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []model.Booking
}

func (f *fakeBookingStore) HasPatientBooking(_ context.Context, date, email, treatment string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.AppointmentDate == date && b.Email == email && b.Treatment == treatment {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingStore) CreateBooking(_ context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.bookings {
		sameSlot := e.AppointmentDate == b.AppointmentDate && e.Treatment == b.Treatment && e.Slot == b.Slot
		samePatient := e.AppointmentDate == b.AppointmentDate && e.Treatment == b.Treatment && e.Email == b.Email
		if sameSlot || samePatient {
			return store.ErrDuplicate
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func TestBookConfirms(t *testing.T) {
	st := &fakeBookingStore{}
	guard := NewBookingGuard(st, zap.NewNop())

	b, err := guard.Book(context.Background(), BookingRequest{
		Email: "a@x.com", Treatment: "Cleaning", AppointmentDate: "2024-01-01", Slot: "9am",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if b.ID == "" {
		t.Fatal("booking has no id")
	}
	if len(st.bookings) != 1 {
		t.Fatalf("want 1 stored booking, got %d", len(st.bookings))
	}
}

func TestBookRejectsDuplicatePatient(t *testing.T) {
	st := &fakeBookingStore{}
	guard := NewBookingGuard(st, zap.NewNop())
	ctx := context.Background()

	if _, err := guard.Book(ctx, BookingRequest{
		Email: "a@x.com", Treatment: "Cleaning", AppointmentDate: "2024-01-01", Slot: "9am",
	}); err != nil {
		t.Fatalf("first book: %v", err)
	}

	// same patient, same day, same treatment — different slot still rejected
	_, err := guard.Book(ctx, BookingRequest{
		Email: "a@x.com", Treatment: "Cleaning", AppointmentDate: "2024-01-01", Slot: "10am",
	})
	var rejected *AlreadyBookedError
	if !errors.As(err, &rejected) {
		t.Fatalf("want AlreadyBookedError, got %v", err)
	}
	if rejected.Error() != "You already have a booking on 2024-01-01" {
		t.Fatalf("wrong message: %q", rejected.Error())
	}
	if len(st.bookings) != 1 {
		t.Fatalf("duplicate was stored: %d bookings", len(st.bookings))
	}
}

func TestBookTranslatesConstraintLoss(t *testing.T) {
	// pre-seed the slot without going through the guard, so the read check
	// passes and only the insert can catch it
	st := &fakeBookingStore{bookings: []model.Booking{
		{Email: "b@x.com", Treatment: "Cleaning", AppointmentDate: "2024-01-01", Slot: "9am"},
	}}
	guard := NewBookingGuard(st, zap.NewNop())

	_, err := guard.Book(context.Background(), BookingRequest{
		Email: "a@x.com", Treatment: "Cleaning", AppointmentDate: "2024-01-01", Slot: "9am",
	})
	var rejected *AlreadyBookedError
	if !errors.As(err, &rejected) {
		t.Fatalf("want AlreadyBookedError for slot collision, got %v", err)
	}
}

func TestBookSlotRace(t *testing.T) {
	st := &fakeBookingStore{}
	guard := NewBookingGuard(st, zap.NewNop())

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = guard.Book(context.Background(), BookingRequest{
				Email:           string(rune('a'+i)) + "@x.com",
				Treatment:       "Cleaning",
				AppointmentDate: "2024-01-01",
				Slot:            "9am",
			})
		}(i)
	}
	wg.Wait()

	confirmed := 0
	for _, err := range errs {
		if err == nil {
			confirmed++
			continue
		}
		var rejected *AlreadyBookedError
		if !errors.As(err, &rejected) {
			t.Fatalf("unexpected error kind: %v", err)
		}
	}
	if confirmed != 1 {
		t.Fatalf("want exactly 1 confirmed booking, got %d", confirmed)
	}
	if len(st.bookings) != 1 {
		t.Fatalf("want 1 stored booking, got %d", len(st.bookings))
	}
}

type failingBookingStore struct{ err error }

func (f *failingBookingStore) HasPatientBooking(context.Context, string, string, string) (bool, error) {
	return false, f.err
}
func (f *failingBookingStore) CreateBooking(context.Context, *model.Booking) error {
	return f.err
}

func TestBookPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	guard := NewBookingGuard(&failingBookingStore{err: storeErr}, zap.NewNop())

	_, err := guard.Book(context.Background(), BookingRequest{
		Email: "a@x.com", Treatment: "Cleaning", AppointmentDate: "2024-01-01", Slot: "9am",
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("store error not propagated: %v", err)
	}
}
