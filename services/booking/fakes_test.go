package booking

import (
	"fmt"
	"sync"
	"time"

	bookingRepo "bookly/database/repository/booking"
	businessRepo "bookly/database/repository/business"
	"bookly/models"
)

// fakeLedger is an in-memory BookingRepository safe for concurrent use.
type fakeLedger struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (f *fakeLedger) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeLedger) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id, bookingRepo.ErrNotFound)
}

func (f *fakeLedger) Cancel(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = models.BookingCancelled
			return nil
		}
	}
	return fmt.Errorf("booking %s: %w", id, bookingRepo.ErrNotFound)
}

func (f *fakeLedger) FindConflict(businessID string, slot models.TimeSlot) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.BusinessID == businessID && b.Status == models.BookingConfirmed && b.Slot.Overlaps(slot) {
			out := b
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeLedger) CountConfirmedSince(businessID string, since time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.bookings {
		if b.BusinessID == businessID && b.Status == models.BookingConfirmed && !b.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeLedger) ListConfirmedInWindow(businessID string, from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	window := models.TimeSlot{Start: from, End: to}
	for _, b := range f.bookings {
		if b.BusinessID == businessID && b.Status == models.BookingConfirmed && b.Slot.Overlaps(window) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListByUser(userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListByBusiness(businessID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BusinessID == businessID {
			out = append(out, b)
		}
	}
	return out, nil
}

// seed inserts a booking directly, bypassing the engine.
func (f *fakeLedger) seed(b models.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, b)
}

// confirmed counts confirmed bookings currently held.
func (f *fakeLedger) confirmed() []models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingConfirmed {
			out = append(out, b)
		}
	}
	return out
}

// fakeBusinessRepo is an in-memory BusinessRepository.
type fakeBusinessRepo struct {
	mu         sync.Mutex
	businesses map[string]models.Business
}

func newFakeBusinessRepo(businesses ...models.Business) *fakeBusinessRepo {
	repo := &fakeBusinessRepo{businesses: make(map[string]models.Business)}
	for _, b := range businesses {
		repo.businesses[b.ID] = b
	}
	return repo
}

func (f *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.businesses[id]
	if !ok {
		return nil, fmt.Errorf("business %s: %w", id, businessRepo.ErrNotFound)
	}
	out := b
	return &out, nil
}

func (f *fakeBusinessRepo) GetAll() ([]models.Business, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Business
	for _, b := range f.businesses {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBusinessRepo) GetByOwner(ownerID string) (*models.Business, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.businesses {
		if b.OwnerID == ownerID {
			out := b
			return &out, nil
		}
	}
	return nil, fmt.Errorf("business owned by %s: %w", ownerID, businessRepo.ErrNotFound)
}

func (f *fakeBusinessRepo) Create(b *models.Business) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.businesses[b.ID] = *b
	return nil
}

func (f *fakeBusinessRepo) Update(b *models.Business) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.businesses[b.ID]; !ok {
		return fmt.Errorf("business %s: %w", b.ID, businessRepo.ErrNotFound)
	}
	f.businesses[b.ID] = *b
	return nil
}

func (f *fakeBusinessRepo) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.businesses)), nil
}
