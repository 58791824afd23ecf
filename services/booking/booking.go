// Package booking orchestrates slot listing, reservation and cancellation on
// top of the business store and the booking ledger.
package booking

import (
	"time"

	bookingRepo "bookly/database/repository/booking"
	businessRepo "bookly/database/repository/business"
	"bookly/models"

	"github.com/go-redis/redis/v8"
)

// BookingService is the client-facing surface of the booking engine.
type BookingService interface {
	// ListAvailableSlots computes the free slots for a service on a date.
	ListAvailableSlots(businessID, serviceID string, date time.Time) ([]models.TimeSlot, error)
	// Reserve validates and commits a reservation for the given slot.
	Reserve(userID, businessID, serviceID string, slot models.TimeSlot) (*models.Booking, error)
	// Cancel soft-cancels a booking on behalf of actorID. Only the booking's
	// user or the owning business may cancel; re-cancelling is a no-op.
	Cancel(bookingID, actorID string) (*models.Booking, error)
	// ListBookingsForUser returns the bookings made by a user.
	ListBookingsForUser(userID string) ([]models.Booking, error)
	// ListBookingsForBusiness returns a business's bookings to its owner.
	ListBookingsForBusiness(businessID, actorID string) ([]models.Booking, error)
}

// ReminderScheduler enqueues a reminder for a freshly confirmed booking.
// Delivery itself is handled outside the booking core.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking *models.Booking) error
}

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Ledger       bookingRepo.BookingRepository
	BusinessRepo businessRepo.BusinessRepository

	// Cache holds short-lived slot listings; nil disables caching.
	Cache *redis.Client
	// Reminders is notified on confirmation; nil disables reminders.
	Reminders ReminderScheduler

	// Clock is the time source; tests may replace it.
	Clock func() time.Time

	locks *businessLocks
}

// NewBookingService wires a booking engine over the given stores.
func NewBookingService(ledger bookingRepo.BookingRepository, businesses businessRepo.BusinessRepository) *DefaultBookingService {
	return &DefaultBookingService{
		Ledger:       ledger,
		BusinessRepo: businesses,
		Clock:        time.Now,
		locks:        newBusinessLocks(),
	}
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// startOfMonth is the quota period anchor: the first instant of the current
// calendar month at evaluation time, recomputed freshly per call.
func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
