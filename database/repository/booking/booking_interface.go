package bookingRepo

import (
	"errors"
	"time"

	"bookly/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository is the ledger of booking records. It is the sole owner of
// bookings and the sole writer of status transitions; records are
// soft-cancelled, never deleted.
//
// Create and Cancel do not re-run conflict or quota checks; the booking
// engine performs those under its per-business serialization before calling in.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// Cancel transitions a booking to Cancelled. Cancelling an already
	// cancelled booking is a no-op.
	Cancel(id string) error
	// FindConflict returns a confirmed booking for the business whose interval
	// overlaps the given slot, or nil if the slot is free.
	FindConflict(businessID string, slot models.TimeSlot) (*models.Booking, error)
	// CountConfirmedSince counts confirmed bookings for the business created
	// at or after the given instant.
	CountConfirmedSince(businessID string, since time.Time) (int, error)
	// ListConfirmedInWindow returns confirmed bookings for the business whose
	// slots overlap [from, to).
	ListConfirmedInWindow(businessID string, from, to time.Time) ([]models.Booking, error)
	// ListByUser returns all bookings made by the given user.
	ListByUser(userID string) ([]models.Booking, error)
	// ListByBusiness returns all bookings held against the given business.
	ListByBusiness(businessID string) ([]models.Booking, error)
}
