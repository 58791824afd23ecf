package booking

import (
	"errors"
	"fmt"

	bookingRepo "bookly/database/repository/booking"
	businessRepo "bookly/database/repository/business"
	"bookly/models"
)

// Cancel soft-cancels a booking. The actor must be the booking's user or the
// owner of the booked business. Cancelling an already cancelled booking
// succeeds without touching the record.
func (s *DefaultBookingService) Cancel(bookingID, actorID string) (*models.Booking, error) {
	booking, err := s.Ledger.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(CodeNotFound, "booking %s does not exist", bookingID)
		}
		return nil, fmt.Errorf("cancel: fetching booking: %w", err)
	}

	if err := s.authorizeBookingAccess(booking, actorID); err != nil {
		return nil, err
	}

	if booking.Status == models.BookingCancelled {
		return booking, nil
	}

	if err := s.Ledger.Cancel(bookingID); err != nil {
		return nil, fmt.Errorf("cancel: updating booking: %w", err)
	}
	booking.Status = models.BookingCancelled

	s.invalidateSlotCache(booking.BusinessID, booking.Slot.Start)

	return booking, nil
}

// authorizeBookingAccess allows the booking's user and the owner of the
// booked business, nobody else.
func (s *DefaultBookingService) authorizeBookingAccess(booking *models.Booking, actorID string) error {
	if actorID == booking.UserID {
		return nil
	}
	business, err := s.BusinessRepo.GetByID(booking.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return newError(CodeForbidden, "not allowed to modify booking %s", booking.ID)
		}
		return fmt.Errorf("cancel: fetching business for authorization: %w", err)
	}
	if actorID != business.OwnerID {
		return newError(CodeForbidden, "not allowed to modify booking %s", booking.ID)
	}
	return nil
}
