package booking

import (
	"errors"
	"fmt"
	"time"

	businessRepo "bookly/database/repository/business"
	"bookly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve validates the requested slot against the ledger and commits a
// confirmed booking. The quota check runs before the conflict check, so a
// FREE business at its limit reports QuotaExceeded even for a taken slot.
func (s *DefaultBookingService) Reserve(userID, businessID, serviceID string, slot models.TimeSlot) (*models.Booking, error) {
	business, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return nil, newError(CodeNotFound, "business %s does not exist", businessID)
		}
		return nil, fmt.Errorf("reserve: fetching business: %w", err)
	}

	service := business.ServiceByID(serviceID)
	if service == nil {
		return nil, newError(CodeNotFound, "service %s is not offered by business %s", serviceID, businessID)
	}
	if service.DurationMinutes <= 0 {
		return nil, newError(CodeInvalidInput, "service %s has non-positive duration", serviceID)
	}
	if !slot.End.After(slot.Start) {
		return nil, newError(CodeInvalidInput, "slot end must be after its start")
	}
	if want := time.Duration(service.DurationMinutes) * time.Minute; slot.Duration() != want {
		return nil, newError(CodeInvalidInput, "slot length %s does not match service duration %s", slot.Duration(), want)
	}

	// Serialize check-then-append per business so two overlapping requests
	// cannot both pass the conflict check.
	lock := s.locks.get(businessID)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()

	if business.Plan == models.PlanFree {
		used, err := s.Ledger.CountConfirmedSince(businessID, startOfMonth(now))
		if err != nil {
			return nil, fmt.Errorf("reserve: counting bookings this month: %w", err)
		}
		if used >= business.MonthlyBookingQuota {
			return nil, newError(CodeQuotaExceeded,
				"business %s has reached its monthly booking limit of %d", businessID, business.MonthlyBookingQuota)
		}
	}

	conflict, err := s.Ledger.FindConflict(businessID, slot)
	if err != nil {
		return nil, fmt.Errorf("reserve: checking for conflicts: %w", err)
	}
	if conflict != nil {
		return nil, newError(CodeSlotConflict, "slot [%s, %s) is no longer available",
			slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339))
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		BusinessID: businessID,
		ServiceID:  serviceID,
		Slot:       slot,
		Status:     models.BookingConfirmed,
		CreatedAt:  now,
	}
	if err := s.Ledger.Create(booking); err != nil {
		return nil, fmt.Errorf("reserve: committing booking: %w", err)
	}

	s.invalidateSlotCache(businessID, slot.Start)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(booking); err != nil {
			zap.L().Warn("Failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return booking, nil
}
