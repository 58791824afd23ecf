package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookly/config"
	businessRepo "bookly/database/repository/business"
	"bookly/models"
	"bookly/services/availability"

	"go.uber.org/zap"
)

// ListAvailableSlots computes the free slots for one service on one calendar
// date. Quota is deliberately not consulted here: slot display reflects time
// availability only, entitlement is checked at commit time.
func (s *DefaultBookingService) ListAvailableSlots(businessID, serviceID string, date time.Time) ([]models.TimeSlot, error) {
	business, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return nil, newError(CodeNotFound, "business %s does not exist", businessID)
		}
		return nil, fmt.Errorf("slots: fetching business: %w", err)
	}
	service := business.ServiceByID(serviceID)
	if service == nil {
		return nil, newError(CodeNotFound, "service %s is not offered by business %s", serviceID, businessID)
	}

	cacheKey := slotCacheKey(businessID, serviceID, date)
	if cached, ok := s.cachedSlots(cacheKey); ok {
		return cached, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	confirmed, err := s.Ledger.ListConfirmedInWindow(businessID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("slots: listing confirmed bookings: %w", err)
	}
	busy := make([]models.TimeSlot, 0, len(confirmed))
	for _, b := range confirmed {
		busy = append(busy, b.Slot)
	}

	slots := availability.GenerateSlots(business, date, service.DurationMinutes, busy)

	s.storeSlots(cacheKey, slots)
	return slots, nil
}

// ListBookingsForUser returns all bookings made by the given user.
func (s *DefaultBookingService) ListBookingsForUser(userID string) ([]models.Booking, error) {
	bookings, err := s.Ledger.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("listing bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// ListBookingsForBusiness returns a business's bookings. Only the owner may
// see them.
func (s *DefaultBookingService) ListBookingsForBusiness(businessID, actorID string) ([]models.Booking, error) {
	business, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return nil, newError(CodeNotFound, "business %s does not exist", businessID)
		}
		return nil, fmt.Errorf("listing bookings: fetching business: %w", err)
	}
	if business.OwnerID != actorID {
		return nil, newError(CodeForbidden, "not allowed to view bookings of business %s", businessID)
	}

	bookings, err := s.Ledger.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("listing bookings for business %s: %w", businessID, err)
	}
	return bookings, nil
}

func slotCacheKey(businessID, serviceID string, date time.Time) string {
	return fmt.Sprintf("slots:%s:%s:%s", businessID, serviceID, date.Format("2006-01-02"))
}

func (s *DefaultBookingService) cachedSlots(key string) ([]models.TimeSlot, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(context.Background(), key).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.TimeSlot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultBookingService) storeSlots(key string, slots []models.TimeSlot) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if err := s.Cache.Set(context.Background(), key, data, ttl).Err(); err != nil {
		zap.L().Warn("Failed to cache slot listing", zap.String("key", key), zap.Error(err))
	}
}

// invalidateSlotCache drops cached listings for the booking's business and
// day, across all services.
func (s *DefaultBookingService) invalidateSlotCache(businessID string, slotStart time.Time) {
	if s.Cache == nil {
		return
	}
	ctx := context.Background()
	pattern := fmt.Sprintf("slots:%s:*:%s", businessID, slotStart.Format("2006-01-02"))
	keys, err := s.Cache.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("Failed to invalidate slot cache", zap.String("pattern", pattern), zap.Error(err))
	}
}
