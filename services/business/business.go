// Package business manages business profiles: the weekly availability, the
// service catalogue, and the plan/quota fields the booking engine reads.
package business

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"bookly/config"
	businessRepo "bookly/database/repository/business"
	"bookly/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound reports a missing business.
var ErrNotFound = errors.New("business not found")

// ErrForbidden reports an actor editing a business they do not own.
var ErrForbidden = errors.New("not allowed to modify this business")

// ErrInvalidInput reports a rejected profile payload.
var ErrInvalidInput = errors.New("invalid business profile")

const profileCacheTTL = 10 * time.Minute

// DefaultBusinessService implements BusinessService over the Mongo repository
// with a Redis profile cache.
type DefaultBusinessService struct {
	Repo  businessRepo.BusinessRepository
	Cache *redis.Client // nil disables caching
}

// GetByID fetches a business, serving from cache when possible.
func (s *DefaultBusinessService) GetByID(id string) (*models.Business, error) {
	if cached := s.cachedProfile(id); cached != nil {
		return cached, nil
	}

	business, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return nil, fmt.Errorf("business %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	s.storeProfile(business)
	return business, nil
}

// GetAll lists every business.
func (s *DefaultBusinessService) GetAll() ([]models.Business, error) {
	return s.Repo.GetAll()
}

// Create registers a new business for the given owner. New businesses start
// on the FREE plan with the configured monthly quota and a seeded rating.
func (s *DefaultBusinessService) Create(ownerID string, business *models.Business) (*models.Business, error) {
	if err := validateProfile(business); err != nil {
		return nil, err
	}

	business.ID = uuid.New().String()
	business.OwnerID = ownerID
	business.Plan = models.PlanFree
	business.MonthlyBookingQuota = config.AppConfig.DefaultMonthlyQuota
	if business.MonthlyBookingQuota <= 0 {
		business.MonthlyBookingQuota = 10
	}
	// New listings start with a neutral-to-good rating until reviews exist.
	business.Rating = float64(30+rand.Intn(21)) / 10

	for i := range business.Services {
		if business.Services[i].ID == "" {
			business.Services[i].ID = uuid.New().String()
		}
	}

	if err := s.Repo.Create(business); err != nil {
		return nil, fmt.Errorf("creating business: %w", err)
	}
	return business, nil
}

// Update replaces a business profile. Only the owner may update, and the
// plan/quota/rating fields are preserved from the stored record so profile
// edits cannot self-upgrade a subscription.
func (s *DefaultBusinessService) Update(actorID string, business *models.Business) (*models.Business, error) {
	existing, err := s.Repo.GetByID(business.ID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return nil, fmt.Errorf("business %s: %w", business.ID, ErrNotFound)
		}
		return nil, err
	}
	if existing.OwnerID != actorID {
		return nil, ErrForbidden
	}
	if err := validateProfile(business); err != nil {
		return nil, err
	}

	business.OwnerID = existing.OwnerID
	business.Plan = existing.Plan
	business.MonthlyBookingQuota = existing.MonthlyBookingQuota
	business.Rating = existing.Rating
	business.CreatedAt = existing.CreatedAt

	for i := range business.Services {
		if business.Services[i].ID == "" {
			business.Services[i].ID = uuid.New().String()
		}
	}

	if err := s.Repo.Update(business); err != nil {
		return nil, fmt.Errorf("updating business: %w", err)
	}

	s.dropProfile(business.ID)
	return business, nil
}

// validateProfile rejects payloads the booking engine could not work with.
// Availability windows are owner-input trust: no time-ordering checks.
func validateProfile(business *models.Business) error {
	if business.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	for _, svc := range business.Services {
		if svc.DurationMinutes <= 0 {
			return fmt.Errorf("%w: service %q must have a positive duration", ErrInvalidInput, svc.Name)
		}
	}
	return nil
}

func profileCacheKey(id string) string {
	return "business:" + id
}

func (s *DefaultBusinessService) cachedProfile(id string) *models.Business {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(context.Background(), profileCacheKey(id)).Result()
	if err != nil {
		return nil
	}
	var business models.Business
	if err := json.Unmarshal([]byte(data), &business); err != nil {
		return nil
	}
	return &business
}

func (s *DefaultBusinessService) storeProfile(business *models.Business) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(business)
	if err != nil {
		return
	}
	if err := s.Cache.Set(context.Background(), profileCacheKey(business.ID), data, profileCacheTTL).Err(); err != nil {
		zap.L().Warn("Failed to cache business profile", zap.String("id", business.ID), zap.Error(err))
	}
}

func (s *DefaultBusinessService) dropProfile(id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), profileCacheKey(id)).Err(); err != nil {
		zap.L().Warn("Failed to drop cached business profile", zap.String("id", id), zap.Error(err))
	}
}
