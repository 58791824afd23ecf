package businessRepo

import (
	"errors"

	"bookly/models"
)

// ErrNotFound is returned when no business matches the given id.
var ErrNotFound = errors.New("business not found")

// BusinessRepository defines methods for business profile data access.
// The booking core only reads businesses; writes come from owner-facing
// profile management.
type BusinessRepository interface {
	// GetByID retrieves a business by its unique ID.
	GetByID(id string) (*models.Business, error)
	// GetAll retrieves all businesses.
	GetAll() ([]models.Business, error)
	// GetByOwner retrieves the business owned by the given user, if any.
	GetByOwner(ownerID string) (*models.Business, error)
	// Create inserts a new business record.
	Create(business *models.Business) error
	// Update modifies an existing business record.
	Update(business *models.Business) error
	// Count returns the number of business records.
	Count() (int64, error)
}
