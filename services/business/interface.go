package business

import "bookly/models"

// BusinessService exposes owner-facing profile management and the read
// surface the booking core depends on.
type BusinessService interface {
	GetByID(id string) (*models.Business, error)
	GetAll() ([]models.Business, error)
	Create(ownerID string, business *models.Business) (*models.Business, error)
	Update(actorID string, business *models.Business) (*models.Business, error)
}
