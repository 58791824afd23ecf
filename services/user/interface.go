package user

import "bookly/models"

// UserService exposes the minimal identity operations the platform needs:
// account creation, login, and lookups for attribution.
type UserService interface {
	Register(name, email, password string, role models.UserRole) (*models.User, error)
	Authenticate(email, password string) (*models.User, string, error)
	GetByID(id string) (*models.User, error)
	AttachBusiness(userID, businessID string) error
	RevokeToken(userID string) error
}
