package userRepo

import (
	"errors"

	"bookly/models"
)

// ErrNotFound is returned when no user matches the given lookup.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves a user holding the given session token hash.
	GetByTokenHash(tokenHash string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// SetTokenHash stores the session token hash for a user. An empty hash
	// revokes the session.
	SetTokenHash(id, tokenHash string) error
	// Count returns the number of user records.
	Count() (int64, error)
}
