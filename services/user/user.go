// Package user implements account registration and token-based sessions.
package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "bookly/database/repository/user"
	"bookly/models"
	"bookly/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials reports a failed login without leaking which part
// was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken reports a registration against an existing email.
var ErrEmailTaken = errors.New("email already registered")

// ErrNotFound reports a missing user.
var ErrNotFound = errors.New("user not found")

const sessionDuration = 72 * time.Hour

// DefaultUserService implements UserService over the Mongo repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new account with a bcrypt-hashed password.
func (s *DefaultUserService) Register(name, email, password string, role models.UserRole) (*models.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if role != models.RoleClient && role != models.RoleBusinessOwner {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	if _, err := s.Repo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("register: checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hashing password: %w", err)
	}

	account := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(account); err != nil {
		return nil, fmt.Errorf("register: creating user: %w", err)
	}
	return account, nil
}

// Authenticate verifies credentials and issues a JWT. The token's SHA-256
// hash is stored on the user record so presented tokens can be checked
// against the current session.
func (s *DefaultUserService) Authenticate(email, password string) (*models.User, string, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("authenticate: fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID, account.Email, sessionDuration)
	if err != nil {
		return nil, "", fmt.Errorf("authenticate: signing token: %w", err)
	}
	if err := s.Repo.SetTokenHash(account.ID, utils.HashToken(token)); err != nil {
		return nil, "", fmt.Errorf("authenticate: storing session: %w", err)
	}

	return account, token, nil
}

// GetByID fetches a user by id.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return account, nil
}

// AttachBusiness links a freshly created business to its owner account.
func (s *DefaultUserService) AttachBusiness(userID, businessID string) error {
	account, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return err
	}
	account.BusinessID = businessID
	account.Role = models.RoleBusinessOwner
	if err := s.Repo.Update(account); err != nil {
		return fmt.Errorf("attaching business to user %s: %w", userID, err)
	}
	return nil
}

// RevokeToken invalidates the user's current session.
func (s *DefaultUserService) RevokeToken(userID string) error {
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return err
	}
	return nil
}
