package models

import "time"

// UserRole distinguishes clients from business owners.
type UserRole string

const (
	RoleClient        UserRole = "CLIENT"
	RoleBusinessOwner UserRole = "BUSINESS_OWNER"
)

// User is the minimal identity the booking core needs to attribute bookings.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Role         UserRole  `bson:"role" json:"role"`
	BusinessID   string    `bson:"business_id,omitempty" json:"businessId,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
