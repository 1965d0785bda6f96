package models

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the externally-authenticated identity asserted by the
// identity provider for the current request. Display fields are treated
// as ground truth on every sign-in; the username never comes from here.
type Principal struct {
	ExternalID string  `json:"external_id"` // Opaque identifier assigned by the identity provider
	Email      string  `json:"email"`       // Primary email address
	FirstName  *string `json:"first_name"`  // Optional first name
	LastName   *string `json:"last_name"`   // Optional last name
	AvatarURL  *string `json:"avatar_url"`  // Optional avatar image URL
}

// UserDB represents a user row in the database
type UserDB struct {
	ID         uuid.UUID `json:"id" db:"id"`                   // Primary key
	ExternalID string    `json:"external_id" db:"external_id"` // Unique, immutable identity-provider id
	Email      string    `json:"email" db:"email"`             // Email refreshed from the identity provider
	Username   *string   `json:"username" db:"username"`       // Globally unique handle, nil until claimed
	FirstName  *string   `json:"first_name" db:"first_name"`   // Optional first name
	LastName   *string   `json:"last_name" db:"last_name"`     // Optional last name
	AvatarURL  *string   `json:"avatar_url" db:"avatar_url"`   // Optional avatar image URL
	Bio        *string   `json:"bio" db:"bio"`                 // Optional bio, at most 500 characters
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
