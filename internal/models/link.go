package models

import (
	"time"

	"github.com/google/uuid"
)

// LinkDB represents an outbound link row in the database
type LinkDB struct {
	ID          uuid.UUID `json:"id" db:"id"`                   // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`         // Owning user
	Title       string    `json:"title" db:"title"`             // Display title
	URL         string    `json:"url" db:"url"`                 // Target URL
	Description *string   `json:"description" db:"description"` // Optional description
	ClickCount  int64     `json:"click_count" db:"click_count"` // Denormalized click counter, never decremented
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// SocialLinkDB represents a social-platform link row in the database
type SocialLinkDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	Platform  string    `json:"platform" db:"platform"`     // Platform tag, e.g. "github", "instagram"
	URL       string    `json:"url" db:"url"`               // Profile URL on the platform
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Profile is a public profile page: the user together with all of
// their links and social links. This is what the rendering layer and
// the profile cache consume.
type Profile struct {
	User        UserDB         `json:"user"`         // Profile owner
	Links       []LinkDB       `json:"links"`        // Outbound links in creation order
	SocialLinks []SocialLinkDB `json:"social_links"` // Social links in creation order
}
