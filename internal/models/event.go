package models

import (
	"time"

	"github.com/google/uuid"
)

// VisitEvent represents one view of a user's public profile. Rows are
// append-only, never mutated or deleted while the user exists.
type VisitEvent struct {
	UserID      uuid.UUID `json:"user_id"`     // Visited user
	Fingerprint string    `json:"fingerprint"` // Visitor-identifying token, used only for unique-visitor counting
	VisitedAt   time.Time `json:"visited_at"`  // When the visit happened
}

// ClickEvent represents one outbound click on a link. The owning user
// is implied via the link.
type ClickEvent struct {
	LinkID    uuid.UUID `json:"link_id"`    // Clicked link
	ClickedAt time.Time `json:"clicked_at"` // When the click happened
}
