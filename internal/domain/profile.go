package domain

import (
	"context"
	"time"
)

// Profile represents a host/organizer account. Profiles are created during
// onboarding; this service only reads them.
// swagger:model Profile
type Profile struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileRepository defines read access to host profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	// GetByPhone matches the stored phone_number column exactly; callers are
	// expected to probe each normalized variant of an inbound number.
	GetByPhone(ctx context.Context, phone string) (*Profile, error)
}
