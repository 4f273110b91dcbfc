package domain

import (
	"context"
	"time"
)

// UserAction is an audit record of something a user did over SMS or the web.
type UserAction struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Action    string         `json:"action"`
	EventID   *string        `json:"event_id"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// UserActionRepository records user actions. Writes are best-effort; callers
// log failures and continue.
type UserActionRepository interface {
	Create(ctx context.Context, action *UserAction) error
}
