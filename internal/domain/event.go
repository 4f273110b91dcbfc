package domain

import (
	"context"
	"time"
)

// Event represents an organizer-owned gathering
// swagger:model Event
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	EventDate time.Time `json:"event_date"`
	StartTime string    `json:"start_time"` // "HH:MM" or "HH:MM:SS", 24-hour
	EndTime   string    `json:"end_time,omitempty"`
	CreatorID string    `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EventRepository defines read access to events
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListUpcomingByCreator returns events with event_date >= today for the
	// given creator, ordered by event_date then start_time ascending.
	ListUpcomingByCreator(ctx context.Context, creatorID string, today time.Time) ([]*Event, error)
}
