package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"funlet/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, location, event_date, start_time, end_time, creator_id, created_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var locNull, endNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &locNull, &e.EventDate, &e.StartTime, &endNull, &e.CreatorID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if locNull.Valid {
		e.Location = locNull.String
	}
	if endNull.Valid {
		e.EndTime = endNull.String
	}
	return e, nil
}

func (r *eventRepository) ListUpcomingByCreator(ctx context.Context, creatorID string, today time.Time) ([]*domain.Event, error) {
	query := `
		SELECT id, title, location, event_date, start_time, end_time, creator_id, created_at
		FROM events
		WHERE creator_id = $1 AND event_date >= $2
		ORDER BY event_date ASC, start_time ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, creatorID, today.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var locNull, endNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &locNull, &e.EventDate, &e.StartTime, &endNull, &e.CreatorID, &e.CreatedAt); err != nil {
			return nil, err
		}
		if locNull.Valid {
			e.Location = locNull.String
		}
		if endNull.Valid {
			e.EndTime = endNull.String
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
