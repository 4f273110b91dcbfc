package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"funlet/internal/domain"
)

type userActionRepository struct {
	DB *sql.DB
}

func NewUserActionRepository(db *sql.DB) domain.UserActionRepository {
	return &userActionRepository{
		DB: db,
	}
}

func (r *userActionRepository) Create(ctx context.Context, action *domain.UserAction) error {
	var metadata []byte
	if action.Metadata != nil {
		b, err := json.Marshal(action.Metadata)
		if err != nil {
			return err
		}
		metadata = b
	}
	query := `
		INSERT INTO user_actions (user_id, action, event_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	var eventID sql.NullString
	if action.EventID != nil {
		eventID = sql.NullString{String: *action.EventID, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query, action.UserID, action.Action, eventID, metadata).
		Scan(&action.ID)
}
