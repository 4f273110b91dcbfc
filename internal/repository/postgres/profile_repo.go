package postgres

import (
	"context"
	"database/sql"
	"errors"

	"funlet/internal/domain"
)

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{
		DB: db,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT id, first_name, phone_number, email, created_at
		FROM profiles
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *profileRepository) GetByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	query := `
		SELECT id, first_name, phone_number, email, created_at
		FROM profiles
		WHERE phone_number = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, phone))
}

func (r *profileRepository) scanOne(row *sql.Row) (*domain.Profile, error) {
	p := &domain.Profile{}
	var emailNull sql.NullString
	err := row.Scan(&p.ID, &p.FirstName, &p.PhoneNumber, &emailNull, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if emailNull.Valid {
		p.Email = emailNull.String
	}
	return p, nil
}
