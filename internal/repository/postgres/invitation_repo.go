package postgres

import (
	"context"
	"database/sql"
	"errors"

	"funlet/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: db,
	}
}

const invitationColumns = `id, event_id, contact_id, invitation_code, status, response_note, is_host, invited_by, responded_at, created_at`

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (event_id, contact_id, invitation_code, status, response_note, is_host, invited_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var invitedBy sql.NullString
	if inv.InvitedBy != "" {
		invitedBy = sql.NullString{String: inv.InvitedBy, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query,
		inv.EventID, inv.ContactID, inv.InvitationCode, inv.Status,
		inv.ResponseNote, inv.IsHost, invitedBy, inv.CreatedAt,
	).Scan(&inv.ID)
}

func (r *invitationRepository) GetHostInvitation(ctx context.Context, eventID string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE event_id = $1 AND contact_id IS NULL AND is_host = true
	`
	return scanInvitation(r.DB.QueryRowContext(ctx, query, eventID))
}

func (r *invitationRepository) GetByInvitationCode(ctx context.Context, code string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE invitation_code = $1
	`
	return scanInvitation(r.DB.QueryRowContext(ctx, query, code))
}

func (r *invitationRepository) ListSentGuestsByEvent(ctx context.Context, eventID string) ([]*domain.GuestRSVP, error) {
	query := `
		SELECT i.response_note, c.first_name
		FROM invitations i
		JOIN contacts c ON c.id = i.contact_id
		WHERE i.event_id = $1 AND i.status = 'sent' AND i.is_host = false
		ORDER BY i.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make([]*domain.GuestRSVP, 0)
	for rows.Next() {
		g := &domain.GuestRSVP{}
		if err := rows.Scan(&g.ResponseNote, &g.FirstName); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *invitationRepository) ListSentByEvent(ctx context.Context, eventID string) ([]*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE event_id = $1 AND status = 'sent'
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invs := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitationFrom(rows)
		if err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

func (r *invitationRepository) ExistsByEventAndContact(ctx context.Context, eventID, contactID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM invitations WHERE event_id = $1 AND contact_id = $2)`
	var exists bool
	err := r.DB.QueryRowContext(ctx, query, eventID, contactID).Scan(&exists)
	return exists, err
}

func (r *invitationRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM invitations WHERE invitation_code = $1)`
	var exists bool
	err := r.DB.QueryRowContext(ctx, query, code).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row *sql.Row) (*domain.Invitation, error) {
	inv, err := scanInvitationFrom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func scanInvitationFrom(s rowScanner) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var contactNull, invitedByNull sql.NullString
	var respondedNull sql.NullTime
	err := s.Scan(
		&inv.ID, &inv.EventID, &contactNull, &inv.InvitationCode, &inv.Status,
		&inv.ResponseNote, &inv.IsHost, &invitedByNull, &respondedNull, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if contactNull.Valid {
		inv.ContactID = &contactNull.String
	}
	if invitedByNull.Valid {
		inv.InvitedBy = invitedByNull.String
	}
	if respondedNull.Valid {
		inv.RespondedAt = &respondedNull.Time
	}
	return inv, nil
}
