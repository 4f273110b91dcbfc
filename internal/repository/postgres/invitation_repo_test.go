package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"funlet/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestInvitationRepository_GetHostInvitation(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	invitationRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "event_id", "contact_id", "invitation_code", "status",
			"response_note", "is_host", "invited_by", "responded_at", "created_at",
		})
	}

	tests := []struct {
		name    string
		eventID string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Invitation
		wantErr error
	}{
		{
			name:    "success",
			eventID: "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM invitations`).
					WithArgs("ev-1").
					WillReturnRows(invitationRows().
						AddRow("inv-1", "ev-1", nil, "abc123xy", "sent", "no_response", true, nil, nil, created))
			},
			want: &domain.Invitation{
				ID:             "inv-1",
				EventID:        "ev-1",
				InvitationCode: "abc123xy",
				Status:         "sent",
				ResponseNote:   "no_response",
				IsHost:         true,
				CreatedAt:      created,
			},
		},
		{
			name:    "not found",
			eventID: "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM invitations`).
					WithArgs("ev-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewInvitationRepository(db)
			got, err := repo.GetHostInvitation(ctx, tt.eventID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvitationRepository_ListSentGuestsByEvent(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT i.response_note, c.first_name`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"response_note", "first_name"}).
			AddRow("in", "Ana").
			AddRow("maybe", "Ben").
			AddRow("no_response", "Cleo"))

	repo := NewInvitationRepository(db)
	guests, err := repo.ListSentGuestsByEvent(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, guests, 3)
	require.Equal(t, &domain.GuestRSVP{ResponseNote: "in", FirstName: "Ana"}, guests[0])
	require.Equal(t, &domain.GuestRSVP{ResponseNote: "maybe", FirstName: "Ben"}, guests[1])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	contactID := "contact-1"

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO invitations`).
		WithArgs("ev-1", &contactID, "zz9plural", "sent", "no_response", false,
			sql.NullString{String: "prof-1", Valid: true}, created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("inv-9"))

	repo := NewInvitationRepository(db)
	inv := &domain.Invitation{
		EventID:        "ev-1",
		ContactID:      &contactID,
		InvitationCode: "zz9plural",
		Status:         "sent",
		ResponseNote:   "no_response",
		InvitedBy:      "prof-1",
		CreatedAt:      created,
	}
	require.NoError(t, repo.Create(ctx, inv))
	require.Equal(t, "inv-9", inv.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_CodeExists(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("abc123xy").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewInvitationRepository(db)
	exists, err := repo.CodeExists(ctx, "abc123xy")
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
