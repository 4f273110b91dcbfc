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

func TestProfileRepository_GetByPhone(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		phone   string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Profile
		wantErr error
	}{
		{
			name:  "success",
			phone: "18777804236",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, first_name, phone_number, email, created_at`).
					WithArgs("18777804236").
					WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "phone_number", "email", "created_at"}).
						AddRow("prof-1", "Ana", "18777804236", "ana@example.com", created))
			},
			want: &domain.Profile{
				ID:          "prof-1",
				FirstName:   "Ana",
				PhoneNumber: "18777804236",
				Email:       "ana@example.com",
				CreatedAt:   created,
			},
		},
		{
			name:  "null email",
			phone: "8777804236",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, first_name, phone_number, email, created_at`).
					WithArgs("8777804236").
					WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "phone_number", "email", "created_at"}).
						AddRow("prof-2", "Ben", "8777804236", nil, created))
			},
			want: &domain.Profile{
				ID:          "prof-2",
				FirstName:   "Ben",
				PhoneNumber: "8777804236",
				CreatedAt:   created,
			},
		},
		{
			name:  "not found",
			phone: "5550000000",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, first_name, phone_number, email, created_at`).
					WithArgs("5550000000").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:  "db error",
			phone: "8777804236",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, first_name, phone_number, email, created_at`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewProfileRepository(db)
			got, err := repo.GetByPhone(ctx, tt.phone)
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
