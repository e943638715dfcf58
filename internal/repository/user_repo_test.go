package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"group-manager/internal/domain"
)

func TestPgUserRepository_FindByEmail(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      domain.User
		wantErr   error
		errMsg    string
	}{
		{
			name: "user found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "password", "created_at"}).
					AddRow("u1", "Ana Silva", "ana@example.com", "hash", createdAt)
				mock.ExpectQuery(`FROM users`).
					WithArgs("ana@example.com").
					WillReturnRows(rows)
			},
			want: domain.User{
				ID:           "u1",
				Name:         "Ana Silva",
				Email:        "ana@example.com",
				PasswordHash: "hash",
				CreatedAt:    createdAt,
			},
		},
		{
			name: "no rows maps to ErrUserNotFound",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM users`).
					WithArgs("ana@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM users`).
					WithArgs("ana@example.com").
					WillReturnError(errors.New("connection refused"))
			},
			errMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewPgUserRepository(mock)
			got, err := repo.FindByEmail(context.Background(), "ana@example.com")

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.NotErrorIs(t, err, ErrUserNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestPgUserRepository_Insert(t *testing.T) {
	user := domain.User{
		Name:         "Ana Silva",
		Email:        "ana@example.com",
		PasswordHash: "hash",
	}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantID    string
		wantErr   error
		errMsg    string
	}{
		{
			name: "returns generated id",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("Ana Silva", "ana@example.com", "hash").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("u-new"))
			},
			wantID: "u-new",
		},
		{
			name: "unique violation maps to ErrEmailTaken",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("Ana Silva", "ana@example.com", "hash").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("Ana Silva", "ana@example.com", "hash").
					WillReturnError(errors.New("disk full"))
			},
			errMsg: "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewPgUserRepository(mock)
			id, err := repo.Insert(context.Background(), user)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}
