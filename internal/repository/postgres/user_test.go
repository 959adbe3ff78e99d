package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/recipebox-server/internal/model"
)

var userColumns = []string{"id", "email", "first_name", "last_name", "password_hash", "created_at"}

func TestNewUserRepository(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_Create(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	input := model.User{
		Email:        "cook@example.com",
		FirstName:    "Julia",
		LastName:     "Child",
		PasswordHash: "$2a$10$hash",
	}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "created",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs(input.Email, input.FirstName, input.LastName, input.PasswordHash).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), createdAt))
			},
		},
		{
			name: "duplicate email",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs(input.Email, input.FirstName, input.LastName, input.PasswordHash).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			wantErr: model.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setup(mock)

			got, err := NewUserRepository(db).Create(context.Background(), input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, got.ID)
				assert.Equal(t, createdAt, got.CreatedAt)
				assert.Equal(t, input.Email, got.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("other storage error is not a duplicate", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(errors.New("connection reset"))

		_, err = NewUserRepository(db).Create(context.Background(), input)
		require.Error(t, err)
		assert.False(t, errors.Is(err, model.ErrDuplicateEmail))
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("cook@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(id.String(), "cook@example.com", "Julia", "Child", "$2a$10$hash", createdAt))

		got, err := NewUserRepository(db).GetByEmail(context.Background(), "cook@example.com")
		require.NoError(t, err)
		assert.Equal(t, model.User{
			ID:           id,
			Email:        "cook@example.com",
			FirstName:    "Julia",
			LastName:     "Child",
			PasswordHash: "$2a$10$hash",
			CreatedAt:    createdAt,
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		_, err = NewUserRepository(db).GetByEmail(context.Background(), "ghost@example.com")
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}
