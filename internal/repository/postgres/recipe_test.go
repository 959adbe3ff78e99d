package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/recipebox-server/internal/model"
)

func TestRecipeRepository_ListByOwner(t *testing.T) {
	owner := uuid.New()
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	columns := []string{"owner_id", "recipe_id", "name", "image", "created_at"}

	tests := []struct {
		name string
		rows *sqlmock.Rows
		want []model.Recipe
	}{
		{
			name: "two recipes",
			rows: sqlmock.NewRows(columns).
				AddRow(owner.String(), "52772", "Teriyaki Chicken", "https://img/1.jpg", createdAt).
				AddRow(owner.String(), "52773", "Honey Salmon", "", createdAt),
			want: []model.Recipe{
				{OwnerID: owner, RecipeID: "52772", Name: "Teriyaki Chicken", Image: "https://img/1.jpg", CreatedAt: createdAt},
				{OwnerID: owner, RecipeID: "52773", Name: "Honey Salmon", CreatedAt: createdAt},
			},
		},
		{
			name: "none saved yields empty slice",
			rows: sqlmock.NewRows(columns),
			want: []model.Recipe{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			mock.ExpectQuery(regexp.QuoteMeta("FROM recipes WHERE owner_id = $1")).
				WithArgs(owner).
				WillReturnRows(tt.rows)

			got, err := NewRecipeRepository(db).ListByOwner(context.Background(), owner)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecipeRepository_Save(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	recipe := model.Recipe{OwnerID: uuid.New(), RecipeID: "52772", Name: "Teriyaki Chicken", Image: "https://img/1.jpg"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (owner_id, recipe_id)")).
		WithArgs(recipe.OwnerID, recipe.RecipeID, recipe.Name, recipe.Image).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	got, err := NewRecipeRepository(db).Save(context.Background(), recipe)
	require.NoError(t, err)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.Equal(t, recipe.RecipeID, got.RecipeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Delete(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		result  func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			result: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes")).
					WithArgs(owner, "52772").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "nothing to delete",
			result: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes")).
					WithArgs(owner, "52772").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.result(mock)

			err = NewRecipeRepository(db).Delete(context.Background(), owner, "52772")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
