package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/recipebox-server/internal/model"
)

var _ model.RecipeStore = (*RecipeRepository)(nil)

type RecipeRepository struct {
	db model.DBTX
}

func NewRecipeRepository(db model.DBTX) *RecipeRepository {
	return &RecipeRepository{
		db: db,
	}
}

func (r *RecipeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Recipe, error) {
	query := `SELECT owner_id, recipe_id, name, image, created_at
			  FROM recipes WHERE owner_id = $1
			  ORDER BY created_at, recipe_id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]model.Recipe, 0)
	for rows.Next() {
		var recipe model.Recipe
		if err := rows.Scan(&recipe.OwnerID, &recipe.RecipeID, &recipe.Name, &recipe.Image, &recipe.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	return recipes, nil
}

// Save inserts recipe or, if the owner already saved that recipe id,
// overwrites its name and image.
func (r *RecipeRepository) Save(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	query := `INSERT INTO recipes (owner_id, recipe_id, name, image)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (owner_id, recipe_id)
			  DO UPDATE SET name = EXCLUDED.name, image = EXCLUDED.image
			  RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		recipe.OwnerID, recipe.RecipeID, recipe.Name, recipe.Image,
	).Scan(&recipe.CreatedAt)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("failed to save recipe: %w", err)
	}

	return recipe, nil
}

func (r *RecipeRepository) Delete(ctx context.Context, ownerID uuid.UUID, recipeID string) error {
	query := `DELETE FROM recipes WHERE owner_id = $1 AND recipe_id = $2`

	res, err := r.db.ExecContext(ctx, query, ownerID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
