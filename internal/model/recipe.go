package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecipeStore defines persistence operations for saved recipes.
type RecipeStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Recipe, error)
	Save(ctx context.Context, recipe Recipe) (Recipe, error)
	Delete(ctx context.Context, ownerID uuid.UUID, recipeID string) error
}

// Recipe is a recipe bookmarked by a user. RecipeID is the identifier
// assigned by the upstream recipe catalogue, unique per owner.
type Recipe struct {
	OwnerID   uuid.UUID
	RecipeID  string
	Name      string
	Image     string
	CreatedAt time.Time
}
