package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/recipebox-server/internal/logger"
	"github.com/dtroode/recipebox-server/internal/model"
)

type Recipe struct {
	repos  model.Repositories
	logger *logger.Logger
}

func NewRecipe(repos model.Repositories, logger *logger.Logger) *Recipe {
	return &Recipe{repos: repos, logger: logger}
}

func (s *Recipe) List(ctx context.Context, q model.DBTX, ownerID uuid.UUID) ([]model.Recipe, error) {
	recipes, err := s.repos.Recipes(q).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Save stores recipe for its owner. Saving the same recipe id again
// replaces the name and image.
func (s *Recipe) Save(ctx context.Context, q model.DBTX, recipe model.Recipe) (model.Recipe, error) {
	recipe.RecipeID = strings.TrimSpace(recipe.RecipeID)
	recipe.Name = strings.TrimSpace(recipe.Name)

	if recipe.RecipeID == "" {
		return model.Recipe{}, model.NewValidationError("id", "is required")
	}
	if recipe.Name == "" {
		return model.Recipe{}, model.NewValidationError("name", "is required")
	}

	saved, err := s.repos.Recipes(q).Save(ctx, recipe)
	if err != nil {
		s.logger.Error("Recipe service: failed to save recipe",
			"user_id", recipe.OwnerID,
			"recipe_id", recipe.RecipeID,
			"error", err.Error())
		return model.Recipe{}, fmt.Errorf("failed to save recipe: %w", err)
	}

	return saved, nil
}

func (s *Recipe) Delete(ctx context.Context, q model.DBTX, ownerID uuid.UUID, recipeID string) error {
	err := s.repos.Recipes(q).Delete(ctx, ownerID, recipeID)
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("recipe %s: %w", recipeID, model.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	s.logger.Info("Recipe service: recipe deleted",
		"user_id", ownerID,
		"recipe_id", recipeID)

	return nil
}
