package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/recipebox-server/internal/api/rest/response"
	"github.com/dtroode/recipebox-server/internal/logger"
	"github.com/dtroode/recipebox-server/internal/model"
)

// RecipeService defines operations on a user's saved recipes.
type RecipeService interface {
	List(ctx context.Context, q model.DBTX, ownerID uuid.UUID) ([]model.Recipe, error)
	Save(ctx context.Context, q model.DBTX, recipe model.Recipe) (model.Recipe, error)
	Delete(ctx context.Context, q model.DBTX, ownerID uuid.UUID, recipeID string) error
}

// Recipe handles HTTP endpoints for saved recipes.
type Recipe struct {
	recipeService  RecipeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRecipe creates a new Recipe handler.
func NewRecipe(recipeService RecipeService, contextManager model.ContextManager, logger *logger.Logger) *Recipe {
	return &Recipe{
		recipeService:  recipeService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// recipeID accepts both "52772" and 52772, since catalogue ids arrive
// either way.
type recipeID string

func (id *recipeID) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = recipeID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = recipeID(n.String())
	return nil
}

type saveRecipeRequest struct {
	ID    recipeID `json:"id"`
	Name  string   `json:"name"`
	Image string   `json:"image"`
}

type recipeResponse struct {
	ID      string    `json:"recipeId"`
	Name    string    `json:"recipeName"`
	Image   string    `json:"recipeImage"`
	SavedAt time.Time `json:"savedAt"`
}

func toRecipeResponse(recipe model.Recipe) recipeResponse {
	return recipeResponse{
		ID:      recipe.RecipeID,
		Name:    recipe.Name,
		Image:   recipe.Image,
		SavedAt: recipe.CreatedAt,
	}
}

// List returns the caller's saved recipes.
func (h *Recipe) List(r *http.Request) (*response.Response, error) {
	claims, lease, err := h.requestScope(r)
	if err != nil {
		return nil, err
	}

	recipes, err := h.recipeService.List(r.Context(), lease, claims.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]recipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, toRecipeResponse(recipe))
	}

	return response.OK(out, "Fetched recipes"), nil
}

// Save bookmarks a recipe for the caller.
func (h *Recipe) Save(r *http.Request) (*response.Response, error) {
	claims, lease, err := h.requestScope(r)
	if err != nil {
		return nil, err
	}

	var req saveRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	saved, err := h.recipeService.Save(r.Context(), lease, model.Recipe{
		OwnerID:  claims.UserID,
		RecipeID: string(req.ID),
		Name:     req.Name,
		Image:    req.Image,
	})
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Recipe handler: recipe saved",
		"user_id", claims.UserID,
		"recipe_id", saved.RecipeID)

	return response.OK(toRecipeResponse(saved), "Recipe saved"), nil
}

// Delete removes one of the caller's saved recipes.
func (h *Recipe) Delete(r *http.Request) (*response.Response, error) {
	claims, lease, err := h.requestScope(r)
	if err != nil {
		return nil, err
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		return nil, model.NewValidationError("id", "is required")
	}

	if err := h.recipeService.Delete(r.Context(), lease, claims.UserID, id); err != nil {
		return nil, err
	}

	return response.OK(nil, "Recipe deleted"), nil
}

func (h *Recipe) requestScope(r *http.Request) (model.Claims, model.Lease, error) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		return model.Claims{}, nil, model.ErrMissingAuthorization
	}

	lease, ok := h.contextManager.GetLeaseFromContext(r.Context())
	if !ok {
		return model.Claims{}, nil, errNoLease
	}

	return claims, lease, nil
}
