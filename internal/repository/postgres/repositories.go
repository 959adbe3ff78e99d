package postgres

import "github.com/dtroode/recipebox-server/internal/model"

var _ model.Repositories = Repositories{}

// Repositories builds stores over a leased connection.
type Repositories struct{}

func NewRepositories() Repositories {
	return Repositories{}
}

func (Repositories) Users(q model.DBTX) model.UserStore {
	return NewUserRepository(q)
}

func (Repositories) Recipes(q model.DBTX) model.RecipeStore {
	return NewRecipeRepository(q)
}
