package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/repomanager"
)

// RecipeSuggester is the remote recipe service.
type RecipeSuggester interface {
	GetRecipe(ctx context.Context, focus string, ingredients []inventory.Ingredient) (*inventory.Recipe, error)
}

type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	suggester   RecipeSuggester
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager, suggester RecipeSuggester) *RecipeService {
	return &RecipeService{db: db, repomanager: m, suggester: suggester}
}

// SuggestRecipe builds a recipe around the owner's current inventory.
func (s *RecipeService) SuggestRecipe(ctx context.Context, owner, focus string) (*inventory.Recipe, error) {
	phrase, err := inventory.FocusPhrase(focus)
	if err != nil {
		return nil, common.NewValidationError("focus", err.Error())
	}

	items, err := s.repomanager.Items(s.db).ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	if len(items) == 0 {
		return nil, common.NewValidationError("inventory", "is empty")
	}

	return s.suggester.GetRecipe(ctx, phrase, inventory.Ingredients(items))
}
