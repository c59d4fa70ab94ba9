package remote

import (
	"context"

	"github.com/dmitrijs2005/freshify/internal/inventory"
)

const ServiceRecipe = "recipe"

type RecipeClient struct {
	p *poster
}

func NewRecipeClient(baseURL string, o Options) *RecipeClient {
	return &RecipeClient{p: newPoster(ServiceRecipe, baseURL, o)}
}

type recipeRequest struct {
	NutritionalFocus string                 `json:"nutritional_focus"`
	Ingredients      []inventory.Ingredient `json:"ingredients"`
}

type recipeResponse struct {
	inventory.Recipe
	Error string `json:"error"`
}

// GetRecipe asks for a recipe matching focus (already phrased, e.g.
// "high in protein") that uses the given ingredients.
func (c *RecipeClient) GetRecipe(ctx context.Context, focus string, ingredients []inventory.Ingredient) (*inventory.Recipe, error) {
	var resp recipeResponse
	if err := c.p.post(ctx, "/get_recipe", recipeRequest{NutritionalFocus: focus, Ingredients: ingredients}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, c.p.fail(resp.Error, nil)
	}
	if resp.Name == "" {
		return nil, c.p.fail("empty recipe", nil)
	}
	return &resp.Recipe, nil
}
