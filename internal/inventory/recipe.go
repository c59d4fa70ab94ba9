package inventory

import (
	"fmt"
	"strings"
)

// Nutritional focuses accepted for recipe suggestions. Vitamins use the
// "vitamin-<letter>" form.
const (
	FocusProtein = "protein"
	FocusCarbs   = "carbs"
)

var vitamins = map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true, "k": true}

// FocusPhrase turns a focus id into the phrase the recipe service expects.
func FocusPhrase(focus string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(focus))
	switch {
	case f == FocusProtein:
		return "high in protein", nil
	case f == FocusCarbs:
		return "light on carbohydrates", nil
	case strings.HasPrefix(f, "vitamin-"):
		v := strings.TrimPrefix(f, "vitamin-")
		if vitamins[v] {
			return fmt.Sprintf("rich in vitamin %s", v), nil
		}
	}
	return "", fmt.Errorf("unknown nutritional focus %q", focus)
}

// Ingredient is an inventory item as seen by the recipe service.
type Ingredient struct {
	Name   string `json:"name"`
	Expiry int    `json:"expiry"`
}

// RecipeIngredient reports how much of an ingredient a recipe needs and
// whether the owner has it.
type RecipeIngredient struct {
	Quantity string `json:"quantity"`
	Have     bool   `json:"have"`
}

type Recipe struct {
	Name                string                      `json:"recipe_name"`
	Description         string                      `json:"description"`
	CookingTime         string                      `json:"cooking_time"`
	Ingredients         map[string]RecipeIngredient `json:"ingredients"`
	Instructions        []string                    `json:"instructions"`
	NutritionalBenefits []string                    `json:"nutritional_benefits"`
}

// Ingredients projects items onto the recipe request shape.
func Ingredients(items []*Item) []Ingredient {
	out := make([]Ingredient, 0, len(items))
	for _, it := range items {
		out = append(out, Ingredient{Name: it.Name, Expiry: it.Expiry})
	}
	return out
}
