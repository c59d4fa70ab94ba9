package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/inventory"
)

type fakeSuggester struct {
	focus       string
	ingredients []inventory.Ingredient
}

func (f *fakeSuggester) GetRecipe(_ context.Context, focus string, ingredients []inventory.Ingredient) (*inventory.Recipe, error) {
	f.focus, f.ingredients = focus, ingredients
	return &inventory.Recipe{Name: "Omelette"}, nil
}

func TestRecipeService_SuggestRecipe(t *testing.T) {
	db, _ := newMockDB(t)
	rm := newFakeRepoManager()
	rm.items.put(inventory.Item{Name: "eggs", Expiry: 2, OwnerID: "u1"})
	rm.items.put(inventory.Item{Name: "spinach", Expiry: 1, OwnerID: "u1"})
	rm.items.put(inventory.Item{Name: "steak", Expiry: 1, OwnerID: "u2"})
	sug := &fakeSuggester{}
	svc := NewRecipeService(db, rm, sug)

	r, err := svc.SuggestRecipe(context.Background(), "u1", "vitamin-C")
	require.NoError(t, err)
	assert.Equal(t, "Omelette", r.Name)
	assert.Equal(t, "rich in vitamin c", sug.focus)
	assert.Equal(t, []inventory.Ingredient{{Name: "spinach", Expiry: 1}, {Name: "eggs", Expiry: 2}}, sug.ingredients)
}

func TestRecipeService_SuggestRecipe_Validation(t *testing.T) {
	db, _ := newMockDB(t)
	rm := newFakeRepoManager()
	sug := &fakeSuggester{}
	svc := NewRecipeService(db, rm, sug)

	_, err := svc.SuggestRecipe(context.Background(), "u1", "fiber")
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "focus", ve.Field)

	_, err = svc.SuggestRecipe(context.Background(), "u1", "protein")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "inventory", ve.Field)
	assert.Empty(t, sug.focus)
}
