package grpc

import (
	"context"

	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/logging"
	"github.com/dmitrijs2005/freshify/internal/server/models"
	"github.com/dmitrijs2005/freshify/internal/server/services"
)

type fakeUsers struct {
	regResp     *models.User
	regErr      error
	loginResp   *services.TokenPair
	loginErr    error
	refreshResp *services.TokenPair
	refreshErr  error
}

func (f *fakeUsers) Register(context.Context, string, string) (*models.User, error) {
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(context.Context, string, string) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeUsers) RefreshToken(context.Context, string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

type fakeInventory struct {
	owner    string
	saved    []inventory.ConsolidatedItem
	listed   []*services.ListedItem
	complete *services.CompletionResult
	impact   *inventory.ImpactCounters
	err      error
}

func (f *fakeInventory) SaveItems(_ context.Context, owner, _ string, items []inventory.ConsolidatedItem) ([]int64, error) {
	f.owner, f.saved = owner, items
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = int64(i + 1)
	}
	return ids, nil
}

func (f *fakeInventory) ListItems(_ context.Context, owner string) ([]*services.ListedItem, error) {
	f.owner = owner
	return f.listed, f.err
}

func (f *fakeInventory) UpdateQuantity(_ context.Context, owner string, _ int64, _ int) error {
	f.owner = owner
	return f.err
}

func (f *fakeInventory) UpdateExpiry(_ context.Context, owner string, _ int64, _ int) error {
	f.owner = owner
	return f.err
}

func (f *fakeInventory) CompleteItem(_ context.Context, owner string, _ int64) (*services.CompletionResult, error) {
	f.owner = owner
	return f.complete, f.err
}

func (f *fakeInventory) WasteItem(_ context.Context, owner string, _ int64) (*inventory.ImpactCounters, error) {
	f.owner = owner
	return f.impact, f.err
}

func (f *fakeInventory) GetImpact(_ context.Context, owner string) (*inventory.ImpactCounters, error) {
	f.owner = owner
	return f.impact, f.err
}

type fakeScans struct {
	result  *services.ScanResult
	receipt []inventory.PurchasedItem
	err     error
}

func (f *fakeScans) AnalyzeImage(context.Context, string, string, []inventory.PurchasedItem) (*services.ScanResult, error) {
	return f.result, f.err
}

func (f *fakeScans) AnalyzeReceipt(context.Context, string) ([]inventory.PurchasedItem, error) {
	return f.receipt, f.err
}

type fakeRecipes struct {
	recipe *inventory.Recipe
	err    error
}

func (f *fakeRecipes) SuggestRecipe(context.Context, string, string) (*inventory.Recipe, error) {
	return f.recipe, f.err
}

func newTestServer(secret string, u *fakeUsers, i *fakeInventory, s *fakeScans, r *fakeRecipes) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, u, i, s, r, secret)
}

func ownerCtx(owner string) context.Context {
	return context.WithValue(context.Background(), UserIDKey, owner)
}
