package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/freshify/internal/client/client"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/rpc"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	refresh   string
	onRefresh func(string)
	closed    bool

	PingErr     error
	RegisterErr error
	LoginErr    error
	LoginToken  string
	ResumeErr   error
	ResumeToken string

	Items   []rpc.Item
	ListErr error

	Receipt    []inventory.PurchasedItem
	ReceiptErr error
	Analysis   *rpc.AnalyzeImageResponse
	AnalyzeErr error

	SaveIDs []int64
	SaveErr error

	QuantityErr error
	ExpiryErr   error

	Completed   *rpc.CompleteItemResponse
	CompleteErr error
	Wasted      *rpc.WasteItemResponse
	WasteErr    error

	ImpactResp *rpc.Impact
	RecipeResp *inventory.Recipe
	RecipeErr  error

	LastRegister  [2]string
	LastResume    string
	LastImage     string
	LastPurchased []inventory.PurchasedItem
	LastQuantity  [2]int64
	LastExpiry    [2]int64
	LastFocus     string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error                   { f.closed = true; return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }
func (f *fakeClient) RefreshToken() string           { return f.refresh }
func (f *fakeClient) ForgetTokens()                  { f.refresh = "" }

func (f *fakeClient) OnTokensRefreshed(fn func(string)) { f.onRefresh = fn }

func (f *fakeClient) Register(ctx context.Context, username, password string) error {
	f.LastRegister = [2]string{username, password}
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) error {
	if f.LoginErr != nil {
		return f.LoginErr
	}
	f.refresh = f.LoginToken
	return nil
}

func (f *fakeClient) Resume(ctx context.Context, refreshToken string) error {
	f.LastResume = refreshToken
	if f.ResumeErr != nil {
		return f.ResumeErr
	}
	f.refresh = f.ResumeToken
	if f.onRefresh != nil {
		f.onRefresh(f.ResumeToken)
	}
	return nil
}

func (f *fakeClient) AnalyzeReceipt(ctx context.Context, image string) ([]inventory.PurchasedItem, error) {
	f.LastImage = image
	return f.Receipt, f.ReceiptErr
}

func (f *fakeClient) AnalyzeImage(ctx context.Context, image string, purchased []inventory.PurchasedItem) (*rpc.AnalyzeImageResponse, error) {
	f.LastImage = image
	f.LastPurchased = purchased
	return f.Analysis, f.AnalyzeErr
}

func (f *fakeClient) SaveItems(ctx context.Context, imageRef string, items []inventory.ConsolidatedItem) ([]int64, error) {
	return f.SaveIDs, f.SaveErr
}

func (f *fakeClient) ListItems(ctx context.Context) ([]rpc.Item, error) {
	return f.Items, f.ListErr
}

func (f *fakeClient) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	f.LastQuantity = [2]int64{id, int64(quantity)}
	return f.QuantityErr
}

func (f *fakeClient) UpdateExpiry(ctx context.Context, id int64, days int) error {
	f.LastExpiry = [2]int64{id, int64(days)}
	return f.ExpiryErr
}

func (f *fakeClient) CompleteItem(ctx context.Context, id int64) (*rpc.CompleteItemResponse, error) {
	return f.Completed, f.CompleteErr
}

func (f *fakeClient) WasteItem(ctx context.Context, id int64) (*rpc.WasteItemResponse, error) {
	return f.Wasted, f.WasteErr
}

func (f *fakeClient) GetImpact(ctx context.Context) (*rpc.Impact, error) {
	return f.ImpactResp, nil
}

func (f *fakeClient) SuggestRecipe(ctx context.Context, focus string) (*inventory.Recipe, error) {
	f.LastFocus = focus
	return f.RecipeResp, f.RecipeErr
}
