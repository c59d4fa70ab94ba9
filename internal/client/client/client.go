package client

import (
	"context"

	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/rpc"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	// Resume exchanges a stored refresh token for a new session.
	Resume(ctx context.Context, refreshToken string) error
	// RefreshToken returns the current refresh token, "" when logged out.
	RefreshToken() string
	// OnTokensRefreshed registers fn to be called after every token rotation.
	OnTokensRefreshed(fn func(refreshToken string))
	ForgetTokens()

	AnalyzeReceipt(ctx context.Context, image string) ([]inventory.PurchasedItem, error)
	AnalyzeImage(ctx context.Context, image string, purchased []inventory.PurchasedItem) (*rpc.AnalyzeImageResponse, error)
	SaveItems(ctx context.Context, imageRef string, items []inventory.ConsolidatedItem) ([]int64, error)
	ListItems(ctx context.Context) ([]rpc.Item, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	UpdateExpiry(ctx context.Context, id int64, days int) error
	CompleteItem(ctx context.Context, id int64) (*rpc.CompleteItemResponse, error)
	WasteItem(ctx context.Context, id int64) (*rpc.WasteItemResponse, error)
	GetImpact(ctx context.Context) (*rpc.Impact, error)
	SuggestRecipe(ctx context.Context, focus string) (*inventory.Recipe, error)
}
