package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/freshify/internal/client/client"
	"github.com/dmitrijs2005/freshify/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/freshify/internal/dbx"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/rpc"
)

// Listing is what the CLI shows for `list`. Offline listings come from the
// local snapshot taken at SyncedAt.
type Listing struct {
	Items    []rpc.Item
	Offline  bool
	SyncedAt time.Time
}

type InventoryService interface {
	List(ctx context.Context, owner string) (*Listing, error)
	AnalyzeReceipt(ctx context.Context, path string) ([]inventory.PurchasedItem, error)
	Scan(ctx context.Context, path string, purchased []inventory.PurchasedItem) (*rpc.AnalyzeImageResponse, error)
	Save(ctx context.Context, imageRef string, items []inventory.ConsolidatedItem) ([]int64, error)
	Complete(ctx context.Context, id int64) (*rpc.CompleteItemResponse, error)
	Waste(ctx context.Context, id int64) (*rpc.WasteItemResponse, error)
	SetQuantity(ctx context.Context, id int64, quantity int) error
	// DecrementQuantity lowers the current quantity by one, never below zero,
	// and returns the new value.
	DecrementQuantity(ctx context.Context, owner string, id int64) (int, error)
	UpdateExpiry(ctx context.Context, id int64, days int) error
	Impact(ctx context.Context) (*rpc.Impact, error)
	Recipe(ctx context.Context, focus string) (*inventory.Recipe, error)
}

type inventoryService struct {
	client client.Client
	db     *sql.DB
	now    func() time.Time
}

func NewInventoryService(c client.Client, db *sql.DB) InventoryService {
	return &inventoryService{client: c, db: db, now: time.Now}
}

func (s *inventoryService) List(ctx context.Context, owner string) (*Listing, error) {
	items, err := s.client.ListItems(ctx)
	if err == nil {
		syncedAt := s.now()
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return snapshot.NewSQLiteRepository(tx).Replace(ctx, owner, items, syncedAt)
		})
		if err != nil {
			return nil, fmt.Errorf("snapshot saving error: %w", err)
		}
		return &Listing{Items: items, SyncedAt: syncedAt}, nil
	}
	if !errors.Is(err, client.ErrUnavailable) {
		return nil, err
	}

	cached, syncedAt, lerr := snapshot.NewSQLiteRepository(s.db).List(ctx, owner)
	if lerr != nil {
		return nil, lerr
	}
	if syncedAt.IsZero() {
		return nil, fmt.Errorf("%w: %w", client.ErrUnavailable, client.ErrLocalDataNotAvailable)
	}
	return &Listing{Items: cached, Offline: true, SyncedAt: syncedAt}, nil
}

// readImage loads an image file as bare base64; the server sniffs the type.
func readImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read image: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image %s is empty", client.ErrInvalidInput, path)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func (s *inventoryService) AnalyzeReceipt(ctx context.Context, path string) ([]inventory.PurchasedItem, error) {
	image, err := readImage(path)
	if err != nil {
		return nil, err
	}
	return s.client.AnalyzeReceipt(ctx, image)
}

func (s *inventoryService) Scan(ctx context.Context, path string, purchased []inventory.PurchasedItem) (*rpc.AnalyzeImageResponse, error) {
	image, err := readImage(path)
	if err != nil {
		return nil, err
	}
	return s.client.AnalyzeImage(ctx, image, purchased)
}

func (s *inventoryService) Save(ctx context.Context, imageRef string, items []inventory.ConsolidatedItem) ([]int64, error) {
	return s.client.SaveItems(ctx, imageRef, items)
}

func (s *inventoryService) Complete(ctx context.Context, id int64) (*rpc.CompleteItemResponse, error) {
	return s.client.CompleteItem(ctx, id)
}

func (s *inventoryService) Waste(ctx context.Context, id int64) (*rpc.WasteItemResponse, error) {
	return s.client.WasteItem(ctx, id)
}

func (s *inventoryService) SetQuantity(ctx context.Context, id int64, quantity int) error {
	return s.client.UpdateQuantity(ctx, id, quantity)
}

func (s *inventoryService) DecrementQuantity(ctx context.Context, owner string, id int64) (int, error) {
	listing, err := s.List(ctx, owner)
	if err != nil {
		return 0, err
	}
	if listing.Offline {
		return 0, client.ErrUnavailable
	}

	for _, it := range listing.Items {
		if it.ID != id {
			continue
		}
		q := max(0, it.Quantity-1)
		if err := s.client.UpdateQuantity(ctx, id, q); err != nil {
			return 0, err
		}
		return q, nil
	}
	return 0, client.ErrNotFound
}

func (s *inventoryService) UpdateExpiry(ctx context.Context, id int64, days int) error {
	return s.client.UpdateExpiry(ctx, id, days)
}

func (s *inventoryService) Impact(ctx context.Context) (*rpc.Impact, error) {
	return s.client.GetImpact(ctx)
}

func (s *inventoryService) Recipe(ctx context.Context, focus string) (*inventory.Recipe, error) {
	return s.client.SuggestRecipe(ctx, focus)
}
