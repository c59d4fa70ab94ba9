package services

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/freshify/internal/client/client"
	"github.com/dmitrijs2005/freshify/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/rpc"
)

const owner = "ann@example.com"

func sampleItems() []rpc.Item {
	return []rpc.Item{
		{ID: 1, Name: "Milk", Quantity: 2, Price: decimal.RequireFromString("1.20"), Expiry: 1, Band: "Bad", ExpiringSoon: true},
		{ID: 2, Name: "Rice", Quantity: 0, Price: decimal.RequireFromString("3.00"), Expiry: 60, Band: "Excellent"},
	}
}

func newInventory(t *testing.T, fc *fakeClient) (*inventoryService, *snapshot.SQLiteRepository) {
	t.Helper()
	db := setupDB(t)
	svc := NewInventoryService(fc, db).(*inventoryService)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, snapshot.NewSQLiteRepository(db)
}

func TestList_OnlineRefreshesSnapshot(t *testing.T) {
	fc := &fakeClient{Items: sampleItems()}
	svc, snap := newInventory(t, fc)
	ctx := context.Background()

	listing, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.False(t, listing.Offline)
	require.Len(t, listing.Items, 2)

	cached, syncedAt, err := snap.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, cached, 2)
	require.True(t, syncedAt.Equal(svc.now()))
}

func TestList_OfflineServesSnapshot(t *testing.T) {
	fc := &fakeClient{Items: sampleItems()}
	svc, _ := newInventory(t, fc)
	ctx := context.Background()

	_, err := svc.List(ctx, owner)
	require.NoError(t, err)

	fc.ListErr = client.ErrUnavailable
	listing, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.True(t, listing.Offline)
	require.Equal(t, "Milk", listing.Items[0].Name)
	require.True(t, listing.SyncedAt.Equal(svc.now()))
}

func TestList_OfflineWithoutSnapshot(t *testing.T) {
	svc, _ := newInventory(t, &fakeClient{ListErr: client.ErrUnavailable})

	_, err := svc.List(context.Background(), owner)
	require.ErrorIs(t, err, client.ErrUnavailable)
	require.ErrorIs(t, err, client.ErrLocalDataNotAvailable)
}

func TestList_OtherErrorsAreReturned(t *testing.T) {
	svc, _ := newInventory(t, &fakeClient{ListErr: client.ErrUnauthorized})

	_, err := svc.List(context.Background(), owner)
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestScan_ReadsImageAndPassesPurchased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fridge.jpg")
	require.NoError(t, os.WriteFile(path, []byte("\xff\xd8\xff\xe0jpeg"), 0o600))

	fc := &fakeClient{Analysis: &rpc.AnalyzeImageResponse{ImageRef: "scans/x.jpg"}}
	svc, _ := newInventory(t, fc)
	purchased := []inventory.PurchasedItem{{Name: "Milk", Quantity: 1}}

	resp, err := svc.Scan(context.Background(), path, purchased)
	require.NoError(t, err)
	require.Equal(t, "scans/x.jpg", resp.ImageRef)
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("\xff\xd8\xff\xe0jpeg")), fc.LastImage)
	require.Equal(t, purchased, fc.LastPurchased)
}

func TestScan_FileErrors(t *testing.T) {
	svc, _ := newInventory(t, &fakeClient{})
	ctx := context.Background()

	_, err := svc.Scan(ctx, filepath.Join(t.TempDir(), "missing.jpg"), nil)
	require.ErrorContains(t, err, "could not read image")

	empty := filepath.Join(t.TempDir(), "empty.jpg")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = svc.AnalyzeReceipt(ctx, empty)
	require.ErrorIs(t, err, client.ErrInvalidInput)
}

func TestAnalyzeReceipt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG"), 0o600))

	fc := &fakeClient{Receipt: []inventory.PurchasedItem{{Name: "Eggs", Quantity: 12}}}
	svc, _ := newInventory(t, fc)

	items, err := svc.AnalyzeReceipt(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "Eggs", items[0].Name)
}

func TestDecrementQuantity(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		want    int
		wantErr error
	}{
		{name: "lowers by one", id: 1, want: 1},
		{name: "floors at zero", id: 2, want: 0},
		{name: "unknown item", id: 9, wantErr: client.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{Items: sampleItems()}
			svc, _ := newInventory(t, fc)

			q, err := svc.DecrementQuantity(context.Background(), owner, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, q)
			require.Equal(t, [2]int64{tt.id, int64(tt.want)}, fc.LastQuantity)
		})
	}
}

func TestDecrementQuantity_Offline(t *testing.T) {
	fc := &fakeClient{Items: sampleItems()}
	svc, _ := newInventory(t, fc)
	ctx := context.Background()
	_, err := svc.List(ctx, owner)
	require.NoError(t, err)

	fc.ListErr = client.ErrUnavailable
	_, err = svc.DecrementQuantity(ctx, owner, 1)
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestPassThroughCalls(t *testing.T) {
	fc := &fakeClient{
		SaveIDs:    []int64{7},
		Completed:  &rpc.CompleteItemResponse{Credited: true},
		Wasted:     &rpc.WasteItemResponse{Impact: rpc.Impact{WasteIncidents: 1}},
		ImpactResp: &rpc.Impact{MealsSaved: 3},
		RecipeResp: &inventory.Recipe{Name: "Omelette"},
	}
	svc, _ := newInventory(t, fc)
	ctx := context.Background()

	ids, err := svc.Save(ctx, "ref", []inventory.ConsolidatedItem{{Name: "Milk"}})
	require.NoError(t, err)
	require.Equal(t, []int64{7}, ids)

	c, err := svc.Complete(ctx, 1)
	require.NoError(t, err)
	require.True(t, c.Credited)

	w, err := svc.Waste(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), w.Impact.WasteIncidents)

	require.NoError(t, svc.SetQuantity(ctx, 3, 5))
	require.Equal(t, [2]int64{3, 5}, fc.LastQuantity)

	require.NoError(t, svc.UpdateExpiry(ctx, 4, -2))
	require.Equal(t, [2]int64{4, -2}, fc.LastExpiry)

	imp, err := svc.Impact(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), imp.MealsSaved)

	r, err := svc.Recipe(ctx, "Eggs")
	require.NoError(t, err)
	require.Equal(t, "Omelette", r.Name)
	require.Equal(t, "Eggs", fc.LastFocus)
}
