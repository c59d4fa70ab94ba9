// Package items is the owner-scoped inventory store.
package items

import (
	"context"

	"github.com/dmitrijs2005/freshify/internal/inventory"
)

// Repository methods that take an owner id only touch that owner's rows.
// Completed rows are invisible to every method except Get.
type Repository interface {
	// Create inserts item and sets its ID and CreatedAt.
	Create(ctx context.Context, item *inventory.Item) error
	// ListByOwner returns active items by expiry ascending.
	ListByOwner(ctx context.Context, ownerID string) ([]*inventory.Item, error)
	// Get looks an item up by id alone, so callers can tell a foreign item
	// from a missing one. Retained completed rows are returned with
	// CompletedAt set. Returns common.ErrNotFound.
	Get(ctx context.Context, id int64) (*inventory.Item, error)
	UpdateQuantity(ctx context.Context, id int64, ownerID string, quantity int) error
	UpdateExpiry(ctx context.Context, id int64, ownerID string, days int) error
	// DeleteOwned removes the row and returns it as it was. Only the caller
	// that actually removed the row gets it back; everyone else gets
	// common.ErrNotFoundOrForbidden.
	DeleteOwned(ctx context.Context, id int64, ownerID string) (*inventory.Item, error)
	// MarkCompleted stamps completed_at with the same one-winner guarantee
	// as DeleteOwned.
	MarkCompleted(ctx context.Context, id int64, ownerID string) (*inventory.Item, error)
}
