package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/dbx"
	"github.com/dmitrijs2005/freshify/internal/freshness"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/logging"
	"github.com/dmitrijs2005/freshify/internal/server/metrics"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/repomanager"
)

// DisplayImageResolver is implemented by *ImageResolver.
type DisplayImageResolver interface {
	ResolveDisplayImage(ctx context.Context, name, fallbackRef string) (string, error)
}

// ListedItem is an inventory row with its derived display fields.
type ListedItem struct {
	*inventory.Item
	Rating       freshness.Rating
	ExpiringSoon bool
	ImageURL     string
}

// InventoryService covers the owner's item store and impact counters.
type InventoryService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	images           DisplayImageResolver
	metrics          *metrics.Metrics
	logger           logging.Logger
	deleteOnComplete bool
}

func NewInventoryService(db *sql.DB, m repomanager.RepositoryManager, images DisplayImageResolver,
	met *metrics.Metrics, logger logging.Logger, deleteOnComplete bool) *InventoryService {
	return &InventoryService{
		db:               db,
		repomanager:      m,
		images:           images,
		metrics:          met,
		logger:           logger.With("module", "inventory"),
		deleteOnComplete: deleteOnComplete,
	}
}

func validateConsolidated(i int, it inventory.ConsolidatedItem) error {
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }
	switch {
	case it.Name == "":
		return common.NewValidationError(field("name"), "is required")
	case it.Quantity < 0:
		return common.NewValidationError(field("quantity"), "must be >= 0")
	case it.Price.LessThan(decimal.Zero):
		return common.NewValidationError(field("price"), "must be >= 0")
	case it.ExpirationDays == nil:
		return common.NewValidationError(field("expiration_days"), "is required")
	}
	return nil
}

// SaveItems persists confirmed scan results for owner, all or nothing.
func (s *InventoryService) SaveItems(ctx context.Context, owner, imageRef string, items []inventory.ConsolidatedItem) ([]int64, error) {
	if len(items) == 0 {
		return nil, common.NewValidationError("items", "is empty")
	}
	for i, it := range items {
		if err := validateConsolidated(i, it); err != nil {
			return nil, err
		}
	}

	ids := make([]int64, 0, len(items))
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)
		for _, ci := range items {
			item := &inventory.Item{
				Name:     ci.Name,
				Quantity: ci.Quantity,
				Price:    ci.Price,
				Expiry:   *ci.ExpirationDays,
				OwnerID:  owner,
				ImageRef: imageRef,
			}
			if err := repo.Create(ctx, item); err != nil {
				return fmt.Errorf("error saving item %q: %w", ci.Name, err)
			}
			ids = append(ids, item.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ListItems returns owner's items soonest-expiring first. Image lookup
// failures are logged and leave ImageURL empty.
func (s *InventoryService) ListItems(ctx context.Context, owner string) ([]*ListedItem, error) {
	items, err := s.repomanager.Items(s.db).ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	out := make([]*ListedItem, 0, len(items))
	for _, it := range items {
		li := &ListedItem{
			Item:         it,
			Rating:       freshness.Classify(it.Expiry),
			ExpiringSoon: freshness.IsExpiringSoon(it.Expiry),
		}
		if s.images != nil {
			url, err := s.images.ResolveDisplayImage(ctx, it.Name, it.ImageRef)
			if err != nil {
				s.logger.Warn(ctx, "display image lookup failed", "item", it.ID, "error", err)
			}
			li.ImageURL = url
		}
		out = append(out, li)
	}
	return out, nil
}

func (s *InventoryService) UpdateQuantity(ctx context.Context, owner string, id int64, quantity int) (err error) {
	defer func() { s.metrics.ObserveTransition(inventory.UpdateQuantity, err) }()

	if quantity < 0 {
		return common.NewValidationError("quantity", "must be >= 0")
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)
		if _, err := guard(ctx, repo, owner, id, inventory.UpdateQuantity, common.ErrNotFoundOrForbidden); err != nil {
			return err
		}
		return repo.UpdateQuantity(ctx, id, owner, quantity)
	})
}

// UpdateExpiry sets the days remaining; negative values mean already expired.
func (s *InventoryService) UpdateExpiry(ctx context.Context, owner string, id int64, days int) (err error) {
	defer func() { s.metrics.ObserveTransition(inventory.UpdateExpiry, err) }()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)
		if _, err := guard(ctx, repo, owner, id, inventory.UpdateExpiry, common.ErrNotFoundOrForbidden); err != nil {
			return err
		}
		return repo.UpdateExpiry(ctx, id, owner, days)
	})
}

func (s *InventoryService) GetImpact(ctx context.Context, owner string) (*inventory.ImpactCounters, error) {
	return s.repomanager.Counters(s.db).Get(ctx, owner)
}
