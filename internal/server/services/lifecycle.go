package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/dbx"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/counters"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/items"
)

// CompletionResult reports whether completing an item earned savings.
type CompletionResult struct {
	Credited bool
	Impact   *inventory.ImpactCounters
}

// guard loads id and checks that owner may apply t to it from the state the
// row is in. A missing row is common.ErrNotFoundOrForbidden; a foreign one
// is foreignErr. Moves out of a terminal state fail with
// *inventory.ErrIllegalTransition.
func guard(ctx context.Context, repo items.Repository, owner string, id int64, t inventory.Transition, foreignErr error) (*inventory.Item, error) {
	current, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFoundOrForbidden
		}
		return nil, err
	}
	if current.OwnerID != owner {
		return nil, foreignErr
	}
	if _, err := inventory.Next(current.State(), t); err != nil {
		return nil, err
	}
	return current, nil
}

// CompleteItem marks the item consumed. Items eaten within
// inventory.SavingsMaxDays of expiry add their price to money saved and one
// meal saved. The item lookup, removal and counter increment share one
// transaction, and only the caller that removes the row is credited.
func (s *InventoryService) CompleteItem(ctx context.Context, owner string, id int64) (res *CompletionResult, err error) {
	defer func() { s.metrics.ObserveTransition(inventory.Complete, err) }()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)
		if _, err := guard(ctx, repo, owner, id, inventory.Complete, common.ErrAuthorization); err != nil {
			return err
		}

		var (
			removed *inventory.Item
			err     error
		)
		if s.deleteOnComplete {
			removed, err = repo.DeleteOwned(ctx, id, owner)
		} else {
			removed, err = repo.MarkCompleted(ctx, id, owner)
		}
		if err != nil {
			return err
		}

		d := inventory.CompletionDeltas(removed)
		impact, err := s.applyDeltas(ctx, s.repomanager.Counters(tx), owner, d)
		if err != nil {
			return err
		}
		res = &CompletionResult{Credited: !d.IsZero(), Impact: impact}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// WasteItem discards the item and counts its quantity as wasted. Deletion
// is scoped to owner; a missing or foreign item yields
// common.ErrNotFoundOrForbidden and leaves the counters alone.
func (s *InventoryService) WasteItem(ctx context.Context, owner string, id int64) (impact *inventory.ImpactCounters, err error) {
	defer func() { s.metrics.ObserveTransition(inventory.Waste, err) }()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)
		if _, err := guard(ctx, repo, owner, id, inventory.Waste, common.ErrNotFoundOrForbidden); err != nil {
			return err
		}
		removed, err := repo.DeleteOwned(ctx, id, owner)
		if err != nil {
			return err
		}
		impact, err = s.applyDeltas(ctx, s.repomanager.Counters(tx), owner, inventory.WasteDeltas(removed))
		return err
	})
	if err != nil {
		return nil, err
	}
	return impact, nil
}

func (s *InventoryService) applyDeltas(ctx context.Context, repo counters.Repository, owner string, d inventory.Deltas) (*inventory.ImpactCounters, error) {
	if d.IsZero() {
		return repo.Get(ctx, owner)
	}
	c, err := repo.Increment(ctx, owner, d)
	if err != nil {
		return nil, fmt.Errorf("error updating impact counters: %w", err)
	}
	s.metrics.ObserveImpact(d)
	return c, nil
}
