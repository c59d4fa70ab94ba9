// Package counters stores the per-owner impact counters. Counters only move
// through server-side increments; there is no setter.
package counters

import (
	"context"

	"github.com/dmitrijs2005/freshify/internal/inventory"
)

type Repository interface {
	// Create provisions a zeroed row for the owner. Existing rows are kept.
	Create(ctx context.Context, ownerID string) error
	// Increment applies d in a single statement. A missing row yields
	// common.ErrNotFound.
	Increment(ctx context.Context, ownerID string, d inventory.Deltas) (*inventory.ImpactCounters, error)
	Get(ctx context.Context, ownerID string) (*inventory.ImpactCounters, error)
}
