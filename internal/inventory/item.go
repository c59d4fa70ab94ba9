// Package inventory holds the Freshify domain model: the records produced by
// a scan, the persisted inventory item, the owner's impact counters, the
// matcher that joins receipt lines with expiry predictions, and the item
// lifecycle state machine.
package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchasedItem is a receipt line or a manually entered item.
type PurchasedItem struct {
	Name     string          `json:"name" validate:"required,max=128"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
}

// PredictedExpiry is one entry returned by the analysis service.
type PredictedExpiry struct {
	Name           string `json:"name"`
	ExpirationDays int    `json:"expiration_days"`
}

// ConsolidatedItem is a purchased item joined with its predicted expiry.
// ExpirationDays is nil when no prediction matched.
type ConsolidatedItem struct {
	Name           string          `json:"name" validate:"required,max=128"`
	Quantity       int             `json:"quantity" validate:"gte=0"`
	Price          decimal.Decimal `json:"price"`
	ExpirationDays *int            `json:"expiration_days"`
}

// Item is a persisted inventory row. Expiry counts days remaining and may
// be negative once the food is past its date. CompletedAt is set only on
// rows retained after completion.
type Item struct {
	ID          int64
	CreatedAt   time.Time
	Name        string
	Quantity    int
	Price       decimal.Decimal
	Expiry      int
	OwnerID     string
	ImageRef    string
	CompletedAt *time.Time
}

// State reports where the row is in the lifecycle. Wasted rows are deleted,
// so a row is either Active or a retained Completed one.
func (i *Item) State() State {
	if i.CompletedAt != nil {
		return Completed
	}
	return Active
}

// ImpactCounters are the per-owner aggregates.
type ImpactCounters struct {
	OwnerID        string
	MoneySaved     decimal.Decimal
	MealsSaved     int64
	WasteIncidents int64
}

// Deltas is an increment request for ImpactCounters. Zero fields are no-ops.
type Deltas struct {
	Money decimal.Decimal
	Meals int64
	Waste int64
}

func (d Deltas) IsZero() bool {
	return d.Money.IsZero() && d.Meals == 0 && d.Waste == 0
}
