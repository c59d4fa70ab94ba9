package rpc

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/freshify/internal/inventory"
)

// Decoded request bodies. The validate tags are checked by the *FromProto
// decoders before a handler sees the request.

type RegisterRequest struct {
	Username string `json:"username" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AnalyzeReceiptRequest struct {
	Image string `json:"image" validate:"required"`
}

type AnalyzeImageRequest struct {
	Image     string                    `json:"image" validate:"required"`
	Purchased []inventory.PurchasedItem `json:"purchased" validate:"dive"`
}

type SaveItemsRequest struct {
	ImageRef string                       `json:"image_ref"`
	Items    []inventory.ConsolidatedItem `json:"items" validate:"required,min=1,dive"`
}

type UpdateQuantityRequest struct {
	ID       int64 `json:"id" validate:"required"`
	Quantity int   `json:"quantity"`
}

type UpdateExpiryRequest struct {
	ID   int64 `json:"id" validate:"required"`
	Days int   `json:"days"`
}

type ItemRequest struct {
	ID int64 `json:"id" validate:"required"`
}

type SuggestRecipeRequest struct {
	Focus string `json:"focus" validate:"required"`
}

// Client views of server replies, with prices as decimals.

// Item is an inventory row decorated for display.
type Item struct {
	ID           int64
	CreatedAt    time.Time
	Name         string
	Quantity     int
	Price        decimal.Decimal
	Expiry       int
	ImageURL     string
	Band         string
	Position     float64
	ExpiringSoon bool
}

type Impact struct {
	MoneySaved     decimal.Decimal
	MealsSaved     int64
	WasteIncidents int64
}

type AnalyzeImageResponse struct {
	ImageRef string
	Items    []inventory.ConsolidatedItem
}

type CompleteItemResponse struct {
	Credited bool
	Impact   Impact
}

type WasteItemResponse struct {
	Impact Impact
}
