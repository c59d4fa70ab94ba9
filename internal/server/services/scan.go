package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/server/storage"
)

// Analyzer is the remote image analysis service.
type Analyzer interface {
	AnalyzeImage(ctx context.Context, image string, names []string) ([]inventory.PredictedExpiry, error)
	AnalyzeReceipt(ctx context.Context, image string) ([]inventory.PurchasedItem, error)
}

type ScanResult struct {
	ImageRef string
	Items    []inventory.ConsolidatedItem
}

// ScanService stores grocery photos and joins their predictions with
// what was bought. Nothing is persisted to the inventory here; the client
// confirms the result and calls SaveItems.
type ScanService struct {
	store    ImageStore
	analyzer Analyzer
	now      func() time.Time
}

func NewScanService(store ImageStore, analyzer Analyzer) *ScanService {
	return &ScanService{store: store, analyzer: analyzer, now: time.Now}
}

// AnalyzeImage uploads the photo, predicts expiries and consolidates them
// with purchased. Without a purchase list every prediction becomes an item
// of quantity one.
func (s *ScanService) AnalyzeImage(ctx context.Context, owner, image string, purchased []inventory.PurchasedItem) (*ScanResult, error) {
	img, err := storage.DecodeImage(image)
	if err != nil {
		return nil, err
	}

	key := storage.ScanKey(owner, s.now(), img.Ext)
	if err := s.store.PutImage(ctx, key, img); err != nil {
		return nil, err
	}

	predicted, err := s.analyzer.AnalyzeImage(ctx, img.DataURL(), inventory.Names(purchased))
	if err != nil {
		return nil, err
	}

	if len(purchased) == 0 {
		purchased = inventory.FromPredictions(predicted)
	}
	return &ScanResult{ImageRef: key, Items: inventory.Consolidate(purchased, predicted)}, nil
}

// AnalyzeReceipt extracts purchased lines from a receipt photo.
func (s *ScanService) AnalyzeReceipt(ctx context.Context, image string) ([]inventory.PurchasedItem, error) {
	img, err := storage.DecodeImage(image)
	if err != nil {
		return nil, err
	}
	return s.analyzer.AnalyzeReceipt(ctx, img.DataURL())
}
