package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/logging"
	"github.com/dmitrijs2005/freshify/internal/server/cache"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/freshify/internal/server/storage"
)

// ImageStore is the object storage used for scans and reference photos.
type ImageStore interface {
	PutImage(ctx context.Context, key string, img *storage.Image) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// ImageResolver turns a food name into a displayable URL: the stock photo
// for that food when one exists, otherwise the owner's own scan.
type ImageResolver struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       ImageStore
	cache       cache.Cache
	ttl         time.Duration
	logger      logging.Logger
}

func NewImageResolver(db *sql.DB, m repomanager.RepositoryManager, store ImageStore, c cache.Cache, ttl time.Duration, logger logging.Logger) *ImageResolver {
	return &ImageResolver{db: db, repomanager: m, store: store, cache: c, ttl: ttl, logger: logger.With("module", "images")}
}

// cacheTTL keeps cached URLs a little shorter-lived than their signature.
func (r *ImageResolver) cacheTTL() time.Duration {
	return r.ttl - r.ttl/10
}

// ResolveDisplayImage returns "" with no error when neither a reference
// image nor fallbackRef is available.
func (r *ImageResolver) ResolveDisplayImage(ctx context.Context, name, fallbackRef string) (string, error) {
	cacheKey := "display:" + strings.ToLower(strings.TrimSpace(name)) + ":" + fallbackRef
	if url, err := r.cache.Get(ctx, cacheKey); err == nil {
		return url, nil
	}

	objectKey, err := r.repomanager.ReferenceImages(r.db).FileNameFor(ctx, name)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return "", err
		}
		objectKey = fallbackRef
	}
	if objectKey == "" {
		return "", nil
	}

	url, err := r.store.PresignGet(ctx, objectKey, r.ttl)
	if err != nil {
		return "", err
	}
	if err := r.cache.Set(ctx, cacheKey, url, r.cacheTTL()); err != nil {
		r.logger.Warn(ctx, "display image cache write failed", "key", cacheKey, "error", err)
	}
	return url, nil
}
