// Package cache holds short-lived string values such as presigned image
// URLs. Two implementations are provided: an in-process map and Redis.
package cache

import (
	"context"
	"time"
)

// Cache returns common.ErrCacheMiss from Get for absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
