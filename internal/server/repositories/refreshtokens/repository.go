// Package refreshtokens persists the opaque refresh tokens issued at login.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/freshify/internal/server/models"
)

type Repository interface {
	// Create stores token for userID, valid until expiresAt.
	Create(ctx context.Context, userID, token string, expiresAt time.Time) error
	// Find returns common.ErrNotFound when the token is unknown.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error
	// PurgeExpired removes tokens that expired before now and reports how many.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
