// Package snapshot keeps the last inventory listing fetched from the server
// so the CLI can show it while offline.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/freshify/internal/dbx"
	"github.com/dmitrijs2005/freshify/internal/rpc"
)

type Repository interface {
	// Replace swaps owner's snapshot for items. Callers should run it in a
	// transaction.
	Replace(ctx context.Context, owner string, items []rpc.Item, syncedAt time.Time) error
	// List returns the snapshot ordered by expiry and when it was taken.
	// An empty snapshot has a zero time.
	List(ctx context.Context, owner string) ([]rpc.Item, time.Time, error)
	Clear(ctx context.Context) error
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Replace(ctx context.Context, owner string, items []rpc.Item, syncedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventory_snapshot WHERE owner = ?`, owner); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	synced := syncedAt.UTC().Format(time.RFC3339Nano)
	for _, it := range items {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO inventory_snapshot
				(id, owner, name, quantity, price, expiry, band, position, expiring_soon, image_url, created_at, synced_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, it.ID, owner, it.Name, it.Quantity, it.Price.String(), it.Expiry, it.Band, it.Position,
			it.ExpiringSoon, it.ImageURL, it.CreatedAt.UTC().Format(time.RFC3339Nano), synced)
		if err != nil {
			return fmt.Errorf("failed to store snapshot item %d: %w", it.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, owner string) ([]rpc.Item, time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, quantity, price, expiry, band, position, expiring_soon, image_url, created_at, synced_at
		FROM inventory_snapshot
		WHERE owner = ?
		ORDER BY expiry ASC, id ASC
	`, owner)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to list snapshot: %w", err)
	}
	defer rows.Close()

	var (
		items    []rpc.Item
		syncedAt time.Time
	)
	for rows.Next() {
		var (
			it                 rpc.Item
			price              string
			created, syncedStr string
		)
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &price, &it.Expiry, &it.Band, &it.Position,
			&it.ExpiringSoon, &it.ImageURL, &created, &syncedStr); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, time.Time{}, fmt.Errorf("bad price in snapshot row %d: %w", it.ID, err)
		}
		it.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		syncedAt, _ = time.Parse(time.RFC3339Nano, syncedStr)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to iterate snapshot rows: %w", err)
	}
	return items, syncedAt, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventory_snapshot`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
