package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/dbx"
	"github.com/dmitrijs2005/freshify/internal/inventory"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func dbError(err error) error {
	return fmt.Errorf("db error: %w: %w", common.ErrStorage, err)
}

func (r *PostgresRepository) Create(ctx context.Context, item *inventory.Item) error {
	query := `
		INSERT INTO items (name, quantity, price, expiry, owner_id, image_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Quantity, item.Price, item.Expiry, item.OwnerID, item.ImageRef,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return dbError(err)
	}
	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*inventory.Item, error) {
	query := `
		SELECT id, created_at, name, quantity, price, expiry, owner_id, image_ref
		FROM items
		WHERE owner_id = $1 AND completed_at IS NULL
		ORDER BY expiry ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	var result []*inventory.Item
	for rows.Next() {
		var it inventory.Item
		if err := rows.Scan(&it.ID, &it.CreatedAt, &it.Name, &it.Quantity, &it.Price,
			&it.Expiry, &it.OwnerID, &it.ImageRef); err != nil {
			return nil, dbError(err)
		}
		result = append(result, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*inventory.Item, error) {
	query := `
		SELECT id, created_at, name, quantity, price, expiry, owner_id, image_ref, completed_at
		FROM items
		WHERE id = $1
	`
	var it inventory.Item
	var completedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.CreatedAt, &it.Name,
		&it.Quantity, &it.Price, &it.Expiry, &it.OwnerID, &it.ImageRef, &completedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, dbError(err)
	}
	if completedAt.Valid {
		it.CompletedAt = &completedAt.Time
	}
	return &it, nil
}

func (r *PostgresRepository) UpdateQuantity(ctx context.Context, id int64, ownerID string, quantity int) error {
	query := `
		UPDATE items SET quantity = $3
		WHERE id = $1 AND owner_id = $2 AND completed_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, ownerID, quantity)
	if err != nil {
		return dbError(err)
	}
	return dbx.ExpectOneRow(res, common.ErrNotFoundOrForbidden)
}

func (r *PostgresRepository) UpdateExpiry(ctx context.Context, id int64, ownerID string, days int) error {
	query := `
		UPDATE items SET expiry = $3
		WHERE id = $1 AND owner_id = $2 AND completed_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, ownerID, days)
	if err != nil {
		return dbError(err)
	}
	return dbx.ExpectOneRow(res, common.ErrNotFoundOrForbidden)
}

func (r *PostgresRepository) DeleteOwned(ctx context.Context, id int64, ownerID string) (*inventory.Item, error) {
	query := `
		DELETE FROM items
		WHERE id = $1 AND owner_id = $2 AND completed_at IS NULL
		RETURNING id, created_at, name, quantity, price, expiry, owner_id, image_ref
	`
	return r.removeOne(ctx, query, id, ownerID)
}

func (r *PostgresRepository) MarkCompleted(ctx context.Context, id int64, ownerID string) (*inventory.Item, error) {
	query := `
		UPDATE items SET completed_at = now()
		WHERE id = $1 AND owner_id = $2 AND completed_at IS NULL
		RETURNING id, created_at, name, quantity, price, expiry, owner_id, image_ref
	`
	return r.removeOne(ctx, query, id, ownerID)
}

func (r *PostgresRepository) removeOne(ctx context.Context, query string, id int64, ownerID string) (*inventory.Item, error) {
	var it inventory.Item
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(&it.ID, &it.CreatedAt, &it.Name,
		&it.Quantity, &it.Price, &it.Expiry, &it.OwnerID, &it.ImageRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFoundOrForbidden
		}
		return nil, dbError(err)
	}
	return &it, nil
}
