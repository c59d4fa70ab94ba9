package counters

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

func (r *PostgresRepository) Create(ctx context.Context, ownerID string) error {
	query := `
		INSERT INTO impact_counters (owner_id)
		VALUES ($1)
		ON CONFLICT (owner_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, ownerID); err != nil {
		return fmt.Errorf("db error: %w: %w", common.ErrStorage, err)
	}
	return nil
}

func (r *PostgresRepository) Increment(ctx context.Context, ownerID string, d inventory.Deltas) (*inventory.ImpactCounters, error) {
	query := `
		UPDATE impact_counters SET
			money_saved = money_saved + $2,
			meals_saved = meals_saved + $3,
			waste_incidents = waste_incidents + $4
		WHERE owner_id = $1
		RETURNING owner_id, money_saved, meals_saved, waste_incidents
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID, d.Money, d.Meals, d.Waste))
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID string) (*inventory.ImpactCounters, error) {
	query := `
		SELECT owner_id, money_saved, meals_saved, waste_incidents
		FROM impact_counters
		WHERE owner_id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*inventory.ImpactCounters, error) {
	c := &inventory.ImpactCounters{}
	if err := row.Scan(&c.OwnerID, &c.MoneySaved, &c.MealsSaved, &c.WasteIncidents); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w: %w", common.ErrStorage, err)
	}
	return c, nil
}
