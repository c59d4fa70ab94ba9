// Package referenceimages maps food names to stock photos in object storage.
package referenceimages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/dbx"
)

type Repository interface {
	// FileNameFor returns the object name for foodName, matched on its
	// lower-cased form, or common.ErrNotFound.
	FileNameFor(ctx context.Context, foodName string) (string, error)
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FileNameFor(ctx context.Context, foodName string) (string, error) {
	query := `SELECT file_name FROM food_reference_images WHERE food_name = $1`

	var name string
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(foodName))).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return name, nil
}
