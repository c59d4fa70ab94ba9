package snapshot

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/freshify/internal/client/migrations"
	"github.com/dmitrijs2005/freshify/internal/rpc"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, "."))
	return db
}

var decimalCmp = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestReplaceAndList(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	synced := time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)

	items := []rpc.Item{
		{ID: 2, CreatedAt: created, Name: "bread", Quantity: 1, Price: decimal.RequireFromString("2.10"), Expiry: 6, Band: "Average", Position: 0.5},
		{ID: 1, CreatedAt: created, Name: "milk", Quantity: 2, Price: decimal.RequireFromString("0.99"), Expiry: 1, Band: "Bad", ExpiringSoon: true, ImageURL: "https://img/milk"},
	}
	require.NoError(t, r.Replace(ctx, "u1", items, synced))
	require.NoError(t, r.Replace(ctx, "u2", []rpc.Item{{ID: 9, Name: "other", CreatedAt: created}}, synced))

	got, at, err := r.List(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, synced.Equal(at))
	want := []rpc.Item{items[1], items[0]}
	assert.Empty(t, cmp.Diff(want, got, decimalCmp))
}

func TestReplace_DropsPreviousSnapshot(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, r.Replace(ctx, "u1", []rpc.Item{{ID: 1, Name: "milk"}}, now))
	require.NoError(t, r.Replace(ctx, "u1", []rpc.Item{{ID: 2, Name: "eggs"}}, now))

	got, _, err := r.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "eggs", got[0].Name)
}

func TestList_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, at, err := r.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, at.IsZero())
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	require.NoError(t, r.Replace(ctx, "u1", []rpc.Item{{ID: 1, Name: "milk"}}, time.Now()))
	require.NoError(t, r.Clear(ctx))

	got, _, err := r.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
