// Package repomanager vends repositories bound to either the pool or an open
// transaction, and runs the schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/freshify/internal/dbx"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/counters"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/items"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/referenceimages"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/freshify/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Items(db dbx.DBTX) items.Repository
	Counters(db dbx.DBTX) counters.Repository
	ReferenceImages(db dbx.DBTX) referenceimages.Repository
}
