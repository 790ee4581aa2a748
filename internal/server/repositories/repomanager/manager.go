package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fruitie/internal/dbx"
	"github.com/dmitrijs2005/fruitie/internal/server/repositories/users"
)

// Dialect names a supported storage backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type RepositoryManager interface {
	Dialect() Dialect
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
