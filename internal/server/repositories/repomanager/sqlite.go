package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fruitie/internal/dbx"
	"github.com/dmitrijs2005/fruitie/internal/server/migrations"
	"github.com/dmitrijs2005/fruitie/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories, used for local
// development without a postgres instance.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Dialect() Dialect { return DialectSQLite }

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
