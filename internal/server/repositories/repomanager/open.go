package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fruitie/internal/filex"
)

const sqlitePrefix = "sqlite://"

// Open connects to the database described by dsn and returns the matching
// RepositoryManager. DSNs starting with "sqlite://" open a SQLite file;
// everything else is handed to the pgx driver.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	driver, source, manager, err := resolve(dsn)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", manager.Dialect(), err)
	}

	if manager.Dialect() == DialectSQLite {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", manager.Dialect(), err)
	}

	return db, manager, nil
}

func resolve(dsn string) (driver, source string, manager RepositoryManager, err error) {
	if strings.TrimSpace(dsn) == "" {
		return "", "", nil, fmt.Errorf("empty database dsn")
	}

	if path, ok := strings.CutPrefix(dsn, sqlitePrefix); ok {
		if path == "" {
			return "", "", nil, fmt.Errorf("sqlite dsn without a path")
		}
		if path != ":memory:" && !strings.HasPrefix(path, "file:") {
			if err := filex.EnsureParentDir(path); err != nil {
				return "", "", nil, err
			}
		}
		return "sqlite", path, NewSQLiteRepositoryManager(), nil
	}

	return "pgx", dsn, NewPostgresRepositoryManager(), nil
}
