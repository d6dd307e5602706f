package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/gophproducts/internal/dbx"
	"github.com/dmitrijs2005/gophproducts/internal/server/repositories/products"
	"github.com/dmitrijs2005/gophproducts/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Products(db dbx.DBTX) products.Repository {
	return products.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, goose.DialectSQLite3, "sqlite")
}

// sqliteFilePath extracts the database file from a modernc DSN. It reports
// false for in-memory databases.
func sqliteFilePath(dsn string) (string, bool) {
	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" || strings.Contains(query, "mode=memory") {
		return "", false
	}
	return path, true
}
