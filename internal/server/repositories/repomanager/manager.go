// Package repomanager vends dialect-specific repositories and runs the
// embedded schema migrations for the configured database driver.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/gophproducts/internal/dbx"
	"github.com/dmitrijs2005/gophproducts/internal/filex"
	"github.com/dmitrijs2005/gophproducts/internal/server/migrations"
	"github.com/dmitrijs2005/gophproducts/internal/server/repositories/products"
	"github.com/dmitrijs2005/gophproducts/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Products(db dbx.DBTX) products.Repository
}

// Driver names accepted by Open. They double as database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// gooseUp is a seam for testing migration runs.
var gooseUp = func(ctx context.Context, dialect goose.Dialect, db *sql.DB, fsys fs.FS) error {
	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}

func runMigrations(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) error {
	fsys, err := migrations.Dir(dir)
	if err != nil {
		return fmt.Errorf("migrations dir %q: %w", dir, err)
	}
	if err := gooseUp(ctx, dialect, db, fsys); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// NewRepositoryManager returns the manager for driver.
func NewRepositoryManager(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres:
		return &PostgresRepositoryManager{}, nil
	case DriverSQLite:
		return &SQLiteRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to the database, checks it is reachable and applies
// pending migrations. The caller owns the returned *sql.DB.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	m, err := NewRepositoryManager(driver)
	if err != nil {
		return nil, nil, err
	}

	if driver == DriverSQLite {
		if path, ok := sqliteFilePath(dsn); ok {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return nil, nil, fmt.Errorf("database directory: %w", err)
			}
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, m, nil
}
