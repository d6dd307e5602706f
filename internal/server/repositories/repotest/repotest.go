// Package repotest opens migrated in-memory SQLite databases for tests.
package repotest

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophproducts/internal/server/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// OpenSQLite returns a private in-memory database with every migration
// applied. The database is closed when the test ends.
func OpenSQLite(t testing.TB) *sql.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })

	fsys, err := migrations.Dir("sqlite")
	require.NoError(t, err)

	p, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	require.NoError(t, err)

	_, err = p.Up(context.Background())
	require.NoError(t, err)

	return db
}
