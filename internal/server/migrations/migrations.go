// Package migrations embeds the goose SQL migrations, one directory per dialect.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Dir returns the migrations for one dialect directory ("postgres" or "sqlite").
func Dir(dialect string) (fs.FS, error) {
	return fs.Sub(Migrations, dialect)
}
