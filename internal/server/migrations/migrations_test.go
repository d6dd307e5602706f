package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_BothDialectsHaveTheSameVersions(t *testing.T) {
	names := func(dialect string) []string {
		sub, err := Dir(dialect)
		require.NoError(t, err)
		entries, err := fs.ReadDir(sub, ".")
		require.NoError(t, err)
		var out []string
		for _, e := range entries {
			out = append(out, e.Name())
		}
		return out
	}

	pg := names("postgres")
	lite := names("sqlite")

	require.NotEmpty(t, pg)
	assert.Equal(t, pg, lite)
}

func TestMigrations_AreGooseAnnotated(t *testing.T) {
	err := fs.WalkDir(Migrations, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(Migrations, path)
		if err != nil {
			return err
		}
		assert.True(t, strings.Contains(string(b), "-- +goose Up"), path)
		assert.True(t, strings.Contains(string(b), "-- +goose Down"), path)
		return nil
	})
	require.NoError(t, err)
}
