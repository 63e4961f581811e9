//go:build unit

package main

import (
	"testing"

	"ariga.io/atlas/sql/migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationDirChecksum(t *testing.T) {
	dir, err := migrate.NewLocalDir("../../migrations")
	require.NoError(t, err)

	files, err := dir.Files()
	require.NoError(t, err)
	assert.NotEmpty(t, files, "migration directory has no .sql files")

	assert.NoError(t, migrate.Validate(dir), "run `atlas migrate hash` after editing migrations")
}
