package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMigratedDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesDocumentsTable(t *testing.T) {
	db := openMigratedDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='documents'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "documents", name)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "later.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.FileExists(t, path)
}
