package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemory(t *testing.T) {
	database, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	assert.Equal(t, ":memory:", database.Path())

	var name string
	err = database.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv_slots'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_slots", name)
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mindcare.db")

	database, err := Open(path)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO kv_slots (key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)

	// Reopening runs the migration again without losing data.
	database.Close()
	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	var value string
	require.NoError(t, reopened.QueryRow(`SELECT value FROM kv_slots WHERE key = 'k'`).Scan(&value))
	assert.Equal(t, "v", value)
}

func TestOpenAppliesPragmas(t *testing.T) {
	database, err := Open(filepath.Join(t.TempDir(), "mindcare.db"))
	require.NoError(t, err)
	defer database.Close()

	var mode string
	require.NoError(t, database.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, database.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}
