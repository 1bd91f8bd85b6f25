package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcare-edu/mindcare/internal/config"
	"github.com/mindcare-edu/mindcare/internal/db"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "slots"))
	require.NoError(t, err)

	return map[string]Store{
		"sqlite": NewSQLiteStore(database, false),
		"file":   fileStore,
		"memory": NewMemoryStore(),
	}
}

func TestStoreContract(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := store.Get(ctx, "mindcare-mood-history")
			require.NoError(t, err)
			assert.False(t, ok, "fresh store should not have the slot")

			require.NoError(t, store.Set(ctx, "mindcare-mood-history", `[{"id":"1"}]`))
			v, ok, err := store.Get(ctx, "mindcare-mood-history")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"1"}]`, v)

			// Overwrite replaces the whole value.
			require.NoError(t, store.Set(ctx, "mindcare-mood-history", `[]`))
			v, _, err = store.Get(ctx, "mindcare-mood-history")
			require.NoError(t, err)
			assert.Equal(t, `[]`, v)

			// An empty value is still present.
			require.NoError(t, store.Set(ctx, "empty", ""))
			v, ok, err = store.Get(ctx, "empty")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "", v)

			require.NoError(t, store.Delete(ctx, "mindcare-mood-history"))
			_, ok, err = store.Get(ctx, "mindcare-mood-history")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting a missing key is not an error.
			assert.NoError(t, store.Delete(ctx, "never-set"))
			assert.NoError(t, store.Close())
		})
	}
}

func TestFileStoreEscapesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "../escape/attempt", "v"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")

	v, ok, err := store.Get(ctx, "../escape/attempt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	sqliteStore, err := Open(config.StorageSQLite, dir)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, sqliteStore)
	assert.NoError(t, sqliteStore.Close())
	assert.FileExists(t, filepath.Join(dir, "mindcare.db"))

	fileStore, err := Open(config.StorageFile, dir)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, fileStore)
	assert.DirExists(t, filepath.Join(dir, "slots"))

	memStore, err := Open(config.StorageMemory, dir)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, memStore)

	_, err = Open("redis", dir)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
