// Package kv provides the local key-value slots that back persisted
// client state, the way browser local storage does for a web page.
package kv

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mindcare-edu/mindcare/internal/config"
	"github.com/mindcare-edu/mindcare/internal/db"
)

// ErrUnknownBackend is returned by Open for unsupported backends.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a string-valued key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the value for key.
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the store selected by backend, rooted at dataDir.
func Open(backend config.StorageBackend, dataDir string) (Store, error) {
	switch backend {
	case config.StorageSQLite:
		database, err := db.Open(filepath.Join(dataDir, "mindcare.db"))
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(database, true), nil
	case config.StorageFile:
		return NewFileStore(filepath.Join(dataDir, "slots"))
	case config.StorageMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
