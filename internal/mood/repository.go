package mood

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mindcare-edu/mindcare/internal/kv"
)

// Repository loads and saves the whole mood history.
type Repository interface {
	// Load never fails. Missing or unreadable history comes back empty.
	Load(ctx context.Context) []Entry
	Save(ctx context.Context, entries []Entry) error
}

// SlotRepository keeps the history as a JSON array under a single key.
type SlotRepository struct {
	store  kv.Store
	key    string
	logger *zap.Logger
}

// NewSlotRepository creates a repository over store. A nil logger discards warnings.
func NewSlotRepository(store kv.Store, key string, logger *zap.Logger) *SlotRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlotRepository{store: store, key: key, logger: logger}
}

// Load reads and decodes the slot.
func (r *SlotRepository) Load(ctx context.Context) []Entry {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.logger.Warn("reading mood history", zap.String("slot", r.key), zap.Error(err))
		return []Entry{}
	}
	if !ok {
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		r.logger.Warn("mood history is malformed, starting empty",
			zap.String("slot", r.key), zap.Error(err))
		return []Entry{}
	}
	if entries == nil {
		return []Entry{}
	}
	for i := range entries {
		if entries[i].Emotions == nil {
			entries[i].Emotions = []string{}
		}
	}
	return entries
}

// Save encodes entries and overwrites the slot.
func (r *SlotRepository) Save(ctx context.Context, entries []Entry) error {
	raw, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("writing slot %s: %w", r.key, err)
	}
	return nil
}

func encodeEntries(entries []Entry) (string, error) {
	if entries == nil {
		entries = []Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return "", fmt.Errorf("encoding mood history: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
