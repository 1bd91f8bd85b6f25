package mood

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindcare-edu/mindcare/internal/validation"
)

var (
	// ErrMoodRequired is returned when no mood level was chosen.
	ErrMoodRequired = errors.New("mood is required")
	// ErrPersist wraps storage failures. The entry is still kept in memory.
	ErrPersist = errors.New("saving mood history")
)

// Observer is notified about tracker activity. internal/metrics implements it.
type Observer interface {
	MoodEntryLogged(level int)
	MoodPersistFailed()
}

type nopObserver struct{}

func (nopObserver) MoodEntryLogged(int) {}
func (nopObserver) MoodPersistFailed()  {}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDGenerator overrides how entry ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(t *Tracker) { t.newID = fn }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(t *Tracker) { t.observer = o }
}

// Tracker holds the in-memory mood history and mirrors it to a Repository.
type Tracker struct {
	mu       sync.Mutex
	repo     Repository
	entries  []Entry
	now      func() time.Time
	newID    func() string
	logger   *zap.Logger
	observer Observer
	validate *validation.Validator
}

// NewTracker creates a tracker and loads the existing history from repo.
func NewTracker(ctx context.Context, repo Repository, opts ...Option) *Tracker {
	t := &Tracker{
		repo:     repo,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   zap.NewNop(),
		observer: nopObserver{},
		validate: newInputValidator(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.entries = repo.Load(ctx)
	if t.entries == nil {
		t.entries = []Entry{}
	}
	if len(t.entries) > MaxEntries {
		t.logger.Warn("stored mood history over the cap, keeping the newest entries",
			zap.Int("stored", len(t.entries)), zap.Int("kept", MaxEntries))
		t.entries = t.entries[:MaxEntries]
	}
	t.logger.Debug("mood history loaded", zap.Int("entries", len(t.entries)))
	return t
}

func newInputValidator() *validation.Validator {
	v := validation.New()
	if err := v.RegisterString("emotion", IsEmotion); err != nil {
		panic(fmt.Sprintf("registering emotion validator: %v", err))
	}
	return v
}

// Entries returns a copy of the history, most recent first.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneEntries(t.entries)
}

// Len returns the number of stored entries.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Summary computes the sidebar statistics at the current time.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Summarize(t.entries, t.now())
}

// Validate checks in without logging it.
func (t *Tracker) Validate(in Input) error {
	if in.Mood == 0 {
		return ErrMoodRequired
	}
	return t.validate.Struct(in)
}

// Log validates in, prepends a new entry and persists the history.
// When only persistence fails the entry is returned together with an error wrapping ErrPersist.
func (t *Tracker) Log(ctx context.Context, in Input) (Entry, error) {
	in.Notes = strings.TrimSpace(in.Notes)
	if err := t.Validate(in); err != nil {
		return Entry{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	ts := now.UnixMilli()
	if len(t.entries) > 0 && ts <= t.entries[0].Timestamp {
		ts = t.entries[0].Timestamp + 1
	}

	emotions := make([]string, len(in.Emotions))
	copy(emotions, in.Emotions)

	entry := Entry{
		ID:        t.newID(),
		Date:      now.Format(DateLayout),
		Mood:      in.Mood,
		Emotions:  emotions,
		Notes:     in.Notes,
		Timestamp: ts,
	}

	next := make([]Entry, 0, min(len(t.entries)+1, MaxEntries))
	next = append(next, entry)
	next = append(next, t.entries...)
	if len(next) > MaxEntries {
		next = next[:MaxEntries]
	}
	t.entries = next
	t.observer.MoodEntryLogged(int(entry.Mood))

	if err := t.repo.Save(ctx, t.entries); err != nil {
		t.observer.MoodPersistFailed()
		t.logger.Warn("mood entry kept in memory only", zap.String("id", entry.ID), zap.Error(err))
		return entry, fmt.Errorf("%w: %w", ErrPersist, err)
	}

	t.logger.Info("mood entry logged",
		zap.String("id", entry.ID),
		zap.Int("mood", int(entry.Mood)),
		zap.Int("entries", len(t.entries)))
	return entry, nil
}

func cloneEntries(in []Entry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		e.Emotions = append([]string{}, e.Emotions...)
		out[i] = e
	}
	return out
}
