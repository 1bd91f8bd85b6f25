package mood

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var baseTime = time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)

// fakeRepo is an in-memory Repository that records saves.
type fakeRepo struct {
	mu      sync.Mutex
	entries []Entry
	saves   int
	failErr error
}

func (f *fakeRepo) Load(context.Context) []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneEntries(f.entries)
}

func (f *fakeRepo) Save(_ context.Context, entries []Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.saves++
	f.entries = cloneEntries(entries)
	return nil
}

var errDiskFull = errors.New("disk full")

// steppingClock advances one minute per call.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	t := baseTime
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Minute)
		return t
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("e%d", n)
	}
}

type countingObserver struct {
	logged   []int
	failures int
}

func (c *countingObserver) MoodEntryLogged(level int) { c.logged = append(c.logged, level) }
func (c *countingObserver) MoodPersistFailed()        { c.failures++ }

func entryAt(mood Level, at time.Time, emotions ...string) Entry {
	if emotions == nil {
		emotions = []string{}
	}
	return Entry{
		ID:        at.Format(time.RFC3339Nano),
		Date:      at.Format(DateLayout),
		Mood:      mood,
		Emotions:  emotions,
		Timestamp: at.UnixMilli(),
	}
}

// history builds a most-recent-first collection from moods, one hour apart.
func history(moods ...Level) []Entry {
	out := make([]Entry, len(moods))
	for i, m := range moods {
		out[i] = entryAt(m, baseTime.Add(-time.Duration(i)*time.Hour))
	}
	return out
}
