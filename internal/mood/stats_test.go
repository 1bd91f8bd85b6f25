package mood

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyAverage(t *testing.T) {
	now := baseTime
	day := 24 * time.Hour

	t.Run("only in-window entries count", func(t *testing.T) {
		entries := []Entry{
			entryAt(LevelGood, now.Add(-day)),
			entryAt(LevelLow, now.Add(-10*day)),
		}
		avg, ok := WeeklyAverage(entries, now)
		assert.True(t, ok)
		assert.Equal(t, 4.0, avg)
	})

	t.Run("mean of several", func(t *testing.T) {
		entries := []Entry{
			entryAt(LevelExcellent, now.Add(-time.Hour)),
			entryAt(LevelGood, now.Add(-2*day)),
			entryAt(LevelLow, now.Add(-6*day)),
		}
		avg, ok := WeeklyAverage(entries, now)
		assert.True(t, ok)
		assert.InDelta(t, 11.0/3.0, avg, 1e-9)
	})

	t.Run("boundary is exclusive", func(t *testing.T) {
		entries := []Entry{entryAt(LevelGood, now.Add(-7*day))}
		_, ok := WeeklyAverage(entries, now)
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := WeeklyAverage(nil, now)
		assert.False(t, ok)
	})
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, TrendImproving, classifyTrend(4.0, 3.0))
	assert.Equal(t, TrendDeclining, classifyTrend(3.0, 4.0))
	assert.Equal(t, TrendStable, classifyTrend(3.2, 3.0))
	assert.Equal(t, TrendStable, classifyTrend(2.8, 3.0))
}

func TestTrendOf(t *testing.T) {
	tests := []struct {
		name  string
		moods []Level
		want  Trend
	}{
		{"empty", nil, TrendNeutral},
		{"single entry", []Level{5}, TrendNeutral},
		{"no older window", []Level{5, 1, 3}, TrendNeutral},
		{"improving", []Level{4, 4, 4, 3, 3, 3}, TrendImproving},
		{"declining", []Level{3, 3, 3, 4, 4, 4}, TrendDeclining},
		{"stable", []Level{3, 3, 3, 3, 3, 3}, TrendStable},
		{"partial older window", []Level{5, 5, 5, 2}, TrendImproving},
		{"entries beyond six ignored", []Level{3, 3, 3, 3, 3, 3, 1, 1, 1}, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendOf(history(tt.moods...)))
		})
	}
}

func TestTrendText(t *testing.T) {
	assert.Equal(t, "Trending upward", TrendImproving.Text())
	assert.Equal(t, "Needs attention", TrendDeclining.Text())
	assert.Equal(t, "Staying stable", TrendStable.Text())
	assert.Equal(t, "Not enough data yet", TrendNeutral.Text())
}

func TestMostFrequentEmotion(t *testing.T) {
	tests := []struct {
		name   string
		tags   [][]string
		want   string
		wantOK bool
	}{
		{"clear winner", [][]string{{"Happy", "Tired"}, {"Happy"}}, "Happy", true},
		{"tie goes to first encountered", [][]string{{"Tired", "Happy"}, {"Happy", "Tired"}}, "Tired", true},
		{"later majority", [][]string{{"Sad"}, {"Calm"}, {"Calm"}}, "Calm", true},
		{"no tags", [][]string{{}, {}}, "", false},
		{"no entries", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]Entry, len(tt.tags))
			for i, tags := range tt.tags {
				entries[i] = entryAt(LevelNeutral, baseTime, tags...)
			}
			got, ok := MostFrequentEmotion(entries)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, baseTime)
	assert.Zero(t, s.Total)
	assert.Nil(t, s.WeeklyAverage)
	assert.Equal(t, "N/A", s.WeeklyAverageText())
	assert.Equal(t, "None", s.MostFrequentText())
	assert.Equal(t, TrendNeutral, s.Trend)
	assert.Equal(t, "Not enough data yet", s.TrendText)
	assert.Empty(t, s.LastEntryDate)
}
