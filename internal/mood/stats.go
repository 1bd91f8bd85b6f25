package mood

import (
	"fmt"
	"sort"
	"time"
)

const (
	weekWindow     = 7 * 24 * time.Hour
	trendWindow    = 3
	trendThreshold = 0.3
)

// Trend is the direction of recent moods compared to the ones before them.
type Trend string

const (
	TrendNeutral   Trend = "neutral"
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Text is the short phrase shown next to the trend.
func (t Trend) Text() string {
	switch t {
	case TrendImproving:
		return "Trending upward"
	case TrendDeclining:
		return "Needs attention"
	case TrendStable:
		return "Staying stable"
	default:
		return "Not enough data yet"
	}
}

// WeeklyAverage is the mean mood of entries newer than seven days before now.
// ok is false when no entry falls in the window.
func WeeklyAverage(entries []Entry, now time.Time) (avg float64, ok bool) {
	cutoff := now.Add(-weekWindow).UnixMilli()
	sum, n := 0, 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			sum += int(e.Mood)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// TrendOf compares the mean of the three newest entries with the mean of the next three.
// Windows may be partial; with no older entries the trend is neutral.
func TrendOf(entries []Entry) Trend {
	if len(entries) < 2 {
		return TrendNeutral
	}
	recent := window(entries, 0, trendWindow)
	older := window(entries, trendWindow, 2*trendWindow)
	if len(older) == 0 {
		return TrendNeutral
	}

	return classifyTrend(meanMood(recent), meanMood(older))
}

func classifyTrend(recentAvg, olderAvg float64) Trend {
	switch {
	case recentAvg > olderAvg+trendThreshold:
		return TrendImproving
	case recentAvg < olderAvg-trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func window(entries []Entry, from, to int) []Entry {
	if from >= len(entries) {
		return nil
	}
	return entries[from:min(to, len(entries))]
}

func meanMood(entries []Entry) float64 {
	sum := 0
	for _, e := range entries {
		sum += int(e.Mood)
	}
	return float64(sum) / float64(len(entries))
}

// MostFrequentEmotion returns the most used tag across entries.
// Ties go to the tag encountered first. ok is false when no entry has tags.
func MostFrequentEmotion(entries []Entry) (label string, ok bool) {
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		for _, tag := range e.Emotions {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	if len(order) == 0 {
		return "", false
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order[0], true
}

// Summary is the read-only statistics block shown beside the tracker.
type Summary struct {
	Total               int      `json:"total"`
	WeeklyAverage       *float64 `json:"weekly_average"`
	Trend               Trend    `json:"trend"`
	TrendText           string   `json:"trend_text"`
	MostFrequentEmotion string   `json:"most_frequent_emotion,omitempty"`
	LastEntryDate       string   `json:"last_entry_date,omitempty"`
}

// Summarize computes a Summary for entries at time now.
func Summarize(entries []Entry, now time.Time) Summary {
	s := Summary{
		Total: len(entries),
		Trend: TrendOf(entries),
	}
	s.TrendText = s.Trend.Text()
	if avg, ok := WeeklyAverage(entries, now); ok {
		s.WeeklyAverage = &avg
	}
	if label, ok := MostFrequentEmotion(entries); ok {
		s.MostFrequentEmotion = label
	}
	if len(entries) > 0 {
		s.LastEntryDate = entries[0].Date
	}
	return s
}

// WeeklyAverageText renders the weekly average with one decimal, or "N/A".
func (s Summary) WeeklyAverageText() string {
	if s.WeeklyAverage == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *s.WeeklyAverage)
}

// MostFrequentText renders the most frequent emotion, or "None".
func (s Summary) MostFrequentText() string {
	if s.MostFrequentEmotion == "" {
		return "None"
	}
	return s.MostFrequentEmotion
}
