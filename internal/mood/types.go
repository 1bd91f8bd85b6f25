package mood

import "time"

// MaxEntries bounds the stored history. Logging beyond it evicts the oldest entry.
const MaxEntries = 30

// DateLayout formats the display date stored on each entry.
const DateLayout = "1/2/2006"

// MaxNotesLength caps the free-text note on an entry.
const MaxNotesLength = 2000

// Level is a self-reported mood on a 1..5 scale.
type Level int

const (
	LevelVeryLow   Level = 1
	LevelLow       Level = 2
	LevelNeutral   Level = 3
	LevelGood      Level = 4
	LevelExcellent Level = 5
)

// LevelInfo describes how a mood level is presented.
type LevelInfo struct {
	Level Level  `json:"level"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// Levels is the mood scale, lowest first.
var Levels = []LevelInfo{
	{LevelVeryLow, "Very Low", "😢"},
	{LevelLow, "Low", "😔"},
	{LevelNeutral, "Neutral", "😐"},
	{LevelGood, "Good", "😊"},
	{LevelExcellent, "Excellent", "😄"},
}

// Valid reports whether l is on the 1..5 scale.
func (l Level) Valid() bool {
	return l >= LevelVeryLow && l <= LevelExcellent
}

// Info returns the presentation of l. Invalid levels get an empty label.
func (l Level) Info() LevelInfo {
	if !l.Valid() {
		return LevelInfo{Level: l}
	}
	return Levels[l-1]
}

func (l Level) String() string { return l.Info().Label }

// Emotion is one selectable tag in the emotion catalog.
type Emotion struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Emotions is the ordered emotion catalog.
var Emotions = []Emotion{
	{"Happy", "😊"},
	{"Sad", "😢"},
	{"Anxious", "😰"},
	{"Excited", "🤩"},
	{"Angry", "😠"},
	{"Peaceful", "😌"},
	{"Overwhelmed", "🤯"},
	{"Grateful", "🙏"},
	{"Tired", "😴"},
	{"Motivated", "💪"},
}

// IsEmotion reports whether label is in the catalog.
func IsEmotion(label string) bool {
	for _, e := range Emotions {
		if e.Label == label {
			return true
		}
	}
	return false
}

// Entry is one logged mood. Entries are never modified after creation.
type Entry struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Mood      Level    `json:"mood"`
	Emotions  []string `json:"emotions"`
	Notes     string   `json:"notes"`
	Timestamp int64    `json:"timestamp"`
}

// Time returns the entry timestamp as a time.Time.
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Input is what a caller supplies to log a new entry.
type Input struct {
	Mood     Level    `json:"mood" validate:"min=1,max=5"`
	Emotions []string `json:"emotions" validate:"unique,dive,emotion"`
	Notes    string   `json:"notes" validate:"max=2000"`
}
