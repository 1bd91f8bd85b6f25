package mood

import (
	"context"
	"errors"
	"slices"
)

// Variant styles a Notice.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantWarning     Variant = "warning"
)

// Notice is the toast shown after a form submission.
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Form is the capture state of the mood entry form.
type Form struct {
	Mood     Level
	Emotions []string
	Notes    string
}

// NewForm returns a form in its initial state.
func NewForm() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// Reset restores the defaults: neutral mood, no tags, empty note.
func (f *Form) Reset() {
	f.Mood = LevelNeutral
	f.Emotions = []string{}
	f.Notes = ""
}

// SelectMood sets the mood level.
func (f *Form) SelectMood(l Level) {
	f.Mood = l
}

// ToggleEmotion adds label if absent and removes it if present. Selection order is kept.
func (f *Form) ToggleEmotion(label string) {
	if i := slices.Index(f.Emotions, label); i >= 0 {
		f.Emotions = slices.Delete(f.Emotions, i, i+1)
		return
	}
	f.Emotions = append(f.Emotions, label)
}

// Selected reports whether label is currently selected.
func (f *Form) Selected(label string) bool {
	return slices.Contains(f.Emotions, label)
}

// Input converts the form state into tracker input.
func (f *Form) Input() Input {
	return Input{
		Mood:     f.Mood,
		Emotions: slices.Clone(f.Emotions),
		Notes:    f.Notes,
	}
}

// Submit logs the form through t and returns the notice to display.
// The form is reset unless the input was rejected.
func (f *Form) Submit(ctx context.Context, t *Tracker) Notice {
	_, err := t.Log(ctx, f.Input())
	switch {
	case err == nil:
		f.Reset()
		return Notice{
			Title:       "Mood logged successfully!",
			Description: "Your mood entry has been saved to your personal journal.",
			Variant:     VariantDefault,
		}
	case errors.Is(err, ErrPersist):
		f.Reset()
		return Notice{
			Title:       "Mood logged, but not saved",
			Description: "Your entry is available for this session but could not be written to storage.",
			Variant:     VariantWarning,
		}
	case errors.Is(err, ErrMoodRequired):
		return Notice{
			Title:       "Please select a mood",
			Description: "Choose how you're feeling today before saving.",
			Variant:     VariantDestructive,
		}
	default:
		return Notice{
			Title:       "Please check your entry",
			Description: err.Error(),
			Variant:     VariantDestructive,
		}
	}
}
