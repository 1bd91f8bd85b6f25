package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/mindcare-edu/mindcare/internal/mood"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log and review mood journal entries",
}

var moodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record how you are feeling",
	Long: `Records a mood entry. Without --mood an interactive form asks for the mood
level, the emotions and an optional journal note.`,
	RunE: runMoodLog,
}

var moodHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent mood entries, newest first",
	RunE:  runMoodHistory,
}

var moodStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the weekly average, trend and most common emotion",
	RunE:  runMoodStats,
}

func init() {
	moodLogCmd.Flags().Int("mood", 0, "mood level from 1 (Very Low) to 5 (Excellent)")
	moodLogCmd.Flags().StringSlice("emotion", nil, "emotion tag, repeatable")
	moodLogCmd.Flags().String("notes", "", "journal text")

	moodHistoryCmd.Flags().Int("limit", 10, "maximum number of entries")
	moodHistoryCmd.Flags().Bool("json", false, "output entries as JSON")

	moodStatsCmd.Flags().Bool("json", false, "output statistics as JSON")

	moodCmd.AddCommand(moodLogCmd, moodHistoryCmd, moodStatsCmd)
	rootCmd.AddCommand(moodCmd)
}

// withTracker loads config, logger and the persisted mood history for a command.
func withTracker(ctx context.Context, fn func(*mood.Tracker) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tracker, store, err := openTracker(ctx, cfg, false, logger)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(tracker)
}

func runMoodLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	form := mood.NewForm()

	if cmd.Flags().Changed("mood") {
		level, _ := cmd.Flags().GetInt("mood")
		emotions, _ := cmd.Flags().GetStringSlice("emotion")
		notes, _ := cmd.Flags().GetString("notes")
		form.SelectMood(mood.Level(level))
		for _, e := range emotions {
			if !form.Selected(e) {
				form.ToggleEmotion(e)
			}
		}
		form.Notes = notes
	} else if err := promptMoodForm(form); err != nil {
		return err
	}

	return withTracker(ctx, func(tracker *mood.Tracker) error {
		notice := form.Submit(ctx, tracker)
		fmt.Printf("%s\n%s\n", notice.Title, notice.Description)
		if notice.Variant == mood.VariantDestructive {
			return errors.New("mood entry rejected")
		}
		return nil
	})
}

// promptMoodForm fills form interactively.
func promptMoodForm(form *mood.Form) error {
	labels := make([]string, len(mood.Levels))
	for i, l := range mood.Levels {
		labels[i] = l.Emoji + "  " + l.Label
	}
	levelPrompt := promptui.Select{
		Label:     "How are you feeling today",
		Items:     labels,
		CursorPos: int(form.Mood) - 1,
	}
	idx, _, err := levelPrompt.Run()
	if err != nil {
		return fmt.Errorf("mood selection: %w", err)
	}
	form.SelectMood(mood.Levels[idx].Level)

	const done = "Done"
	for {
		items := []string{done}
		for _, e := range mood.Emotions {
			mark := "[ ]"
			if form.Selected(e.Label) {
				mark = "[x]"
			}
			items = append(items, fmt.Sprintf("%s %s %s", mark, e.Icon, e.Label))
		}
		emotionPrompt := promptui.Select{
			Label: "What emotions are you experiencing",
			Items: items,
			Size:  len(items),
		}
		idx, _, err := emotionPrompt.Run()
		if err != nil {
			return fmt.Errorf("emotion selection: %w", err)
		}
		if idx == 0 {
			break
		}
		form.ToggleEmotion(mood.Emotions[idx-1].Label)
	}

	notesPrompt := promptui.Prompt{
		Label: "Journal entry (optional)",
		Validate: func(s string) error {
			if len(s) > mood.MaxNotesLength {
				return fmt.Errorf("keep it under %d characters", mood.MaxNotesLength)
			}
			return nil
		},
	}
	notes, err := notesPrompt.Run()
	if err != nil {
		return fmt.Errorf("journal entry: %w", err)
	}
	form.Notes = notes
	return nil
}

func runMoodHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return withTracker(cmd.Context(), func(tracker *mood.Tracker) error {
		entries := tracker.Entries()
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Println("No mood entries yet. Run `mindcare mood log` to add one.")
			return nil
		}
		for _, e := range entries {
			info := e.Mood.Info()
			fmt.Printf("%-10s  %s %-9s", e.Date, info.Emoji, info.Label)
			if len(e.Emotions) > 0 {
				fmt.Printf("  %s", strings.Join(e.Emotions, ", "))
			}
			fmt.Println()
			if e.Notes != "" {
				fmt.Printf("            %s\n", e.Notes)
			}
		}
		return nil
	})
}

func runMoodStats(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return withTracker(cmd.Context(), func(tracker *mood.Tracker) error {
		sum := tracker.Summary()
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		}

		fmt.Printf("Weekly average:      %s\n", sum.WeeklyAverageText())
		fmt.Printf("Trend:               %s\n", sum.TrendText)
		fmt.Printf("Total entries:       %d\n", sum.Total)
		if sum.Total > 0 {
			fmt.Printf("Last entry:          %s\n", sum.LastEntryDate)
			fmt.Printf("Most common emotion: %s\n", sum.MostFrequentText())
		}
		return nil
	})
}
