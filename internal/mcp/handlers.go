package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mindcare-edu/mindcare/internal/mood"
)

// handleLogMood validates and records one mood entry.
func (s *Server) handleLogMood(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := request.RequireInt("mood")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: mood"), nil
	}

	in := mood.Input{
		Mood:     mood.Level(level),
		Emotions: request.GetStringSlice("emotions", []string{}),
		Notes:    request.GetString("notes", ""),
	}
	entry, err := s.tracker.Log(ctx, in)
	switch {
	case err == nil:
		return mcp.NewToolResultText(fmt.Sprintf("Logged %s mood for %s.", entry.Mood, entry.Date)), nil
	case errors.Is(err, mood.ErrPersist):
		return mcp.NewToolResultText(fmt.Sprintf(
			"Logged %s mood for %s, but it could not be saved: %v", entry.Mood, entry.Date, err,
		)), nil
	default:
		return mcp.NewToolResultError(err.Error()), nil
	}
}

// handleMoodSummary reports the journal statistics.
func (s *Server) handleMoodSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sum := s.tracker.Summary()
	if sum.Total == 0 {
		return mcp.NewToolResultText("No mood entries yet. Use log_mood to record one."), nil
	}
	return mcp.NewToolResultText(formatSummary(sum)), nil
}

// handleMoodHistory lists the most recent entries.
func (s *Server) handleMoodHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	entries := s.tracker.Entries()
	if len(entries) == 0 {
		return mcp.NewToolResultText("No mood entries yet."), nil
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return mcp.NewToolResultText(formatEntries(entries)), nil
}

// handleChatReply runs one message through the chatbot rules.
func (s *Server) handleChatReply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil || strings.TrimSpace(message) == "" {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	reply := s.engine.Reply(message)
	return mcp.NewToolResultText(fmt.Sprintf("[%s] %s", reply.Kind, reply.Text)), nil
}

func formatSummary(sum mood.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total entries: %d\n", sum.Total)
	fmt.Fprintf(&b, "Weekly average: %s\n", sum.WeeklyAverageText())
	fmt.Fprintf(&b, "Trend: %s\n", sum.TrendText)
	fmt.Fprintf(&b, "Most common emotion: %s\n", sum.MostFrequentText())
	fmt.Fprintf(&b, "Last entry: %s\n", sum.LastEntryDate)
	return b.String()
}

func formatEntries(entries []mood.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		info := e.Mood.Info()
		fmt.Fprintf(&b, "- %s %s %s", e.Date, info.Emoji, info.Label)
		if len(e.Emotions) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(e.Emotions, ", "))
		}
		if e.Notes != "" {
			fmt.Fprintf(&b, ": %s", e.Notes)
		}
		b.WriteString("\n")
	}
	return b.String()
}
