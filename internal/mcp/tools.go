package mcp

import "github.com/mark3labs/mcp-go/mcp"

// logMoodTool defines the log_mood MCP tool.
var logMoodTool = mcp.NewTool("log_mood",
	mcp.WithDescription("Record a mood journal entry. Mood is 1 (Very Low) to 5 (Excellent)."),
	mcp.WithNumber("mood",
		mcp.Required(),
		mcp.Description("Mood level from 1 to 5"),
		mcp.Min(1),
		mcp.Max(5),
	),
	mcp.WithArray("emotions",
		mcp.Description("Emotion tags: Happy, Sad, Anxious, Excited, Angry, Peaceful, Overwhelmed, Grateful, Tired, Motivated"),
		mcp.WithStringItems(),
	),
	mcp.WithString("notes",
		mcp.Description("Optional journal text"),
	),
)

// moodSummaryTool defines the mood_summary MCP tool.
var moodSummaryTool = mcp.NewTool("mood_summary",
	mcp.WithDescription("Get the weekly average, trend and most frequent emotion of the mood journal."),
)

// moodHistoryTool defines the mood_history MCP tool.
var moodHistoryTool = mcp.NewTool("mood_history",
	mcp.WithDescription("List mood journal entries, newest first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of entries to return (default 10)"),
	),
)

// chatReplyTool defines the chat_reply MCP tool.
var chatReplyTool = mcp.NewTool("chat_reply",
	mcp.WithDescription("Get the MindCare support assistant's reply to a message."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("What the student said"),
	),
)
