// Package mcp exposes the mood tracker and the chatbot as MCP tools over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mindcare-edu/mindcare/internal/chatbot"
	"github.com/mindcare-edu/mindcare/internal/mood"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes mood and chat tools.
type Server struct {
	tracker *mood.Tracker
	engine  *chatbot.Engine
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(tracker *mood.Tracker, engine *chatbot.Engine) *Server {
	s := &Server{
		tracker: tracker,
		engine:  engine,
	}

	s.mcp = server.NewMCPServer(
		"mindcare",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(logMoodTool, s.handleLogMood)
	s.mcp.AddTool(moodSummaryTool, s.handleMoodSummary)
	s.mcp.AddTool(moodHistoryTool, s.handleMoodHistory)
	s.mcp.AddTool(chatReplyTool, s.handleChatReply)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
