package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindcare-edu/mindcare/internal/chatbot"
	mcpserver "github.com/mindcare-edu/mindcare/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the mood journal and the support chatbot as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		tracker, store, err := openTracker(cmd.Context(), cfg, false, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "mindcare MCP server started on stdio (storage=%s, entries=%d)\n", cfg.Storage.Backend, tracker.Len())

		srv := mcpserver.NewServer(tracker, chatbot.NewEngine())
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
