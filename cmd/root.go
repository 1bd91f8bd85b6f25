package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mindcare-edu/mindcare/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mindcare",
	Short: "Student mental health support site with a chatbot and mood tracker",
	Long: `MindCare serves a student mental-health website: informational pages,
a supportive keyword chatbot and a private mood journal with weekly
statistics. The chatbot and mood tracker are also available from the
terminal and to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
