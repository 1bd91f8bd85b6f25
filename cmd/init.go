package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindcare-edu/mindcare/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mindcare configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure storage and server settings and writes a .mindcare.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("Run `mindcare serve` and open http://localhost:%d\n", cfg.Server.Port)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
