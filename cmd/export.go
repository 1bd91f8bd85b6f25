package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindcare-edu/mindcare/internal/content"
	"github.com/mindcare-edu/mindcare/internal/progress"
	"github.com/mindcare-edu/mindcare/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the informational pages as a static site",
	Long: `Renders every content page to <output>/<path>/index.html together with a 404
page, the stylesheet and search-index.json. The chatbot and mood tracker need
the server and are not exported.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override export_dir from the config")
	exportCmd.Flags().Bool("quiet", false, "disable progress output")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.ExportDir
	}

	catalog, err := content.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	catalog.Site.Name = cfg.SiteName

	reporter := progress.NewReporter()
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		reporter = progress.Nop{}
	}

	exporter, err := site.NewExporter(catalog, reporter)
	if err != nil {
		return err
	}
	if err := exporter.Export(outputDir); err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Static site exported: %s (%d pages)\n", outputDir, len(catalog.Pages))
	return nil
}
