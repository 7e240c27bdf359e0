package cmd

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/chris-arsenault/lorewiki/internal/config"
	"github.com/chris-arsenault/lorewiki/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the wiki as a static HTML site",
	Long:  `Synthesizes every wiki page from the current world snapshot and archive, and writes a self-contained static HTML site with navigation and client-side search.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to config output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	w, st, err := loadWiki(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var progress func(string)
	if verbose {
		progress = func(id string) { fmt.Println("exported", id) }
	} else {
		bar := progressbar.NewOptions(len(w.Index()),
			progressbar.OptionSetDescription("Exporting pages"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		progress = func(string) { bar.Add(1) }
	}

	exporter := &site.Exporter{
		Wiki:      w,
		OutputDir: outputDir,
		SiteTitle: cfg.SiteTitle,
		Progress:  progress,
	}
	written, err := exporter.Export()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages)\n", outputDir, written)
	return nil
}
