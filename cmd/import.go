package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chris-arsenault/lorewiki/internal/config"
	"github.com/chris-arsenault/lorewiki/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import markdown files as static articles",
	Long:  `Walks a directory for markdown files and saves each one as a static article in the archive. Re-importing a file updates the existing article with the same slug.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringSlice("glob", []string{"**/*.md"}, "glob patterns selecting files to import")
	importCmd.Flags().Bool("publish", false, "mark imported articles as published")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	patterns, _ := cmd.Flags().GetStringSlice("glob")
	publish, _ := cmd.Flags().GetBool("publish")

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	st := store.NewStore(db)
	defer st.Close()

	result, err := st.ImportArticles(ctx, args[0], patterns, publish)
	if err != nil {
		return fmt.Errorf("importing articles: %w", err)
	}

	fmt.Printf("Imported %d articles (%d skipped)\n", result.Imported, result.Skipped)
	return nil
}
