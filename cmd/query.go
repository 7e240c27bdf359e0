package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-arsenault/lorewiki/internal/config"
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the wiki from the command line",
	Long:  `Searches wiki page titles, aliases, and summaries. With semantic search enabled in the config, searches by meaning instead of substring.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().Int("limit", 10, "maximum number of results")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	queryText := args[0]

	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	w, st, err := loadWiki(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if semantic := buildSemanticIndex(ctx, cfg, w); semantic != nil {
		results, err := semantic.Search(ctx, queryText, limit)
		if err != nil {
			return fmt.Errorf("semantic search: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}
		if jsonOutput {
			return printJSON(results)
		}
		fmt.Printf("Found %d results:\n\n", len(results))
		for i, r := range results {
			fmt.Printf("  %d. [%.1f%%] %s (%s)\n", i+1, r.Similarity*100, r.Title, r.Type)
			fmt.Printf("     id: %s\n\n", r.PageID)
		}
		return nil
	}

	entries := w.Search(queryText, limit)
	if len(entries) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	if jsonOutput {
		return printJSON(entries)
	}
	fmt.Printf("Found %d results:\n\n", len(entries))
	for i, e := range entries {
		fmt.Printf("  %d. %s (%s)\n", i+1, e.Title, e.Type)
		if e.Summary != "" {
			fmt.Printf("     %s\n", truncate(e.Summary, 120))
		}
		fmt.Printf("     id: %s\n\n", e.ID)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
