package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-arsenault/lorewiki/internal/config"
	mcpserver "github.com/chris-arsenault/lorewiki/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing wiki search and page retrieval tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		w, st, err := loadWiki(context.Background(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "lorewiki MCP server started on stdio (pages=%d)\n", len(w.Index()))

		srv := mcpserver.NewServer(w)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
