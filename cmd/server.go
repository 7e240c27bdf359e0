package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chris-arsenault/lorewiki/internal/config"
	"github.com/chris-arsenault/lorewiki/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the wiki HTTP server",
	Long:  `Starts the lorewiki HTTP server, serving the page index, synthesized pages, search, and a websocket channel that notifies clients when the archive is reloaded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if serverPort != 0 {
			cfg.Server.Port = serverPort
		}

		w, st, err := loadWiki(context.Background(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		semantic := buildSemanticIndex(context.Background(), cfg, w)

		reload := func(ctx context.Context) error {
			if err := reloadWiki(ctx, cfg, w, st); err != nil {
				return err
			}
			if semantic != nil {
				return semantic.IndexPages(ctx, w.Index())
			}
			return nil
		}

		srv := server.New(server.Config{
			Port:      cfg.Server.Port,
			SiteTitle: cfg.SiteTitle,
			AllowAll:  cfg.Server.AllowAll,
		}, w, semantic, reload)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "lorewiki server v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Snapshot: %s\n", cfg.SnapshotDir)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DatabasePath)
		fmt.Fprintf(os.Stderr, "  Pages indexed: %d\n", len(w.Index()))
		if semantic != nil {
			fmt.Fprintf(os.Stderr, "  Semantic search enabled (%d documents)\n", semantic.Count())
		}

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
