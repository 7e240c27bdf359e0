package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/chris-arsenault/lorewiki/internal/config"
	"github.com/chris-arsenault/lorewiki/internal/embeddings"
	"github.com/chris-arsenault/lorewiki/internal/store"
	"github.com/chris-arsenault/lorewiki/internal/vectordb"
	"github.com/chris-arsenault/lorewiki/internal/wiki"
	"github.com/chris-arsenault/lorewiki/internal/world"
)

// loadWiki materializes every source collection and builds a populated
// wiki. The returned store stays open so callers can reload later.
func loadWiki(ctx context.Context, cfg *config.Config) (*wiki.Wiki, *store.Store, error) {
	w := wiki.New()

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	st := store.NewStore(db)

	if err := reloadWiki(ctx, cfg, w, st); err != nil {
		db.Close()
		return nil, nil, err
	}
	return w, st, nil
}

// reloadWiki re-materializes the snapshot and the archive into the wiki.
// The snapshot is validated before any index is rebuilt; a validation
// failure leaves the wiki untouched.
func reloadWiki(ctx context.Context, cfg *config.Config, w *wiki.Wiki, st *store.Store) error {
	snap, err := world.Load(cfg.SnapshotDir, cfg.SnapshotGlobs)
	if err != nil {
		return fmt.Errorf("loading world snapshot: %w", err)
	}

	chronicles, err := st.ListChronicles(ctx)
	if err != nil {
		return err
	}
	articles, err := st.ListArticles(ctx)
	if err != nil {
		return err
	}

	w.ReplaceSnapshot(snap)
	w.ReplaceChronicles(chronicles)
	w.ReplaceArticles(articles)
	return nil
}

// buildSemanticIndex creates and fills the vector index when semantic
// search is enabled; it returns nil when disabled or unconfigurable.
func buildSemanticIndex(ctx context.Context, cfg *config.Config, w *wiki.Wiki) *vectordb.ChromemStore {
	if !cfg.Search.Semantic {
		return nil
	}
	apiKey := os.Getenv(cfg.Search.OpenAIKeyEnv)
	if apiKey == "" {
		fmt.Fprintf(os.Stderr, "Warning: semantic search enabled but %s is not set; falling back to substring search\n", cfg.Search.OpenAIKeyEnv)
		return nil
	}

	embedder := embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(cfg.Search.EmbeddingModel))
	vs, err := vectordb.NewChromemStore(embedder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: semantic index unavailable: %v\n", err)
		return nil
	}
	if err := vs.IndexPages(ctx, w.Index()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: indexing pages for semantic search: %v\n", err)
		return nil
	}
	return vs
}
