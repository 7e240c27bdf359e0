// Package vectordb maintains an in-memory vector index over wiki page
// summaries for semantic search. It mirrors the lightweight page index:
// whenever the wiki rebuilds, the vector index is refilled from the new
// entry list.
package vectordb

import (
	"context"
	"fmt"

	chromem "github.com/philippgille/chromem-go"

	"github.com/chris-arsenault/lorewiki/internal/embeddings"
	"github.com/chris-arsenault/lorewiki/internal/wiki"
)

const collectionName = "pages"

// Result pairs a page index entry id with its similarity score.
type Result struct {
	PageID     string
	Title      string
	Type       wiki.PageType
	Similarity float32
}

// ChromemStore is a chromem-go backed page search index.
type ChromemStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedFunc  chromem.EmbeddingFunc
}

// NewChromemStore creates an in-memory store using the given embedder.
func NewChromemStore(embedder embeddings.Embedder) (*ChromemStore, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &ChromemStore{db: db, collection: col, embedFunc: ef}, nil
}

// IndexPages replaces the collection contents with the given index entries.
// Entries without a summary are indexed on their title alone.
func (s *ChromemStore) IndexPages(ctx context.Context, entries []wiki.PageIndexEntry) error {
	if err := s.db.DeleteCollection(collectionName); err != nil {
		return fmt.Errorf("reset collection: %w", err)
	}
	col, err := s.db.CreateCollection(collectionName, nil, s.embedFunc)
	if err != nil {
		return fmt.Errorf("reset collection: %w", err)
	}
	s.collection = col

	docs := make([]chromem.Document, 0, len(entries))
	for _, e := range entries {
		content := e.Title
		if e.Summary != "" {
			content += "\n" + e.Summary
		}
		docs = append(docs, chromem.Document{
			ID:      e.ID,
			Content: content,
			Metadata: map[string]string{
				"title": e.Title,
				"type":  string(e.Type),
				"slug":  e.Slug,
			},
		})
	}
	if len(docs) == 0 {
		return nil
	}
	return s.collection.AddDocuments(ctx, docs, 1)
}

// Search performs a semantic query over the indexed pages.
func (s *ChromemStore) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	// chromem-go requires nResults <= collection size.
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := s.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = Result{
			PageID:     r.ID,
			Title:      r.Metadata["title"],
			Type:       wiki.PageType(r.Metadata["type"]),
			Similarity: r.Similarity,
		}
	}
	return out, nil
}

// Count returns the number of indexed pages.
func (s *ChromemStore) Count() int {
	return s.collection.Count()
}
