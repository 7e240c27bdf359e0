package site

import (
	"encoding/json"
	"os"

	"github.com/chris-arsenault/lorewiki/internal/wiki"
)

// SearchEntry represents a single searchable page in the exported site.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Summary string `json:"summary,omitempty"`
	Aliases string `json:"aliases,omitempty"`
}

// BuildSearchIndex converts the lightweight page index into the client-side
// search index.
func BuildSearchIndex(entries []wiki.PageIndexEntry) []SearchEntry {
	out := make([]SearchEntry, 0, len(entries))
	for _, e := range entries {
		se := SearchEntry{
			Path:    e.Slug + ".html",
			Title:   e.Title,
			Type:    string(e.Type),
			Summary: e.Summary,
		}
		for i, a := range e.Aliases {
			if i > 0 {
				se.Aliases += " "
			}
			se.Aliases += a
		}
		out = append(out, se)
	}
	return out
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []wiki.PageIndexEntry, outputPath string) error {
	data, err := json.MarshalIndent(BuildSearchIndex(entries), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
