package wiki

import (
	"strings"

	"github.com/chris-arsenault/lorewiki/internal/archive"
)

// BuildDisambiguations groups all non-category entries by case-insensitive
// base title (the title with any "Namespace:" prefix stripped) and keeps
// only groups with at least two members. Groups preserve entry order.
func BuildDisambiguations(entries []PageIndexEntry) map[string][]DisambigCandidate {
	groups := make(map[string][]DisambigCandidate)
	for _, e := range entries {
		if e.Type == PageCategory {
			continue
		}
		namespace, base := archive.SplitTitle(e.Title)
		key := strings.ToLower(base)
		if key == "" {
			continue
		}
		cand := DisambigCandidate{
			ID:        e.ID,
			Title:     e.Title,
			Namespace: namespace,
			Type:      e.Type,
		}
		if d, ok := e.Detail.(EntityDetail); ok {
			cand.EntityKind = d.Kind
		}
		groups[key] = append(groups[key], cand)
	}

	for key, group := range groups {
		if len(group) < 2 {
			delete(groups, key)
		}
	}
	return groups
}
