package wiki

import (
	"sort"
	"strings"
	"sync"

	"github.com/chris-arsenault/lorewiki/internal/archive"
	"github.com/chris-arsenault/lorewiki/internal/world"
)

// Wiki is the explicitly owned handle over the index, the synthesizer and
// the page cache. Replacing any source collection rebuilds the lightweight
// index eagerly and clears the cache wholesale; full pages are synthesized
// lazily on first access and memoized until the next replacement. A
// read-write lock keeps readers from ever observing a half-rebuilt index,
// and rebuilds are serialized by the write lock.
type Wiki struct {
	mu         sync.RWMutex
	snap       *world.Snapshot
	chronicles []archive.Chronicle
	articles   []archive.StaticArticle
	index      *Index
	synth      *Synthesizer
	cache      map[string]*WikiPage
}

// New returns an empty wiki. It stays empty until a snapshot is supplied.
func New() *Wiki {
	w := &Wiki{snap: &world.Snapshot{}}
	w.rebuildLocked()
	return w
}

// ReplaceSnapshot swaps the world snapshot and rebuilds.
func (w *Wiki) ReplaceSnapshot(snap *world.Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if snap == nil {
		snap = &world.Snapshot{}
	}
	w.snap = snap
	w.rebuildLocked()
}

// ReplaceChronicles swaps the chronicle collection and rebuilds.
func (w *Wiki) ReplaceChronicles(chronicles []archive.Chronicle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chronicles = chronicles
	w.rebuildLocked()
}

// ReplaceArticles swaps the static article collection and rebuilds.
func (w *Wiki) ReplaceArticles(articles []archive.StaticArticle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.articles = articles
	w.rebuildLocked()
}

// rebuildLocked rebuilds the index and synthesizer and drops every cached
// page. Partial invalidation is deliberately not supported.
func (w *Wiki) rebuildLocked() {
	w.index = BuildIndex(w.snap, w.chronicles, w.articles)
	w.synth = NewSynthesizer(w.snap, w.chronicles, w.articles, w.index)
	w.cache = make(map[string]*WikiPage)
}

// Index returns a copy of the full page index entry list.
func (w *Wiki) Index() []PageIndexEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]PageIndexEntry, len(w.index.Entries))
	copy(out, w.index.Entries)
	return out
}

// Entry returns the lightweight entry for one page id.
func (w *Wiki) Entry(id string) (PageIndexEntry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.index.Entry(id)
}

// Page returns the fully hydrated page for an id, synthesizing and caching
// it on first access. Ids absent from the index yield (nil, false).
func (w *Wiki) Page(id string) (*WikiPage, bool) {
	w.mu.RLock()
	if page, ok := w.cache[id]; ok {
		w.mu.RUnlock()
		return page, true
	}
	synth := w.synth
	w.mu.RUnlock()

	page, ok := synth.Synthesize(id)
	if !ok {
		return nil, false
	}

	w.mu.Lock()
	// A replacement may have landed while synthesizing; only memoize when
	// the page still reflects the current sources.
	if w.synth == synth {
		w.cache[id] = page
	}
	w.mu.Unlock()
	return page, true
}

// Resolve maps a free-text name to a page id using the reference index's
// documented priority order.
func (w *Wiki) Resolve(name string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.index.Refs.Resolve(name)
}

// Disambiguations returns the disambiguation group map.
func (w *Wiki) Disambiguations() map[string][]DisambigCandidate {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.index.Disambig
}

// SeeAlso returns the disambiguation candidates sharing a page's base
// title, excluding the page itself.
func (w *Wiki) SeeAlso(id string) []DisambigCandidate {
	entry, ok := w.Entry(id)
	if !ok {
		return nil
	}
	_, base := archive.SplitTitle(entry.Title)

	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []DisambigCandidate
	for _, cand := range w.index.Disambig[strings.ToLower(base)] {
		if cand.ID != id {
			out = append(out, cand)
		}
	}
	return out
}

// CategorySummary is one category with its resolved display metadata.
type CategorySummary struct {
	ID        string `json:"id"`
	Display   string `json:"display"`
	PageCount int    `json:"page_count"`
}

// Categories lists all observed categories, sorted by id.
func (w *Wiki) Categories() []CategorySummary {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := w.index.Refs.CategoryIDs()
	out := make([]CategorySummary, 0, len(ids))
	for _, id := range ids {
		info, _ := w.index.Refs.Category(id)
		out = append(out, CategorySummary{ID: id, Display: info.Display, PageCount: info.PageCount})
	}
	return out
}

// Search performs a case-insensitive substring match over titles, aliases
// and summaries. Title matches rank before alias matches, which rank
// before summary matches; ties keep index order.
func (w *Wiki) Search(query string, limit int) []PageIndexEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = 20
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	type scored struct {
		entry PageIndexEntry
		rank  int
		pos   int
	}
	var results []scored
	for pos, e := range w.index.Entries {
		rank := -1
		if strings.Contains(strings.ToLower(e.Title), q) {
			rank = 0
		} else if aliasMatch(e.Aliases, q) {
			rank = 1
		} else if strings.Contains(strings.ToLower(e.Summary), q) {
			rank = 2
		}
		if rank >= 0 {
			results = append(results, scored{entry: e, rank: rank, pos: pos})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].rank != results[j].rank {
			return results[i].rank < results[j].rank
		}
		return results[i].pos < results[j].pos
	})

	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]PageIndexEntry, len(results))
	for i, r := range results {
		out[i] = r.entry
	}
	return out
}

func aliasMatch(aliases []string, q string) bool {
	for _, a := range aliases {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}
