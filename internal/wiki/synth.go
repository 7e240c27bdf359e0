package wiki

import (
	"github.com/chris-arsenault/lorewiki/internal/archive"
	"github.com/chris-arsenault/lorewiki/internal/world"
)

// Synthesizer produces fully hydrated pages on demand from the lightweight
// index and the source collections. It is pure with respect to its inputs:
// synthesizing the same id twice yields structurally identical output.
type Synthesizer struct {
	snap       *world.Snapshot
	chronicles map[string]archive.Chronicle
	articles   map[string]archive.StaticArticle
	index      *Index
	linker     *AutoLinker
}

// NewSynthesizer builds a synthesizer over the given index and sources.
// The index must have been built from the same collections.
func NewSynthesizer(snap *world.Snapshot, chronicles []archive.Chronicle, articles []archive.StaticArticle, index *Index) *Synthesizer {
	if snap == nil {
		snap = &world.Snapshot{}
	}
	cs := make(map[string]archive.Chronicle, len(chronicles))
	for _, c := range chronicles {
		cs[c.ID] = c
	}
	as := make(map[string]archive.StaticArticle, len(articles))
	for _, a := range articles {
		as[a.ID] = a
	}
	return &Synthesizer{
		snap:       snap,
		chronicles: cs,
		articles:   as,
		index:      index,
		linker:     NewAutoLinker(index.Refs.Candidates()),
	}
}

// Synthesize builds the full page for an id already present in the index.
// Unknown ids yield (nil, false); no page type ever errors on missing or
// partial source data.
func (s *Synthesizer) Synthesize(id string) (*WikiPage, bool) {
	entry, ok := s.index.Entry(id)
	if !ok {
		return nil, false
	}

	page := &WikiPage{
		ID:          entry.ID,
		Slug:        entry.Slug,
		Title:       entry.Title,
		Type:        entry.Type,
		Aliases:     entry.Aliases,
		Summary:     entry.Summary,
		Categories:  entry.Categories,
		LastUpdated: entry.LastUpdated,
	}

	switch d := entry.Detail.(type) {
	case EntityDetail:
		s.synthesizeEntity(page, entry, d)
	case ChronicleDetail:
		s.synthesizeChronicle(page, entry, d)
	case StaticDetail:
		s.synthesizeStatic(page, entry, d)
	case CategoryDetail:
		s.synthesizeCategory(page, entry, d)
	case RegionDetail:
		s.synthesizeRegion(page, entry, d)
	}

	page.LinkedEntities = s.collectLinks(page.Sections)
	return page, true
}

// collectLinks scans all section text for wikilink patterns and resolves
// each name through the reference index. Unresolved names stay plain text
// and contribute nothing.
func (s *Synthesizer) collectLinks(sections []Section) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, sec := range sections {
		for _, name := range extractLinkNames(sec.Text) {
			id, ok := s.index.Refs.Resolve(name)
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// wikilink resolves a name and returns it in link markup, or unchanged
// when nothing claims it.
func (s *Synthesizer) wikilink(name string) string {
	if name == "" {
		return name
	}
	if _, ok := s.index.Refs.Resolve(name); ok {
		return "[[" + name + "]]"
	}
	return name
}
