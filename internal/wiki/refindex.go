package wiki

import (
	"sort"
	"strings"

	"github.com/chris-arsenault/lorewiki/internal/archive"
	"github.com/chris-arsenault/lorewiki/internal/world"
)

// CategoryInfo is the display metadata for one observed category id.
type CategoryInfo struct {
	Display   string
	PageCount int
}

// ReferenceIndex holds the case-insensitive lookup maps used to resolve
// free-text names to page ids. Lookup priority is fixed: primary entity
// name, then alias, then static article title, then article base name, then
// region label. Every map uses insert-if-absent semantics, so on a
// collision the first-inserted binding wins silently.
type ReferenceIndex struct {
	names      map[string]string
	aliases    map[string]string
	titles     map[string]string
	baseNames  map[string]string
	regions    map[string]string
	categories map[string]*CategoryInfo
}

// BuildReferenceIndex constructs the lookup maps from the visible source
// collections. Matching is case-insensitive only; no other normalization is
// applied.
func BuildReferenceIndex(entities []world.Entity, articles []archive.StaticArticle, regions []world.Region) *ReferenceIndex {
	r := &ReferenceIndex{
		names:      make(map[string]string),
		aliases:    make(map[string]string),
		titles:     make(map[string]string),
		baseNames:  make(map[string]string),
		regions:    make(map[string]string),
		categories: make(map[string]*CategoryInfo),
	}

	for _, e := range entities {
		insertIfAbsent(r.names, e.Name, e.ID)
	}

	// Aliases are outranked by primary names: an alias that collides with
	// any primary name is dropped.
	for _, e := range entities {
		for _, alias := range e.Aliases {
			if _, taken := r.names[fold(alias)]; taken {
				continue
			}
			insertIfAbsent(r.aliases, alias, e.ID)
		}
	}

	for _, a := range articles {
		insertIfAbsent(r.titles, a.Title, a.ID)
		_, base := archive.SplitTitle(a.Title)
		if base == "" || base == a.Title {
			continue
		}
		// Base names are only claimable when no entity name or alias
		// already owns them.
		if _, taken := r.names[fold(base)]; taken {
			continue
		}
		if _, taken := r.aliases[fold(base)]; taken {
			continue
		}
		insertIfAbsent(r.baseNames, base, a.ID)
	}

	for _, reg := range regions {
		insertIfAbsent(r.regions, reg.Label, reg.ID)
	}

	return r
}

// Resolve maps a free-text name to a page id, applying the documented
// priority order. The second result is false when nothing claims the name.
func (r *ReferenceIndex) Resolve(name string) (string, bool) {
	key := fold(name)
	for _, m := range []map[string]string{r.names, r.aliases, r.titles, r.baseNames, r.regions} {
		if id, ok := m[key]; ok {
			return id, true
		}
	}
	return "", false
}

// EntityID resolves a name against entity names and aliases only.
func (r *ReferenceIndex) EntityID(name string) (string, bool) {
	key := fold(name)
	if id, ok := r.names[key]; ok {
		return id, true
	}
	if id, ok := r.aliases[key]; ok {
		return id, true
	}
	return "", false
}

// Candidates returns the full wikilinkable name list for the auto-linker,
// each name bound to the id Resolve would yield for it.
func (r *ReferenceIndex) Candidates() []Candidate {
	seen := make(map[string]bool)
	var out []Candidate
	// Priority order ensures a name claimed by an entity never re-appears
	// bound to an article or region.
	for _, m := range []map[string]string{r.names, r.aliases, r.titles, r.baseNames, r.regions} {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, Candidate{Name: k, ID: m[k]})
		}
	}
	return out
}

// ObserveCategory tallies one page into a category, deriving the display
// name on first sight. Display names split the id on its first hyphen and
// title-case both parts: "kind-npc" becomes "Kind Npc".
func (r *ReferenceIndex) ObserveCategory(id string) {
	info, ok := r.categories[id]
	if !ok {
		info = &CategoryInfo{Display: categoryDisplay(id)}
		r.categories[id] = info
	}
	info.PageCount++
}

// Category returns the display metadata for a category id.
func (r *ReferenceIndex) Category(id string) (CategoryInfo, bool) {
	info, ok := r.categories[id]
	if !ok {
		return CategoryInfo{}, false
	}
	return *info, true
}

// CategoryIDs returns all observed category ids, sorted.
func (r *ReferenceIndex) CategoryIDs() []string {
	ids := make([]string, 0, len(r.categories))
	for id := range r.categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func categoryDisplay(id string) string {
	dimension, value := id, ""
	if idx := strings.Index(id, "-"); idx >= 0 {
		dimension, value = id[:idx], id[idx+1:]
	}
	if value == "" {
		return titleCase(dimension)
	}
	return titleCase(dimension) + " " + titleCase(value)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func insertIfAbsent(m map[string]string, name, id string) {
	key := fold(name)
	if key == "" {
		return
	}
	if _, ok := m[key]; !ok {
		m[key] = id
	}
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
