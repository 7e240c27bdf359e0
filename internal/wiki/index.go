package wiki

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chris-arsenault/lorewiki/internal/archive"
	"github.com/chris-arsenault/lorewiki/internal/world"
)

// Index is the lightweight page index: one summary entry per page across
// all six page types, plus the reference lookup maps and the
// disambiguation groups. It is rebuilt eagerly and fully whenever any
// source collection is replaced.
type Index struct {
	Entries  []PageIndexEntry
	Refs     *ReferenceIndex
	Disambig map[string][]DisambigCandidate

	byID map[string]int
}

// Entry returns the index entry for a page id.
func (ix *Index) Entry(id string) (PageIndexEntry, bool) {
	pos, ok := ix.byID[id]
	if !ok {
		return PageIndexEntry{}, false
	}
	return ix.Entries[pos], true
}

// BuildIndex constructs the full lightweight index from the source
// collections. Chronicles without rendered content and unpublished articles
// are excluded entirely; category entries are synthesized last from the
// category ids the other entries actually carry.
func BuildIndex(snap *world.Snapshot, chronicles []archive.Chronicle, articles []archive.StaticArticle) *Index {
	if snap == nil {
		snap = &world.Snapshot{}
	}

	visibleArticles := make([]archive.StaticArticle, 0, len(articles))
	for _, a := range articles {
		if a.Visible() {
			visibleArticles = append(visibleArticles, a)
		}
	}

	regions := mergeRegions(snap)
	refs := BuildReferenceIndex(snap.Entities, visibleArticles, regions)

	ix := &Index{
		Refs: refs,
		byID: make(map[string]int),
	}

	eraNames := eraNamesByID(snap.Entities)
	for _, e := range snap.Entities {
		ix.add(entityEntry(e, snap.Relationships, eraNames, refs))
	}

	for _, c := range chronicles {
		if !c.Visible() {
			continue
		}
		ix.add(chronicleEntry(c))
	}

	for _, a := range visibleArticles {
		ix.add(articleEntry(a))
	}

	for _, r := range regions {
		ix.add(regionEntry(r, snap))
	}

	// Category entries come last: membership derives from what the
	// already-built entries carry.
	members := make(map[string][]string)
	for _, e := range ix.Entries {
		for _, cat := range e.Categories {
			members[cat] = append(members[cat], e.ID)
		}
	}
	for _, catID := range refs.CategoryIDs() {
		info, _ := refs.Category(catID)
		dimension, value := catID, ""
		if idx := strings.Index(catID, "-"); idx >= 0 {
			dimension, value = catID[:idx], catID[idx+1:]
		}
		ix.add(PageIndexEntry{
			ID:    catID,
			Title: info.Display,
			Type:  PageCategory,
			Slug:  "category-" + Slugify(catID),
			Detail: CategoryDetail{
				Dimension: dimension,
				Value:     value,
				MemberIDs: members[catID],
			},
		})
	}

	ix.Disambig = BuildDisambiguations(ix.Entries)
	return ix
}

func (ix *Index) add(e PageIndexEntry) {
	// Page ids are globally unique across types; a duplicate would make
	// synthesis ambiguous, so the first entry wins.
	if _, exists := ix.byID[e.ID]; exists {
		return
	}
	ix.byID[e.ID] = len(ix.Entries)
	ix.Entries = append(ix.Entries, e)
}

func entityEntry(e world.Entity, rels []world.Relationship, eraNames map[string]string, refs *ReferenceIndex) PageIndexEntry {
	categories := entityCategories(e, rels, eraNames)
	for _, cat := range categories {
		refs.ObserveCategory(cat)
	}

	pageType := PageEntity
	if e.Kind == world.EntityKindEra {
		pageType = PageEra
	}

	return PageIndexEntry{
		ID:          e.ID,
		Title:       e.Name,
		Type:        pageType,
		Slug:        Slugify(e.Name),
		Summary:     e.Summary,
		Aliases:     e.Aliases,
		Categories:  categories,
		LastUpdated: e.UpdatedAt,
		Detail: EntityDetail{
			Kind:         e.Kind,
			Subtype:      e.Subtype,
			Culture:      e.Culture,
			Status:       e.Status,
			RegionID:     e.RegionID,
			Prominence:   e.Prominence,
			ProfileImage: e.ProfileImage,
		},
	}
}

// entityCategories evaluates each category dimension independently; an
// entity carries up to six categories. Era membership comes from an
// active_during relationship to an era entity.
func entityCategories(e world.Entity, rels []world.Relationship, eraNames map[string]string) []string {
	var cats []string
	if e.Kind != "" {
		cats = append(cats, "kind-"+e.Kind)
	}
	if e.Subtype != "" {
		cats = append(cats, "subtype-"+e.Subtype)
	}
	if e.Culture != "" {
		cats = append(cats, "culture-"+e.Culture)
	}
	cats = append(cats, fmt.Sprintf("prominence-%d", e.Prominence))
	if e.Status != "" {
		cats = append(cats, "status-"+e.Status)
	}
	for _, rel := range rels {
		if rel.Kind != world.RelationActiveDuring || rel.SourceID != e.ID {
			continue
		}
		if name, ok := eraNames[rel.TargetID]; ok {
			cats = append(cats, "era-"+Slugify(name))
			break
		}
	}
	return cats
}

func chronicleEntry(c archive.Chronicle) PageIndexEntry {
	return PageIndexEntry{
		ID:          c.ID,
		Title:       c.Title,
		Type:        PageChronicle,
		Slug:        Slugify(c.Title),
		Summary:     c.Summary,
		LastUpdated: c.UpdatedAt,
		Detail: ChronicleDetail{
			Format:       string(c.Format),
			EntrypointID: c.EntrypointID,
		},
	}
}

func articleEntry(a archive.StaticArticle) PageIndexEntry {
	namespace, base := archive.SplitTitle(a.Title)
	slug := a.Slug
	if slug == "" {
		slug = Slugify(a.Title)
	}
	return PageIndexEntry{
		ID:          a.ID,
		Title:       a.Title,
		Type:        PageStatic,
		Slug:        slug,
		Summary:     a.Summary,
		LastUpdated: a.UpdatedAt,
		Detail: StaticDetail{
			Namespace: namespace,
			BaseName:  base,
		},
	}
}

func regionEntry(r world.Region, snap *world.Snapshot) PageIndexEntry {
	return PageIndexEntry{
		ID:          r.ID,
		Title:       r.Label,
		Type:        PageRegion,
		Slug:        Slugify(r.Label),
		Summary:     r.Description,
		LastUpdated: r.CreatedAt,
		Detail: RegionDetail{
			Culture:   r.Culture,
			MemberIDs: regionMembers(r.ID, snap),
		},
	}
}

// regionMembers scans all entities for direct membership (a matching
// region id) or secondary membership (any relationship touching a direct
// member). Results are sorted for stable output.
func regionMembers(regionID string, snap *world.Snapshot) []string {
	direct := make(map[string]bool)
	for _, e := range snap.Entities {
		if e.RegionID == regionID {
			direct[e.ID] = true
		}
	}

	members := make(map[string]bool)
	for id := range direct {
		members[id] = true
	}
	for _, rel := range snap.Relationships {
		if direct[rel.TargetID] {
			members[rel.SourceID] = true
		}
		if direct[rel.SourceID] {
			members[rel.TargetID] = true
		}
	}

	out := make([]string, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// mergeRegions combines seed-defined regions with emergent regions that
// entities reference but no seed declares.
func mergeRegions(snap *world.Snapshot) []world.Region {
	known := make(map[string]bool)
	regions := make([]world.Region, 0, len(snap.Regions))
	for _, r := range snap.Regions {
		if known[r.ID] {
			continue
		}
		known[r.ID] = true
		regions = append(regions, r)
	}

	var emergent []world.Region
	for _, e := range snap.Entities {
		if e.RegionID == "" || known[e.RegionID] {
			continue
		}
		known[e.RegionID] = true
		emergent = append(emergent, world.Region{
			ID:      e.RegionID,
			Label:   labelFromID(e.RegionID),
			Culture: e.Culture,
		})
	}
	sort.Slice(emergent, func(i, j int) bool { return emergent[i].ID < emergent[j].ID })
	return append(regions, emergent...)
}

// labelFromID turns a region id like "the-shattered-coast" into a readable
// label.
func labelFromID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = titleCase(w)
	}
	if len(words) == 0 {
		return id
	}
	return strings.Join(words, " ")
}

func eraNamesByID(entities []world.Entity) map[string]string {
	names := make(map[string]string)
	for _, e := range entities {
		if e.Kind == world.EntityKindEra {
			names[e.ID] = e.Name
		}
	}
	return names
}

// touchesEntity reports whether an event involves the entity as subject,
// object or effect target.
func touchesEntity(ev world.NarrativeEvent, entityID string) bool {
	if ev.Subject.ID == entityID {
		return true
	}
	if ev.Object != nil && ev.Object.ID == entityID {
		return true
	}
	for _, eff := range ev.Effects {
		if eff.EntityID == entityID {
			return true
		}
	}
	return false
}
