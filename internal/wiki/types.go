// Package wiki computes a navigable, cross-referenced encyclopedia from a
// world snapshot and the authored archive. It builds a lightweight page
// index eagerly, synthesizes full pages lazily, and resolves free-text
// wikilinks between pages. Pages are never persisted; they are always
// recomputed from source state.
package wiki

import (
	"strings"
	"time"
)

// PageType identifies the kind of page behind an index entry. The set is
// closed; the synthesizer dispatches exhaustively over it.
type PageType string

const (
	PageEntity    PageType = "entity"
	PageEra       PageType = "era"
	PageChronicle PageType = "chronicle"
	PageStatic    PageType = "static"
	PageCategory  PageType = "category"
	PageRegion    PageType = "region"
)

// Detail is the type-specific payload of an index entry. Exactly one
// concrete detail type exists per page type.
type Detail interface {
	pageType() PageType
}

// EntityDetail describes an entity or era page.
type EntityDetail struct {
	Kind         string
	Subtype      string
	Culture      string
	Status       string
	RegionID     string
	Prominence   int
	ProfileImage string
}

func (d EntityDetail) pageType() PageType {
	if d.Kind == "era" {
		return PageEra
	}
	return PageEntity
}

// ChronicleDetail describes a chronicle page.
type ChronicleDetail struct {
	Format       string
	EntrypointID string
}

func (ChronicleDetail) pageType() PageType { return PageChronicle }

// StaticDetail describes a hand-authored article page.
type StaticDetail struct {
	Namespace string
	BaseName  string
}

func (StaticDetail) pageType() PageType { return PageStatic }

// CategoryDetail describes a synthesized category page. Category ids are
// deterministic: "{dimension}-{value}".
type CategoryDetail struct {
	Dimension string
	Value     string
	MemberIDs []string
}

func (CategoryDetail) pageType() PageType { return PageCategory }

// RegionDetail describes a region page.
type RegionDetail struct {
	Culture   string
	MemberIDs []string
}

func (RegionDetail) pageType() PageType { return PageRegion }

// PageIndexEntry is the lightweight view of one page: everything navigation
// and search need without expanding full content. LinkedEntities stays empty
// until full synthesis.
type PageIndexEntry struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Type           PageType  `json:"type"`
	Slug           string    `json:"slug"`
	Summary        string    `json:"summary,omitempty"`
	Aliases        []string  `json:"aliases,omitempty"`
	Categories     []string  `json:"categories,omitempty"`
	LinkedEntities []string  `json:"linked_entities,omitempty"`
	LastUpdated    time.Time `json:"last_updated"`
	Detail         Detail    `json:"-"`
}

// SectionImage is an illustration anchored to a section.
type SectionImage struct {
	Path    string `json:"path"`
	Caption string `json:"caption,omitempty"`
}

// Section is one heading-delimited block of a synthesized page. Text
// carries wikilink markup of the form [[Name]].
type Section struct {
	ID      string         `json:"id"`
	Heading string         `json:"heading"`
	Level   int            `json:"level"`
	Text    string         `json:"text"`
	Images  []SectionImage `json:"images,omitempty"`
}

// InfoField is one row of a page's infobox.
type InfoField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// WikiPage is the fully hydrated view of one page.
type WikiPage struct {
	ID             string      `json:"id"`
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Type           PageType    `json:"type"`
	Aliases        []string    `json:"aliases,omitempty"`
	Sections       []Section   `json:"sections"`
	Summary        string      `json:"summary,omitempty"`
	Infobox        []InfoField `json:"infobox,omitempty"`
	Categories     []string    `json:"categories,omitempty"`
	LinkedEntities []string    `json:"linked_entities,omitempty"`
	LastUpdated    time.Time   `json:"last_updated"`
}

// DisambigCandidate is one member of a disambiguation group, enough to
// render a "see also" notice.
type DisambigCandidate struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Namespace  string   `json:"namespace,omitempty"`
	Type       PageType `json:"type"`
	EntityKind string   `json:"entity_kind,omitempty"`
}

// Slugify lowercases a title and collapses runs of non-alphanumerics into
// single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
