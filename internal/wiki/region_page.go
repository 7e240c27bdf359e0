package wiki

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chris-arsenault/lorewiki/internal/world"
)

// synthesizeRegion builds an overview section plus one member table per
// distinct entity kind present in the region.
func (s *Synthesizer) synthesizeRegion(page *WikiPage, entry PageIndexEntry, d RegionDetail) {
	members := make([]world.Entity, 0, len(d.MemberIDs))
	for _, id := range d.MemberIDs {
		if e, ok := s.snap.Entity(id); ok {
			members = append(members, e)
		}
	}

	var overview strings.Builder
	if entry.Summary != "" {
		overview.WriteString(entry.Summary)
		overview.WriteString("\n\n")
	}
	if d.Culture != "" {
		fmt.Fprintf(&overview, "Predominant culture: %s.\n", d.Culture)
	}
	fmt.Fprintf(&overview, "The region counts %d known members.", len(members))

	sections := []Section{{
		ID:      "overview",
		Heading: "Overview",
		Level:   2,
		Text:    s.linker.Link(strings.TrimSpace(overview.String())),
	}}

	byKind := make(map[string][]world.Entity)
	for _, e := range members {
		byKind[e.Kind] = append(byKind[e.Kind], e)
	}
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		group := byKind[kind]
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })

		var b strings.Builder
		b.WriteString("| Name | Subtype | Status |\n|---|---|---|\n")
		for _, e := range group {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", s.wikilink(e.Name), e.Subtype, e.Status)
		}
		heading := titleCase(kind)
		sections = append(sections, Section{
			ID:      Slugify(heading),
			Heading: heading,
			Level:   2,
			Text:    strings.TrimSpace(b.String()),
		})
	}

	page.Sections = sections
	page.Infobox = regionInfobox(d, len(members))
}

func regionInfobox(d RegionDetail, memberCount int) []InfoField {
	var fields []InfoField
	if d.Culture != "" {
		fields = append(fields, InfoField{Label: "Culture", Value: d.Culture})
	}
	fields = append(fields, InfoField{Label: "Members", Value: fmt.Sprintf("%d", memberCount)})
	return fields
}
