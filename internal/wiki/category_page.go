package wiki

import (
	"fmt"
	"sort"
	"strings"
)

// synthesizeCategory builds the single "Pages" section listing every entry
// that carries the category id, each rendered as a wikilinked list item.
func (s *Synthesizer) synthesizeCategory(page *WikiPage, entry PageIndexEntry, d CategoryDetail) {
	titles := make([]string, 0, len(d.MemberIDs))
	for _, id := range d.MemberIDs {
		if e, ok := s.index.Entry(id); ok {
			titles = append(titles, e.Title)
		}
	}
	sort.Strings(titles)

	var b strings.Builder
	for _, title := range titles {
		fmt.Fprintf(&b, "- [[%s]]\n", title)
	}

	page.Sections = []Section{{
		ID:      "pages",
		Heading: "Pages",
		Level:   2,
		Text:    strings.TrimSpace(b.String()),
	}}
	page.Infobox = []InfoField{
		{Label: "Dimension", Value: d.Dimension},
		{Label: "Pages", Value: fmt.Sprintf("%d", len(d.MemberIDs))},
	}
}
