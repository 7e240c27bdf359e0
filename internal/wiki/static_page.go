package wiki

import (
	"fmt"
	"regexp"
	"strings"
)

// templateRe matches {{token}} and {{token:argument}} placeholders.
var templateRe = regexp.MustCompile(`\{\{\s*([a-zA-Z_]+)(?::([^}]*))?\s*\}\}`)

// synthesizeStatic expands template placeholders against live simulation
// data, then splits and links the article like any other page.
func (s *Synthesizer) synthesizeStatic(page *WikiPage, entry PageIndexEntry, d StaticDetail) {
	a, ok := s.articles[entry.ID]
	if !ok {
		return
	}

	content := s.expandTemplates(a.Content)
	sections := splitSections(content, false)
	for i := range sections {
		sections[i].Text = s.linker.Link(sections[i].Text)
	}
	page.Sections = sections

	if d.Namespace != "" {
		page.Infobox = []InfoField{{Label: "Namespace", Value: d.Namespace}}
	}
}

// expandTemplates substitutes the recognized placeholder tokens with live
// world data. Unrecognized tokens pass through verbatim.
func (s *Synthesizer) expandTemplates(content string) string {
	return templateRe.ReplaceAllStringFunc(content, func(match string) string {
		m := templateRe.FindStringSubmatch(match)
		token, arg := m[1], strings.TrimSpace(m[2])

		switch token {
		case "current_tick":
			return fmt.Sprintf("%d", s.snap.CurrentTick)
		case "current_era":
			if era, ok := s.snap.CurrentEra(); ok {
				return era.Name
			}
			return "an unrecorded era"
		case "culture_list":
			cultures := s.snap.Cultures()
			if len(cultures) == 0 {
				return "no known cultures"
			}
			return strings.Join(cultures, ", ")
		case "entity_count":
			if arg == "" {
				return fmt.Sprintf("%d", len(s.snap.Entities))
			}
			count := 0
			for _, e := range s.snap.Entities {
				if e.Kind == arg {
					count++
				}
			}
			return fmt.Sprintf("%d", count)
		case "entity":
			if id, ok := s.index.Refs.EntityID(arg); ok {
				if e, found := s.snap.Entity(id); found {
					if e.Summary != "" {
						return e.Summary
					}
					return e.Name
				}
			}
			return match
		default:
			return match
		}
	})
}
