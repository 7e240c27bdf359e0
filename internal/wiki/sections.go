package wiki

import (
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

// wikilinkRe matches [[Name]] and [[Name|label]] forms.
var wikilinkRe = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|[^\[\]]*)?\]\]`)

// splitSections breaks markdown content into heading-delimited sections.
// Text before the first heading becomes an untitled overview section. When
// dropTitle is set, a leading top-level heading is treated as a duplicate
// of the page title and discarded.
func splitSections(content string, dropTitle bool) []Section {
	lines := strings.Split(content, "\n")

	// Discard a leading H1: chronicles repeat their own title there.
	if dropTitle {
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if m := headingRe.FindStringSubmatch(line); m != nil && len(m[1]) == 1 {
				lines = lines[i+1:]
			}
			break
		}
	}

	var sections []Section
	current := Section{ID: "overview", Heading: "Overview", Level: 2}
	var body []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		if text != "" || len(sections) > 0 {
			current.Text = text
			sections = append(sections, current)
		}
		body = body[:0]
	}

	started := false
	for _, line := range lines {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			if started || strings.TrimSpace(strings.Join(body, "\n")) != "" {
				flush()
			}
			started = true
			heading := strings.TrimSpace(m[2])
			current = Section{
				ID:      Slugify(heading),
				Heading: heading,
				Level:   len(m[1]),
			}
			body = body[:0]
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// extractLinkNames returns the bracketed names in text, in order, without
// duplicates (case-insensitive).
func extractLinkNames(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range wikilinkRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		key := strings.ToLower(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	return names
}
