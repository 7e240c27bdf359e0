package wiki

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Candidate is one linkable name and the page id it resolves to.
type Candidate struct {
	Name string
	ID   string
}

// AutoLinker wraps the first mention of each known name per logical section
// in [[...]] wikilink markup. Headings are never linked, matches inside an
// existing bracket pair are skipped, and later mentions of an already
// linked name in the same section are left alone.
type AutoLinker struct {
	re *regexp.Regexp
}

// NewAutoLinker compiles one case-insensitive, word-boundary-anchored
// alternation over all candidate names. Names under three characters are
// discarded; the rest are ordered longest first so multi-word names win
// over shorter names that are substrings of them.
func NewAutoLinker(candidates []Candidate) *AutoLinker {
	var names []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		name := strings.TrimSpace(c.Name)
		if utf8.RuneCountInString(name) < 3 {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return &AutoLinker{}
	}

	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	re := regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	return &AutoLinker{re: re}
}

// Link returns text with recognized names wrapped in wikilink markup. The
// input is split on heading lines; each non-heading segment is a logical
// section with its own first-occurrence bookkeeping.
func (l *AutoLinker) Link(text string) string {
	if l.re == nil || text == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	var out []string
	var segment []string

	flush := func() {
		if len(segment) == 0 {
			return
		}
		out = append(out, l.linkSegment(strings.Join(segment, "\n")))
		segment = segment[:0]
	}

	for _, line := range lines {
		if isHeadingLine(line) {
			flush()
			out = append(out, line)
			continue
		}
		segment = append(segment, line)
	}
	flush()

	return strings.Join(out, "\n")
}

// linkSegment wraps first mentions within one logical section, scanning
// left to right and tracking bracket depth so text already inside [[...]]
// is never re-linked.
func (l *AutoLinker) linkSegment(seg string) string {
	matches := l.re.FindAllStringIndex(seg, -1)
	if len(matches) == 0 {
		return seg
	}

	var b strings.Builder
	linked := make(map[string]bool)
	depth := 0
	last := 0

	for _, m := range matches {
		for _, r := range seg[last:m[0]] {
			switch r {
			case '[':
				depth++
			case ']':
				depth--
			}
		}
		b.WriteString(seg[last:m[0]])

		name := seg[m[0]:m[1]]
		key := strings.ToLower(name)
		if depth > 0 {
			// An existing bracketed mention counts as the section's first.
			b.WriteString(name)
			linked[key] = true
		} else if linked[key] {
			b.WriteString(name)
		} else {
			b.WriteString("[[")
			b.WriteString(name)
			b.WriteString("]]")
			linked[key] = true
		}
		last = m[1]
	}
	b.WriteString(seg[last:])
	return b.String()
}

func isHeadingLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}
