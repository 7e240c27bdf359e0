package site

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chris-arsenault/lorewiki/internal/wiki"
)

var wikilinkRe = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|([^\[\]]*))?\]\]`)

// PageMarkdown flattens a synthesized page into one markdown document:
// title, infobox table, sections with headings and anchored images, and
// wikilinks rewritten to relative HTML links.
func PageMarkdown(page *wiki.WikiPage, w *wiki.Wiki) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", page.Title)

	if len(page.Aliases) > 0 {
		fmt.Fprintf(&b, "*Also known as: %s*\n\n", strings.Join(page.Aliases, ", "))
	}

	if len(page.Infobox) > 0 {
		b.WriteString("| | |\n|---|---|\n")
		for _, field := range page.Infobox {
			fmt.Fprintf(&b, "| **%s** | %s |\n", field.Label, field.Value)
		}
		b.WriteString("\n")
	}

	for _, sec := range page.Sections {
		if sec.Heading != "" {
			level := sec.Level
			if level < 2 {
				level = 2
			}
			fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", level), sec.Heading)
		}
		for _, img := range sec.Images {
			fmt.Fprintf(&b, "![%s](%s)\n\n", img.Caption, img.Path)
		}
		if sec.Text != "" {
			b.WriteString(sec.Text)
			b.WriteString("\n\n")
		}
	}

	if len(page.Categories) > 0 {
		b.WriteString("---\n\nCategories: ")
		for i, cat := range page.Categories {
			if i > 0 {
				b.WriteString(" · ")
			}
			if entry, ok := w.Entry(cat); ok {
				fmt.Fprintf(&b, "[%s](%s.html)", entry.Title, entry.Slug)
			} else {
				b.WriteString(cat)
			}
		}
		b.WriteString("\n")
	}

	return RewriteWikilinks(b.String(), w)
}

// RewriteWikilinks converts [[Name]] and [[Name|label]] markup to relative
// markdown links against the pages the names resolve to. Unresolved names
// degrade to their plain text.
func RewriteWikilinks(source string, w *wiki.Wiki) string {
	return wikilinkRe.ReplaceAllStringFunc(source, func(match string) string {
		m := wikilinkRe.FindStringSubmatch(match)
		name := strings.TrimSpace(m[1])
		label := strings.TrimSpace(m[2])
		if label == "" {
			label = name
		}

		entry, ok := resolveEntry(name, w)
		if !ok {
			return label
		}
		return fmt.Sprintf("[%s](%s.html)", label, entry.Slug)
	})
}

// resolveEntry applies the same name resolution the synthesizer used when
// it produced the link.
func resolveEntry(name string, w *wiki.Wiki) (wiki.PageIndexEntry, bool) {
	id, ok := w.Resolve(name)
	if !ok {
		return wiki.PageIndexEntry{}, false
	}
	return w.Entry(id)
}
