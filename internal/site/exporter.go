// Package site exports the whole wiki as a static HTML site: every page
// the index knows about, a JSON search index, and a sidebar grouped by
// page type.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/chris-arsenault/lorewiki/internal/wiki"
)

// Exporter renders the wiki into a static HTML site.
type Exporter struct {
	Wiki      *wiki.Wiki
	OutputDir string
	SiteTitle string

	// Progress, when set, is called once per exported page.
	Progress func(pageID string)
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title     string
	SiteTitle string
	Content   template.HTML
	NavHTML   template.HTML
}

// Export synthesizes and writes every page. Returns the number of pages
// written.
func (x *Exporter) Export() (int, error) {
	entries := x.Wiki.Index()
	if len(entries) == 0 {
		return 0, fmt.Errorf("the wiki index is empty; load a snapshot first")
	}

	if err := os.MkdirAll(x.OutputDir, 0o755); err != nil {
		return 0, err
	}

	if err := WriteSearchIndex(entries, filepath.Join(x.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(x.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	navHTML := buildNav(entries)

	written := 0
	for _, entry := range entries {
		page, ok := x.Wiki.Page(entry.ID)
		if !ok {
			continue
		}
		if err := x.renderPage(md, tmpl, navHTML, page); err != nil {
			return written, fmt.Errorf("rendering %s: %w", entry.ID, err)
		}
		written++
		if x.Progress != nil {
			x.Progress(entry.ID)
		}
	}

	if err := x.writeHome(tmpl, navHTML, entries); err != nil {
		return written, err
	}

	return written, nil
}

// renderPage converts one synthesized page to an HTML file named after its
// slug.
func (x *Exporter) renderPage(md goldmark.Markdown, tmpl *template.Template, navHTML string, page *wiki.WikiPage) error {
	source := PageMarkdown(page, x.Wiki)

	var htmlBuf bytes.Buffer
	if err := md.Convert([]byte(source), &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	data := pageData{
		Title:     page.Title,
		SiteTitle: x.SiteTitle,
		Content:   template.HTML(htmlBuf.String()),
		NavHTML:   template.HTML(navHTML),
	}

	outPath := filepath.Join(x.OutputDir, page.Slug+".html")
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// writeHome emits index.html: a directory of the corpus grouped by type.
func (x *Exporter) writeHome(tmpl *template.Template, navHTML string, entries []wiki.PageIndexEntry) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "<h1>%s</h1>\n", template.HTMLEscapeString(x.SiteTitle))
	fmt.Fprintf(&b, "<p>%d pages across the corpus.</p>\n", len(entries))

	for _, group := range groupByType(entries) {
		fmt.Fprintf(&b, "<h2>%s</h2>\n<ul>\n", template.HTMLEscapeString(group.label))
		for _, e := range group.entries {
			fmt.Fprintf(&b, `<li><a href="%s.html">%s</a></li>`+"\n",
				e.Slug, template.HTMLEscapeString(e.Title))
		}
		b.WriteString("</ul>\n")
	}

	data := pageData{
		Title:     x.SiteTitle,
		SiteTitle: x.SiteTitle,
		Content:   template.HTML(b.String()),
		NavHTML:   template.HTML(navHTML),
	}

	f, err := os.Create(filepath.Join(x.OutputDir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}

type typeGroup struct {
	label   string
	entries []wiki.PageIndexEntry
}

// navOrder fixes the sidebar grouping order.
var navOrder = []struct {
	t     wiki.PageType
	label string
}{
	{wiki.PageEra, "Eras"},
	{wiki.PageEntity, "Entities"},
	{wiki.PageRegion, "Regions"},
	{wiki.PageChronicle, "Chronicles"},
	{wiki.PageStatic, "Articles"},
	{wiki.PageCategory, "Categories"},
}

func groupByType(entries []wiki.PageIndexEntry) []typeGroup {
	byType := make(map[wiki.PageType][]wiki.PageIndexEntry)
	for _, e := range entries {
		byType[e.Type] = append(byType[e.Type], e)
	}

	var groups []typeGroup
	for _, g := range navOrder {
		group := byType[g.t]
		if len(group) == 0 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].Title < group[j].Title })
		groups = append(groups, typeGroup{label: g.label, entries: group})
	}
	return groups
}

// buildNav renders the sidebar as nested lists grouped by page type.
func buildNav(entries []wiki.PageIndexEntry) string {
	var b bytes.Buffer
	b.WriteString(`<ul><li class="home-link"><a href="index.html">Home</a></li></ul>` + "\n")
	for _, group := range groupByType(entries) {
		fmt.Fprintf(&b, `<div class="nav-group"><span class="nav-group-label">%s</span><ul>`+"\n",
			template.HTMLEscapeString(group.label))
		for _, e := range group.entries {
			fmt.Fprintf(&b, `<li><a href="%s.html">%s</a></li>`+"\n",
				e.Slug, template.HTMLEscapeString(e.Title))
		}
		b.WriteString("</ul></div>\n")
	}
	return b.String()
}
