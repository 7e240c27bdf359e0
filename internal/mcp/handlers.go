package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleSearchWiki searches the lightweight page index.
func (s *Server) handleSearchWiki(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	results := s.wiki.Search(query, limit)
	if len(results) == 0 {
		return mcp.NewToolResultText("No pages matched the query."), nil
	}

	var b strings.Builder
	for _, e := range results {
		fmt.Fprintf(&b, "- %s [%s] id=%s", e.Title, e.Type, e.ID)
		if e.Summary != "" {
			fmt.Fprintf(&b, " — %s", e.Summary)
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetPage synthesizes and returns one full page as readable text.
func (s *Server) handleGetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID, err := request.RequireString("page_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: page_id"), nil
	}

	page, ok := s.wiki.Page(pageID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no page with id %q; use search_wiki to find valid ids", pageID)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", page.Title, page.Type)
	if len(page.Aliases) > 0 {
		fmt.Fprintf(&b, "Also known as: %s\n\n", strings.Join(page.Aliases, ", "))
	}
	for _, field := range page.Infobox {
		fmt.Fprintf(&b, "%s: %s\n", field.Label, field.Value)
	}
	if len(page.Infobox) > 0 {
		b.WriteString("\n")
	}
	for _, sec := range page.Sections {
		if sec.Heading != "" {
			fmt.Fprintf(&b, "## %s\n\n", sec.Heading)
		}
		b.WriteString(sec.Text)
		b.WriteString("\n\n")
	}
	if len(page.LinkedEntities) > 0 {
		fmt.Fprintf(&b, "Cross-references: %s\n", strings.Join(page.LinkedEntities, ", "))
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleListCategories lists observed categories with counts.
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cats := s.wiki.Categories()
	if len(cats) == 0 {
		return mcp.NewToolResultText("The wiki has no categories yet."), nil
	}

	var b strings.Builder
	for _, c := range cats {
		fmt.Fprintf(&b, "- %s (%d pages) id=%s\n", c.Display, c.PageCount, c.ID)
	}
	return mcp.NewToolResultText(b.String()), nil
}
