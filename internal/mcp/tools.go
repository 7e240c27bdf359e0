package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchWikiTool defines the search_wiki MCP tool.
var searchWikiTool = mcp.NewTool("search_wiki",
	mcp.WithDescription("Search the world wiki by title, alias or summary. Returns matching page ids and titles."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Free-text search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

// getPageTool defines the get_page MCP tool.
var getPageTool = mcp.NewTool("get_page",
	mcp.WithDescription("Get the fully synthesized wiki page for a page id, including sections, infobox and cross-references."),
	mcp.WithString("page_id",
		mcp.Required(),
		mcp.Description("Id of the page, as returned by search_wiki"),
	),
)

// listCategoriesTool defines the list_categories MCP tool.
var listCategoriesTool = mcp.NewTool("list_categories",
	mcp.WithDescription("List every category in the wiki with its page count."),
)
