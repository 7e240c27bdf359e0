// Package mcp exposes the wiki to AI agents over the Model Context
// Protocol: search, full page retrieval, and category listing.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/chris-arsenault/lorewiki/internal/wiki"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes wiki tools.
type Server struct {
	wiki *wiki.Wiki
	mcp  *server.MCPServer
}

// NewServer creates a new MCP server over a populated wiki.
func NewServer(w *wiki.Wiki) *Server {
	s := &Server{wiki: w}

	s.mcp = server.NewMCPServer(
		"lorewiki",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchWikiTool, s.handleSearchWiki)
	s.mcp.AddTool(getPageTool, s.handleGetPage)
	s.mcp.AddTool(listCategoriesTool, s.handleListCategories)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
