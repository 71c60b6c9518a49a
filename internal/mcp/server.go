package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes hub browsing tools.
type Server struct {
	reg    *registry.Registry
	policy view.Policy
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server over the hubs of reg.
func NewServer(reg *registry.Registry, policy view.Policy) *Server {
	s := &Server{
		reg:    reg,
		policy: policy,
	}

	s.mcp = server.NewMCPServer(
		"refhub",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listHubsTool, s.handleListHubs)
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(searchEntriesTool, s.handleSearchEntries)
	s.mcp.AddTool(hubStatsTool, s.handleHubStats)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
