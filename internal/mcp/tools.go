package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listHubsTool defines the list_hubs MCP tool.
var listHubsTool = mcp.NewTool("list_hubs",
	mcp.WithDescription("List every reference hub with its title and entry count."),
)

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the sections of a hub with their entry counts and entry types."),
	mcp.WithString("hub",
		mcp.Required(),
		mcp.Description("Hub name, e.g. references/formal-logic"),
	),
)

// searchEntriesTool defines the search_entries MCP tool.
var searchEntriesTool = mcp.NewTool("search_entries",
	mcp.WithDescription("Find entries of a hub whose title, author or description contain the query (case-insensitive substring match)."),
	mcp.WithString("hub",
		mcp.Required(),
		mcp.Description("Hub name"),
	),
	mcp.WithString("query",
		mcp.Description("Substring to search for; empty lists every entry"),
	),
	mcp.WithString("type",
		mcp.Description("Only return entries of this type"),
		mcp.Enum("book", "notes", "video", "course", "code", "data"),
	),
	mcp.WithString("section",
		mcp.Description("Only search this section id; all sections when omitted"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 20)"),
	),
)

// hubStatsTool defines the hub_stats MCP tool.
var hubStatsTool = mcp.NewTool("hub_stats",
	mcp.WithDescription("Get entry, section and per-type counts for a hub."),
	mcp.WithString("hub",
		mcp.Required(),
		mcp.Description("Hub name"),
	),
)
