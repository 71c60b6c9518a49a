package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/refhub/internal/catalog"
	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

// Match is one search result with its location in the hub.
type Match struct {
	Section    catalog.Section
	Subsection string
	Entry      catalog.Entry
}

// Search returns the entries of hub visible for filter and query, in catalog
// order. An empty section searches every section.
func Search(hub *registry.Hub, policy view.Policy, section, filter, query string) []Match {
	st := view.State{Filter: filter, Query: view.NormalizeQuery(query)}
	if st.Filter == "" {
		st.Filter = view.FilterAll
	}

	var sections []catalog.Section
	if section != "" {
		sec, ok := hub.Store.Section(section)
		if !ok {
			return nil
		}
		sections = []catalog.Section{sec}
	} else {
		sections = hub.Store.Sections()
	}

	var out []Match
	for _, sec := range sections {
		for _, sub := range sec.Subsections {
			for _, e := range sub.Entries {
				if view.Visible(e, st, policy) {
					out = append(out, Match{Section: sec, Subsection: sub.Title, Entry: e})
				}
			}
		}
	}
	return out
}

func (s *Server) hub(request mcp.CallToolRequest) (*registry.Hub, *mcp.CallToolResult) {
	name, err := request.RequireString("hub")
	if err != nil {
		return nil, mcp.NewToolResultError("missing required parameter: hub")
	}
	h, err := s.reg.Get(name)
	if errors.Is(err, registry.ErrHubNotFound) {
		return nil, mcp.NewToolResultError(fmt.Sprintf("hub %q not found. Use list_hubs to see available hubs.", name))
	}
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	return h, nil
}

// handleListHubs lists every registered hub.
func (s *Server) handleListHubs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hubs := s.reg.Hubs()
	if len(hubs) == 0 {
		return mcp.NewToolResultText("No hubs found. Add catalog files to the hubs directory."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d hub(s):\n", len(hubs))
	for _, h := range hubs {
		fmt.Fprintf(&sb, "- %s: %s (%d entries, %d sections)\n",
			h.Name, h.Title, h.Store.TotalEntries(), len(h.Store.Sections()))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleListSections lists the sections of one hub.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, errResult := s.hub(request)
	if errResult != nil {
		return errResult, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Sections of %s:\n", h.Title)
	for _, sec := range h.Store.Sections() {
		types := h.Store.TypesIn(sec)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		fmt.Fprintf(&sb, "- %s (%s): %d entries [%s]\n", sec.ID, sec.Label, sec.EntryCount(), strings.Join(names, ", "))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSearchEntries runs the page predicate over a hub.
func (s *Server) handleSearchEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, errResult := s.hub(request)
	if errResult != nil {
		return errResult, nil
	}

	limit := request.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	section := request.GetString("section", "")
	if section != "" {
		if _, ok := h.Store.Section(section); !ok {
			return mcp.NewToolResultError(fmt.Sprintf("section %q not found in hub %q", section, h.Name)), nil
		}
	}

	matches := Search(h, s.policy, section, request.GetString("type", ""), request.GetString("query", ""))
	if len(matches) == 0 {
		return mcp.NewToolResultText("No entries match."), nil
	}
	return mcp.NewToolResultText(formatMatches(matches, limit)), nil
}

// handleHubStats returns the header statistic of a hub.
func (s *Server) handleHubStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, errResult := s.hub(request)
	if errResult != nil {
		return errResult, nil
	}

	st := view.ComputeStats(h.Store)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", h.Title)
	fmt.Fprintf(&sb, "Entries: %d\nSections: %d\nSubsections: %d\n", st.Entries, st.Sections, st.Subsections)
	for _, tc := range st.ByType {
		fmt.Fprintf(&sb, "- %s: %d\n", tc.Type, tc.Count)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatMatches renders up to limit matches in a plain text format for
// agent consumption.
func formatMatches(matches []Match, limit int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d entr(ies)", len(matches))
	if len(matches) > limit {
		fmt.Fprintf(&sb, ", showing %d", limit)
		matches = matches[:limit]
	}
	sb.WriteString(":\n")

	for i, m := range matches {
		fmt.Fprintf(&sb, "\n--- Result %d ---\n", i+1)
		fmt.Fprintf(&sb, "Title: %s\n", m.Entry.Title)
		if m.Entry.Author != "" {
			fmt.Fprintf(&sb, "Author: %s\n", m.Entry.Author)
		}
		fmt.Fprintf(&sb, "Type: %s\n", m.Entry.Type)
		if m.Entry.Level != catalog.LevelNone {
			fmt.Fprintf(&sb, "Level: %s\n", m.Entry.Level)
		}
		fmt.Fprintf(&sb, "Section: %s / %s\n", m.Section.Label, m.Subsection)
		fmt.Fprintf(&sb, "URL: %s\n", m.Entry.URL)
		if m.Entry.Desc != "" {
			fmt.Fprintf(&sb, "\n%s\n", m.Entry.Desc)
		}
	}
	return sb.String()
}
