package site

import (
	"encoding/json"
	"os"

	"github.com/ziadkadry99/refhub/internal/catalog"
	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

// SearchEntry is one entry of a hub, flattened for client-side search.
type SearchEntry struct {
	Section    string            `json:"section"`
	Subsection string            `json:"subsection"`
	Title      string            `json:"title"`
	Author     string            `json:"author,omitempty"`
	Type       catalog.EntryType `json:"type"`
	Level      catalog.Level     `json:"level,omitempty"`
	URL        string            `json:"url"`
	Haystack   string            `json:"haystack"`
}

// CatalogFile is the content of <hub>/catalog.json in a built site.
type CatalogFile struct {
	Hub     string          `json:"hub"`
	Version string          `json:"version"`
	Catalog catalog.Catalog `json:"catalog"`
	Stats   view.Stats      `json:"stats"`
	Index   []SearchEntry   `json:"index"`
}

// BuildSearchIndex flattens every entry of hub in catalog order. Haystacks
// are built with the same fields as the server-side predicate.
func BuildSearchIndex(hub *registry.Hub, policy view.Policy) []SearchEntry {
	var entries []SearchEntry
	for _, sec := range hub.Store.Sections() {
		for _, sub := range sec.Subsections {
			for _, e := range sub.Entries {
				entries = append(entries, SearchEntry{
					Section:    sec.ID,
					Subsection: sub.Title,
					Title:      e.Title,
					Author:     e.Author,
					Type:       e.Type,
					Level:      e.Level,
					URL:        e.URL,
					Haystack:   view.Haystack(e, policy),
				})
			}
		}
	}
	return entries
}

// WriteSearchIndex writes the catalog file for hub to outputPath.
func WriteSearchIndex(hub *registry.Hub, policy view.Policy, outputPath string) error {
	data, err := json.MarshalIndent(CatalogFile{
		Hub:     hub.Name,
		Version: hub.Version,
		Catalog: hub.Store.Catalog(),
		Stats:   view.ComputeStats(hub.Store),
		Index:   BuildSearchIndex(hub, policy),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
