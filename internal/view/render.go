package view

import (
	"html/template"

	"github.com/ziadkadry99/refhub/internal/catalog"
)

// Render is everything a host needs to draw a page for one State.
type Render struct {
	Section SectionMeta    `json:"section"`
	Found   bool           `json:"found"`
	Tabs    []Tab          `json:"tabs"`
	Filters []FilterOption `json:"filters"`
	Groups  []Group        `json:"groups"`
	Visible int            `json:"visible"`
	Total   int            `json:"total"`
	State   State          `json:"state"`
}

// SectionMeta describes the active section.
type SectionMeta struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Intro string `json:"intro,omitempty"`
}

// Tab is one section selector.
type Tab struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Icon   string `json:"icon,omitempty"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// FilterOption is one button of the filter bar.
type FilterOption struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// Group is a subsection with at least one visible entry.
type Group struct {
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

// Card is a visible entry with highlighted text fields.
type Card struct {
	Title    template.HTML     `json:"title"`
	Author   template.HTML     `json:"author,omitempty"`
	Desc     template.HTML     `json:"desc,omitempty"`
	Type     catalog.EntryType `json:"type"`
	Level    catalog.Level     `json:"level,omitempty"`
	URL      string            `json:"url"`
	Haystack string            `json:"-"`
}

// RenderPage computes the Render for st. An unknown section renders nothing
// but the tabs and the "all" filter.
func RenderPage(store *catalog.Store, st State, p Policy) Render {
	r := Render{
		Total: store.TotalEntries(),
		State: st,
	}

	for _, sec := range store.Sections() {
		r.Tabs = append(r.Tabs, Tab{
			ID:     sec.ID,
			Label:  sec.Label,
			Icon:   sec.Icon,
			Count:  sec.EntryCount(),
			Active: sec.ID == st.SectionID,
		})
	}

	sec, ok := store.Section(st.SectionID)
	r.Found = ok
	r.Filters = buildFilters(store, sec, st.Filter)
	if !ok {
		return r
	}

	r.Section = SectionMeta{ID: sec.ID, Label: sec.Label, Icon: sec.Icon, Intro: sec.Intro}

	for _, sub := range sec.Subsections {
		var cards []Card
		for _, e := range sub.Entries {
			if !Visible(e, st, p) {
				continue
			}
			cards = append(cards, Card{
				Title:    Highlight(e.Title, st.Query),
				Author:   Highlight(e.Author, st.Query),
				Desc:     Highlight(e.Desc, st.Query),
				Type:     e.Type,
				Level:    e.Level,
				URL:      e.URL,
				Haystack: Haystack(e, p),
			})
		}
		if len(cards) == 0 {
			continue
		}
		r.Groups = append(r.Groups, Group{Title: sub.Title, Cards: cards})
		r.Visible += len(cards)
	}
	return r
}

func buildFilters(store *catalog.Store, sec catalog.Section, active string) []FilterOption {
	if active == "" {
		active = FilterAll
	}
	counts := make(map[catalog.EntryType]int)
	for _, sub := range sec.Subsections {
		for _, e := range sub.Entries {
			counts[e.Type]++
		}
	}

	filters := []FilterOption{{
		Label:  "All",
		Value:  FilterAll,
		Count:  sec.EntryCount(),
		Active: active == FilterAll,
	}}
	for _, t := range store.TypesIn(sec) {
		filters = append(filters, FilterOption{
			Label:  string(t),
			Value:  string(t),
			Count:  counts[t],
			Active: active == string(t),
		})
	}
	return filters
}
