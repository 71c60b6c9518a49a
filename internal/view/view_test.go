package view

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ziadkadry99/refhub/internal/catalog"
)

func scenarioStore() *catalog.Store {
	return catalog.NewStore(catalog.Catalog{
		Title: "Swarm",
		Sections: []catalog.Section{{
			ID:    "overview",
			Label: "Overview",
			Subsections: []catalog.Subsection{{
				Title: "Start here",
				Entries: []catalog.Entry{
					{Title: "Boids Algorithm", Type: catalog.TypeVideo, Level: catalog.LevelBeginner, URL: "https://example.com/boids"},
					{Title: "Ant Colony", Type: catalog.TypeNotes, Level: catalog.LevelAdvanced, URL: "https://example.com/aco"},
				},
			}},
		}},
	})
}

func multiStore() *catalog.Store {
	return catalog.NewStore(catalog.Catalog{
		Sections: []catalog.Section{
			{ID: "robots", Label: "Robots", Subsections: []catalog.Subsection{
				{Title: "Soft", Entries: []catalog.Entry{
					{Title: "Octopus Arms", Author: "Laschi", Type: catalog.TypeVideo, Desc: "Soft manipulators", URL: "https://example.com/1"},
					{Title: "Gecko Feet", Author: "Full", Type: catalog.TypeBook, URL: "https://example.com/2"},
				}},
				{Title: "Hard", Entries: []catalog.Entry{
					{Title: "Cheetah", Type: catalog.TypeCode, Level: catalog.LevelIntermediate, URL: "https://example.com/3"},
				}},
			}},
			{ID: "swarms", Label: "Swarms", Subsections: []catalog.Subsection{
				{Title: "Classic", Entries: []catalog.Entry{
					{Title: "Kilobots", Type: catalog.TypeData, URL: "https://example.com/4"},
					{Title: "Robot Flocks", Type: catalog.TypeVideo, URL: "https://example.com/5"},
				}},
			}},
			{ID: "empty", Label: "Empty"},
		},
	})
}

func cardTitles(r Render) []string {
	var titles []string
	for _, g := range r.Groups {
		for _, c := range g.Cards {
			titles = append(titles, string(c.Title))
		}
	}
	return titles
}

func TestInitialState(t *testing.T) {
	c := NewController(multiStore(), DefaultPolicy())
	want := State{SectionID: "robots", Filter: FilterAll}
	if diff := cmp.Diff(want, c.State()); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}

	empty := NewController(catalog.NewStore(catalog.Catalog{}), DefaultPolicy())
	if empty.State().SectionID != "" {
		t.Errorf("empty catalog section = %q, want empty", empty.State().SectionID)
	}
	if r := empty.Render(); r.Found || len(r.Groups) != 0 {
		t.Errorf("empty catalog should render nothing, got %+v", r)
	}
}

func TestScenario(t *testing.T) {
	c := NewController(scenarioStore(), DefaultPolicy())

	if got := cardTitles(c.Render()); !cmp.Equal(got, []string{"Boids Algorithm", "Ant Colony"}) {
		t.Errorf("all/empty titles = %v", got)
	}

	c.SelectFilter("video")
	if got := cardTitles(c.Render()); !cmp.Equal(got, []string{"Boids Algorithm"}) {
		t.Errorf("video titles = %v", got)
	}

	c.SelectFilter(FilterAll)
	c.SetSearch("colony")
	if got := cardTitles(c.Render()); !cmp.Equal(got, []string{"Ant <mark>Colony</mark>"}) {
		t.Errorf("colony titles = %v", got)
	}
}

func TestVisibleCountsMatchTotal(t *testing.T) {
	store := multiStore()
	c := NewController(store, DefaultPolicy())

	sum := 0
	for _, sec := range store.Sections() {
		c.SelectSection(sec.ID)
		r := c.Render()
		sum += r.Visible
		if r.Total != store.TotalEntries() {
			t.Errorf("section %s: Total = %d, want %d", sec.ID, r.Total, store.TotalEntries())
		}
	}
	if sum != store.TotalEntries() {
		t.Errorf("sum of visible = %d, want %d", sum, store.TotalEntries())
	}

	// Total ignores filters and search.
	c.SelectFilter("video")
	c.SetSearch("zzz")
	if r := c.Render(); r.Total != store.TotalEntries() || r.Visible != 0 {
		t.Errorf("filtered render Total=%d Visible=%d", r.Total, r.Visible)
	}
}

func TestFilterBarMatchesSectionTypes(t *testing.T) {
	store := multiStore()
	c := NewController(store, DefaultPolicy())

	for _, sec := range store.Sections() {
		c.SelectSection(sec.ID)
		r := c.Render()

		if len(r.Filters) == 0 || r.Filters[0].Value != FilterAll {
			t.Fatalf("section %s: first filter should be all, got %+v", sec.ID, r.Filters)
		}

		present := make(map[string]bool)
		for _, f := range r.Filters[1:] {
			if present[f.Value] {
				t.Errorf("section %s: duplicate filter %q", sec.ID, f.Value)
			}
			present[f.Value] = true
		}

		distinct := make(map[string]bool)
		for _, sub := range sec.Subsections {
			for _, e := range sub.Entries {
				distinct[string(e.Type)] = true
				if !present[string(e.Type)] {
					t.Errorf("section %s: entry type %q missing from filter bar", sec.ID, e.Type)
				}
			}
		}
		if len(distinct) != len(present) {
			t.Errorf("section %s: filter bar has %d types, section has %d", sec.ID, len(present), len(distinct))
		}
	}
}

func TestFilterBarSkipsUntypedEntries(t *testing.T) {
	store := catalog.NewStore(catalog.Catalog{Sections: []catalog.Section{{
		ID: "s", Label: "S",
		Subsections: []catalog.Subsection{{Title: "T", Entries: []catalog.Entry{
			{Title: "Loose note", URL: "https://example.org/n"},
			{Title: "Tool", Type: catalog.TypeCode, URL: "https://example.org/t"},
		}}},
	}}})
	r := NewController(store, DefaultPolicy()).Render()

	var values []string
	for _, f := range r.Filters {
		if f.Value == "" || f.Label == "" {
			t.Errorf("blank filter button %+v", f)
		}
		values = append(values, f.Value)
	}
	if diff := cmp.Diff([]string{FilterAll, "code"}, values); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
	if r.Filters[0].Count != 2 || r.Visible != 2 {
		t.Errorf("untyped entry should still count under all: filters=%+v visible=%d", r.Filters, r.Visible)
	}
}

func TestSelectFilterIdempotent(t *testing.T) {
	once := NewController(multiStore(), DefaultPolicy())
	once.SelectFilter("video")

	twice := NewController(multiStore(), DefaultPolicy())
	twice.SelectFilter("video")
	twice.SelectFilter("video")

	a, err := json.Marshal(once.Render())
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(twice.Render())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("renders differ:\n%s\n%s", a, b)
	}
}

func TestSearchClearRoundTrip(t *testing.T) {
	c := NewController(multiStore(), DefaultPolicy())
	c.SelectFilter("book")
	before := c.Render()

	c.SetSearch("  Gecko ")
	if c.State().Query != "gecko" {
		t.Errorf("query = %q, want normalized gecko", c.State().Query)
	}
	if c.State().Input != "  Gecko " {
		t.Errorf("input = %q, want raw text kept", c.State().Input)
	}

	c.ClearSearch()
	after := c.Render()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("round trip changed render (-before +after):\n%s", diff)
	}
}

func TestFilteringConjunction(t *testing.T) {
	p := DefaultPolicy()
	st := State{Filter: "video", Query: "bar"}

	typeOnly := catalog.Entry{Title: "foo", Type: catalog.TypeVideo}
	searchOnly := catalog.Entry{Title: "bar", Type: catalog.TypeNotes}
	both := catalog.Entry{Title: "bar", Type: catalog.TypeVideo}

	if Visible(typeOnly, st, p) {
		t.Error("entry matching only the type should be hidden")
	}
	if Visible(searchOnly, st, p) {
		t.Error("entry matching only the search should be hidden")
	}
	if !Visible(both, st, p) {
		t.Error("entry matching both should be visible")
	}
}

func TestSearchFieldsPolicy(t *testing.T) {
	e := catalog.Entry{Title: "Knots", Author: "Adams", Type: catalog.TypeVideo, Level: catalog.LevelBeginner, Desc: "Intro"}
	st := State{Filter: FilterAll, Query: "video"}

	if Visible(e, st, DefaultPolicy()) {
		t.Error("type should not be searched by default")
	}
	withType := Policy{Fields: []Field{FieldTitle, FieldType}}
	if !Visible(e, st, withType) {
		t.Error("type should be searched when configured")
	}
	if Visible(e, State{Filter: FilterAll, Query: "adams"}, withType) {
		t.Error("author should not be searched when not configured")
	}
	if !Visible(e, State{Filter: FilterAll, Query: "beginner"}, Policy{Fields: []Field{FieldLevel}}) {
		t.Error("level should be searched when configured")
	}
}

func TestParseFields(t *testing.T) {
	got, err := ParseFields([]string{"Title", " type "})
	if err != nil {
		t.Fatalf("ParseFields: %v", err)
	}
	if diff := cmp.Diff([]Field{FieldTitle, FieldType}, got); diff != "" {
		t.Errorf("ParseFields mismatch:\n%s", diff)
	}
	if _, err := ParseFields([]string{"url"}); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestSectionChangePolicy(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		wantQuery string
	}{
		{"preserve", DefaultPolicy(), "robot"},
		{"clear", Policy{ClearSearchOnSectionChange: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := multiStore()
			c := NewController(store, tt.policy)
			for _, sec := range store.Sections() {
				c.SetSearch("Robot")
				c.SelectFilter("video")
				c.SelectSection(sec.ID)

				st := c.State()
				if st.Filter != FilterAll {
					t.Errorf("section %s: filter = %q, want all", sec.ID, st.Filter)
				}
				if st.Query != tt.wantQuery {
					t.Errorf("section %s: query = %q, want %q", sec.ID, st.Query, tt.wantQuery)
				}
			}
		})
	}
}

func TestUnknownSectionRendersNothing(t *testing.T) {
	c := NewController(multiStore(), DefaultPolicy())
	c.SelectSection("nope")
	r := c.Render()

	if r.Found {
		t.Error("Found should be false")
	}
	if len(r.Groups) != 0 || r.Visible != 0 {
		t.Errorf("expected no groups, got %d", len(r.Groups))
	}
	if len(r.Filters) != 1 || r.Filters[0].Value != FilterAll {
		t.Errorf("expected only the all filter, got %+v", r.Filters)
	}
	if len(r.Tabs) != 3 {
		t.Errorf("tabs = %d, want 3", len(r.Tabs))
	}
}

func TestEmptySubsectionsOmitted(t *testing.T) {
	c := NewController(multiStore(), DefaultPolicy())
	c.SelectFilter("code")
	r := c.Render()

	if len(r.Groups) != 1 || r.Groups[0].Title != "Hard" {
		t.Errorf("groups = %+v, want only Hard", r.Groups)
	}
}

func TestActiveFlags(t *testing.T) {
	c := NewController(multiStore(), DefaultPolicy())
	c.SelectSection("swarms")
	c.SelectFilter("data")
	r := c.Render()

	for _, tab := range r.Tabs {
		if tab.Active != (tab.ID == "swarms") {
			t.Errorf("tab %s active = %v", tab.ID, tab.Active)
		}
	}
	for _, f := range r.Filters {
		if f.Active != (f.Value == "data") {
			t.Errorf("filter %s active = %v", f.Value, f.Active)
		}
	}
	if r.Filters[0].Count != 2 {
		t.Errorf("all count = %d, want 2", r.Filters[0].Count)
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name, text, query string
		want              string
	}{
		{"inside word", "Octopus arms are great", "arm", "Octopus <mark>arm</mark>s are great"},
		{"empty query", "Octopus arms are great", "", "Octopus arms are great"},
		{"case insensitive", "ARM and arm", "arm", "<mark>ARM</mark> and <mark>arm</mark>"},
		{"metacharacters", "a.b (c) a+b", "(c)", "a.b <mark>(c)</mark> a+b"},
		{"dot is literal", "axb a.b", ".", "axb a<mark>.</mark>b"},
		{"escapes text", "<b>x</b>", "", "&lt;b&gt;x&lt;/b&gt;"},
		{"escapes around match", "a<b>arm", "arm", "a&lt;b&gt;<mark>arm</mark>"},
		{"no match", "Gecko", "arm", "Gecko"},
		{"non overlapping", "aaaa", "aa", "<mark>aa</mark><mark>aa</mark>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Highlight(tt.text, tt.query)); got != tt.want {
				t.Errorf("Highlight(%q, %q) = %q, want %q", tt.text, tt.query, got, tt.want)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	got := ComputeStats(multiStore())
	want := Stats{
		Entries:     5,
		Sections:    3,
		Subsections: 3,
		ByType: []TypeCount{
			{Type: catalog.TypeVideo, Count: 2},
			{Type: catalog.TypeBook, Count: 1},
			{Type: catalog.TypeCode, Count: 1},
			{Type: catalog.TypeData, Count: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestBinderDispatch(t *testing.T) {
	b := NewBinder(NewController(scenarioStore(), DefaultPolicy()))

	var seen []int
	b.Bind(func(r Render) { seen = append(seen, r.Visible) })

	events := []Event{
		{Kind: EventFilter, Value: "notes"},
		{Kind: EventFilter, Value: FilterAll},
		{Kind: EventSearch, Value: "boids"},
		{Kind: EventClear},
		{Kind: EventSection, Value: "overview"},
	}
	for _, ev := range events {
		if _, err := b.Dispatch(ev); err != nil {
			t.Fatalf("Dispatch(%+v): %v", ev, err)
		}
	}
	if diff := cmp.Diff([]int{1, 2, 1, 2, 2}, seen); diff != "" {
		t.Errorf("listener renders mismatch (-want +got):\n%s", diff)
	}

	if _, err := b.Dispatch(Event{Kind: "hover"}); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("unknown event error = %v", err)
	}
	if len(seen) != 5 {
		t.Error("listener should not be notified for rejected events")
	}
}

func TestEventsFor(t *testing.T) {
	b := NewBinder(NewController(multiStore(), DefaultPolicy()))
	for _, ev := range EventsFor("swarms", "video", "Flocks") {
		if err := b.Apply(ev); err != nil {
			t.Fatal(err)
		}
	}
	want := State{SectionID: "swarms", Filter: "video", Query: "flocks", Input: "Flocks"}
	if diff := cmp.Diff(want, b.Controller().State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if len(EventsFor("", "", "")) != 0 {
		t.Error("empty params should produce no events")
	}
}
