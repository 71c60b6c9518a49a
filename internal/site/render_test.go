package site

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ziadkadry99/refhub/internal/catalog"
	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

func trickyHub() *registry.Hub {
	return registry.NewHub("tricky", "tricky.yml", "v1", catalog.Catalog{
		Title: "Tricky <Hub>",
		Sections: []catalog.Section{{
			ID:    "main",
			Label: "Main",
			Intro: "Intro with <script>alert(1)</script> and *emphasis*",
			Subsections: []catalog.Subsection{{
				Title: "Links",
				Entries: []catalog.Entry{
					{Title: "A <b>bold</b> claim", Author: "O'Brien", Type: catalog.TypeBook, URL: "https://example.org/a"},
					{Title: "Bad link", Type: catalog.TypeCode, URL: "javascript:alert(1)"},
				},
			}},
		}},
	})
}

func newTestRenderer(t *testing.T, policy view.Policy) *Renderer {
	t.Helper()
	r, err := NewRenderer("Hubs", "", policy)
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	return r
}

func TestContentEscapesAndHighlights(t *testing.T) {
	hub := trickyHub()
	r := newTestRenderer(t, view.DefaultPolicy())

	out, err := r.ContentHTML(hub.Name, hub.Render(r.Policy(), "", "", "bold"), ServerLinks{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `A &lt;b&gt;<mark>bold</mark>&lt;/b&gt; claim`) {
		t.Errorf("title should be escaped with the match marked:\n%s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Error("intro script must be stripped")
	}
	if !strings.Contains(out, "<em>emphasis</em>") {
		t.Error("intro Markdown should render")
	}
	if strings.Contains(out, "Bad link") {
		t.Error("non-matching card should be hidden by the search")
	}
}

func TestContentUnsafeURL(t *testing.T) {
	hub := trickyHub()
	r := newTestRenderer(t, view.DefaultPolicy())
	out, err := r.ContentHTML(hub.Name, hub.Render(r.Policy(), "", "code", ""), ServerLinks{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "javascript:alert") {
		t.Error("javascript: URLs must not reach the page")
	}
}

func TestContentDelegatedAttributes(t *testing.T) {
	hub := trickyHub()
	r := newTestRenderer(t, view.DefaultPolicy())
	out, err := r.ContentHTML(hub.Name, hub.Render(r.Policy(), "", "", ""), ServerLinks{})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`data-event="section" data-value="main"`,
		`data-event="filter" data-value="all"`,
		`data-event="filter" data-value="book"`,
		`data-event="filter" data-value="code"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s", want)
		}
	}
}

func TestTabLinksFollowSearchPolicy(t *testing.T) {
	hub := trickyHub()

	keep := newTestRenderer(t, view.DefaultPolicy())
	out, _ := keep.ContentHTML(hub.Name, hub.Render(keep.Policy(), "main", "", "claim"), ServerLinks{})
	if !strings.Contains(out, `href="/hubs/tricky?q=claim&amp;section=main"`) {
		t.Errorf("tab links should keep the search:\n%s", out)
	}

	clearPolicy := view.DefaultPolicy()
	clearPolicy.ClearSearchOnSectionChange = true
	clear := newTestRenderer(t, clearPolicy)
	out, _ = clear.ContentHTML(hub.Name, hub.Render(clear.Policy(), "main", "", "claim"), ServerLinks{})
	if !strings.Contains(out, `href="/hubs/tricky?section=main" data-event="section"`) {
		t.Errorf("tab links should drop the search:\n%s", out)
	}
	// Filter links always keep the search.
	if !strings.Contains(out, `href="/hubs/tricky?q=claim&amp;section=main&amp;type=book"`) {
		t.Errorf("filter links should keep the search:\n%s", out)
	}
}

func TestHubPageLiveMode(t *testing.T) {
	hub := trickyHub()
	r := newTestRenderer(t, view.DefaultPolicy())
	var buf bytes.Buffer
	err := r.HubPage(&buf, hub, hub.Render(r.Policy(), "", "", ""), BuildTree([]string{hub.Name}, nil), ServerLinks{},
		PageOptions{Mode: ModeLive, WSURL: "/ws/hubs/tricky"})
	if err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	if !strings.Contains(html, `data-mode="live" data-ws="/ws/hubs/tricky"`) {
		t.Error("live page should carry the socket URL")
	}
	if !strings.Contains(html, "Tricky &lt;Hub&gt;") {
		t.Error("hub title should be escaped")
	}
	if !strings.Contains(html, `href="/assets/style.css"`) {
		t.Error("server pages should use the asset route")
	}
}

func TestUnknownSectionContent(t *testing.T) {
	hub := trickyHub()
	r := newTestRenderer(t, view.DefaultPolicy())
	out, err := r.ContentHTML(hub.Name, hub.Render(r.Policy(), "nope", "", ""), ServerLinks{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "This section does not exist.") {
		t.Error("unknown section should render the empty state")
	}
}
