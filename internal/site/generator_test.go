package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ziadkadry99/refhub/internal/catalog"
	"github.com/ziadkadry99/refhub/internal/progress"
	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	dir := filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "hubs")
	reg, err := registry.Load(t.Context(), registry.Options{Dir: dir})
	if err != nil {
		t.Fatalf("loading registry: %v", err)
	}
	return reg
}

func TestBuildTree(t *testing.T) {
	names := []string{
		"swarm-intelligence",
		"references/formal-logic",
		"references/category-theory",
		"bio/robots",
	}
	tree := BuildTree(names, map[string]string{"swarm-intelligence": "Swarm Intelligence"})

	if tree.Name != "hubs" || !tree.IsDir {
		t.Fatalf("root = %+v", tree)
	}
	// Directories first (bio, references), then hubs.
	if len(tree.Children) != 3 {
		t.Fatalf("root children = %d, want 3", len(tree.Children))
	}
	if tree.Children[0].Name != "bio" || !tree.Children[0].IsDir {
		t.Errorf("first child = %q, want bio dir", tree.Children[0].Name)
	}
	if tree.Children[1].Name != "references" || tree.Children[1].Title != "References" {
		t.Errorf("second child = %+v", tree.Children[1])
	}
	if tree.Children[2].Path != "swarm-intelligence" || tree.Children[2].Title != "Swarm Intelligence" {
		t.Errorf("third child = %+v", tree.Children[2])
	}

	refs := tree.Children[1]
	if len(refs.Children) != 2 || refs.Children[0].Name != "category-theory" {
		t.Errorf("references children = %+v", refs.Children)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	tree := BuildTree(nil, nil)
	if len(tree.Children) != 0 {
		t.Errorf("empty tree children = %d, want 0", len(tree.Children))
	}
}

func TestTreeToHTML(t *testing.T) {
	tree := BuildTree([]string{"references/formal-logic", "swarm"}, nil)
	html := tree.ToHTML("references/formal-logic", StaticLinks{Base: "../../"})

	if !strings.Contains(html, `class="dir expanded"`) {
		t.Error("ancestor dir of the active hub should be expanded")
	}
	if !strings.Contains(html, `href="../../references/formal-logic/index.html" class="active"`) {
		t.Errorf("missing active hub link in %s", html)
	}
	if !strings.Contains(html, `>Formal Logic<`) {
		t.Error("hub without title should fall back to a formatted name")
	}
}

func TestFormatDirName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"formal-logic", "Formal Logic"},
		{"bio_robots", "Bio Robots"},
		{"x", "X"},
	}
	for _, tt := range tests {
		if got := formatDirName(tt.in); got != tt.want {
			t.Errorf("formatDirName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPageDirAndBase(t *testing.T) {
	tests := []struct {
		hub, section, filter string
		dir, base            string
	}{
		{"swarm", "", "", "swarm", "../"},
		{"swarm", "code", "", "swarm/code", "../../"},
		{"swarm", "code", "all", "swarm/code", "../../"},
		{"refs/logic", "tools", "code", "refs/logic/tools/code", "../../../../"},
		{"a b", "x/y", "", "a-b/x-y", "../../"},
	}
	for _, tt := range tests {
		dir := PageDir(tt.hub, tt.section, tt.filter)
		if dir != tt.dir {
			t.Errorf("PageDir(%q, %q, %q) = %q, want %q", tt.hub, tt.section, tt.filter, dir, tt.dir)
		}
		if base := BaseFor(dir); base != tt.base {
			t.Errorf("BaseFor(%q) = %q, want %q", dir, base, tt.base)
		}
	}
	if BaseFor("") != "" {
		t.Error("site root should have an empty base")
	}
}

func TestServerLinks(t *testing.T) {
	l := ServerLinks{}
	if got := l.Page("refs/formal logic", "tools", "all", ""); got != "/hubs/refs/formal%20logic?section=tools" {
		t.Errorf("Page() = %q", got)
	}
	if got := l.Page("swarm", "overview", "book", "ant"); got != "/hubs/swarm?q=ant&section=overview&type=book" {
		t.Errorf("Page() = %q", got)
	}
	if got := l.Page("swarm", "", "", ""); got != "/hubs/swarm" {
		t.Errorf("Page() = %q", got)
	}
}

func TestFullSiteGeneration(t *testing.T) {
	out := t.TempDir()
	gen := NewGenerator(testRegistry(t), out, "Test Hubs", view.DefaultPolicy())
	gen.Reporter = progress.Nop{}

	count, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// index: 1
	// swarm-intelligence: landing + overview{notes,book,video} + code{code,data} = 1 + 4 + 3
	// formal-logic: landing + foundations{book,notes} + tools{code} = 1 + 3 + 2
	if count != 15 {
		t.Errorf("Generate() = %d pages, want 15", count)
	}

	for _, rel := range []string{
		"index.html",
		"style.css",
		"script.js",
		"swarm-intelligence/index.html",
		"swarm-intelligence/overview/index.html",
		"swarm-intelligence/overview/book/index.html",
		"swarm-intelligence/code/data/index.html",
		"swarm-intelligence/catalog.json",
		"references/formal-logic/tools/code/index.html",
		"references/formal-logic/catalog.json",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	page, err := os.ReadFile(filepath.Join(out, "swarm-intelligence", "overview", "book", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(page)
	if !strings.Contains(html, "Ant Colony Optimization") {
		t.Error("book page should list the book entry")
	}
	if strings.Contains(html, "Boids") {
		t.Error("book page should not list notes entries")
	}
	if !strings.Contains(html, `href="../../../style.css"`) {
		t.Error("stylesheet link should be relative to the page depth")
	}
	if !strings.Contains(html, `data-mode="static"`) {
		t.Error("built pages should be in static mode")
	}
	if !strings.Contains(html, `<strong>decentralised</strong>`) {
		t.Error("section intro should be rendered Markdown")
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `href="swarm-intelligence/index.html"`) {
		t.Error("index should link to hub landing pages")
	}

	data, err := os.ReadFile(filepath.Join(out, "swarm-intelligence", "catalog.json"))
	if err != nil {
		t.Fatal(err)
	}
	var cf CatalogFile
	if err := json.Unmarshal(data, &cf); err != nil {
		t.Fatalf("catalog.json: %v", err)
	}
	if cf.Hub != "swarm-intelligence" || len(cf.Index) != 5 || cf.Stats.Entries != 5 {
		t.Errorf("catalog.json = hub %q, %d index entries, %d stats entries", cf.Hub, len(cf.Index), cf.Stats.Entries)
	}
	if cf.Index[0].Haystack != "boids craig reynolds flocking from three steering rules." {
		t.Errorf("haystack = %q", cf.Index[0].Haystack)
	}
}

func TestGenerateNoHubs(t *testing.T) {
	gen := NewGenerator(registry.New(nil), t.TempDir(), "Empty", view.DefaultPolicy())
	gen.Reporter = progress.Nop{}
	if _, err := gen.Generate(); err == nil {
		t.Fatal("expected error when there are no hubs")
	}
}

func TestGenerateCopiesLogo(t *testing.T) {
	logo := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(logo, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	reg := registry.New(nil)
	reg.Add(registry.NewHub("solo", "solo.yml", "v1", catalog.Catalog{
		Title: "Solo",
		Sections: []catalog.Section{{ID: "s", Label: "S", Subsections: []catalog.Subsection{{
			Title:   "T",
			Entries: []catalog.Entry{{Title: "E", Type: catalog.TypeBook, URL: "https://example.org"}},
		}}}},
	}))

	out := t.TempDir()
	gen := NewGenerator(reg, out, "Logo", view.DefaultPolicy())
	gen.Reporter = progress.Nop{}
	gen.Logo = logo
	if _, err := gen.Generate(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(out, "logo.png")); err != nil {
		t.Errorf("logo not copied: %v", err)
	}
	page, _ := os.ReadFile(filepath.Join(out, "solo", "s", "index.html"))
	if !strings.Contains(string(page), `src="../../logo.png"`) {
		t.Error("page should reference the copied logo")
	}
}
