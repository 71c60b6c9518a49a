package site

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/ziadkadry99/refhub/internal/progress"
	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

// Generator writes every hub of a registry as a static HTML site.
type Generator struct {
	Registry  *registry.Registry
	OutputDir string
	SiteTitle string
	Logo      string // Path to a logo image copied into the site, optional.
	Policy    view.Policy
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator with a terminal progress reporter.
func NewGenerator(reg *registry.Registry, outputDir, siteTitle string, policy view.Policy) *Generator {
	return &Generator{
		Registry:  reg,
		OutputDir: outputDir,
		SiteTitle: siteTitle,
		Policy:    policy,
		Reporter:  progress.NewReporter("Building pages"),
	}
}

// page is one static page to render: a hub in a given section and filter.
// An empty hub is the site index.
type page struct {
	hub     *registry.Hub
	section string
	filter  string
	dir     string
}

// Generate builds the site. Returns the number of HTML pages written.
func (g *Generator) Generate() (int, error) {
	hubs := g.Registry.Hubs()
	if len(hubs) == 0 {
		return 0, fmt.Errorf("no hubs to build")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	logoName := ""
	if g.Logo != "" {
		data, err := os.ReadFile(g.Logo)
		if err != nil {
			return 0, fmt.Errorf("reading logo: %w", err)
		}
		logoName = filepath.Base(g.Logo)
		if err := os.WriteFile(filepath.Join(g.OutputDir, logoName), data, 0o644); err != nil {
			return 0, err
		}
	}

	renderer, err := NewRenderer(g.SiteTitle, logoName, g.Policy)
	if err != nil {
		return 0, err
	}

	titles := make(map[string]string, len(hubs))
	for _, h := range hubs {
		titles[h.Name] = h.Title
	}
	nav := BuildTree(g.Registry.Names(), titles)

	pages := g.plan(hubs)
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.NewReporter("Building pages")
	}
	reporter.Start(len(pages))
	defer reporter.Finish()

	for i, p := range pages {
		if err := g.writePage(renderer, nav, p); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", p.dir, err)
		}
		reporter.Update(i+1, p.dir)
	}

	for _, h := range hubs {
		out := filepath.Join(g.OutputDir, filepath.FromSlash(HubDir(h.Name)), "catalog.json")
		if err := WriteSearchIndex(h, g.Policy, out); err != nil {
			return 0, fmt.Errorf("writing catalog of %s: %w", h.Name, err)
		}
	}

	return len(pages), nil
}

// plan lists the pages of the site: the index, every hub landing page, every
// section page and one page per section and entry type.
func (g *Generator) plan(hubs []*registry.Hub) []page {
	pages := []page{{dir: ""}}
	for _, h := range hubs {
		pages = append(pages, page{hub: h, dir: HubDir(h.Name)})
		seen := make(map[string]bool)
		for _, sec := range h.Store.Sections() {
			if seen[sec.ID] {
				continue
			}
			seen[sec.ID] = true
			pages = append(pages, page{hub: h, section: sec.ID, dir: PageDir(h.Name, sec.ID, "")})
			for _, t := range h.Store.TypesIn(sec) {
				pages = append(pages, page{
					hub:     h,
					section: sec.ID,
					filter:  string(t),
					dir:     PageDir(h.Name, sec.ID, string(t)),
				})
			}
		}
	}
	return pages
}

func (g *Generator) writePage(renderer *Renderer, nav *NavTree, p page) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(path.Join(p.dir, "index.html")))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	links := StaticLinks{Base: BaseFor(p.dir)}
	if p.hub == nil {
		return renderer.IndexPage(f, g.Registry.Hubs(), nav, links)
	}
	rd := p.hub.Render(g.Policy, p.section, p.filter, "")
	return renderer.HubPage(f, p.hub, rd, nav, links, PageOptions{Mode: ModeStatic})
}
