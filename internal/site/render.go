package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"path"
	"strings"
	"sync"

	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/richtext"
	"github.com/ziadkadry99/refhub/internal/view"
)

// Mode selects how a hub page reacts to user input.
type Mode string

const (
	// ModeStatic pages filter pre-rendered cards in the browser.
	ModeStatic Mode = "static"
	// ModeLive pages forward events to the server over a WebSocket.
	ModeLive Mode = "live"
)

// Links builds the URLs embedded in rendered pages.
type Links interface {
	Home() string
	Asset(name string) string
	Hub(hub string) string
	// Page links to a hub page with the given state. Empty values are left out.
	Page(hub, section, filter, query string) string
}

// ServerLinks are absolute URLs served by the browse handlers.
type ServerLinks struct{}

func (ServerLinks) Home() string             { return "/" }
func (ServerLinks) Asset(name string) string { return "/assets/" + name }
func (ServerLinks) Hub(hub string) string    { return "/hubs/" + escapeHub(hub) }

func (l ServerLinks) Page(hub, section, filter, query string) string {
	q := url.Values{}
	if section != "" {
		q.Set("section", section)
	}
	if filter != "" && filter != view.FilterAll {
		q.Set("type", filter)
	}
	if query != "" {
		q.Set("q", query)
	}
	if len(q) == 0 {
		return l.Hub(hub)
	}
	return l.Hub(hub) + "?" + q.Encode()
}

// StaticLinks are relative URLs inside a built site. Base is the prefix that
// leads from the current page back to the site root, e.g. "../../".
type StaticLinks struct {
	Base string
}

func (l StaticLinks) Home() string             { return l.Base + "index.html" }
func (l StaticLinks) Asset(name string) string { return l.Base + name }
func (l StaticLinks) Hub(hub string) string    { return l.Base + HubDir(hub) + "/index.html" }

// Page ignores query; static pages carry the search in the browser.
func (l StaticLinks) Page(hub, section, filter, _ string) string {
	return l.Base + PageDir(hub, section, filter) + "/index.html"
}

// HubDir is the directory of a hub within a built site.
func HubDir(hub string) string {
	parts := strings.Split(strings.Trim(hub, "/"), "/")
	for i, p := range parts {
		parts[i] = slug(p)
	}
	return strings.Join(parts, "/")
}

// PageDir is the directory of a hub page within a built site.
func PageDir(hub, section, filter string) string {
	dir := HubDir(hub)
	if section == "" {
		return dir
	}
	dir = path.Join(dir, slug(section))
	if filter != "" && filter != view.FilterAll {
		dir = path.Join(dir, slug(filter))
	}
	return dir
}

// BaseFor returns the relative prefix from dir back to the site root.
func BaseFor(dir string) string {
	if dir == "" || dir == "." {
		return ""
	}
	return strings.Repeat("../", strings.Count(dir, "/")+1)
}

// slug keeps a path segment safe for file systems and URLs.
func slug(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	if out := strings.Trim(b.String(), "."); out != "" {
		return out
	}
	return "-"
}

func escapeHub(hub string) string {
	parts := strings.Split(strings.Trim(hub, "/"), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// PageOptions configures the hub container of a page.
type PageOptions struct {
	Mode  Mode
	WSURL string
}

// Renderer turns render descriptions into HTML.
type Renderer struct {
	siteTitle string
	logo      string
	policy    view.Policy
	page      *template.Template
	content   *template.Template
	index     *template.Template
	rich      *richtext.Renderer

	mu     sync.Mutex
	intros map[string]template.HTML
}

// NewRenderer parses the page templates. logo is the asset name of the site
// logo, or empty.
func NewRenderer(siteTitle, logo string, policy view.Policy) (*Renderer, error) {
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	content, err := template.New("content").Parse(contentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing content template: %w", err)
	}
	index, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	return &Renderer{
		siteTitle: siteTitle,
		logo:      logo,
		policy:    policy,
		page:      page,
		content:   content,
		index:     index,
		rich:      richtext.New(),
		intros:    make(map[string]template.HTML),
	}, nil
}

// Policy returns the view policy pages are rendered with.
func (r *Renderer) Policy() view.Policy { return r.policy }

type linkItem struct {
	Label  string
	Icon   string
	Value  string
	Count  int
	Active bool
	Href   string
}

type contentData struct {
	view.Render
	Intro   template.HTML
	Tabs    []linkItem
	Filters []linkItem
}

// Content writes the re-renderable content region for rd.
func (r *Renderer) Content(w io.Writer, hub string, rd view.Render, links Links) error {
	data := contentData{Render: rd}

	tabQuery := rd.State.Input
	if r.policy.ClearSearchOnSectionChange {
		tabQuery = ""
	}
	for _, t := range rd.Tabs {
		data.Tabs = append(data.Tabs, linkItem{
			Label:  t.Label,
			Icon:   t.Icon,
			Value:  t.ID,
			Count:  t.Count,
			Active: t.Active,
			Href:   links.Page(hub, t.ID, "", tabQuery),
		})
	}
	for _, f := range rd.Filters {
		data.Filters = append(data.Filters, linkItem{
			Label:  f.Label,
			Value:  f.Value,
			Count:  f.Count,
			Active: f.Active,
			Href:   links.Page(hub, rd.State.SectionID, f.Value, rd.State.Input),
		})
	}

	if rd.Found {
		intro, err := r.intro(rd.Section.Intro)
		if err != nil {
			return fmt.Errorf("rendering intro of %s: %w", rd.Section.ID, err)
		}
		data.Intro = intro
	}

	return r.content.Execute(w, data)
}

// ContentHTML is Content rendered into a string.
func (r *Renderer) ContentHTML(hub string, rd view.Render, links Links) (string, error) {
	var buf bytes.Buffer
	if err := r.Content(&buf, hub, rd, links); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// intro renders Markdown once per distinct source.
func (r *Renderer) intro(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if out, ok := r.intros[src]; ok {
		return out, nil
	}
	out, err := r.rich.Render(src)
	if err != nil {
		return "", err
	}
	r.intros[src] = out
	return out, nil
}

type pageData struct {
	Title          string
	SiteTitle      string
	HomeHref       string
	StyleHref      string
	ScriptHref     string
	LogoHref       string
	TreeHTML       template.HTML
	Hub            *registry.Hub
	Stats          view.Stats
	State          view.State
	Mode           Mode
	WSURL          string
	ClearOnSection bool
	Content        template.HTML
}

func (r *Renderer) shell(title string, nav *NavTree, active string, links Links) pageData {
	d := pageData{
		Title:      title,
		SiteTitle:  r.siteTitle,
		HomeHref:   links.Home(),
		StyleHref:  links.Asset("style.css"),
		ScriptHref: links.Asset("script.js"),
	}
	if r.logo != "" {
		d.LogoHref = links.Asset(r.logo)
	}
	if nav != nil {
		d.TreeHTML = template.HTML(nav.ToHTML(active, links))
	}
	return d
}

// HubPage writes a complete hub page showing rd.
func (r *Renderer) HubPage(w io.Writer, hub *registry.Hub, rd view.Render, nav *NavTree, links Links, opts PageOptions) error {
	content, err := r.ContentHTML(hub.Name, rd, links)
	if err != nil {
		return err
	}

	title := hub.Title
	if rd.Found {
		title = rd.Section.Label + " | " + hub.Title
	}
	d := r.shell(title, nav, hub.Name, links)
	d.Hub = hub
	d.Stats = view.ComputeStats(hub.Store)
	d.State = rd.State
	d.Mode = opts.Mode
	d.WSURL = opts.WSURL
	d.ClearOnSection = r.policy.ClearSearchOnSectionChange
	d.Content = template.HTML(content)
	return r.page.Execute(w, d)
}

type hubItem struct {
	registry.HubSummary
	Href string
}

// IndexPage writes the hub listing.
func (r *Renderer) IndexPage(w io.Writer, hubs []*registry.Hub, nav *NavTree, links Links) error {
	items := make([]hubItem, 0, len(hubs))
	for _, h := range hubs {
		items = append(items, hubItem{HubSummary: registry.Summarize(h), Href: links.Hub(h.Name)})
	}

	var buf bytes.Buffer
	if err := r.index.Execute(&buf, struct {
		SiteTitle string
		Hubs      []hubItem
	}{r.siteTitle, items}); err != nil {
		return err
	}

	d := r.shell("Hubs", nav, "", links)
	d.Content = template.HTML(buf.String())
	return r.page.Execute(w, d)
}
