package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/refhub/internal/catalog"
	"github.com/ziadkadry99/refhub/internal/db"
	"github.com/ziadkadry99/refhub/internal/view"
	"github.com/ziadkadry99/refhub/internal/walker"
)

// ErrHubNotFound is returned when no hub is registered under a name.
var ErrHubNotFound = errors.New("hub not found")

// Hub is one loaded catalog.
type Hub struct {
	Name    string          `json:"name"`
	Title   string          `json:"title"`
	Tagline string          `json:"tagline,omitempty"`
	Source  string          `json:"source"`
	Version string          `json:"version"`
	Store   *catalog.Store  `json:"-"`
	Issues  []catalog.Issue `json:"-"`
}

// NewHub wraps c as a hub named name.
func NewHub(name, source, version string, c catalog.Catalog) *Hub {
	title := c.Title
	if title == "" {
		title = name
	}
	return &Hub{
		Name:    name,
		Title:   title,
		Tagline: c.Tagline,
		Source:  source,
		Version: version,
		Store:   catalog.NewStore(c),
		Issues:  catalog.Validate(c),
	}
}

// Render replays section, filter and search on a fresh controller and
// returns the resulting render description.
func (h *Hub) Render(policy view.Policy, section, filter, search string) view.Render {
	b := view.NewBinder(view.NewController(h.Store, policy))
	for _, ev := range view.EventsFor(section, filter, search) {
		// EventsFor only produces known kinds.
		_ = b.Apply(ev)
	}
	return b.Controller().Render()
}

// Registry holds every hub in discovery order. It is built once and read
// concurrently afterwards.
type Registry struct {
	hubs   map[string]*Hub
	order  []string
	logger *zap.Logger
}

// New returns an empty registry.
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{hubs: make(map[string]*Hub), logger: logger}
}

// Add registers h. When a hub with the same name already exists the first
// one is kept and Add reports false.
func (r *Registry) Add(h *Hub) bool {
	if existing, ok := r.hubs[h.Name]; ok {
		r.logger.Warn("duplicate hub name, keeping first",
			zap.String("hub", h.Name),
			zap.String("kept", existing.Source),
			zap.String("skipped", h.Source),
		)
		return false
	}
	r.hubs[h.Name] = h
	r.order = append(r.order, h.Name)
	return true
}

// Get returns the hub registered under name.
func (r *Registry) Get(name string) (*Hub, error) {
	h, ok := r.hubs[strings.Trim(name, "/")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHubNotFound, name)
	}
	return h, nil
}

// Hubs returns every hub in discovery order.
func (r *Registry) Hubs() []*Hub {
	out := make([]*Hub, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.hubs[name])
	}
	return out
}

// Names returns hub names sorted alphabetically.
func (r *Registry) Names() []string {
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}

// Len returns the number of hubs.
func (r *Registry) Len() int { return len(r.order) }

// Options controls hub discovery.
type Options struct {
	Dir     string
	Include []string
	Exclude []string
	Logger  *zap.Logger
}

// Load discovers and loads every catalog under opts.Dir. Files that fail to
// decode are logged and skipped; validation issues are logged and kept on
// the hub.
func Load(ctx context.Context, opts Options) (*Registry, error) {
	reg := New(opts.Logger)

	filter, err := walker.NewFilter(opts.Include, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("hub filter: %w", err)
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: opts.Dir,
		Include: opts.Include,
		Exclude: opts.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("discovering hubs: %w", err)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hubs, err := loadFile(ctx, f, filter, reg.logger)
		if err != nil {
			reg.logger.Error("skipping hub file", zap.String("path", f.RelPath), zap.Error(err))
			continue
		}
		for _, h := range hubs {
			for _, issue := range h.Issues {
				level := zap.WarnLevel
				if issue.Severity == catalog.SeverityError {
					level = zap.ErrorLevel
				}
				reg.logger.Check(level, "catalog issue").Write(
					zap.String("hub", h.Name),
					zap.String("location", issue.Location),
					zap.String("message", issue.Message),
				)
			}
			reg.Add(h)
		}
	}

	reg.logger.Info("hubs loaded", zap.Int("count", reg.Len()), zap.String("dir", opts.Dir))
	return reg, nil
}

// loadFile decodes one catalog file. Databases are opened read-only; those
// without a hub schema yield no hubs, and their hubs pass through filter by name.
func loadFile(ctx context.Context, f walker.FileInfo, filter walker.Filter, logger *zap.Logger) ([]*Hub, error) {
	version := f.ContentHash
	if len(version) > 12 {
		version = version[:12]
	}

	if f.Format != catalog.FormatSQLite {
		c, err := catalog.Load(f.Path)
		if err != nil {
			return nil, err
		}
		return []*Hub{NewHub(walker.HubName(f.RelPath), f.RelPath, version, c)}, nil
	}

	d, err := db.OpenReadOnly(f.Path)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	ok, err := d.HasCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Warn("not a catalog database", zap.String("path", f.RelPath))
		return nil, nil
	}

	names, err := catalog.ListDB(ctx, d)
	if err != nil {
		return nil, err
	}
	hubs := make([]*Hub, 0, len(names))
	for _, name := range names {
		if !filter.Hub(name) {
			logger.Debug("hub filtered out", zap.String("hub", name), zap.String("path", f.RelPath))
			continue
		}
		c, err := catalog.LoadDB(ctx, d, name)
		if err != nil {
			return nil, fmt.Errorf("hub %s: %w", name, err)
		}
		hubs = append(hubs, NewHub(name, f.RelPath, version, c))
	}
	return hubs, nil
}
