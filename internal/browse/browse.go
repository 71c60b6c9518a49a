// Package browse serves hub pages over HTTP and keeps one live view session
// per WebSocket connection.
package browse

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/site"
)

// Browser renders the hubs of a registry as pages and live sessions.
type Browser struct {
	reg      *registry.Registry
	renderer *site.Renderer
	nav      *site.NavTree
	logger   *zap.Logger
	logoPath string
	links    site.ServerLinks
}

// New creates a Browser. logoPath is an optional image file served under
// /assets/; renderer must have been created with its base name.
func New(reg *registry.Registry, renderer *site.Renderer, logger *zap.Logger, logoPath string) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}
	titles := make(map[string]string, reg.Len())
	for _, h := range reg.Hubs() {
		titles[h.Name] = h.Title
	}
	return &Browser{
		reg:      reg,
		renderer: renderer,
		nav:      site.BuildTree(reg.Names(), titles),
		logger:   logger,
		logoPath: logoPath,
	}
}

// RegisterRoutes mounts all page routes onto the given router.
func (b *Browser) RegisterRoutes(r chi.Router) {
	r.Get("/", b.ServeIndex)
	r.Get("/hubs/*", b.ServeHub)
	r.Get("/ws/hubs/*", b.handleWebSocket)
	r.Get("/assets/{name}", b.serveAsset)
}

func (b *Browser) serveAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if data, contentType, ok := site.Asset(name); ok {
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
		return
	}
	if b.logoPath != "" && name == filepath.Base(b.logoPath) {
		if _, err := os.Stat(b.logoPath); err == nil {
			http.ServeFile(w, r, b.logoPath)
			return
		}
	}
	http.NotFound(w, r)
}
