package browse

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/site"
)

// ServeIndex serves the hub listing.
func (b *Browser) ServeIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := b.renderer.IndexPage(&buf, b.reg.Hubs(), b.nav, b.links); err != nil {
		b.logger.Error("rendering index", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

// ServeHub serves a hub page in the state given by the section, type and q
// query parameters.
func (b *Browser) ServeHub(w http.ResponseWriter, r *http.Request) {
	hub, ok := b.lookup(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	section, filter, search := q.Get("section"), q.Get("type"), q.Get("q")
	rd := hub.Render(b.renderer.Policy(), section, filter, search)

	opts := site.PageOptions{
		Mode:  site.ModeLive,
		WSURL: "/ws" + b.links.Page(hub.Name, section, filter, search),
	}

	var buf bytes.Buffer
	if err := b.renderer.HubPage(&buf, hub, rd, b.nav, b.links, opts); err != nil {
		b.logger.Error("rendering hub page", zap.String("hub", hub.Name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (b *Browser) lookup(w http.ResponseWriter, r *http.Request) (*registry.Hub, bool) {
	name := chi.URLParam(r, "*")
	hub, err := b.reg.Get(name)
	if errors.Is(err, registry.ErrHubNotFound) {
		http.Error(w, "hub not found: "+name, http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return hub, true
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
