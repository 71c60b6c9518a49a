package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/refhub/internal/catalog"
	"github.com/ziadkadry99/refhub/internal/view"
)

// RegisterRoutes wires up the hub REST API endpoints. Hub names may contain
// slashes, so they are matched as wildcards.
func RegisterRoutes(r chi.Router, reg *Registry, policy view.Policy) {
	h := &routeHandler{reg: reg, policy: policy}
	r.Route("/api", func(r chi.Router) {
		r.Get("/hubs", h.listHubs)
		r.Get("/hubs/*", h.getHub)
		r.Get("/render/*", h.render)
	})
}

type routeHandler struct {
	reg    *Registry
	policy view.Policy
}

// HubSummary is the listing form of a hub.
type HubSummary struct {
	*Hub
	Sections int `json:"sections"`
	Entries  int `json:"entries"`
}

// Summarize returns the listing form of h.
func Summarize(h *Hub) HubSummary {
	return HubSummary{
		Hub:      h,
		Sections: len(h.Store.Sections()),
		Entries:  h.Store.TotalEntries(),
	}
}

// SectionSummary describes one section without its entries.
type SectionSummary struct {
	ID      string              `json:"id"`
	Label   string              `json:"label"`
	Icon    string              `json:"icon,omitempty"`
	Entries int                 `json:"entries"`
	Types   []catalog.EntryType `json:"types"`
}

// HubDetail is the response body of GET /api/hubs/{hub}.
type HubDetail struct {
	HubSummary
	SectionList []SectionSummary `json:"section_list"`
	Stats       view.Stats       `json:"stats"`
	Issues      []catalog.Issue  `json:"issues,omitempty"`
}

// Detail returns the section outline and statistics of h.
func Detail(h *Hub) HubDetail {
	d := HubDetail{
		HubSummary: Summarize(h),
		Stats:      view.ComputeStats(h.Store),
		Issues:     h.Issues,
	}
	for _, sec := range h.Store.Sections() {
		d.SectionList = append(d.SectionList, SectionSummary{
			ID:      sec.ID,
			Label:   sec.Label,
			Icon:    sec.Icon,
			Entries: sec.EntryCount(),
			Types:   h.Store.TypesIn(sec),
		})
	}
	return d
}

func (h *routeHandler) listHubs(w http.ResponseWriter, r *http.Request) {
	hubs := h.reg.Hubs()
	out := make([]HubSummary, 0, len(hubs))
	for _, hub := range hubs {
		out = append(out, Summarize(hub))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *routeHandler) getHub(w http.ResponseWriter, r *http.Request) {
	hub, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, Detail(hub))
}

func (h *routeHandler) render(w http.ResponseWriter, r *http.Request) {
	hub, ok := h.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	w.Header().Set("ETag", fmt.Sprintf("%q", hub.Version))
	writeJSON(w, http.StatusOK, hub.Render(h.policy, q.Get("section"), q.Get("type"), q.Get("q")))
}

func (h *routeHandler) lookup(w http.ResponseWriter, r *http.Request) (*Hub, bool) {
	name := chi.URLParam(r, "*")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "hub name is required"})
		return nil, false
	}
	hub, err := h.reg.Get(name)
	if errors.Is(err, ErrHubNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("hub %q not found", name)})
		return nil, false
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	return hub, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
