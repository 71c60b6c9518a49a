package browse

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveResponse is the outgoing WebSocket message format.
type liveResponse struct {
	Type      string       `json:"type"` // "render" or "error"
	SessionID string       `json:"session_id"`
	Render    *view.Render `json:"render,omitempty"`
	HTML      string       `json:"html,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// session is one connection's view state. The binder's listener is bound
// once when the session starts.
type session struct {
	id     string
	hub    *registry.Hub
	conn   *websocket.Conn
	binder *view.Binder
	b      *Browser
}

func (b *Browser) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	hub, err := b.reg.Get(chi.URLParam(r, "*"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, registry.ErrHubNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	s := &session{
		id:     uuid.NewString(),
		hub:    hub,
		conn:   conn,
		binder: view.NewBinder(view.NewController(hub.Store, b.renderer.Policy())),
		b:      b,
	}
	s.binder.Bind(s.sendRender)

	q := r.URL.Query()
	for _, ev := range view.EventsFor(q.Get("section"), q.Get("type"), q.Get("q")) {
		_ = s.binder.Apply(ev)
	}
	s.sendRender(s.binder.Controller().Render())

	log := b.logger.With(zap.String("session", s.id), zap.String("hub", hub.Name))
	log.Debug("live session started")
	defer log.Debug("live session ended")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var ev view.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.sendError("invalid message format")
			continue
		}
		if _, err := s.binder.Dispatch(ev); err != nil {
			s.sendError(err.Error())
		}
	}
}

func (s *session) sendRender(rd view.Render) {
	html, err := s.b.renderer.ContentHTML(s.hub.Name, rd, s.b.links)
	if err != nil {
		s.sendError("render failed: " + err.Error())
		return
	}
	s.write(liveResponse{Type: "render", SessionID: s.id, Render: &rd, HTML: html})
}

func (s *session) sendError(message string) {
	s.write(liveResponse{Type: "error", SessionID: s.id, Error: message})
}

func (s *session) write(resp liveResponse) {
	if err := s.conn.WriteJSON(resp); err != nil {
		s.b.logger.Warn("websocket write", zap.String("session", s.id), zap.Error(err))
	}
}
