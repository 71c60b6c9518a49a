package view

import (
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned by Dispatch for an event kind it cannot handle.
var ErrUnknownEvent = errors.New("unknown event")

// EventKind names the UI affordance an event came from.
type EventKind string

const (
	EventSection EventKind = "section"
	EventFilter  EventKind = "filter"
	EventSearch  EventKind = "search"
	EventClear   EventKind = "clear"
)

// Event is one user interaction forwarded by a host.
type Event struct {
	Kind  EventKind `json:"kind"`
	Value string    `json:"value,omitempty"`
}

// Binder connects host events to a Controller. Listeners are bound once and
// receive every render; hosts never re-bind after a render.
type Binder struct {
	ctrl      *Controller
	listeners []func(Render)
}

// NewBinder wraps ctrl.
func NewBinder(ctrl *Controller) *Binder {
	return &Binder{ctrl: ctrl}
}

// Controller returns the wrapped controller.
func (b *Binder) Controller() *Controller { return b.ctrl }

// Bind registers fn to receive each render produced by Dispatch.
func (b *Binder) Bind(fn func(Render)) {
	b.listeners = append(b.listeners, fn)
}

// Apply performs the state transition for ev without rendering.
func (b *Binder) Apply(ev Event) error {
	switch ev.Kind {
	case EventSection:
		b.ctrl.SelectSection(ev.Value)
	case EventFilter:
		b.ctrl.SelectFilter(ev.Value)
	case EventSearch:
		b.ctrl.SetSearch(ev.Value)
	case EventClear:
		b.ctrl.ClearSearch()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
	return nil
}

// Dispatch applies ev, renders, and notifies every listener synchronously.
func (b *Binder) Dispatch(ev Event) (Render, error) {
	if err := b.Apply(ev); err != nil {
		return Render{}, err
	}
	r := b.ctrl.Render()
	for _, fn := range b.listeners {
		fn(r)
	}
	return r, nil
}

// EventsFor returns the events that take a fresh controller to the given
// section, filter and search. Empty values are skipped.
func EventsFor(section, filter, search string) []Event {
	var evs []Event
	if section != "" {
		evs = append(evs, Event{Kind: EventSection, Value: section})
	}
	if filter != "" {
		evs = append(evs, Event{Kind: EventFilter, Value: filter})
	}
	if search != "" {
		evs = append(evs, Event{Kind: EventSearch, Value: search})
	}
	return evs
}
