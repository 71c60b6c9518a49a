package view

import "github.com/ziadkadry99/refhub/internal/catalog"

// Controller owns the State of a single page and applies transitions to it.
// It is not safe for concurrent use; each page or session gets its own.
type Controller struct {
	store  *catalog.Store
	policy Policy
	state  State
}

// NewController starts at the first section, filter "all", empty search.
func NewController(store *catalog.Store, policy Policy) *Controller {
	return &Controller{
		store:  store,
		policy: policy,
		state:  InitialState(store),
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Store returns the catalog the controller renders.
func (c *Controller) Store() *catalog.Store { return c.store }

// Policy returns the controller's policy.
func (c *Controller) Policy() Policy { return c.policy }

// SelectSection switches tabs and resets the type filter.
func (c *Controller) SelectSection(id string) {
	c.state.SectionID = id
	c.state.Filter = FilterAll
	if c.policy.ClearSearchOnSectionChange {
		c.state.Query = ""
		c.state.Input = ""
	}
}

// SelectFilter sets the type filter. An empty value means FilterAll.
func (c *Controller) SelectFilter(t string) {
	if t == "" {
		t = FilterAll
	}
	c.state.Filter = t
}

// SetSearch stores the normalized query and the raw input text.
func (c *Controller) SetSearch(text string) {
	c.state.Input = text
	c.state.Query = NormalizeQuery(text)
}

// ClearSearch empties both the query and the input control.
func (c *Controller) ClearSearch() {
	c.SetSearch("")
}

// Render describes the page for the current state.
func (c *Controller) Render() Render {
	return RenderPage(c.store, c.state, c.policy)
}
