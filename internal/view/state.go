// Package view holds the selection state of a hub page and turns it, together
// with a catalog.Store, into a description of what the page should display.
package view

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/refhub/internal/catalog"
)

// FilterAll is the filter value that matches every entry type.
const FilterAll = "all"

// State is the mutable selection of one page.
type State struct {
	SectionID string `json:"section"`
	Filter    string `json:"filter"`
	Query     string `json:"query"` // normalized: trimmed and lower-cased
	Input     string `json:"input"` // literal contents of the search control
}

// Field is an entry field that can take part in search matching.
type Field string

const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldDesc   Field = "desc"
	FieldType   Field = "type"
	FieldLevel  Field = "level"
)

// DefaultFields are the fields searched when a policy does not name any.
var DefaultFields = []Field{FieldTitle, FieldAuthor, FieldDesc}

// ParseFields converts configured field names into Fields.
func ParseFields(names []string) ([]Field, error) {
	fields := make([]Field, 0, len(names))
	for _, n := range names {
		f := Field(strings.ToLower(strings.TrimSpace(n)))
		switch f {
		case FieldTitle, FieldAuthor, FieldDesc, FieldType, FieldLevel:
			fields = append(fields, f)
		default:
			return nil, fmt.Errorf("unknown search field %q", n)
		}
	}
	return fields, nil
}

// Policy holds the page behaviours that vary between hubs.
type Policy struct {
	// ClearSearchOnSectionChange empties the search when a tab is selected.
	ClearSearchOnSectionChange bool
	// Fields are concatenated into the search haystack. Empty means DefaultFields.
	Fields []Field
}

// DefaultPolicy keeps the search across tab changes and matches title,
// author and description.
func DefaultPolicy() Policy {
	return Policy{Fields: DefaultFields}
}

func (p Policy) fields() []Field {
	if len(p.Fields) == 0 {
		return DefaultFields
	}
	return p.Fields
}

// NormalizeQuery trims and lower-cases a search string.
func NormalizeQuery(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// InitialState selects the first section with no filter and no search.
func InitialState(store *catalog.Store) State {
	st := State{Filter: FilterAll}
	if first, ok := store.First(); ok {
		st.SectionID = first.ID
	}
	return st
}
