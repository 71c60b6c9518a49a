package view

import (
	"strings"

	"github.com/ziadkadry99/refhub/internal/catalog"
)

// Visible reports whether e passes both the type filter and the search query.
func Visible(e catalog.Entry, st State, p Policy) bool {
	return matchesType(e, st.Filter) && matchesQuery(e, st.Query, p)
}

func matchesType(e catalog.Entry, filter string) bool {
	return filter == "" || filter == FilterAll || string(e.Type) == filter
}

func matchesQuery(e catalog.Entry, query string, p Policy) bool {
	if query == "" {
		return true
	}
	return strings.Contains(Haystack(e, p), query)
}

// Haystack is the lower-cased text an entry is searched on.
func Haystack(e catalog.Entry, p Policy) string {
	fields := p.fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldTitle:
			parts = append(parts, e.Title)
		case FieldAuthor:
			parts = append(parts, e.Author)
		case FieldDesc:
			parts = append(parts, e.Desc)
		case FieldType:
			parts = append(parts, string(e.Type))
		case FieldLevel:
			parts = append(parts, string(e.Level))
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
