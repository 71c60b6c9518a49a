package catalog

import "slices"

// Store is a read-only view over a loaded Catalog.
type Store struct {
	catalog Catalog
	index   map[string]int
	total   int
}

// NewStore indexes the catalog by section id. Input is not validated; when two
// sections share an id the first one wins.
func NewStore(c Catalog) *Store {
	s := &Store{
		catalog: c,
		index:   make(map[string]int, len(c.Sections)),
	}
	for i, sec := range c.Sections {
		if _, dup := s.index[sec.ID]; !dup {
			s.index[sec.ID] = i
		}
		s.total += sec.EntryCount()
	}
	return s
}

// Catalog returns the underlying catalog.
func (s *Store) Catalog() Catalog { return s.catalog }

// Title returns the catalog title.
func (s *Store) Title() string { return s.catalog.Title }

// Sections returns a copy of the section list in catalog order. Subsection
// and entry slices are shared with the store and must not be modified.
func (s *Store) Sections() []Section { return slices.Clone(s.catalog.Sections) }

// Section looks up a section by id.
func (s *Store) Section(id string) (Section, bool) {
	i, ok := s.index[id]
	if !ok {
		return Section{}, false
	}
	return s.catalog.Sections[i], true
}

// First returns the first section of the catalog, if any.
func (s *Store) First() (Section, bool) {
	if len(s.catalog.Sections) == 0 {
		return Section{}, false
	}
	return s.catalog.Sections[0], true
}

// TypesIn returns the distinct entry types used in the section, in order of
// first occurrence. Entries without a type only match the "all" filter and
// are left out.
func (s *Store) TypesIn(sec Section) []EntryType {
	seen := make(map[EntryType]bool)
	var types []EntryType
	for _, sub := range sec.Subsections {
		for _, e := range sub.Entries {
			if e.Type == "" || seen[e.Type] {
				continue
			}
			seen[e.Type] = true
			types = append(types, e.Type)
		}
	}
	return types
}

// TotalEntries returns the number of entries in the whole catalog.
func (s *Store) TotalEntries() int { return s.total }
