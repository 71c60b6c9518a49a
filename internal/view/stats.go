package view

import "github.com/ziadkadry99/refhub/internal/catalog"

// Stats is the header statistic of a hub. It ignores the current state.
type Stats struct {
	Entries     int         `json:"entries"`
	Sections    int         `json:"sections"`
	Subsections int         `json:"subsections"`
	ByType      []TypeCount `json:"by_type"`
}

// TypeCount is the number of entries of one type.
type TypeCount struct {
	Type  catalog.EntryType `json:"type"`
	Count int               `json:"count"`
}

// ComputeStats counts the whole catalog. ByType is ordered by first occurrence.
func ComputeStats(store *catalog.Store) Stats {
	st := Stats{
		Entries:  store.TotalEntries(),
		Sections: len(store.Sections()),
	}
	index := make(map[catalog.EntryType]int)
	for _, sec := range store.Sections() {
		st.Subsections += len(sec.Subsections)
		for _, sub := range sec.Subsections {
			for _, e := range sub.Entries {
				i, ok := index[e.Type]
				if !ok {
					i = len(st.ByType)
					index[e.Type] = i
					st.ByType = append(st.ByType, TypeCount{Type: e.Type})
				}
				st.ByType[i].Count++
			}
		}
	}
	return st
}
