package catalog

// EntryType is the kind of resource an entry links to. The set is open: the
// constants below are the values the hubs use today.
type EntryType string

const (
	TypeBook   EntryType = "book"
	TypeNotes  EntryType = "notes"
	TypeVideo  EntryType = "video"
	TypeCourse EntryType = "course"
	TypeCode   EntryType = "code"
	TypeData   EntryType = "data"
)

// KnownTypes lists the entry types recognized by the validator.
var KnownTypes = []EntryType{TypeBook, TypeNotes, TypeVideo, TypeCourse, TypeCode, TypeData}

// Level is the difficulty of an entry. The zero value means no level is set.
type Level string

const (
	LevelNone         Level = ""
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Catalog is the full static dataset behind one reference hub page.
type Catalog struct {
	Title    string    `yaml:"title" json:"title"`
	Tagline  string    `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Section is one tab of a hub.
type Section struct {
	ID          string       `yaml:"id" json:"id"`
	Label       string       `yaml:"label" json:"label"`
	Icon        string       `yaml:"icon,omitempty" json:"icon,omitempty"`
	Intro       string       `yaml:"intro,omitempty" json:"intro,omitempty"` // Markdown.
	Subsections []Subsection `yaml:"subsections" json:"subsections"`
}

// Subsection groups entries under a heading inside a section.
type Subsection struct {
	Title   string  `yaml:"title" json:"title"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Entry is one curated resource link.
type Entry struct {
	Title  string    `yaml:"title" json:"title"`
	Author string    `yaml:"author,omitempty" json:"author,omitempty"`
	Type   EntryType `yaml:"type" json:"type"`
	Level  Level     `yaml:"level,omitempty" json:"level,omitempty"`
	URL    string    `yaml:"url" json:"url"`
	Desc   string    `yaml:"desc,omitempty" json:"desc,omitempty"`
}

// EntryCount returns the number of entries across all subsections.
func (s Section) EntryCount() int {
	n := 0
	for _, sub := range s.Subsections {
		n += len(sub.Entries)
	}
	return n
}
