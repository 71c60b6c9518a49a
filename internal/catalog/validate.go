package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// Severity classifies a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in a catalog.
type Issue struct {
	Severity Severity `json:"severity"`
	Location string   `json:"location"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Location, i.Message)
}

// Validate lints a catalog. The engine never requires a clean catalog; this is
// for authors.
func Validate(c Catalog) []Issue {
	var issues []Issue
	add := func(sev Severity, loc, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, Location: loc, Message: fmt.Sprintf(format, args...)})
	}

	known := make(map[EntryType]bool, len(KnownTypes))
	for _, t := range KnownTypes {
		known[t] = true
	}

	if len(c.Sections) == 0 {
		add(SeverityWarning, "catalog", "no sections")
	}

	seen := make(map[string]int)
	for i, sec := range c.Sections {
		loc := fmt.Sprintf("sections[%d]", i)
		if sec.ID == "" {
			add(SeverityError, loc, "missing id")
		} else if first, dup := seen[sec.ID]; dup {
			add(SeverityError, loc, "duplicate id %q (first used by sections[%d])", sec.ID, first)
		} else {
			seen[sec.ID] = i
		}
		if sec.Label == "" {
			add(SeverityWarning, loc, "missing label")
		}
		if len(sec.Subsections) == 0 {
			add(SeverityWarning, loc, "section %q has no subsections", sec.ID)
		}

		for j, sub := range sec.Subsections {
			subLoc := fmt.Sprintf("%s.subsections[%d]", loc, j)
			if len(sub.Entries) == 0 {
				add(SeverityWarning, subLoc, "subsection %q has no entries", sub.Title)
			}
			for k, e := range sub.Entries {
				entryLoc := fmt.Sprintf("%s.entries[%d]", subLoc, k)
				if strings.TrimSpace(e.Title) == "" {
					add(SeverityError, entryLoc, "missing title")
				}
				if e.URL == "" {
					add(SeverityError, entryLoc, "missing url")
				} else if u, err := url.Parse(e.URL); err != nil || u.Scheme == "" || u.Host == "" {
					add(SeverityError, entryLoc, "malformed url %q", e.URL)
				}
				if !known[e.Type] {
					add(SeverityWarning, entryLoc, "unknown type %q", e.Type)
				}
				switch e.Level {
				case LevelNone, LevelBeginner, LevelIntermediate, LevelAdvanced:
				default:
					add(SeverityWarning, entryLoc, "unknown level %q", e.Level)
				}
			}
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
