package walker

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs are directory names never descended into, compared case-insensitively.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".refhub":      true,
	".idea":        true,
	".vscode":      true,
}

func skipDir(name string) bool {
	return skipDirs[strings.ToLower(name)]
}

// Filter selects catalogs with doublestar globs. Patterns are matched against
// slash-separated paths relative to the hubs dir; a pattern without a slash
// also matches the last path element.
type Filter struct {
	Include []string // Empty includes everything.
	Exclude []string
}

// NewFilter validates every pattern.
func NewFilter(include, exclude []string) (Filter, error) {
	f := Filter{}
	for _, p := range include {
		p = filepath.ToSlash(p)
		if !doublestar.ValidatePattern(p) {
			return Filter{}, fmt.Errorf("invalid include pattern %q", p)
		}
		f.Include = append(f.Include, p)
	}
	for _, p := range exclude {
		p = filepath.ToSlash(p)
		if !doublestar.ValidatePattern(p) {
			return Filter{}, fmt.Errorf("invalid exclude pattern %q", p)
		}
		f.Exclude = append(f.Exclude, p)
	}
	return f, nil
}

// File reports whether the catalog file at relPath passes the filter.
func (f Filter) File(relPath string) bool {
	return f.allows(filepath.ToSlash(relPath))
}

// Hub reports whether a hub stored in a catalog database passes the filter.
// The name is tried both bare ("drafts/x") and as the database file it would
// be exported to ("drafts/x.db"), so file-extension includes keep working.
func (f Filter) Hub(name string) bool {
	name = strings.Trim(name, "/")
	return f.allows(name, name+".db")
}

// allows is true when some candidate is included and no candidate is excluded.
func (f Filter) allows(candidates ...string) bool {
	included := len(f.Include) == 0
	for _, c := range candidates {
		if matchGlob(f.Exclude, c) {
			return false
		}
		if !included && matchGlob(f.Include, c) {
			included = true
		}
	}
	return included
}

func matchGlob(patterns []string, p string) bool {
	for _, pattern := range patterns {
		target := p
		if !strings.Contains(pattern, "/") {
			target = path.Base(p)
		}
		if ok, _ := doublestar.Match(pattern, target); ok {
			return true
		}
	}
	return false
}
