package site

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// NavTree is a node in the hub navigation tree. Hub names with slashes
// ("references/formal-logic") nest under directory nodes.
type NavTree struct {
	Name     string
	Title    string // Display name: the hub title, or the formatted directory name.
	Path     string // For hubs: the hub name. For dirs: the directory path.
	IsDir    bool
	Children []*NavTree
}

// BuildTree constructs a NavTree from hub names.
// titleMap is an optional map of hub name -> display title.
func BuildTree(names []string, titleMap map[string]string) *NavTree {
	root := &NavTree{Name: "hubs", IsDir: true}

	for _, p := range names {
		parts := strings.Split(strings.Trim(p, "/"), "/")
		current := root
		for i, part := range parts {
			isLast := i == len(parts)-1
			var next *NavTree
			for _, child := range current.Children {
				if child.Name == part && child.IsDir == !isLast {
					next = child
					break
				}
			}
			if next == nil {
				next = &NavTree{Name: part, IsDir: !isLast}
				if isLast {
					next.Path = p
					next.Title = titleMap[p]
				} else {
					next.Path = strings.Join(parts[:i+1], "/")
					next.Title = formatDirName(part)
				}
				current.Children = append(current.Children, next)
			}
			current = next
		}
	}

	sortTree(root)
	return root
}

// sortTree recursively sorts tree children: directories first, then hubs, alphabetically.
func sortTree(node *NavTree) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}

// ToHTML renders the tree as nested <ul><li> HTML for the sidebar. The
// directories leading to activeHub are expanded.
func (t *NavTree) ToHTML(activeHub string, links Links) string {
	activeAncestors := computeActiveAncestors(activeHub)

	var b strings.Builder
	homeActive := ""
	if activeHub == "" {
		homeActive = ` class="active"`
	}
	fmt.Fprintf(&b, `<ul><li class="file home-link"><a href="%s"%s>All hubs</a></li></ul>`+"\n", html.EscapeString(links.Home()), homeActive)

	renderChildren(&b, t, activeHub, links, activeAncestors)
	return b.String()
}

// computeActiveAncestors returns the set of directory paths that are ancestors of activeHub.
// For "references/logic/modal" it returns {"references", "references/logic"}.
func computeActiveAncestors(activeHub string) map[string]bool {
	ancestors := make(map[string]bool)
	parts := strings.Split(activeHub, "/")
	for i := 1; i < len(parts); i++ {
		ancestors[strings.Join(parts[:i], "/")] = true
	}
	return ancestors
}

func renderChildren(b *strings.Builder, node *NavTree, activeHub string, links Links, activeAncestors map[string]bool) {
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, child := range node.Children {
		if child.IsDir {
			expanded := ""
			if activeAncestors[child.Path] {
				expanded = "expanded"
			}
			fmt.Fprintf(b, `<li class="dir %s"><span class="dir-toggle">%s</span>`+"\n", expanded, html.EscapeString(child.Title))
			renderChildren(b, child, activeHub, links, activeAncestors)
			b.WriteString("</li>\n")
			continue
		}
		displayName := child.Title
		if displayName == "" {
			displayName = formatDirName(child.Name)
		}
		activeClass := ""
		if child.Path == activeHub {
			activeClass = ` class="active"`
		}
		fmt.Fprintf(b, `<li class="file"><a href="%s"%s>%s</a></li>`+"\n",
			html.EscapeString(links.Hub(child.Path)), activeClass, html.EscapeString(displayName))
	}
	b.WriteString("</ul>\n")
}

// formatDirName converts a directory or file slug to a human-readable display name.
func formatDirName(name string) string {
	// Title-case each word separated by hyphens or underscores.
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
