package rtfm

import "strings"

// RenderMode selects how query results are shaped.
type RenderMode int

// Render modes. Tree grouping is the default, matching the tool's original
// behavior.
const (
	ModeTree RenderMode = iota // hierarchical grouping of dotted keys
	ModeFlat                   // flat list of absolute links
)

// String returns the user-facing name of the mode.
func (m RenderMode) String() string {
	if m == ModeFlat {
		return "flat"
	}
	return "tree"
}

// Toggle returns the other render mode.
func (m RenderMode) Toggle() RenderMode {
	if m == ModeFlat {
		return ModeTree
	}
	return ModeFlat
}

// Session is the process state a query executes against: the active source,
// the render mode, and the indexes currently loaded. Query is a pure
// function of (Session, input).
type Session struct {
	Active  string // active source ID
	Mode    RenderMode
	Sources map[string]Source
	Indexes map[string]Index
}

// Loaded reports whether the source has an index in the session.
func (s Session) Loaded(sourceID string) bool {
	_, ok := s.Indexes[sourceID]
	return ok
}

// Result is the outcome of one query. Exactly one concrete kind is produced
// per query: Empty, *Tree, or Links.
type Result interface {
	result()
}

// Empty indicates no entry matched the query.
type Empty struct{}

// Tree is a hierarchical grouping of matched keys: dotted key paths
// collapse into shared ancestor nodes.
type Tree struct {
	Roots []*Node
}

// Node is one path segment of a Tree. Location carries the link of the
// match that created the node.
type Node struct {
	Name     string
	Location string
	Children []*Node
}

// Links is a flat list of matched links.
type Links []Link

// Link is one flat match: the absolute URL joined from the source's base
// URL and the entry's location, with any trailing #fragment carried
// separately for distinct styling.
type Link struct {
	Key      string
	URL      string
	Fragment string
}

func (Empty) result() {}
func (*Tree) result() {}
func (Links) result() {}

// Query normalizes input, fuzzy-matches it against the session's active
// source, and shapes the matches according to the session's render mode.
func Query(sess Session, input string) Result {
	src := sess.Sources[sess.Active]
	idx := sess.Indexes[sess.Active]

	query := src.NormalizeQuery(strings.TrimSpace(input))
	matches := Find(query, idx.Entries())
	if len(matches) == 0 {
		return Empty{}
	}

	if sess.Mode == ModeTree {
		return groupTree(matches)
	}
	return flatLinks(src, matches)
}

// groupTree builds parent/child grouping nodes from the matched keys. A
// node for the path prefix "a.b.c" is created once and attached under the
// "a.b" node, or becomes a root when no "a.b" node exists. Shared prefixes
// across matches collapse into shared ancestors.
func groupTree(matches []Match) *Tree {
	t := &Tree{}
	nodes := make(map[string]*Node)

	for _, m := range matches {
		parts := strings.Split(m.Entry.Key, ".")
		for i := range parts {
			path := strings.Join(parts[:i+1], ".")
			if _, ok := nodes[path]; ok {
				continue
			}

			node := &Node{Name: parts[i], Location: m.Entry.Location}
			nodes[path] = node

			parent, ok := nodes[strings.Join(parts[:i], ".")]
			if i > 0 && ok {
				parent.Children = append(parent.Children, node)
			} else {
				t.Roots = append(t.Roots, node)
			}
		}
	}
	return t
}

// flatLinks joins each match's location onto the source's base URL,
// splitting off any trailing #fragment.
func flatLinks(src Source, matches []Match) Links {
	links := make(Links, 0, len(matches))
	for _, m := range matches {
		location, fragment, _ := strings.Cut(m.Entry.Location, "#")
		links = append(links, Link{
			Key:      m.Entry.Key,
			URL:      strings.TrimSuffix(src.BaseURL, "/") + "/" + location,
			Fragment: fragment,
		})
	}
	return links
}
