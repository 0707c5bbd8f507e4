package tree

import "github.com/vanderheijden86/canopy/pkg/metrics"

// Opened reports whether a node's children are shown.
type Opened interface {
	Contains(id Identifier) bool
}

// Visible is a node reachable under the current open set.
type Visible struct {
	Identifier Identifier
	Node       *Node
}

// Depth is the nesting level of the entry; roots are at depth 0.
func (v Visible) Depth() int {
	return len(v.Identifier) - 1
}

// Flatten lists the visible nodes of the forest in pre-order. Roots are
// always visible; the children of a node are visible when its identifier is
// open. Closed subtrees are not descended into. A nil open means nothing is
// open.
func Flatten(open Opened, roots []*Node) []Visible {
	defer metrics.Timer(metrics.Flatten)()
	return flattenInto(nil, open, nil, roots)
}

func flattenInto(out []Visible, open Opened, prefix Identifier, nodes []*Node) []Visible {
	for i, n := range nodes {
		id := Child(prefix, i)
		out = append(out, Visible{Identifier: id, Node: n})
		if open != nil && open.Contains(id) {
			out = flattenInto(out, open, id, n.Children())
		}
	}
	return out
}

// IndexOf returns the position of id in visible, or -1.
func IndexOf(visible []Visible, id Identifier) int {
	if len(id) == 0 {
		return -1
	}
	for i, v := range visible {
		if v.Identifier.Equal(id) {
			return i
		}
	}
	return -1
}
