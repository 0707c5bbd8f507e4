package tree

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/canopy/pkg/reflow"
)

// Node is one item of a tree: a block of styled text and an ordered list of
// children.
//
// Nodes are shared by pointer. A flattened view hands out the same *Node the
// tree holds, so an edit made through either is seen by both. Nodes are not
// safe for concurrent mutation.
type Node struct {
	text     reflow.Text
	style    lipgloss.Style
	children []*Node
}

// NewLeaf returns a childless node. Newlines in content start new lines.
func NewLeaf(content string) *Node {
	return New(content)
}

// New returns a node with the given content and children.
func New(content string, children ...*Node) *Node {
	return NewText(reflow.NewText(content), children...)
}

// NewText returns a node showing pre-styled text.
func NewText(text reflow.Text, children ...*Node) *Node {
	return &Node{
		text:     text,
		style:    lipgloss.NewStyle(),
		children: children,
	}
}

// Text returns the node's content.
func (n *Node) Text() reflow.Text {
	return n.text
}

// SetText replaces the node's content.
func (n *Node) SetText(text reflow.Text) {
	n.text = text
}

// SetContent replaces the node's content with unstyled text.
func (n *Node) SetContent(content string) {
	n.text = reflow.NewText(content)
}

// Style returns the node's style.
func (n *Node) Style() lipgloss.Style {
	return n.style
}

// SetStyle sets the style the node's text is drawn in. Span styles take
// precedence over it.
func (n *Node) SetStyle(style lipgloss.Style) {
	n.style = style
}

// WithStyle sets the style and returns n, for use while building trees.
func (n *Node) WithStyle(style lipgloss.Style) *Node {
	n.style = style
	return n
}

// Height is the number of logical lines of content.
func (n *Node) Height() int {
	return n.text.Height()
}

// Children returns the node's children. The slice is the node's own.
func (n *Node) Children() []*Node {
	return n.children
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Child returns the child at index.
func (n *Node) Child(index int) (*Node, bool) {
	if index < 0 || index >= len(n.children) {
		return nil, false
	}
	return n.children[index], true
}

// AddChild appends child.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// InsertChild inserts child at index, clamped to the valid range.
func (n *Node) InsertChild(index int, child *Node) {
	index = min(max(index, 0), len(n.children))
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches and returns the child at index.
func (n *Node) RemoveChild(index int) (*Node, bool) {
	if index < 0 || index >= len(n.children) {
		return nil, false
	}
	child := n.children[index]
	n.children = append(n.children[:index], n.children[index+1:]...)
	return child, true
}

// Source returns the node's text as composer input, with the node style
// under every span style.
func (n *Node) Source(base lipgloss.Style) reflow.Source {
	return reflow.TextSource(n.text, n.style.Inherit(base))
}

// Lookup follows id from roots. ok is false when id is empty or does not
// address a node, e.g. because the tree changed after id was taken.
func Lookup(roots []*Node, id Identifier) (*Node, bool) {
	if len(id) == 0 || id[0] < 0 || id[0] >= len(roots) {
		return nil, false
	}
	n := roots[id[0]]
	for _, i := range id[1:] {
		var ok bool
		if n, ok = n.Child(i); !ok {
			return nil, false
		}
	}
	return n, true
}
