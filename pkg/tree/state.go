package tree

import "github.com/vanderheijden86/canopy/pkg/debug"

// State is the navigation state of a tree view: which nodes are open, which
// node is selected and how far the view is scrolled. The zero value has
// nothing open and nothing selected.
//
// Every operation is total. A selection that no longer addresses a visible
// node is resolved within the call that notices it.
type State struct {
	offset   int
	opened   OpenSet
	selected Identifier
}

// Offset is the index of the first visible entry drawn by the last layout.
func (s *State) Offset() int {
	return s.offset
}

// Selected returns a copy of the selected identifier; empty when nothing is
// selected.
func (s *State) Selected() Identifier {
	return s.selected.Clone()
}

// Opened returns the open identifiers in tree order.
func (s *State) Opened() []Identifier {
	return s.opened.Identifiers()
}

// OpenSet exposes the open set for flattening.
func (s *State) OpenSet() *OpenSet {
	return &s.opened
}

// IsOpen reports whether id is open.
func (s *State) IsOpen(id Identifier) bool {
	return s.opened.Contains(id)
}

// Visible flattens roots under the current open set.
func (s *State) Visible(roots []*Node) []Visible {
	return Flatten(&s.opened, roots)
}

// Select sets the selection. The node need not be visible. Clearing the
// selection also scrolls back to the top.
func (s *State) Select(id Identifier) {
	s.selected = id.Clone()
	if len(s.selected) == 0 {
		s.offset = 0
	}
}

// Open shows the children of id and reports whether it was closed before.
// The empty identifier cannot be opened.
func (s *State) Open(id Identifier) bool {
	return s.opened.Insert(id)
}

// Close hides the children of id and reports whether it was open before.
func (s *State) Close(id Identifier) bool {
	return s.opened.Remove(id)
}

// Toggle closes id if it is open and opens it otherwise.
func (s *State) Toggle(id Identifier) {
	if s.opened.Contains(id) {
		s.Close(id)
	} else {
		s.Open(id)
	}
}

// ToggleSelected toggles the selected node.
func (s *State) ToggleSelected() {
	s.Toggle(s.selected)
}

// CloseAll collapses the whole tree. The selection is kept.
func (s *State) CloseAll() {
	s.opened.Clear()
}

// SelectFirst selects the first root.
func (s *State) SelectFirst() {
	s.Select(Identifier{0})
}

// SelectLast selects the last visible entry, or nothing for an empty tree.
func (s *State) SelectLast(roots []*Node) {
	visible := s.Visible(roots)
	if len(visible) == 0 {
		s.Select(nil)
		return
	}
	s.Select(visible[len(visible)-1].Identifier)
}

// MoveUp selects the previous visible entry, staying on the first one.
func (s *State) MoveUp(roots []*Node) {
	s.moveBy(roots, -1)
}

// MoveDown selects the next visible entry, staying on the last one.
//
// A selection that is not visible moves to the first entry, the same as
// MoveUp does.
func (s *State) MoveDown(roots []*Node) {
	s.moveBy(roots, 1)
}

// PageUp moves the selection n entries up.
func (s *State) PageUp(roots []*Node, n int) {
	s.moveBy(roots, -max(n, 1))
}

// PageDown moves the selection n entries down.
func (s *State) PageDown(roots []*Node, n int) {
	s.moveBy(roots, max(n, 1))
}

func (s *State) moveBy(roots []*Node, delta int) {
	visible := s.Visible(roots)
	if len(visible) == 0 {
		s.Select(nil)
		return
	}

	next := 0
	if i := IndexOf(visible, s.selected); i >= 0 {
		next = min(max(i+delta, 0), len(visible)-1)
	} else {
		debug.Log("tree: selection %q not visible, selecting first entry", s.selected.String())
	}
	s.Select(visible[next].Identifier)
}

// MoveLeft closes the selected node if it is open, and otherwise selects
// its parent. At a root this clears the selection.
func (s *State) MoveLeft() {
	if s.Close(s.selected) {
		return
	}
	parent, _, _ := WithoutLeaf(s.selected)
	s.Select(parent)
}

// MoveRight opens the selected node. Opening a leaf is harmless: nothing
// will ever be listed under it.
func (s *State) MoveRight() {
	s.Open(s.selected)
}

// OpenAll opens every node that has children.
func (s *State) OpenAll(roots []*Node) {
	s.OpenToLevel(roots, -1)
}

// OpenToLevel shows nodes down to depth level-1 and closes everything
// deeper: level 1 shows only the roots, level 2 roots and their children.
// A negative level opens everything.
func (s *State) OpenToLevel(roots []*Node, level int) {
	s.opened.Clear()
	var walk func(prefix Identifier, nodes []*Node)
	walk = func(prefix Identifier, nodes []*Node) {
		for i, n := range nodes {
			if !n.HasChildren() {
				continue
			}
			id := Child(prefix, i)
			if level >= 0 && id.Depth() >= level-1 {
				continue
			}
			s.opened.Insert(id)
			walk(id, n.Children())
		}
	}
	walk(nil, roots)
}

// Reveal opens every ancestor of id so that it is listed by Flatten.
func (s *State) Reveal(id Identifier) {
	for i := 1; i < len(id); i++ {
		s.opened.Insert(id[:i])
	}
}
