package tree_test

import (
	"testing"

	"github.com/vanderheijden86/canopy/pkg/testutil"
	"github.com/vanderheijden86/canopy/pkg/tree"
)

func TestStateOpenClose(t *testing.T) {
	var s tree.State
	if !s.Open(tree.Identifier{1}) {
		t.Error("Open on closed node should return true")
	}
	if s.Open(tree.Identifier{1}) {
		t.Error("Open on open node should return false")
	}
	if len(s.Opened()) != 1 {
		t.Errorf("Opened() = %v, want one member", s.Opened())
	}
	if !s.Close(tree.Identifier{1}) {
		t.Error("Close on open node should return true")
	}
	if s.Close(tree.Identifier{1}) {
		t.Error("Close on closed node should return false")
	}
}

func TestStateOpenEmptyIdentifier(t *testing.T) {
	var s tree.State
	if s.Open(nil) || s.Open(tree.Identifier{}) {
		t.Error("the empty identifier cannot be opened")
	}
	s.ToggleSelected()
	s.MoveRight()
	if s.IsOpen(nil) || len(s.Opened()) != 0 {
		t.Errorf("open set = %v, want empty", s.Opened())
	}
}

func TestStateToggle(t *testing.T) {
	var s tree.State
	s.Select(tree.Identifier{1})
	s.ToggleSelected()
	if !s.IsOpen(tree.Identifier{1}) {
		t.Error("ToggleSelected should open")
	}
	s.ToggleSelected()
	if s.IsOpen(tree.Identifier{1}) {
		t.Error("second ToggleSelected should close")
	}
	s.Toggle(tree.Identifier{2})
	if !s.IsOpen(tree.Identifier{2}) {
		t.Error("Toggle should open [2]")
	}
}

func TestStateCloseAllKeepsSelection(t *testing.T) {
	var s tree.State
	s.Open(tree.Identifier{1})
	s.Open(tree.Identifier{1, 1})
	s.Select(tree.Identifier{1, 1, 0})
	s.CloseAll()
	if len(s.Opened()) != 0 {
		t.Errorf("Opened() = %v after CloseAll", s.Opened())
	}
	testutil.AssertSelected(t, &s, tree.Identifier{1, 1, 0})
}

func TestStateSelectCopies(t *testing.T) {
	var s tree.State
	id := tree.Identifier{1, 2}
	s.Select(id)
	id[0] = 9
	got := s.Selected()
	got[1] = 9
	testutil.AssertSelected(t, &s, tree.Identifier{1, 2})
}

func TestStateSelectFirstLast(t *testing.T) {
	roots := testutil.SampleForest()
	var s tree.State

	s.SelectFirst()
	testutil.AssertSelected(t, &s, tree.Identifier{0})

	s.SelectLast(roots)
	testutil.AssertSelected(t, &s, tree.Identifier{2})

	s.Open(tree.Identifier{2})
	s.Open(tree.Identifier{1})
	s.SelectLast(roots)
	testutil.AssertSelected(t, &s, tree.Identifier{2})

	s.Close(tree.Identifier{1})
	s.OpenAll(roots)
	s.SelectLast(roots)
	testutil.AssertSelected(t, &s, tree.Identifier{2})
}

func TestStateSelectLastEmptyTree(t *testing.T) {
	var s tree.State
	s.Select(tree.Identifier{3})
	s.SelectLast(nil)
	if !s.Selected().IsEmpty() {
		t.Errorf("SelectLast on empty tree selected %v", s.Selected())
	}
}

func TestStateMoveUpDown(t *testing.T) {
	roots := testutil.SampleForest()
	var s tree.State
	s.Open(tree.Identifier{1})

	steps := []struct {
		move func()
		want tree.Identifier
	}{
		{func() { s.MoveDown(roots) }, tree.Identifier{0}}, // nothing selected
		{func() { s.MoveDown(roots) }, tree.Identifier{1}},
		{func() { s.MoveDown(roots) }, tree.Identifier{1, 0}},
		{func() { s.MoveDown(roots) }, tree.Identifier{1, 1}},
		{func() { s.MoveDown(roots) }, tree.Identifier{1, 2}},
		{func() { s.MoveDown(roots) }, tree.Identifier{2}},
		{func() { s.MoveDown(roots) }, tree.Identifier{2}}, // clamped at the end
		{func() { s.MoveUp(roots) }, tree.Identifier{1, 2}},
		{func() { s.PageUp(roots, 3) }, tree.Identifier{1}},
		{func() { s.PageUp(roots, 10) }, tree.Identifier{0}},
		{func() { s.MoveUp(roots) }, tree.Identifier{0}}, // clamped at the start
		{func() { s.PageDown(roots, 4) }, tree.Identifier{1, 2}},
	}
	for i, step := range steps {
		step.move()
		if !s.Selected().Equal(step.want) {
			t.Fatalf("step %d: selected %v, want %v", i, s.Selected(), step.want)
		}
	}
}

// A selection that is no longer visible resets to the first entry in both
// directions; moving down does not jump to the end.
func TestStateMoveWithStaleSelection(t *testing.T) {
	roots := testutil.SampleForest()

	for name, move := range map[string]func(*tree.State){
		"up":   func(s *tree.State) { s.MoveUp(roots) },
		"down": func(s *tree.State) { s.MoveDown(roots) },
	} {
		t.Run(name+" hidden", func(t *testing.T) {
			var s tree.State
			s.Select(tree.Identifier{1, 1, 0}) // hidden: b is closed
			move(&s)
			testutil.AssertSelected(t, &s, tree.Identifier{0})
		})
		t.Run(name+" removed", func(t *testing.T) {
			var s tree.State
			s.Select(tree.Identifier{7})
			move(&s)
			testutil.AssertSelected(t, &s, tree.Identifier{0})
		})
	}
}

func TestStateMoveOnEmptyTree(t *testing.T) {
	var s tree.State
	s.Select(tree.Identifier{0})
	s.MoveDown(nil)
	if !s.Selected().IsEmpty() {
		t.Errorf("selected %v on empty tree", s.Selected())
	}
	s.MoveUp(nil)
	if !s.Selected().IsEmpty() {
		t.Errorf("selected %v on empty tree", s.Selected())
	}
}

func TestStateMoveLeftRight(t *testing.T) {
	var s tree.State
	s.Select(tree.Identifier{1, 1})

	s.MoveRight()
	if !s.IsOpen(tree.Identifier{1, 1}) {
		t.Fatal("MoveRight should open the selection")
	}
	testutil.AssertSelected(t, &s, tree.Identifier{1, 1})

	s.MoveLeft()
	if s.IsOpen(tree.Identifier{1, 1}) {
		t.Fatal("MoveLeft on an open node should close it")
	}
	testutil.AssertSelected(t, &s, tree.Identifier{1, 1})

	s.MoveLeft()
	testutil.AssertSelected(t, &s, tree.Identifier{1})

	s.MoveLeft()
	if !s.Selected().IsEmpty() {
		t.Errorf("MoveLeft at a root should clear the selection, got %v", s.Selected())
	}

	s.MoveLeft()
	if !s.Selected().IsEmpty() {
		t.Errorf("MoveLeft with nothing selected selected %v", s.Selected())
	}
}

func TestStateSelectEmptyResetsOffset(t *testing.T) {
	roots := testutil.NewDefault().Star(30)
	var s tree.State
	s.Open(tree.Identifier{0})
	s.SelectLast(roots)
	tree.DefaultView(roots).Layout(&s, 20, 5)
	if s.Offset() == 0 {
		t.Fatal("expected the view to scroll")
	}

	s.Select(tree.Identifier{3})
	if s.Offset() == 0 {
		t.Error("selecting a node should keep the offset")
	}
	s.Select(nil)
	if s.Offset() != 0 {
		t.Errorf("Offset() = %d after clearing the selection, want 0", s.Offset())
	}
}

func TestStateOpenToLevel(t *testing.T) {
	roots := testutil.SampleForest()
	tests := []struct {
		level int
		want  []string
	}{
		{1, []string{"a", "b", "h"}},
		{2, []string{"a", "b", "c", "d", "g", "h"}},
		{3, []string{"a", "b", "c", "d", "e", "f", "g", "h"}},
		{-1, []string{"a", "b", "c", "d", "e", "f", "g", "h"}},
	}
	for _, tt := range tests {
		var s tree.State
		s.Open(tree.Identifier{0})
		s.OpenToLevel(roots, tt.level)
		testutil.AssertLabels(t, s.Visible(roots), tt.want...)
	}
}

func TestStateOpenAllSkipsLeaves(t *testing.T) {
	var s tree.State
	s.OpenAll(testutil.SampleForest())
	if got := len(s.Opened()); got != 2 {
		t.Errorf("OpenAll opened %d nodes, want 2 (b and d)", got)
	}
}

func TestStateReveal(t *testing.T) {
	roots := testutil.SampleForest()
	var s tree.State
	s.Reveal(tree.Identifier{1, 1, 0})
	s.Select(tree.Identifier{1, 1, 0})
	testutil.AssertSelectionVisible(t, &s, roots)
	testutil.AssertLabels(t, s.Visible(roots), "a", "b", "c", "d", "e", "f", "g", "h")
}
