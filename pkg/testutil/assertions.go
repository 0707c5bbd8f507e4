package testutil

import (
	"slices"
	"testing"

	"github.com/vanderheijden86/canopy/pkg/reflow"
	"github.com/vanderheijden86/canopy/pkg/tree"
)

// AssertLabels verifies the labels of the visible entries, in order.
func AssertLabels(t *testing.T, visible []tree.Visible, want ...string) {
	t.Helper()
	if got := Labels(visible); !slices.Equal(got, want) {
		t.Errorf("visible labels = %q, want %q", got, want)
	}
}

// AssertSelected verifies the state's selection.
func AssertSelected(t *testing.T, state *tree.State, want tree.Identifier) {
	t.Helper()
	if got := state.Selected(); !got.Equal(want) {
		t.Errorf("selected = %v, want %v", got, want)
	}
}

// AssertSelectionVisible verifies that the selection addresses a visible
// entry, or is empty when nothing is visible.
func AssertSelectionVisible(t *testing.T, state *tree.State, roots []*tree.Node) {
	t.Helper()
	visible := state.Visible(roots)
	sel := state.Selected()
	if len(visible) == 0 {
		if !sel.IsEmpty() {
			t.Errorf("selection %v on an empty tree", sel)
		}
		return
	}
	if tree.IndexOf(visible, sel) < 0 {
		t.Errorf("selection %v is not visible", sel)
	}
}

// AssertWidthBound verifies that no line is wider than maxWidth.
func AssertWidthBound(t *testing.T, lines []reflow.Line, maxWidth int) {
	t.Helper()
	for i, l := range lines {
		if l.Width > maxWidth {
			t.Errorf("line %d %q has width %d > %d", i, l.String(), l.Width, maxWidth)
		}
	}
}
