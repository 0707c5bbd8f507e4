package tree_test

import (
	"slices"
	"testing"

	"github.com/mattn/go-runewidth"
	"pgregory.net/rapid"

	"github.com/vanderheijden86/canopy/pkg/testutil"
	"github.com/vanderheijden86/canopy/pkg/tree"
)

var asciiSymbols = tree.Symbols{Open: "- ", Closed: "+ ", Leaf: "  "}

func asciiView(roots []*tree.Node) tree.View {
	v := tree.DefaultView(roots)
	v.Symbols = asciiSymbols
	return v
}

func rowIDs(rows []tree.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Identifier.String()
	}
	return out
}

func TestLayoutBasic(t *testing.T) {
	roots := testutil.SampleForest()
	var s tree.State
	s.Open(tree.Identifier{1})

	rows := asciiView(roots).Layout(&s, 20, 10)
	if got, want := rowIDs(rows), []string{"0", "1", "1.0", "1.1", "1.2", "2"}; !slices.Equal(got, want) {
		t.Fatalf("rows = %q, want %q", got, want)
	}

	wantKinds := []tree.Kind{tree.KindLeaf, tree.KindOpen, tree.KindLeaf, tree.KindClosed, tree.KindLeaf, tree.KindLeaf}
	for i, r := range rows {
		if r.Kind != wantKinds[i] {
			t.Errorf("row %s kind = %v, want %v", r.Identifier, r.Kind, wantKinds[i])
		}
		if r.Y != i || r.Height != 1 {
			t.Errorf("row %s at y=%d height=%d, want y=%d height=1", r.Identifier, r.Y, r.Height, i)
		}
		if r.Selected || r.Highlight != "" {
			t.Errorf("row %s should not be highlighted without a selection", r.Identifier)
		}
	}

	if got := rows[3].Plain(); !slices.Equal(got, []string{"  + d"}) {
		t.Errorf("row d renders as %q", got)
	}
	if rows[3].Indent != 2 || rows[3].Depth != 1 {
		t.Errorf("row d indent=%d depth=%d", rows[3].Indent, rows[3].Depth)
	}
}

func TestLayoutEmpty(t *testing.T) {
	var s tree.State
	if rows := asciiView(nil).Layout(&s, 20, 10); rows != nil {
		t.Errorf("empty tree produced %d rows", len(rows))
	}
	roots := testutil.SampleForest()
	if rows := asciiView(roots).Layout(&s, 0, 10); rows != nil {
		t.Errorf("zero width produced %d rows", len(rows))
	}
	if rows := asciiView(roots).Layout(&s, 10, 0); rows != nil {
		t.Errorf("zero height produced %d rows", len(rows))
	}
}

func TestLayoutHighlight(t *testing.T) {
	roots := []*tree.Node{tree.NewLeaf("first"), tree.NewLeaf("second")}
	v := asciiView(roots)
	v.HighlightSymbol = ">> "

	var s tree.State
	s.Select(tree.Identifier{1})
	rows := v.Layout(&s, 12, 5)
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Selected || rows[0].Highlight != "   " {
		t.Errorf("row 0 highlight %q selected %v", rows[0].Highlight, rows[0].Selected)
	}
	if !rows[1].Selected || rows[1].Highlight != ">> " {
		t.Errorf("row 1 highlight %q selected %v", rows[1].Highlight, rows[1].Selected)
	}
	// 12 columns minus 3 for the highlight and 2 for the glyph.
	if got := rows[1].Lines[0].String(); got != "second" {
		t.Errorf("row 1 content = %q", got)
	}
	if got := rows[0].Plain()[0]; got != "     first" {
		t.Errorf("row 0 renders as %q", got)
	}
	if got := rows[1].Plain()[0]; got != ">>   second" {
		t.Errorf("row 1 renders as %q", got)
	}
}

func TestLayoutStaleSelection(t *testing.T) {
	roots := testutil.SampleForest()
	v := asciiView(roots)
	v.HighlightSymbol = ">"

	var s tree.State
	s.Select(tree.Identifier{1, 1, 1})
	rows := v.Layout(&s, 20, 2)
	if got := rowIDs(rows); !slices.Equal(got, []string{"0", "1"}) {
		t.Errorf("rows = %q, want the top of the list", got)
	}
	for _, r := range rows {
		if r.Selected {
			t.Errorf("row %s selected for a hidden selection", r.Identifier)
		}
	}
}

func TestLayoutWrap(t *testing.T) {
	roots := []*tree.Node{tree.NewLeaf("alpha beta gamma delta"), tree.NewLeaf("x")}
	v := asciiView(roots)
	v.Wrap = true
	v.Trim = true

	var s tree.State
	rows := v.Layout(&s, 12, 10)
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	want := []string{"  alpha beta", "  gamma", "  delta"}
	if got := rows[0].Plain(); !slices.Equal(got, want) {
		t.Errorf("wrapped row = %q, want %q", got, want)
	}
	if rows[0].Height != 3 || rows[1].Y != 3 {
		t.Errorf("heights not accounted: row0 height %d, row1 y %d", rows[0].Height, rows[1].Y)
	}

	v.Wrap = false
	rows = v.Layout(&s, 12, 10)
	if got := rows[0].Plain(); !slices.Equal(got, []string{"  alpha beta"}) {
		t.Errorf("clipped row = %q", got)
	}
}

func TestLayoutBottomLeft(t *testing.T) {
	roots := []*tree.Node{tree.NewLeaf("one\ntwo\nthree"), tree.NewLeaf("four")}
	v := asciiView(roots)
	v.Corner = tree.CornerBottomLeft

	var s tree.State
	rows := v.Layout(&s, 20, 10)
	if rows[0].Y != 7 || rows[1].Y != 6 {
		t.Errorf("bottom-left rows at y=%d and y=%d, want 7 and 6", rows[0].Y, rows[1].Y)
	}
}

func TestLayoutScrollsToSelection(t *testing.T) {
	roots := testutil.NewDefault().Balanced(10, 1, 0)
	v := asciiView(roots)

	var s tree.State
	s.Select(tree.Identifier{7})
	rows := v.Layout(&s, 10, 3)
	if got := rowIDs(rows); !slices.Equal(got, []string{"5", "6", "7"}) {
		t.Fatalf("rows = %q", got)
	}
	if s.Offset() != 5 {
		t.Errorf("Offset() = %d, want 5", s.Offset())
	}

	s.MoveUp(roots)
	s.MoveUp(roots)
	rows = v.Layout(&s, 10, 3)
	if got := rowIDs(rows); !slices.Equal(got, []string{"5", "6", "7"}) {
		t.Errorf("moving inside the window should not scroll, rows = %q", got)
	}
	s.MoveUp(roots)
	v.Layout(&s, 10, 3)
	if s.Offset() != 4 {
		t.Errorf("Offset() = %d after moving above the window, want 4", s.Offset())
	}
}

func TestLayoutNarrowViewportKeepsRows(t *testing.T) {
	roots := testutil.NewDefault().Chain(6)
	var s tree.State
	s.OpenAll(roots)
	rows := asciiView(roots).Layout(&s, 4, 10)
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	for _, r := range rows {
		if r.Height != 1 {
			t.Errorf("row %s height %d, want 1 even without content room", r.Identifier, r.Height)
		}
	}
}

func TestLayoutProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := testutil.DefaultConfig()
		cfg.Seed = rapid.Int64Range(1, 1<<20).Draw(t, "seed")
		cfg.MaxLines = 4
		roots := testutil.New(cfg).Random()

		v := asciiView(roots)
		v.Wrap = rapid.Bool().Draw(t, "wrap")
		v.Trim = rapid.Bool().Draw(t, "trim")
		v.HighlightSymbol = ">"
		width := rapid.IntRange(1, 40).Draw(t, "width")
		height := rapid.IntRange(1, 15).Draw(t, "height")

		var s tree.State
		s.OpenToLevel(roots, rapid.IntRange(-1, 4).Draw(t, "level"))
		for _, down := range rapid.SliceOfN(rapid.Bool(), 0, 30).Draw(t, "moves") {
			if down {
				s.MoveDown(roots)
			} else {
				s.MoveUp(roots)
			}
		}

		rows := v.Layout(&s, width, height)
		if len(rows) == 0 {
			t.Fatal("non-empty forest laid out no rows")
		}

		selectedRows, used := 0, 0
		for i, r := range rows {
			if r.Y != used {
				t.Fatalf("row %d at y=%d, want %d", i, r.Y, used)
			}
			used += r.Height
			if r.Selected {
				selectedRows++
			}
			room := width - runewidth.StringWidth(r.Prefix())
			for _, l := range r.Lines {
				if l.Width > max(room, 0) {
					t.Fatalf("row %s line %q width %d exceeds %d", r.Identifier, l.String(), l.Width, room)
				}
			}
		}
		if !s.Selected().IsEmpty() && selectedRows != 1 {
			t.Fatalf("%d rows selected", selectedRows)
		}
		if used > height && len(rows) != 1 {
			t.Fatalf("rows use %d of %d lines", used, height)
		}
	})
}
