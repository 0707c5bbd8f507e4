package tree

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/canopy/pkg/debug"
	"github.com/vanderheijden86/canopy/pkg/metrics"
	"github.com/vanderheijden86/canopy/pkg/reflow"
)

// Corner is where drawing starts.
type Corner int

const (
	// CornerTopLeft lays rows out from the top down.
	CornerTopLeft Corner = iota
	// CornerBottomLeft lays rows out from the bottom up.
	CornerBottomLeft
)

// Kind tells a renderer which glyph a row carries.
type Kind int

const (
	KindLeaf Kind = iota
	KindClosed
	KindOpen
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindClosed:
		return "closed"
	default:
		return "leaf"
	}
}

// Symbols are the glyphs drawn in front of a node.
type Symbols struct {
	Open   string
	Closed string
	Leaf   string
}

// DefaultSymbols are triangle markers with a trailing space.
func DefaultSymbols() Symbols {
	return Symbols{Open: "▼ ", Closed: "▶ ", Leaf: "  "}
}

func (s Symbols) glyph(k Kind) string {
	switch k {
	case KindOpen:
		return s.Open
	case KindClosed:
		return s.Closed
	default:
		return s.Leaf
	}
}

// View describes how a forest is laid out into a viewport.
type View struct {
	Roots []*Node

	// Wrap word-wraps node text; otherwise each line is clipped.
	Wrap bool
	// Trim drops leading whitespace of wrapped lines.
	Trim bool

	Symbols         Symbols
	HighlightSymbol string
	// IndentWidth is the number of columns per depth level.
	IndentWidth int
	Corner      Corner

	Style          lipgloss.Style
	HighlightStyle lipgloss.Style
}

// DefaultView returns a View over roots with the stock glyphs, two columns
// of indent per level and clipping.
func DefaultView(roots []*Node) View {
	return View{
		Roots:          roots,
		Symbols:        DefaultSymbols(),
		IndentWidth:    2,
		Style:          lipgloss.NewStyle(),
		HighlightStyle: lipgloss.NewStyle(),
	}
}

// Row is one visible entry placed in the viewport.
type Row struct {
	Identifier Identifier
	Depth      int
	Kind       Kind
	Selected   bool

	// Highlight is the highlight symbol on the selected row and blank
	// padding of the same width on the others. It is empty when nothing is
	// selected.
	Highlight string
	// Indent is the number of indent columns.
	Indent int
	Glyph  string

	// Y is the row's first line relative to the top of the viewport. An
	// entry taller than a bottom-anchored viewport can start above it.
	Y      int
	Height int

	// Style is the view style patched with the node style, and with the
	// highlight style on the selected row.
	Style lipgloss.Style
	Lines []reflow.Line
}

// Prefix is everything drawn before the content on the row's first line.
func (r Row) Prefix() string {
	return r.Highlight + strings.Repeat(" ", r.Indent) + r.Glyph
}

// Plain renders the row as unstyled text, one string per line. Continuation
// lines are padded to line up with the content.
func (r Row) Plain() []string {
	prefix := r.Prefix()
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	out := make([]string, r.Height)
	for i := range out {
		p := pad
		if i == 0 {
			p = prefix
		}
		if i < len(r.Lines) {
			out[i] = p + r.Lines[i].String()
		} else {
			out[i] = strings.TrimRight(p, " ")
		}
	}
	return out
}

// Layout runs one render pass: it flattens the tree under state, composes
// each visible node at the width left after highlight, indent and glyph,
// picks the window around the selection and returns the rows to draw. The
// state's scroll offset is updated to the window start.
//
// A viewport without area or a tree without visible entries yields no rows.
func (v View) Layout(state *State, width, height int) []Row {
	defer metrics.Timer(metrics.Layout)()
	if width < 1 || height < 1 {
		return nil
	}
	visible := state.Visible(v.Roots)
	if len(visible) == 0 {
		return nil
	}

	hasSelection := !state.selected.IsEmpty()
	selected := 0
	if hasSelection {
		if i := IndexOf(visible, state.selected); i >= 0 {
			selected = i
		} else {
			debug.Log("tree: layout selection %q not visible", state.selected.String())
		}
	}

	highlightWidth := 0
	if hasSelection {
		highlightWidth = runewidth.StringWidth(v.HighlightSymbol)
	}

	composed := make([][]reflow.Line, len(visible))
	heights := make([]int, len(visible))
	kinds := make([]Kind, len(visible))
	for i, e := range visible {
		kinds[i] = v.kind(state, e)
		used := highlightWidth + v.indent(e) + runewidth.StringWidth(v.Symbols.glyph(kinds[i]))
		composed[i] = v.compose(e.Node, width-used)
		// A node always occupies a line so its glyph has somewhere to go.
		heights[i] = max(len(composed[i]), 1)
	}

	start, end := Window(heights, selected, height, state.offset)
	debug.LogIf(start != state.offset, "tree: scrolled from %d to %d", state.offset, start)
	state.offset = start
	debug.Log("tree: window [%d, %d) of %d, selected %d", start, end, len(visible), selected)

	blank := strings.Repeat(" ", highlightWidth)
	rows := make([]Row, 0, end-start)
	y := 0
	for i := start; i < end; i++ {
		e := visible[i]
		row := Row{
			Identifier: e.Identifier,
			Depth:      e.Depth(),
			Kind:       kinds[i],
			Selected:   hasSelection && e.Identifier.Equal(state.selected),
			Indent:     v.indent(e),
			Glyph:      v.Symbols.glyph(kinds[i]),
			Height:     heights[i],
			Style:      e.Node.Style().Inherit(v.Style),
			Lines:      composed[i],
		}
		if hasSelection {
			row.Highlight = blank
			if row.Selected {
				row.Highlight = v.HighlightSymbol
				row.Style = v.HighlightStyle.Inherit(row.Style)
			}
		}
		if v.Corner == CornerBottomLeft {
			y += row.Height
			row.Y = height - y
		} else {
			row.Y = y
			y += row.Height
		}
		rows = append(rows, row)
	}
	return rows
}

func (v View) kind(state *State, e Visible) Kind {
	switch {
	case !e.Node.HasChildren():
		return KindLeaf
	case state.IsOpen(e.Identifier):
		return KindOpen
	default:
		return KindClosed
	}
}

func (v View) indent(e Visible) int {
	return e.Depth() * max(v.IndentWidth, 0)
}

func (v View) compose(n *Node, width int) []reflow.Line {
	if width <= 0 {
		return nil
	}
	mode := reflow.ModeTruncate
	if v.Wrap {
		mode = reflow.ModeWrap
	}
	c := reflow.New(mode, n.Source(v.Style), reflow.Options{MaxWidth: width, Trim: v.Trim})
	return reflow.Collect(c)
}
