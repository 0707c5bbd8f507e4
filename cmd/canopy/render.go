package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/canopy/pkg/debug"
	"github.com/vanderheijden86/canopy/pkg/reflow"
	"github.com/vanderheijden86/canopy/pkg/tree"
)

type renderer struct {
	view   tree.View
	width  int
	height int
	format string
	styled bool
	out    io.Writer
}

// frameJSON is one layout pass in -format json.
type frameJSON struct {
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Offset   int       `json:"offset"`
	Selected string    `json:"selected,omitempty"`
	Rows     []rowJSON `json:"rows"`
}

type rowJSON struct {
	ID       string   `json:"id"`
	Depth    int      `json:"depth"`
	Kind     string   `json:"kind"`
	Selected bool     `json:"selected,omitempty"`
	Y        int      `json:"y"`
	Height   int      `json:"height"`
	Prefix   string   `json:"prefix"`
	Lines    []string `json:"lines"`
}

func (r *renderer) render(state *tree.State) error {
	defer debug.LogEnterExit("render")()
	rows := r.view.Layout(state, r.width, r.height)
	if r.format == "json" {
		return r.writeJSON(state, rows)
	}
	for _, line := range r.canvas(rows) {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) writeJSON(state *tree.State, rows []tree.Row) error {
	frame := frameJSON{
		Width:    r.width,
		Height:   r.height,
		Offset:   state.Offset(),
		Selected: state.Selected().String(),
		Rows:     make([]rowJSON, 0, len(rows)),
	}
	for _, row := range rows {
		lines := make([]string, len(row.Lines))
		for i, l := range row.Lines {
			lines[i] = l.String()
		}
		frame.Rows = append(frame.Rows, rowJSON{
			ID:       row.Identifier.String(),
			Depth:    row.Depth,
			Kind:     row.Kind.String(),
			Selected: row.Selected,
			Y:        row.Y,
			Height:   row.Height,
			Prefix:   row.Prefix(),
			Lines:    lines,
		})
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(frame)
}

// canvas places the rows at their Y positions. Lines outside the viewport
// are dropped. A top-left layout is cut after its last row.
func (r *renderer) canvas(rows []tree.Row) []string {
	out := make([]string, r.height)
	used := 0
	for _, row := range rows {
		lines := row.Plain()
		if r.styled {
			lines = r.styledLines(row)
		}
		for i, line := range lines {
			y := row.Y + i
			if y < 0 || y >= r.height {
				continue
			}
			out[y] = line
			used = max(used, y+1)
		}
	}
	if r.view.Corner == tree.CornerTopLeft {
		out = out[:used]
	}
	return out
}

// styledLines renders a row with ANSI styling: the prefix in the row style
// and every grapheme in its own style, patched with the highlight style on
// the selected row.
func (r *renderer) styledLines(row tree.Row) []string {
	plain := row.Plain()
	prefix := row.Prefix()
	pad := strings.Repeat(" ", lipgloss.Width(prefix))

	out := make([]string, len(plain))
	for i := range out {
		var b strings.Builder
		if i == 0 {
			b.WriteString(row.Style.Render(prefix))
		} else {
			b.WriteString(pad)
		}
		if i < len(row.Lines) {
			b.WriteString(r.renderLine(row, row.Lines[i]))
		}
		out[i] = b.String()
	}
	return out
}

func (r *renderer) renderLine(row tree.Row, line reflow.Line) string {
	var b strings.Builder
	for _, g := range line.Graphemes {
		style := g.Style
		if row.Selected {
			style = r.view.HighlightStyle.Inherit(style)
		}
		b.WriteString(style.Render(g.Symbol))
	}
	return b.String()
}
