package reflow

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// LineTruncator clips every logical line at the maximum width, producing
// exactly one output line per logical line.
type LineTruncator struct {
	src      Source
	maxWidth int
	offset   int
}

// NewLineTruncator clips the lines of src at maxWidth.
func NewLineTruncator(src Source, maxWidth int) *LineTruncator {
	return &LineTruncator{src: src, maxWidth: maxWidth}
}

func (t *LineTruncator) composer() {}

// SetHorizontalOffset scrolls left-aligned lines by offset columns. Each
// logical line is scrolled independently.
func (t *LineTruncator) SetHorizontalOffset(offset int) {
	t.offset = max(offset, 0)
}

// NextLine returns the next clipped line.
func (t *LineTruncator) NextLine() (Line, bool) {
	if t.maxWidth <= 0 {
		return Line{}, false
	}
	in, ok := t.src.Next()
	if !ok {
		return Line{}, false
	}

	out := Line{Alignment: in.Alignment}
	offset := 0
	if in.Alignment == AlignLeft {
		offset = t.offset
	}
	for _, g := range in.Graphemes {
		gw := g.Width()
		if gw > t.maxWidth {
			continue
		}
		if out.Width+gw > t.maxWidth {
			break
		}
		if offset > 0 {
			if gw <= offset {
				offset -= gw
				continue
			}
			g.Symbol = trimOffset(g.Symbol, offset)
			offset = 0
		}
		out.Graphemes = append(out.Graphemes, g)
		out.Width += g.Width()
	}
	return out, true
}

// trimOffset drops the leading graphemes of s that fit entirely within
// offset columns.
func trimOffset(s string, offset int) string {
	start := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := runewidth.StringWidth(gr.Str())
		if w > offset {
			break
		}
		offset -= w
		_, to := gr.Positions()
		start = to
	}
	return s[start:]
}
