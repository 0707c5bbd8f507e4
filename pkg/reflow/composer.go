package reflow

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/canopy/pkg/metrics"
)

// Line is one composed output line.
type Line struct {
	Graphemes []StyledGrapheme
	Width     int
	Alignment Alignment
}

// String returns the line content without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, g := range l.Graphemes {
		b.WriteString(g.Symbol)
	}
	return b.String()
}

// LineComposer produces composed lines on demand. The sequence is finite and
// cannot be rewound; build a new composer to start over. ok is false once the
// source is exhausted.
//
// The only implementations are *WordWrapper and *LineTruncator.
type LineComposer interface {
	NextLine() (line Line, ok bool)
	composer()
}

// Mode selects a LineComposer strategy.
type Mode int

const (
	ModeWrap Mode = iota
	ModeTruncate
)

func (m Mode) String() string {
	switch m {
	case ModeWrap:
		return "wrap"
	case ModeTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "wrap" or "truncate".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return ModeWrap, nil
	case "truncate", "clip":
		return ModeTruncate, nil
	default:
		return 0, fmt.Errorf("unknown composer mode %q", s)
	}
}

// Options configures a composer.
type Options struct {
	// MaxWidth is the width bound in display cells. Zero yields no lines.
	MaxWidth int
	// Trim drops leading whitespace at the start of wrapped lines.
	// Only used by ModeWrap.
	Trim bool
	// HorizontalOffset skips this many leading columns of left-aligned
	// lines. Only used by ModeTruncate.
	HorizontalOffset int
}

// New returns the composer for mode reading from src.
func New(mode Mode, src Source, opts Options) LineComposer {
	if mode == ModeTruncate {
		t := NewLineTruncator(src, opts.MaxWidth)
		t.SetHorizontalOffset(opts.HorizontalOffset)
		return t
	}
	return NewWordWrapper(src, opts.MaxWidth, opts.Trim)
}

// Collect drains c.
func Collect(c LineComposer) []Line {
	defer metrics.Timer(metrics.Compose)()
	var out []Line
	for {
		l, ok := c.NextLine()
		if !ok {
			return out
		}
		out = append(out, l)
	}
}

// Count drains c and returns the number of lines it produced.
func Count(c LineComposer) int {
	n := 0
	for {
		if _, ok := c.NextLine(); !ok {
			return n
		}
		n++
	}
}

func width(gs []StyledGrapheme) int {
	w := 0
	for _, g := range gs {
		w += g.Width()
	}
	return w
}
