// Package reflow packs styled text into lines of a fixed display width.
//
// Text is modelled the way terminal widgets see it: a Text is a list of
// logical lines, each logical line is a list of styled spans, and every span
// is consumed as a stream of grapheme clusters. A LineComposer pulls logical
// lines from a Source and produces width-bounded output lines, either by
// wrapping on word boundaries (WordWrapper) or by hard clipping
// (LineTruncator).
//
// Widths are display cells as reported by go-runewidth, so wide glyphs count
// as two columns. Grapheme clusters are never split for width accounting.
package reflow

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Alignment is the horizontal alignment of a logical line.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the lowercase alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

const nbsp = "\u00a0"

// StyledGrapheme is one grapheme cluster with the style it is drawn in.
type StyledGrapheme struct {
	Symbol string
	Style  lipgloss.Style
}

// Width returns the display width of the grapheme in terminal cells.
func (g StyledGrapheme) Width() int {
	return runewidth.StringWidth(g.Symbol)
}

// IsWhitespace reports whether the grapheme separates words. A no-break
// space is part of a word.
func (g StyledGrapheme) IsWhitespace() bool {
	if g.Symbol == nbsp {
		return false
	}
	return strings.TrimFunc(g.Symbol, unicode.IsSpace) == ""
}

// Span is a run of text sharing one style.
type Span struct {
	Content string
	Style   lipgloss.Style
}

// Raw returns an unstyled span.
func Raw(content string) Span {
	return Span{Content: content, Style: lipgloss.NewStyle()}
}

// Styled returns a span drawn in style.
func Styled(content string, style lipgloss.Style) Span {
	return Span{Content: content, Style: style}
}

// Width returns the display width of the span.
func (s Span) Width() int {
	return runewidth.StringWidth(s.Content)
}

// Graphemes splits the span into grapheme clusters. The span's own style
// takes precedence; unset properties fall back to base. Line breaks are
// dropped since a span never spans lines.
func (s Span) Graphemes(base lipgloss.Style) []StyledGrapheme {
	style := s.Style.Inherit(base)
	var out []StyledGrapheme
	gr := uniseg.NewGraphemes(s.Content)
	for gr.Next() {
		sym := gr.Str()
		if sym == "\n" || sym == "\r\n" || sym == "\r" {
			continue
		}
		out = append(out, StyledGrapheme{Symbol: sym, Style: style})
	}
	return out
}

// Spans is one logical line made of styled spans.
type Spans []Span

// Width returns the summed display width of all spans.
func (l Spans) Width() int {
	w := 0
	for _, s := range l {
		w += s.Width()
	}
	return w
}

// String returns the line content without styling.
func (l Spans) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Content)
	}
	return b.String()
}

// Graphemes flattens the line into styled grapheme clusters.
func (l Spans) Graphemes(base lipgloss.Style) []StyledGrapheme {
	var out []StyledGrapheme
	for _, s := range l {
		out = append(out, s.Graphemes(base)...)
	}
	return out
}

// Text is a block of logical lines sharing one alignment.
type Text struct {
	Lines     []Spans
	Alignment Alignment
}

// NewText splits content on newlines into unstyled logical lines. The empty
// string is one empty line.
func NewText(content string) Text {
	return NewStyledText(content, lipgloss.NewStyle())
}

// NewStyledText is NewText with every line drawn in style.
func NewStyledText(content string, style lipgloss.Style) Text {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	parts := strings.Split(content, "\n")
	lines := make([]Spans, len(parts))
	for i, p := range parts {
		lines[i] = Spans{Styled(p, style)}
	}
	return Text{Lines: lines}
}

// Height returns the number of logical lines.
func (t Text) Height() int {
	return len(t.Lines)
}

// Width returns the width of the widest logical line.
func (t Text) Width() int {
	w := 0
	for _, l := range t.Lines {
		w = max(w, l.Width())
	}
	return w
}

// String joins the logical lines with newlines, dropping styles.
func (t Text) String() string {
	parts := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}
