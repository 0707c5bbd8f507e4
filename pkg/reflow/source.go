package reflow

import "github.com/charmbracelet/lipgloss"

// InputLine is one logical line handed to a composer.
type InputLine struct {
	Graphemes []StyledGrapheme
	Alignment Alignment
}

// NewInputLine segments s into an unstyled, left-aligned logical line.
func NewInputLine(s string) InputLine {
	return InputLine{Graphemes: Raw(s).Graphemes(lipgloss.NewStyle())}
}

// Source yields logical lines one at a time. ok is false once the source is
// exhausted.
type Source interface {
	Next() (line InputLine, ok bool)
}

type sliceSource struct {
	lines []InputLine
	pos   int
}

func (s *sliceSource) Next() (InputLine, bool) {
	if s.pos >= len(s.lines) {
		return InputLine{}, false
	}
	l := s.lines[s.pos]
	s.pos++
	return l, true
}

// Lines returns a Source over the given logical lines.
func Lines(lines ...InputLine) Source {
	return &sliceSource{lines: lines}
}

// Strings returns a Source of unstyled, left-aligned lines.
func Strings(lines ...string) Source {
	in := make([]InputLine, len(lines))
	for i, l := range lines {
		in[i] = NewInputLine(l)
	}
	return &sliceSource{lines: in}
}

type textSource struct {
	text Text
	base lipgloss.Style
	pos  int
}

func (s *textSource) Next() (InputLine, bool) {
	if s.pos >= len(s.text.Lines) {
		return InputLine{}, false
	}
	l := s.text.Lines[s.pos]
	s.pos++
	return InputLine{Graphemes: l.Graphemes(s.base), Alignment: s.text.Alignment}, true
}

// TextSource yields the lines of t lazily, segmenting each one only when it
// is pulled. base is merged under every span's style.
func TextSource(t Text, base lipgloss.Style) Source {
	return &textSource{text: t, base: base}
}
