package reflow

// WordWrapper breaks logical lines on word boundaries so that no output line
// is wider than the maximum width.
//
// Whitespace graphemes (a no-break space is not one) separate words. A word
// wider than the maximum width is broken where it overflows. A grapheme wider
// than the maximum width can never be placed and is skipped. Every logical
// line produces at least one output line, so empty input lines survive as
// empty output lines.
type WordWrapper struct {
	src       Source
	maxWidth  int
	trim      bool
	pending   []Line
	alignment Alignment
}

// NewWordWrapper wraps the lines of src at maxWidth. With trim set, leading
// whitespace is dropped from the start of each wrapped line.
func NewWordWrapper(src Source, maxWidth int, trim bool) *WordWrapper {
	return &WordWrapper{src: src, maxWidth: maxWidth, trim: trim}
}

func (w *WordWrapper) composer() {}

// NextLine returns the next wrapped line.
func (w *WordWrapper) NextLine() (Line, bool) {
	if w.maxWidth <= 0 {
		return Line{}, false
	}
	for len(w.pending) == 0 {
		in, ok := w.src.Next()
		if !ok {
			return Line{}, false
		}
		w.alignment = in.Alignment
		w.pending = w.wrap(in)
	}
	l := w.pending[0]
	w.pending = w.pending[1:]
	return l, true
}

// lineBuilder holds the state of wrapping one logical line.
type lineBuilder struct {
	max  int
	trim bool

	wrapped [][]StyledGrapheme

	line      []StyledGrapheme
	lineWidth int

	word      []StyledGrapheme
	wordWidth int

	spaces      []StyledGrapheme
	spacesWidth int
}

// flush moves the buffered whitespace and word onto the current line.
// Leading whitespace is dropped when trimming.
func (b *lineBuilder) flush() {
	if len(b.line) > 0 || !b.trim {
		b.line = append(b.line, b.spaces...)
		b.lineWidth += b.spacesWidth
	}
	b.line = append(b.line, b.word...)
	b.lineWidth += b.wordWidth
	b.spaces = nil
	b.spacesWidth = 0
	b.word = nil
	b.wordWidth = 0
}

// seal completes the current line and discards whitespace that belongs to
// its end: whatever fits in the space left on the sealed line, plus the
// first whitespace grapheme that does not. It reports whether the buffered
// whitespace was used up.
func (b *lineBuilder) seal() (exhausted bool) {
	remaining := max(b.max-b.lineWidth, 0)
	b.wrapped = append(b.wrapped, b.line)
	b.line = nil
	b.lineWidth = 0

	for len(b.spaces) > 0 {
		sp := b.spaces[0]
		b.spaces = b.spaces[1:]
		sw := sp.Width()
		b.spacesWidth -= sw
		if sw > remaining {
			return false
		}
		remaining -= sw
	}
	return true
}

func (b *lineBuilder) mustFlush(g StyledGrapheme, gw int, afterWord bool) bool {
	empty := len(b.line) == 0
	switch {
	case afterWord && g.IsWhitespace():
		return true
	case b.trim && empty && b.wordWidth+gw > b.max:
		return true
	case b.trim && empty && b.spacesWidth+gw > b.max:
		return true
	case !b.trim && empty && b.wordWidth+b.spacesWidth+gw > b.max:
		return true
	}
	return false
}

func (b *lineBuilder) mustSeal(gw int) bool {
	if b.lineWidth == 0 {
		return false
	}
	return b.lineWidth >= b.max || b.lineWidth+b.spacesWidth+b.wordWidth+gw > b.max
}

func (w *WordWrapper) wrap(in InputLine) []Line {
	b := &lineBuilder{max: w.maxWidth, trim: w.trim}
	afterWord := false

	for _, g := range in.Graphemes {
		gw := g.Width()
		if gw > w.maxWidth {
			continue
		}
		isSpace := g.IsWhitespace()

		skip := false
		for {
			if b.mustFlush(g, gw, afterWord) {
				b.flush()
			}
			if !b.mustSeal(gw) {
				break
			}
			if b.seal() && isSpace {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		if isSpace {
			b.spaces = append(b.spaces, g)
			b.spacesWidth += gw
		} else {
			b.word = append(b.word, g)
			b.wordWidth += gw
		}
		afterWord = !isSpace
	}

	if len(b.word) > 0 || len(b.spaces) > 0 {
		if len(b.line) > 0 || !w.trim {
			b.line = append(b.line, b.spaces...)
		}
		b.line = append(b.line, b.word...)
	}
	if len(b.line) > 0 || len(b.wrapped) == 0 {
		b.wrapped = append(b.wrapped, b.line)
	}

	out := make([]Line, len(b.wrapped))
	for i, gs := range b.wrapped {
		out[i] = Line{Graphemes: gs, Width: width(gs), Alignment: w.alignment}
	}
	return out
}
