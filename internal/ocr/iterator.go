package ocr

import "image"

// cursor addresses one symbol in a Layout.
type cursor [LevelSymbol + 1]int

// key identifies the element at level that contains the cursor.
func (c cursor) key(level Level) cursor {
	k := c
	for i := level + 1; i <= LevelSymbol; i++ {
		k[i] = -1
	}
	return k
}

// ResultIterator walks a Layout symbol by symbol. Movement and queries
// follow Tesseract's result iterator: Next(level) jumps to the start of the
// next element at that level and every query reports on the element
// containing the current position.
type ResultIterator struct {
	layout *Layout
	pos    []cursor
	cur    int
}

func newResultIterator(l *Layout) *ResultIterator {
	it := &ResultIterator{layout: l}
	for bi, b := range l.Blocks {
		for pi, p := range b.Paragraphs {
			for li, ln := range p.Lines {
				for wi, w := range ln.Words {
					for si := range w.Symbols {
						it.pos = append(it.pos, cursor{bi, pi, li, wi, si})
					}
				}
			}
		}
	}
	return it
}

// Begin moves back to the first symbol of the page.
func (it *ResultIterator) Begin() { it.cur = 0 }

// Empty reports whether the page has nothing to iterate.
func (it *ResultIterator) Empty() bool { return len(it.pos) == 0 }

// Next moves to the start of the next element at level. It returns false,
// leaving the position unchanged, when there is no such element.
func (it *ResultIterator) Next(level Level) bool {
	j := it.nextStart(level)
	if j < 0 {
		return false
	}
	it.cur = j
	return true
}

// NextWithin moves to the next element at level element as long as that
// stays inside the current element at level. It returns false at the final
// element.
func (it *ResultIterator) NextWithin(level, element Level) bool {
	if it.IsAtFinalOf(level, element) {
		return false
	}
	return it.Next(element)
}

// IsAtBeginningOf reports whether the position is the first symbol of its
// element at level.
func (it *ResultIterator) IsAtBeginningOf(level Level) bool {
	if it.Empty() {
		return false
	}
	c := it.pos[it.cur]
	for i := level + 1; i <= LevelSymbol; i++ {
		if c[i] != 0 {
			return false
		}
	}
	return true
}

// IsAtFinalOf reports whether the current element at level element is the
// last one inside the current element at level.
func (it *ResultIterator) IsAtFinalOf(level, element Level) bool {
	if it.Empty() {
		return true
	}
	j := it.nextStart(element)
	if j < 0 {
		return true
	}
	return it.pos[j].key(level) != it.pos[it.cur].key(level)
}

// Text returns the text of the element at level holding the position.
func (it *ResultIterator) Text(level Level) string {
	if it.Empty() {
		return ""
	}
	c := it.pos[it.cur]
	b := it.layout.Blocks[c[LevelBlock]]
	if level == LevelBlock {
		return b.Text()
	}
	p := b.Paragraphs[c[LevelPara]]
	if level == LevelPara {
		return p.Text()
	}
	ln := p.Lines[c[LevelTextLine]]
	if level == LevelTextLine {
		return ln.Text()
	}
	w := ln.Words[c[LevelWord]]
	if level == LevelWord {
		return w.Text
	}
	return w.Symbols[c[LevelSymbol]].Text
}

// Confidence returns the mean confidence (0-100) of the element at level.
func (it *ResultIterator) Confidence(level Level) float64 {
	_, conf := it.element(level)
	return conf
}

// BoundingBox returns the box of the element at level.
func (it *ResultIterator) BoundingBox(level Level) image.Rectangle {
	box, _ := it.element(level)
	return box
}

func (it *ResultIterator) element(level Level) (image.Rectangle, float64) {
	if it.Empty() {
		return image.Rectangle{}, 0
	}
	c := it.pos[it.cur]
	b := it.layout.Blocks[c[LevelBlock]]
	p := b.Paragraphs[c[LevelPara]]
	ln := p.Lines[c[LevelTextLine]]
	w := ln.Words[c[LevelWord]]
	switch level {
	case LevelBlock:
		return b.Box, b.Confidence
	case LevelPara:
		return p.Box, p.Confidence
	case LevelTextLine:
		return ln.Box, ln.Confidence
	case LevelWord:
		return w.Box, w.Confidence
	default:
		s := w.Symbols[c[LevelSymbol]]
		return s.Box, s.Confidence
	}
}

// nextStart returns the index of the first symbol of the element after the
// current one at level, or -1.
func (it *ResultIterator) nextStart(level Level) int {
	if it.Empty() {
		return -1
	}
	here := it.pos[it.cur].key(level)
	for j := it.cur + 1; j < len(it.pos); j++ {
		if it.pos[j].key(level) != here {
			return j
		}
	}
	return -1
}
