package ocr

import (
	"image"
	"strings"
)

// Layout is the recognized page hierarchy.
type Layout struct {
	Blocks []Block
}

type Block struct {
	Box        image.Rectangle
	Confidence float64
	Paragraphs []Paragraph
}

type Paragraph struct {
	Box        image.Rectangle
	Confidence float64
	Lines      []Line
}

type Line struct {
	Box        image.Rectangle
	Confidence float64
	Words      []Word
}

type Word struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
	Symbols    []Symbol
}

type Symbol struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
}

// Text renders a line as its words separated by spaces, plus a newline.
func (l Line) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ") + "\n"
}

// Text renders a paragraph as the concatenation of its lines.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, l := range p.Lines {
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// Text renders a block as its paragraphs followed by a blank line.
func (b Block) Text() string {
	var sb strings.Builder
	for _, p := range b.Paragraphs {
		sb.WriteString(p.Text())
	}
	sb.WriteString("\n")
	return sb.String()
}

// LineCount returns the total number of text lines on the page.
func (l *Layout) LineCount() int {
	n := 0
	for _, b := range l.Blocks {
		for _, p := range b.Paragraphs {
			n += len(p.Lines)
		}
	}
	return n
}

// WordCount returns the total number of words on the page.
func (l *Layout) WordCount() int {
	n := 0
	for _, b := range l.Blocks {
		for _, p := range b.Paragraphs {
			for _, ln := range p.Lines {
				n += len(ln.Words)
			}
		}
	}
	return n
}

// BuildLayout groups engine word boxes into blocks, paragraphs and lines.
// A new element starts whenever the corresponding number changes between
// consecutive words. Each symbol is attached to the first word whose box
// contains the symbol's centre; words left without symbols get one symbol
// per rune sharing the word's box.
func BuildLayout(words []WordBox, symbols []SymbolBox) *Layout {
	lay := &Layout{}
	var prev *WordBox
	for i := range words {
		wb := &words[i]
		switch {
		case prev == nil || wb.Block != prev.Block:
			lay.Blocks = append(lay.Blocks, Block{})
			fallthrough
		case wb.Para != prev.Para:
			b := &lay.Blocks[len(lay.Blocks)-1]
			b.Paragraphs = append(b.Paragraphs, Paragraph{})
			fallthrough
		case wb.Line != prev.Line:
			b := &lay.Blocks[len(lay.Blocks)-1]
			p := &b.Paragraphs[len(b.Paragraphs)-1]
			p.Lines = append(p.Lines, Line{})
		}
		b := &lay.Blocks[len(lay.Blocks)-1]
		p := &b.Paragraphs[len(b.Paragraphs)-1]
		ln := &p.Lines[len(p.Lines)-1]
		ln.Words = append(ln.Words, Word{Text: wb.Text, Box: wb.Box, Confidence: wb.Confidence})
		prev = wb
	}

	lay.attachSymbols(symbols)
	lay.summarize()
	return lay
}

func (l *Layout) eachWord(fn func(w *Word)) {
	for bi := range l.Blocks {
		b := &l.Blocks[bi]
		for pi := range b.Paragraphs {
			p := &b.Paragraphs[pi]
			for li := range p.Lines {
				ln := &p.Lines[li]
				for wi := range ln.Words {
					fn(&ln.Words[wi])
				}
			}
		}
	}
}

func (l *Layout) attachSymbols(symbols []SymbolBox) {
	var all []*Word
	l.eachWord(func(w *Word) { all = append(all, w) })
	for _, s := range symbols {
		c := center(s.Box)
		for _, w := range all {
			if c.In(w.Box) {
				w.Symbols = append(w.Symbols, Symbol(s))
				break
			}
		}
	}
	for _, w := range all {
		if len(w.Symbols) > 0 {
			continue
		}
		for _, r := range w.Text {
			w.Symbols = append(w.Symbols, Symbol{Text: string(r), Box: w.Box, Confidence: w.Confidence})
		}
		if len(w.Symbols) == 0 {
			w.Symbols = []Symbol{{Box: w.Box, Confidence: w.Confidence}}
		}
	}
}

// summarize fills in boxes and mean confidences bottom-up.
func (l *Layout) summarize() {
	for bi := range l.Blocks {
		b := &l.Blocks[bi]
		var bConf []float64
		for pi := range b.Paragraphs {
			p := &b.Paragraphs[pi]
			var pConf []float64
			for li := range p.Lines {
				ln := &p.Lines[li]
				var lConf []float64
				for _, w := range ln.Words {
					ln.Box = union(ln.Box, w.Box)
					lConf = append(lConf, w.Confidence)
				}
				ln.Confidence = mean(lConf)
				p.Box = union(p.Box, ln.Box)
				pConf = append(pConf, lConf...)
			}
			p.Confidence = mean(pConf)
			b.Box = union(b.Box, p.Box)
			bConf = append(bConf, pConf...)
		}
		b.Confidence = mean(bConf)
	}
}

func union(a, b image.Rectangle) image.Rectangle {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return a.Union(b)
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
