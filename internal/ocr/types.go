// Package ocr holds the contract between ocrscan and an OCR engine: image
// loading, the recognized page and its hierarchical layout, and a result
// iterator walking that layout the way Tesseract's iterator does.
package ocr

import (
	"context"
	"image"
)

// Level is a layer of the page hierarchy.
type Level int

const (
	LevelBlock Level = iota
	LevelPara
	LevelTextLine
	LevelWord
	LevelSymbol
)

var levelNames = [...]string{"block", "para", "text line", "word", "symbol"}

func (l Level) String() string {
	if l < LevelBlock || l > LevelSymbol {
		return "unknown"
	}
	return levelNames[l]
}

// Levels lists every level from outermost to innermost.
func Levels() []Level {
	return []Level{LevelBlock, LevelPara, LevelTextLine, LevelWord, LevelSymbol}
}

// Engine recognizes text in an image.
type Engine interface {
	Name() string
	Process(ctx context.Context, img Image) (*Page, error)
}

// Page is the result of processing one image.
type Page struct {
	text       string
	confidence float64
	layout     *Layout
}

// NewPage assembles a page from the engine's full text, its mean confidence
// (0-100) and the recognized layout. A nil layout is treated as empty.
func NewPage(text string, meanConfidence float64, layout *Layout) *Page {
	if layout == nil {
		layout = &Layout{}
	}
	return &Page{text: text, confidence: meanConfidence, layout: layout}
}

// Text is the full recognized text as reported by the engine.
func (p *Page) Text() string { return p.text }

// MeanConfidence is the engine's mean word confidence, 0-100.
func (p *Page) MeanConfidence() float64 { return p.confidence }

// Layout is the block/paragraph/line/word/symbol tree.
func (p *Page) Layout() *Layout { return p.layout }

// Iterator returns a fresh iterator positioned at the first symbol.
func (p *Page) Iterator() *ResultIterator { return newResultIterator(p.layout) }

// WordBox is a word reported by the engine along with its position in the
// hierarchy. Block, Para and Line numbers only need to be distinct between
// neighbouring elements; words are expected in reading order.
type WordBox struct {
	Block, Para, Line, Word int
	Text                    string
	Box                     image.Rectangle
	Confidence              float64
}

// SymbolBox is a single recognized character.
type SymbolBox struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
}
