// Package report renders a recognized page: as a nested console log walking
// the result iterator, or as a JSON layout document.
package report

import (
	"context"

	"ocrscan/internal/ocr"
	"ocrscan/internal/scopelog"
)

// Options tune the console walk.
type Options struct {
	// Details logs the beginning flags and texts of all five levels for
	// every word.
	Details bool
	// Every keeps only lines whose 1-based number is a multiple of Every.
	// Zero or one prints every line.
	Every int
}

// Printer walks pages line by line and word by word.
type Printer struct {
	log  *scopelog.Logger
	opts Options
}

func NewPrinter(lg *scopelog.Logger, opts Options) *Printer {
	if opts.Every < 1 {
		opts.Every = 1
	}
	return &Printer{log: lg, opts: opts}
}

// Print logs the page's text, its mean confidence and then one section per
// text line holding one section per word.
func (p *Printer) Print(ctx context.Context, page *ocr.Page) error {
	return p.log.Section("Process image", func() error {
		if err := p.log.Log("Text: {0}", page.Text()); err != nil {
			return err
		}
		if err := p.log.Log("Mean confidence: {0:%.2f}", page.MeanConfidence()); err != nil {
			return err
		}
		it := page.Iterator()
		if it.Empty() {
			return p.log.Log("No text found")
		}
		it.Begin()
		for i := 1; ; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if i%p.opts.Every == 0 {
				if err := p.printLine(it, i); err != nil {
					return err
				}
			}
			if !it.Next(ocr.LevelTextLine) {
				return nil
			}
		}
	})
}

func (p *Printer) printLine(it *ocr.ResultIterator, n int) error {
	return p.log.Section("Line {0}", func() error {
		for {
			if err := p.log.Section("Word Iteration", func() error { return p.printWord(it) }); err != nil {
				return err
			}
			if !it.NextWithin(ocr.LevelTextLine, ocr.LevelWord) {
				return nil
			}
		}
	}, n)
}

func (p *Printer) printWord(it *ocr.ResultIterator) error {
	marks := []struct {
		level ocr.Level
		msg   string
	}{
		{ocr.LevelBlock, "New block"},
		{ocr.LevelPara, "New paragraph"},
		{ocr.LevelTextLine, "New line"},
	}
	for _, m := range marks {
		if !it.IsAtBeginningOf(m.level) {
			continue
		}
		if err := p.log.Log(m.msg); err != nil {
			return err
		}
	}
	if err := p.log.Log("word: {0}", it.Text(ocr.LevelWord)); err != nil {
		return err
	}
	if p.opts.Details {
		return p.printDetails(it)
	}
	return nil
}

// textLabels name each level in the text dump.
var textLabels = map[ocr.Level]string{
	ocr.LevelBlock:    "Block",
	ocr.LevelPara:     "Para",
	ocr.LevelTextLine: "TextLine",
	ocr.LevelWord:     "Word",
	ocr.LevelSymbol:   "Symbol",
}

// printDetails dumps the iterator state at every level.
func (p *Printer) printDetails(it *ocr.ResultIterator) error {
	for _, lvl := range ocr.Levels() {
		if err := p.log.Log("Is beginning of {0}: {1}", lvl, it.IsAtBeginningOf(lvl)); err != nil {
			return err
		}
	}
	for _, lvl := range ocr.Levels() {
		if err := p.log.Log("{0} text: \"{1}\"", textLabels[lvl], it.Text(lvl)); err != nil {
			return err
		}
	}
	return nil
}
