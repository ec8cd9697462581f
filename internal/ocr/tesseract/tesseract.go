// Package tesseract implements ocr.Engine on top of the Tesseract library
// through gosseract. Tesseract and its headers must be installed:
//
//	brew install tesseract            # macOS
//	apt-get install libtesseract-dev  # Debian/Ubuntu
package tesseract

import (
	"context"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/pkg/errors"

	"ocrscan/internal/ocr"
)

// Options configure recognition.
type Options struct {
	Languages []string
	// TessdataPrefix is the directory holding *.traineddata; empty means the
	// library default (or TESSDATA_PREFIX).
	TessdataPrefix string
	// PageSegMode is Tesseract's page segmentation mode (3 = fully automatic).
	PageSegMode int
}

// DefaultOptions returns English with automatic page segmentation.
func DefaultOptions() Options {
	return Options{Languages: []string{"eng"}, PageSegMode: int(gosseract.PSM_AUTO)}
}

// Engine creates one gosseract client per processed image.
type Engine struct {
	opts          Options
	clientFactory func() *gosseract.Client
}

// New returns a Tesseract-backed engine.
func New(opts Options) *Engine {
	return &Engine{opts: opts, clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

// Version reports the linked Tesseract library version.
func Version() string { return gosseract.Version() }

// Process recognizes img and returns its text and layout.
func (e *Engine) Process(ctx context.Context, img ocr.Image) (*ocr.Page, error) {
	if len(img.Data) == 0 {
		return nil, errors.New("tesseract: empty image")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := e.clientFactory()
	defer c.Close()

	if err := e.configure(c); err != nil {
		return nil, err
	}
	if err := c.SetImageFromBytes(img.Data); err != nil {
		return nil, errors.Wrap(err, "set image")
	}
	text, err := c.Text()
	if err != nil {
		return nil, errors.Wrap(err, "recognize text")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	boxes, err := c.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, errors.Wrap(err, "word boxes")
	}
	symbols, err := c.GetBoundingBoxes(gosseract.RIL_SYMBOL)
	if err != nil {
		return nil, errors.Wrap(err, "symbol boxes")
	}
	words := toWordBoxes(boxes)
	return ocr.NewPage(text, meanConfidence(words), ocr.BuildLayout(words, toSymbolBoxes(symbols))), nil
}

func (e *Engine) configure(c *gosseract.Client) error {
	if e.opts.TessdataPrefix != "" {
		if err := c.SetTessdataPrefix(e.opts.TessdataPrefix); err != nil {
			return errors.Wrapf(err, "set tessdata prefix %s", e.opts.TessdataPrefix)
		}
	}
	if len(e.opts.Languages) > 0 {
		if err := c.SetLanguage(e.opts.Languages...); err != nil {
			return errors.Wrapf(err, "set languages %s", strings.Join(e.opts.Languages, "+"))
		}
	}
	if err := c.SetPageSegMode(gosseract.PageSegMode(e.opts.PageSegMode)); err != nil {
		return errors.Wrap(err, "set page segmentation mode")
	}
	return nil
}

func toWordBoxes(boxes []gosseract.BoundingBox) []ocr.WordBox {
	out := make([]ocr.WordBox, 0, len(boxes))
	for _, b := range boxes {
		if strings.TrimSpace(b.Word) == "" {
			continue
		}
		out = append(out, ocr.WordBox{
			Block:      b.BlockNum,
			Para:       b.ParNum,
			Line:       b.LineNum,
			Word:       b.WordNum,
			Text:       b.Word,
			Box:        b.Box,
			Confidence: b.Confidence,
		})
	}
	return out
}

func toSymbolBoxes(boxes []gosseract.BoundingBox) []ocr.SymbolBox {
	out := make([]ocr.SymbolBox, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, ocr.SymbolBox{Text: b.Word, Box: b.Box, Confidence: b.Confidence})
	}
	return out
}

// meanConfidence averages word confidences the way Tesseract's
// MeanTextConf does.
func meanConfidence(words []ocr.WordBox) float64 {
	if len(words) == 0 {
		return 0
	}
	var sum float64
	for _, w := range words {
		sum += w.Confidence
	}
	return sum / float64(len(words))
}
