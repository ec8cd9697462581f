package report

import (
	"encoding/json"
	"image"
	"io"

	"github.com/invopop/jsonschema"

	"ocrscan/internal/ocr"
)

// Document is the JSON form of a recognized page.
type Document struct {
	Source         string     `json:"source,omitempty" jsonschema:"description=Path of the scanned image"`
	Engine         string     `json:"engine" jsonschema:"description=OCR engine name"`
	Text           string     `json:"text"`
	MeanConfidence float64    `json:"meanConfidence" jsonschema:"minimum=0,maximum=100"`
	Blocks         []BlockDoc `json:"blocks"`
}

// Rect is a pixel rectangle in image coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type BlockDoc struct {
	Box        Rect           `json:"box"`
	Confidence float64        `json:"confidence"`
	Paragraphs []ParagraphDoc `json:"paragraphs"`
}

type ParagraphDoc struct {
	Box        Rect      `json:"box"`
	Confidence float64   `json:"confidence"`
	Lines      []LineDoc `json:"lines"`
}

type LineDoc struct {
	Text       string    `json:"text"`
	Box        Rect      `json:"box"`
	Confidence float64   `json:"confidence"`
	Words      []WordDoc `json:"words"`
}

type WordDoc struct {
	Text       string      `json:"text"`
	Box        Rect        `json:"box"`
	Confidence float64     `json:"confidence"`
	Symbols    []SymbolDoc `json:"symbols,omitempty"`
}

type SymbolDoc struct {
	Text       string  `json:"text"`
	Box        Rect    `json:"box"`
	Confidence float64 `json:"confidence"`
}

func rect(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// NewDocument converts a page. symbols controls whether per-character
// entries are included.
func NewDocument(source, engine string, page *ocr.Page, symbols bool) Document {
	doc := Document{
		Source:         source,
		Engine:         engine,
		Text:           page.Text(),
		MeanConfidence: page.MeanConfidence(),
		Blocks:         []BlockDoc{},
	}
	for _, b := range page.Layout().Blocks {
		bd := BlockDoc{Box: rect(b.Box), Confidence: b.Confidence}
		for _, p := range b.Paragraphs {
			pd := ParagraphDoc{Box: rect(p.Box), Confidence: p.Confidence}
			for _, ln := range p.Lines {
				ld := LineDoc{Text: ln.Text(), Box: rect(ln.Box), Confidence: ln.Confidence}
				for _, w := range ln.Words {
					wd := WordDoc{Text: w.Text, Box: rect(w.Box), Confidence: w.Confidence}
					if symbols {
						for _, s := range w.Symbols {
							wd.Symbols = append(wd.Symbols, SymbolDoc{Text: s.Text, Box: rect(s.Box), Confidence: s.Confidence})
						}
					}
					ld.Words = append(ld.Words, wd)
				}
				pd.Lines = append(pd.Lines, ld)
			}
			bd.Paragraphs = append(bd.Paragraphs, pd)
		}
		doc.Blocks = append(doc.Blocks, bd)
	}
	return doc
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// DocumentSchema returns the JSON Schema of Document.
func DocumentSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Document{})
	sch.Title = "ocrscan layout document"
	sch.Description = "Recognized text of one image with its block/paragraph/line/word hierarchy."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
