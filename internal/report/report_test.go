package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"strings"
	"testing"

	"ocrscan/internal/ocr"
	"ocrscan/internal/scopelog"
)

func samplePage() *ocr.Page {
	words := []ocr.WordBox{
		{Block: 1, Para: 1, Line: 1, Text: "Hi", Box: image.Rect(0, 0, 20, 10), Confidence: 80},
		{Block: 1, Para: 1, Line: 1, Text: "there", Box: image.Rect(30, 0, 80, 10), Confidence: 70},
		{Block: 1, Para: 1, Line: 2, Text: "bye", Box: image.Rect(0, 20, 30, 30), Confidence: 75},
	}
	return ocr.NewPage("Hi there", 75, ocr.BuildLayout(words, nil))
}

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	lg := scopelog.New(&buf)
	if err := NewPrinter(lg, Options{}).Print(context.Background(), samplePage()); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := strings.Join([]string{
		"Process image",
		"    Text: Hi there",
		"    Mean confidence: 75.00",
		"    Line 1",
		"        Word Iteration",
		"            New block",
		"            New paragraph",
		"            New line",
		"            word: Hi",
		"        Word Iteration",
		"            word: there",
		"    Line 2",
		"        Word Iteration",
		"            New line",
		"            word: bye",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
	if lg.Depth() != 0 {
		t.Fatalf("scopes left open: %d", lg.Depth())
	}
}

func TestPrinter_EveryOtherLine(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(scopelog.New(&buf), Options{Every: 2}).Print(context.Background(), samplePage()); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Line 1") || !strings.Contains(out, "    Line 2\n") {
		t.Fatalf("expected only line 2:\n%s", out)
	}
	if strings.Contains(out, "word: Hi") {
		t.Fatalf("words of skipped line printed:\n%s", out)
	}
}

func TestPrinter_Details(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(scopelog.New(&buf), Options{Details: true}).Print(context.Background(), samplePage()); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"            Is beginning of block: true\n",
		"            Is beginning of symbol: true\n",
		"            Word text: \"there\"\n",
		"            Symbol text: \"b\"\n",
		"            Para text: \"Hi there\n            bye\n            \"\n",
		"            TextLine text: \"Hi there\n            \"\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPrinter_EmptyPage(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(scopelog.New(&buf), Options{}).Print(context.Background(), ocr.NewPage("", 0, nil)); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "    No text found\n") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

// limitWriter fails every write after the first n.
type limitWriter struct {
	n   int
	buf bytes.Buffer
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("closed")
	}
	w.n--
	return w.buf.Write(p)
}

func TestPrinter_WriteFailureUnwindsScopes(t *testing.T) {
	for n := 0; n < 12; n++ {
		lg := scopelog.New(&limitWriter{n: n})
		err := NewPrinter(lg, Options{}).Print(context.Background(), samplePage())
		if !errors.Is(err, scopelog.ErrIO) {
			t.Fatalf("n=%d: expected ErrIO, got %v", n, err)
		}
		if lg.Depth() != 0 {
			t.Fatalf("n=%d: %d scopes left open", n, lg.Depth())
		}
	}
}

func TestPrinter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lg := scopelog.New(&bytes.Buffer{})
	err := NewPrinter(lg, Options{}).Print(ctx, samplePage())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if lg.Depth() != 0 {
		t.Fatalf("scopes left open")
	}
}

func TestDocument(t *testing.T) {
	doc := NewDocument("scan.png", "tesseract", samplePage(), true)
	if len(doc.Blocks) != 1 || len(doc.Blocks[0].Paragraphs[0].Lines) != 2 {
		t.Fatalf("unexpected structure: %+v", doc)
	}
	line := doc.Blocks[0].Paragraphs[0].Lines[0]
	if line.Text != "Hi there\n" || line.Box != (Rect{X: 0, Y: 0, Width: 80, Height: 10}) {
		t.Fatalf("unexpected line: %+v", line)
	}
	if len(line.Words[1].Symbols) != 5 {
		t.Fatalf("expected per-rune symbols, got %d", len(line.Words[1].Symbols))
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewDocument("", "tesseract", samplePage(), false)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := back["source"]; ok {
		t.Fatalf("empty source should be omitted")
	}
	if strings.Contains(buf.String(), "symbols") {
		t.Fatalf("symbols should be omitted")
	}
}

func TestDocumentSchema(t *testing.T) {
	sch := DocumentSchema()
	if sch.Title == "" {
		t.Fatalf("missing title")
	}
	if _, ok := sch.Properties.Get("blocks"); !ok {
		t.Fatalf("schema missing blocks property")
	}
	b, err := MarshalSchema(sch)
	if err != nil {
		t.Fatalf("MarshalSchema: %v", err)
	}
	if !strings.Contains(string(b), "meanConfidence") {
		t.Fatalf("schema JSON missing meanConfidence")
	}
}
