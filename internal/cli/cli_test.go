package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ocrscan/internal/config"
	"ocrscan/internal/ocr"
	"ocrscan/internal/ocr/tesseract"
	tu "ocrscan/internal/testutil"
	"ocrscan/internal/tools"
	"ocrscan/internal/ui"
)

type fakeEngine struct {
	page *ocr.Page
	err  error
	got  ocr.Image
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Process(_ context.Context, img ocr.Image) (*ocr.Page, error) {
	f.got = img
	return f.page, f.err
}

func fakePage() *ocr.Page {
	words := []ocr.WordBox{
		{Block: 1, Para: 1, Line: 1, Text: "Tier", Box: image.Rect(0, 0, 40, 10), Confidence: 88},
		{Block: 1, Para: 1, Line: 1, Text: "X", Box: image.Rect(50, 0, 60, 10), Confidence: 92},
	}
	return ocr.NewPage("Tier X", 90, ocr.BuildLayout(words, nil))
}

func writePNG(t *testing.T, dir string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
	return tu.WriteFile(t, dir, "working.file.png", buf.Bytes())
}

func TestScanOnce_IndentedWalk(t *testing.T) {
	path := writePNG(t, t.TempDir())
	eng := &fakeEngine{page: fakePage()}
	var out bytes.Buffer

	err := scanOnce(context.Background(), eng, path, config.Default(), scanOptions{every: 1}, &out)
	if err != nil {
		t.Fatalf("scanOnce: %v", err)
	}
	if eng.got.Format != "png" || eng.got.Width != 8 {
		t.Fatalf("engine got unexpected image: %+v", eng.got)
	}
	for _, want := range []string{
		"Process image\n",
		"    Text: Tier X\n",
		"    Mean confidence: 90.00\n",
		"    Line 1\n",
		"            word: Tier\n",
		"            word: X\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("missing %q in:\n%s", want, out.String())
		}
	}
}

func TestScanOnce_JSON(t *testing.T) {
	path := writePNG(t, t.TempDir())
	var out bytes.Buffer
	err := scanOnce(context.Background(), &fakeEngine{page: fakePage()}, path, config.Default(), scanOptions{json: true}, &out)
	if err != nil {
		t.Fatalf("scanOnce: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if doc["engine"] != "fake" || doc["source"] != path {
		t.Fatalf("unexpected document header: %v", doc)
	}
}

func TestScanOnce_Errors(t *testing.T) {
	dir := t.TempDir()
	if err := scanOnce(context.Background(), &fakeEngine{}, filepath.Join(dir, "missing.png"), config.Default(), scanOptions{}, &bytes.Buffer{}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	boom := errors.New("engine exploded")
	err := scanOnce(context.Background(), &fakeEngine{err: boom}, writePNG(t, dir), config.Default(), scanOptions{}, &bytes.Buffer{})
	if !errors.Is(err, boom) || !strings.HasPrefix(err.Error(), "fake: ") {
		t.Fatalf("expected wrapped engine error, got %v", err)
	}
}

func TestRootCommand_ScanWithFlags(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()
	defer tu.WithEnv(t, "TESSDATA_PREFIX", "")()

	var gotOpts tesseract.Options
	eng := &fakeEngine{page: fakePage()}
	prev := newEngine
	newEngine = func(opts tesseract.Options) ocr.Engine {
		gotOpts = opts
		return eng
	}
	defer func() { newEngine = prev }()

	path := writePNG(t, tmp)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{path, "--lang", "eng+deu", "--psm", "6", "--indent", "  "})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if strings.Join(gotOpts.Languages, "+") != "eng+deu" || gotOpts.PageSegMode != 6 {
		t.Fatalf("flags not applied: %+v", gotOpts)
	}
	if !strings.Contains(out.String(), "\n  Line 1\n") {
		t.Fatalf("indent flag not applied:\n%s", out.String())
	}
}

func TestRootCommand_RejectsEmptyIndent(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	called := false
	prev := newEngine
	newEngine = func(tesseract.Options) ocr.Engine {
		called = true
		return &fakeEngine{page: fakePage()}
	}
	defer func() { newEngine = prev }()

	prevIndent := scanOpts.indent
	defer func() { scanOpts.indent = prevIndent }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{writePNG(t, tmp), "--indent", ""})
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "--indent") {
		t.Fatalf("expected empty indent to be rejected, got %v", err)
	}
	if called || out.Len() != 0 {
		t.Fatalf("nothing should run with an empty indent: called=%v out=%q", called, out.String())
	}
}

func TestBuildCheckReport(t *testing.T) {
	dir := t.TempDir()
	tu.WriteFile(t, dir, "eng.traineddata", []byte("x"))

	bin := tools.BinaryInfo{Path: "/usr/bin/tesseract", Version: "5.3.0", Languages: []string{"eng", "osd"}}

	c := config.Config{Languages: []string{"eng", "deu"}, Tessdata: dir}
	rep := buildCheckReport(c, "5.3.0", bin)
	if rep.Errors != 1 {
		t.Fatalf("expected 1 error (missing deu), got %d: %+v", rep.Errors, rep.Items)
	}
	// library, binary, tessdata, eng, deu
	if !rep.Items[1].OK || !rep.Items[3].OK || rep.Items[4].OK {
		t.Fatalf("unexpected items: %+v", rep.Items)
	}

	rep = buildCheckReport(config.Config{Languages: []string{"eng"}}, "5.3.0", tools.BinaryInfo{})
	if rep.Errors != 0 || rep.Tessdata != "(library default)" {
		t.Fatalf("library default should only warn: %+v", rep)
	}

	rep = buildCheckReport(config.Config{Languages: []string{"eng", "fra"}}, "5.3.0", bin)
	if rep.Errors != 1 {
		t.Fatalf("expected fra to be reported missing from --list-langs: %+v", rep.Items)
	}

	old := tools.BinaryInfo{Path: "/usr/bin/tesseract", Version: "3.05.02"}
	rep = buildCheckReport(config.Config{Tessdata: filepath.Join(dir, "nope")}, "", old)
	if rep.Errors != 2 || rep.Items[1].OK || !rep.Items[1].Optional {
		t.Fatalf("expected library and tessdata errors plus binary warning, got %+v", rep)
	}
}

func TestSchemaAndVersionCommands(t *testing.T) {
	ui.SetColor(false)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"schema"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if !strings.Contains(out.String(), "ocrscan layout document") {
		t.Fatalf("unexpected schema output:\n%s", out.String())
	}

	out.Reset()
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out.String()) != "dev" {
		t.Fatalf("unexpected version output %q", out.String())
	}
}
