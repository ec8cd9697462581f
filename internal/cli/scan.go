package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"ocrscan/internal/config"
	"ocrscan/internal/ocr"
	"ocrscan/internal/ocr/tesseract"
	"ocrscan/internal/report"
	"ocrscan/internal/scopelog"
	"ocrscan/internal/system"
	"ocrscan/internal/watch"
)

// defaultImage is scanned when no path is given.
const defaultImage = "working.file.png"

type scanOptions struct {
	lang     string
	tessdata string
	psm      int
	indent   string
	details  bool
	every    int
	json     bool
	symbols  bool
	watch    bool
}

var scanOpts scanOptions

// newEngine is swapped out in tests.
var newEngine = func(opts tesseract.Options) ocr.Engine { return tesseract.New(opts) }

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&scanOpts.lang, "lang", "l", "", "Tesseract languages, e.g. eng+deu (default from config)")
	f.StringVar(&scanOpts.tessdata, "tessdata", "", "directory containing *.traineddata")
	f.IntVar(&scanOpts.psm, "psm", 3, "Tesseract page segmentation mode (0-13)")
	f.StringVar(&scanOpts.indent, "indent", "", "indentation unit for nested output (default four spaces)")
	f.BoolVar(&scanOpts.details, "details", false, "dump iterator state of every level for each word")
	f.IntVar(&scanOpts.every, "every", 1, "print only every n-th text line")
	f.BoolVar(&scanOpts.json, "json", false, "print the layout as JSON instead of the indented walk")
	f.BoolVar(&scanOpts.symbols, "symbols", false, "include symbols in JSON output")
	f.BoolVarP(&scanOpts.watch, "watch", "w", false, "scan again whenever the image changes")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = applyFlags(cmd, cfg, scanOpts)
	if err != nil {
		return err
	}

	path := defaultImage
	if len(args) > 0 {
		path = args[0]
	}
	eng := newEngine(tesseract.Options{
		Languages:      cfg.Languages,
		TessdataPrefix: cfg.Tessdata,
		PageSegMode:    cfg.PageSegMode,
	})
	system.Logger.Debug("engine ready", "engine", eng.Name(), "languages", cfg.Languages, "tessdata", cfg.Tessdata)

	out := cmd.OutOrStdout()
	opts := scanOpts
	scan := func(ctx context.Context) error {
		return scanOnce(ctx, eng, path, cfg, opts, out)
	}
	if opts.watch {
		system.Logger.Info("watching for changes", "path", path)
		return watch.File(cmd.Context(), path, watch.DefaultDebounce, scan)
	}
	return scan(cmd.Context())
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, cfg config.Config, o scanOptions) (config.Config, error) {
	f := cmd.Flags()
	if f.Changed("lang") {
		cfg.Languages = config.ParseLanguages(o.lang)
	}
	if f.Changed("tessdata") {
		cfg.Tessdata = o.tessdata
	}
	if f.Changed("psm") {
		cfg.PageSegMode = o.psm
	}
	if f.Changed("indent") {
		if o.indent == "" {
			return cfg, errors.New("--indent must not be empty")
		}
		cfg.Indent = o.indent
	}
	return cfg, nil
}

func scanOnce(ctx context.Context, eng ocr.Engine, path string, cfg config.Config, o scanOptions, out io.Writer) error {
	img, err := ocr.LoadImage(path)
	if err != nil {
		return err
	}
	system.Logger.Debug("image loaded", "path", path, "format", img.Format, "width", img.Width, "height", img.Height)

	start := time.Now()
	page, err := eng.Process(ctx, img)
	if err != nil {
		return fmt.Errorf("%s: %w", eng.Name(), err)
	}
	system.Logger.Debug("image recognized",
		"lines", page.Layout().LineCount(),
		"words", page.Layout().WordCount(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	if o.json {
		return report.WriteJSON(out, report.NewDocument(path, eng.Name(), page, o.symbols))
	}
	lg := scopelog.New(out, scopelog.WithIndentUnit(cfg.Indent))
	return report.NewPrinter(lg, report.Options{Details: o.details, Every: o.every}).Print(ctx, page)
}
