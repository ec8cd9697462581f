package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"ocrscan/internal/config"
	"ocrscan/internal/ocr/tesseract"
	"ocrscan/internal/tools"
	"ocrscan/internal/ui"
)

type checkItem struct {
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	OK       bool   `json:"ok"`
	Optional bool   `json:"optional,omitempty"`
}

type checkReport struct {
	Engine   string           `json:"engine"`
	Version  string           `json:"version"`
	Tessdata string           `json:"tessdata"`
	Binary   tools.BinaryInfo `json:"binary"`
	Items    []checkItem      `json:"items"`
	Errors   int              `json:"errors"`
}

var checkJSON bool

// engineVersion and binaryCheck are swapped out in tests.
var (
	engineVersion = tesseract.Version
	binaryCheck   = tools.CheckTesseract
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON report")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the Tesseract installation and configured traineddata",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		rep := buildCheckReport(cfg, engineVersion(), binaryCheck(cmd.Context(), cfg.Tessdata))

		out := cmd.OutOrStdout()
		if checkJSON {
			// pretty JSON to stdout
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			lines := []string{
				ui.KeyValue("engine", rep.Engine+" "+rep.Version),
				ui.KeyValue("tessdata", rep.Tessdata),
				"",
			}
			for _, it := range rep.Items {
				lines = append(lines, ui.Status(it.OK, it.Optional, it.Name+"  "+it.Detail))
			}
			fmt.Fprint(out, ui.Box("ocrscan check", lines))
		}

		if rep.Errors > 0 {
			// non-zero when any error
			return fmt.Errorf("check failed: %d error(s)", rep.Errors)
		}
		return nil
	},
}

func buildCheckReport(cfg config.Config, version string, bin tools.BinaryInfo) checkReport {
	rep := checkReport{Engine: "tesseract", Version: version, Tessdata: cfg.Tessdata, Binary: bin}
	add := func(it checkItem) {
		if !it.OK && !it.Optional {
			rep.Errors++
		}
		rep.Items = append(rep.Items, it)
	}

	add(checkItem{Name: "library", Detail: "libtesseract " + version, OK: strings.TrimSpace(version) != ""})
	switch {
	case !bin.Found():
		add(checkItem{Name: "binary", Detail: "tesseract not in PATH", Optional: true})
	case bin.Outdated():
		add(checkItem{Name: "binary", Detail: bin.Version + " predates the LSTM engine (" + tools.MinLSTMVersion + ")", Optional: true})
	default:
		add(checkItem{Name: "binary", Detail: bin.Path + " " + bin.Version, OK: true})
	}

	if cfg.Tessdata == "" {
		rep.Tessdata = "(library default)"
		add(checkItem{Name: "tessdata", Detail: "not configured; relying on the library default", Optional: true})
		if len(bin.Languages) > 0 {
			for _, lang := range cfg.Languages {
				add(checkItem{Name: "language " + lang, Detail: "installed per tesseract --list-langs", OK: slices.Contains(bin.Languages, lang)})
			}
		}
		return rep
	}
	st, err := os.Stat(cfg.Tessdata)
	if err != nil || !st.IsDir() {
		add(checkItem{Name: "tessdata", Detail: "directory not found: " + cfg.Tessdata})
		return rep
	}
	add(checkItem{Name: "tessdata", Detail: cfg.Tessdata, OK: true})
	for _, lang := range cfg.Languages {
		p := filepath.Join(cfg.Tessdata, lang+".traineddata")
		_, err := os.Stat(p)
		add(checkItem{Name: "language " + lang, Detail: filepath.Base(p), OK: err == nil})
	}
	return rep
}
