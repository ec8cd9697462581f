package tools

import (
	"context"
	"os/exec"
	"strings"
)

// MinLSTMVersion is the first Tesseract release with the LSTM engine.
const MinLSTMVersion = "4.0.0"

// BinaryInfo describes the tesseract command-line binary, which ships with
// the library and reports the installed traineddata.
type BinaryInfo struct {
	Path      string   `json:"path,omitempty"`
	Version   string   `json:"version,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// Found reports whether the binary was located in PATH.
func (b BinaryInfo) Found() bool { return b.Path != "" }

// Outdated reports whether the binary predates the LSTM engine.
func (b BinaryInfo) Outdated() bool { return VersionLess(b.Version, MinLSTMVersion) }

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// CheckTesseract locates the tesseract binary and queries its version and
// installed languages. A missing binary is not an error; the library may
// still be linked.
func CheckTesseract(ctx context.Context, tessdata string) BinaryInfo {
	path, err := lookPath("tesseract")
	if err != nil {
		return BinaryInfo{}
	}
	info := BinaryInfo{Path: path}

	out, err := probe(ctx, path, "--version")
	if err == nil {
		info.Version = ParseVersion(out)
	}

	args := []string{"--list-langs"}
	if tessdata != "" {
		args = append([]string{"--tessdata-dir", tessdata}, args...)
	}
	out, err = probe(ctx, path, args...)
	if err == nil {
		info.Languages = ParseLanguageList(out)
	}
	return info
}

// ParseLanguageList reads `tesseract --list-langs` output, skipping the
// header line.
func ParseLanguageList(out string) []string {
	var langs []string
	for _, ln := range strings.Split(out, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(strings.ToLower(ln), "list of available languages") {
			continue
		}
		langs = append(langs, ln)
	}
	return langs
}
