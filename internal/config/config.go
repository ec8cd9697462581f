// Package config loads ocrscan settings from config.json in the user config
// directory. Command-line flags override whatever is loaded here.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds recognition and output defaults.
type Config struct {
	// Languages are Tesseract language codes, tried in order.
	Languages []string `json:"languages"`
	// Tessdata is the directory holding *.traineddata files.
	Tessdata string `json:"tessdata,omitempty"`
	// PageSegMode is Tesseract's page segmentation mode.
	PageSegMode int `json:"psm"`
	// Indent is the unit emitted per nesting level in console output.
	Indent string `json:"indent"`
}

// Default is English traineddata (from ./tessdata when present) with
// automatic page segmentation.
func Default() Config {
	return Config{
		Languages:   []string{"eng"},
		PageSegMode: 3,
		Indent:      "    ",
	}
}

// Load reads config.json, filling unset fields from Default. A missing
// file yields the defaults without error.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(p)
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c.withEnv(), nil
		}
		return Config{}, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	return c.normalize().withEnv(), nil
}

// Save writes c to config.json, creating the directory.
func Save(c Config) (string, error) {
	p, err := Path()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(c.normalize(), "", "  ")
	if err != nil {
		return "", err
	}
	return p, os.WriteFile(p, append(b, '\n'), 0o644)
}

// normalize trims and deduplicates languages, keeping their order, and
// restores defaults for empty fields.
func (c Config) normalize() Config {
	seen := map[string]bool{}
	langs := make([]string, 0, len(c.Languages))
	for _, l := range c.Languages {
		for _, part := range strings.Split(l, "+") {
			part = strings.TrimSpace(part)
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			langs = append(langs, part)
		}
	}
	if len(langs) == 0 {
		langs = Default().Languages
	}
	c.Languages = langs
	if c.Indent == "" {
		c.Indent = Default().Indent
	}
	if c.PageSegMode < 0 || c.PageSegMode > 13 {
		c.PageSegMode = Default().PageSegMode
	}
	c.Tessdata = strings.TrimSpace(c.Tessdata)
	return c
}

// withEnv falls back to TESSDATA_PREFIX and then ./tessdata when no
// tessdata directory is configured.
func (c Config) withEnv() Config {
	if c.Tessdata != "" {
		return c
	}
	if v := strings.TrimSpace(os.Getenv("TESSDATA_PREFIX")); v != "" {
		c.Tessdata = v
		return c
	}
	if st, err := os.Stat("tessdata"); err == nil && st.IsDir() {
		c.Tessdata = "./tessdata"
	}
	return c
}

// ParseLanguages splits a "eng+deu" style list.
func ParseLanguages(s string) []string {
	return Config{Languages: []string{s}}.normalize().Languages
}
