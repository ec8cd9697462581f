package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the ocrscan config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/ocrscan; on macOS
// to ~/Library/Application Support/ocrscan; and on Windows to %AppData%/ocrscan.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "ocrscan"), nil
}

// Path returns the location of config.json.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
