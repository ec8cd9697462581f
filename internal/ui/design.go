package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Design centralizes the color palette used by the summaries that ocrscan
// prints around (never inside) the recognized text.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Yellow  lipgloss.Color // #e6cc77
	Red     lipgloss.Color // #cb7676
	Muted   lipgloss.Color // #dedcd590
	Border  lipgloss.Color
}

// Vitesse defines the current global design theme.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),
	Muted:   lipgloss.Color("#dedcd590"),
	Border:  lipgloss.Color("#6394bf"),
}

var colorEnabled = IsTerminal(os.Stdout)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetColor forces styling on or off.
func SetColor(on bool) { colorEnabled = on }

func style() lipgloss.Style { return lipgloss.NewStyle() }

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	if !colorEnabled {
		return style()
	}
	return style().Bold(true).Foreground(Vitesse.Primary)
}

// WarnStyle is used for missing-but-optional items.
func WarnStyle() lipgloss.Style {
	if !colorEnabled {
		return style()
	}
	return style().Foreground(Vitesse.Yellow)
}

// ErrorStyle is used for failed checks.
func ErrorStyle() lipgloss.Style {
	if !colorEnabled {
		return style()
	}
	return style().Bold(true).Foreground(Vitesse.Red)
}

// MutedStyle dims secondary information.
func MutedStyle() lipgloss.Style {
	if !colorEnabled {
		return style()
	}
	return style().Foreground(Vitesse.Muted)
}

// BorderStyle returns a style with the standard border color.
func BorderStyle() lipgloss.Style {
	if !colorEnabled {
		return style()
	}
	return style().Foreground(Vitesse.Border)
}
