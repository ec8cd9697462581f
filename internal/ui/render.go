package ui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// MaxValueWidth caps the display width of values inside boxes.
const MaxValueWidth = 72

// Box draws a rounded box around title and lines. Widths are measured
// ignoring ANSI escape codes, so lines may already be styled.
func Box(title string, lines []string) string {
	all := make([]string, 0, len(lines)+2)
	if title != "" {
		all = append(all, AccentBold().Render(title), "")
	}
	all = append(all, lines...)

	// compute max display width (ignore ANSI codes)
	max := 0
	for _, ln := range all {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	border := BorderStyle()
	var sb strings.Builder
	sb.WriteString(border.Render("╭"+strings.Repeat("─", max+2)+"╮") + "\n")
	for _, ln := range all {
		pad := max - xansi.StringWidth(ln)
		sb.WriteString(border.Render("│") + " ")
		sb.WriteString(ln)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" " + border.Render("│") + "\n")
	}
	sb.WriteString(border.Render("╰"+strings.Repeat("─", max+2)+"╯") + "\n")
	return sb.String()
}

// KeyValue renders "key: value" with a muted key. Values wider than
// MaxValueWidth cells are truncated with an ellipsis.
func KeyValue(key, value string) string {
	value = runewidth.Truncate(value, MaxValueWidth, "…")
	return MutedStyle().Render(key+":") + " " + value
}

// Status renders a check mark, warning sign or cross followed by msg.
func Status(ok, optional bool, msg string) string {
	switch {
	case ok:
		return AccentBold().Render("✓") + " " + msg
	case optional:
		return WarnStyle().Render("!") + " " + msg
	default:
		return ErrorStyle().Render("✗") + " " + msg
	}
}
