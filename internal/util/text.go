// Package util provides terminal text helpers for labels that mix flag
// emoji, non-Latin country names and ANSI styling.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// TruncateANSI truncates s to maxWidth visual columns, adding Ellipsis if
// truncated. Escape sequences and wide characters are measured correctly.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= len(Ellipsis) {
		return Ellipsis
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads s with spaces to width visual columns. Wider strings are
// returned unchanged.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// FitColumn truncates or pads s to exactly width visual columns.
func FitColumn(s string, width int) string {
	return PadRight(TruncateANSI(s, width), width)
}
