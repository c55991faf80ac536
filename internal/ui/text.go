package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most width terminal cells, ending with an
// ellipsis when anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Separator renders a horizontal rule of the given width
func Separator(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}
