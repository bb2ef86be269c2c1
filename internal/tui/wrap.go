package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// wrapQuote splits text into lines no wider than width at word boundaries.
// A non-positive width keeps the text on one line.
func wrapQuote(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}

// cursorFits reports whether a one-cell cursor fits after the last raw line.
func cursorFits(lines []string, width int) bool {
	if width <= 0 || len(lines) == 0 {
		return true
	}
	return runewidth.StringWidth(lines[len(lines)-1])+1 <= width
}
