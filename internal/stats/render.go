package stats

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	terminalWidthBackup = 80
	minQuoteWidth       = 10
	lastSeenLayout      = "2006-01-02 15:04"
)

// RenderHistory writes the report as an aligned table no wider than width.
// A non-positive width disables truncation.
func RenderHistory(w io.Writer, r Report, width int) error {
	if len(r.Quotes) == 0 {
		_, err := fmt.Fprintln(w, "No quotes shown yet.")
		return err
	}
	headers := []string{"Lang", "Shown", "Last seen", "Quote"}
	rows := make([][]string, 0, len(r.Quotes))
	for _, q := range r.Quotes {
		rows = append(rows, []string{
			string(q.Lang),
			strconv.Itoa(q.Count),
			q.LastSeen.Local().Format(lastSeenLayout),
			q.Phrase,
		})
	}
	if width > 0 {
		quoteWidth := width - fixedColumnsWidth(headers, rows)
		if quoteWidth < minQuoteWidth {
			quoteWidth = minQuoteWidth
		}
		for _, row := range rows {
			row[3] = runewidth.Truncate(row[3], quoteWidth, "…")
		}
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d shows, %d unique quotes\n", r.Total, r.Unique)
	return err
}

// fixedColumnsWidth is the width taken by every column but the last, separators included.
func fixedColumnsWidth(headers []string, rows [][]string) int {
	total := 0
	for i := 0; i < len(headers)-1; i++ {
		colWidth := displayWidth(headers[i])
		for _, row := range rows {
			if w := displayWidth(row[i]); w > colWidth {
				colWidth = w
			}
		}
		total += colWidth + 1
	}
	return total
}

// TerminalWidth returns the width of w when it is a terminal, or a fallback.
func TerminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
