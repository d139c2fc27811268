package display

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/harrison/spellingbee/internal/solver"
)

// ColumnSpacing is the padding added after every non-terminal cell.
const ColumnSpacing = 3

// ANSI bold framing used to mark pangram cells.
const (
	BoldStart = "\x1b[1m"
	BoldEnd   = "\x1b[0m"
)

// Layout controls how a word list is laid out in rows.
type Layout struct {
	// Columns is the number of cells per row. Callers clamp it to [1, 9].
	Columns int
	// Emphasize wraps pangram cells in BoldStart/BoldEnd when true
	Emphasize bool
}

// Rows lays entries out left to right, Columns per row.
// Every cell but the last in a row is left-justified to the longest word
// plus ColumnSpacing, so columns line up across rows. Emphasis markers wrap
// the padded cell and add no visible width. Trailing whitespace is trimmed.
func (l Layout) Rows(entries []solver.Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	columns := l.Columns
	if columns < 1 {
		columns = 1
	}

	maxLen := lo.Max(lo.Map(entries, func(e solver.Entry, _ int) int {
		return utf8.RuneCountInString(e.Word)
	}))
	width := maxLen + ColumnSpacing

	chunks := lo.Chunk(entries, columns)
	rows := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		var b strings.Builder
		for i, e := range chunk {
			cell := e.Word
			if i < len(chunk)-1 {
				cell = fmt.Sprintf("%-*s", width, cell)
			}
			if e.Pangram && l.Emphasize {
				cell = BoldStart + cell + BoldEnd
			}
			b.WriteString(cell)
		}
		rows = append(rows, strings.TrimRightFunc(b.String(), unicode.IsSpace))
	}
	return rows
}

// Summary returns the header line printed before the rows.
func Summary(total int) string {
	return fmt.Sprintf("Found %d total words:", total)
}

// WriteResult prints the summary line followed by the laid-out rows.
func (l Layout) WriteResult(out io.Writer, res solver.Result) error {
	var b strings.Builder
	b.WriteString(Summary(res.Total()))
	b.WriteString("\n")
	for _, row := range l.Rows(res.Entries()) {
		b.WriteString(row)
		b.WriteString("\n")
	}

	if _, err := io.WriteString(out, b.String()); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
