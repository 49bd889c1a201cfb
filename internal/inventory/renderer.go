package inventory

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnMargin is the number of blank spaces between table columns.
const ColumnMargin = 2

// Render writes a column-aligned table: a header line, a dash separator, and
// one line per record, each cell left-justified to its column's tracked width
// plus the margin. Nothing at all is written for an empty record list; the
// caller prints the instance count either way.
//
// Widths are read from the shared run-wide table at render time. A table
// printed for an earlier region can therefore be narrower than widths
// discovered while processing later regions; that is accepted behavior, not
// something Render compensates for.
func Render(w io.Writer, columns []string, widths *WidthTable, records []Record) {
	if len(records) == 0 {
		return
	}

	var heading strings.Builder
	for _, column := range columns {
		heading.WriteString(leftJustify(column, widths.Width(column)+ColumnMargin))
	}
	fmt.Fprintln(w, heading.String())
	fmt.Fprintln(w, strings.Repeat("-", runewidth.StringWidth(heading.String())-ColumnMargin))

	for _, record := range records {
		var line strings.Builder
		for _, column := range columns {
			// A record missing a column renders as empty; normalization
			// guarantees this never actually happens.
			line.WriteString(leftJustify(record[column], widths.Width(column)+ColumnMargin))
		}
		fmt.Fprintln(w, line.String())
	}
}

// leftJustify pads s with trailing spaces up to the given display width.
func leftJustify(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
