package inventory

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// WidthTable tracks the minimum render width of every table column. It is
// created once per run and shared by every region's normalization and render:
// widths grow monotonically as longer values are observed and are never reset,
// even across region boundaries.
type WidthTable struct {
	widths map[string]int
}

// NewWidthTable builds the table for the given columns. Each column starts at
// the display width of its own name, so a column is never narrower than its
// heading.
func NewWidthTable(columns []string) *WidthTable {
	widths := make(map[string]int, len(columns))
	for _, column := range columns {
		widths[column] = runewidth.StringWidth(column)
	}
	return &WidthTable{widths: widths}
}

// Width returns the tracked width of a column. The column set is fixed at
// construction, so asking for an unknown column is a programmer error and
// panics rather than being reported as a recoverable failure.
func (t *WidthTable) Width(column string) int {
	width, ok := t.widths[column]
	if !ok {
		panic(fmt.Sprintf("inventory: no width tracked for column %q", column))
	}
	return width
}

// Observe raises the column's width to the display width of value if value is
// wider. This is the only place widths change.
func (t *WidthTable) Observe(column, value string) {
	current := t.Width(column)
	if width := runewidth.StringWidth(value); width > current {
		t.widths[column] = width
	}
}
