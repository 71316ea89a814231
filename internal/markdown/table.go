// Package markdown renders games and daily summaries as the markdown bodies
// and titles published to the remote instance.
package markdown

import "strings"

// Table is a sparse, auto-growing 2-D grid of cell text rendered as a
// markdown table. Row 0 is the header; unset cells render as empty text.
type Table struct {
	cells  map[cellKey]string
	maxCol int
	maxRow int
	used   bool
}

type cellKey struct {
	col, row int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{cells: make(map[cellKey]string)}
}

// Set writes a cell, growing the table to cover (col, row). The last write to
// a coordinate wins.
func (t *Table) Set(col, row int, value string) {
	if col > t.maxCol {
		t.maxCol = col
	}
	if row > t.maxRow {
		t.maxRow = row
	}
	t.cells[cellKey{col, row}] = value
	t.used = true
}

// MaxCol returns the highest column index ever set.
func (t *Table) MaxCol() int {
	return t.maxCol
}

// Render produces the markdown table: header row, alignment row, then one
// line per data row. A table that was never written renders as an empty
// string. Render is deterministic and has no side effects.
func (t *Table) Render() string {
	if !t.used {
		return ""
	}
	var b strings.Builder
	for col := 0; col <= t.maxCol; col++ {
		b.WriteString("| ")
		b.WriteString(t.cells[cellKey{col, 0}])
		b.WriteString(" ")
	}
	b.WriteString("|\n")
	for col := 0; col <= t.maxCol; col++ {
		b.WriteString("|:-:")
	}
	b.WriteString("|\n")
	for row := 1; row <= t.maxRow; row++ {
		for col := 0; col <= t.maxCol; col++ {
			b.WriteString("| ")
			b.WriteString(t.cells[cellKey{col, row}])
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
