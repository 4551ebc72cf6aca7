package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows of data in aligned columns.
type Table struct {
	w     *tabwriter.Writer
	width int
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return &Table{w: tw, width: len(headers)}
}

// Row appends a row of values. Missing trailing cells and empty strings
// render as "-".
func (t *Table) Row(values ...any) {
	n := max(len(values), t.width)
	parts := make([]string, n)
	for i := range parts {
		s := "-"
		if i < len(values) {
			if v := fmt.Sprintf("%v", values[i]); v != "" {
				s = v
			}
		}
		parts[i] = s
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}
