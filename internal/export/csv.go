package export

import (
	"bytes"
	"strings"
)

// Table is a CSV document: free rows first, then titled sections separated
// by an empty row.
type Table struct {
	Preamble [][]string
	Sections []Section
}

// Section is one entity family in a CSV document.
type Section struct {
	Title  string
	Header []string
	Rows   [][]string
}

// renderCSV quotes every cell and doubles embedded quotes. encoding/csv only
// quotes cells that need it, so rows are written by hand.
func renderCSV(t Table) []byte {
	var buf bytes.Buffer
	first := true
	row := func(cells ...string) {
		if !first {
			buf.WriteByte('\n')
		}
		first = false
		for i, c := range cells {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(c, `"`, `""`))
			buf.WriteByte('"')
		}
	}

	for _, r := range t.Preamble {
		row(r...)
	}
	for i, s := range t.Sections {
		if i > 0 || len(t.Preamble) > 0 {
			row("")
		}
		if s.Title != "" {
			row(s.Title)
		}
		if len(s.Header) > 0 {
			row(s.Header...)
		}
		for _, r := range s.Rows {
			row(r...)
		}
	}
	return buf.Bytes()
}
