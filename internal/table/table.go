// Package table is the output contract between the tabulation engine and report writers.
package table

// Header is a column heading. Highlighted headers are styled by writers.
type Header struct {
	Text      string
	Highlight bool
}

// Column is a header, its cells top to bottom, and an optional footer.
type Column struct {
	Header   Header
	Contents []string
	Footer   *string
}

// NewColumn returns a column with no footer.
func NewColumn(text string, highlight bool, contents ...string) Column {
	return Column{Header: Header{Text: text, Highlight: highlight}, Contents: contents}
}

// WithFooter returns a copy of c carrying footer.
func (c Column) WithFooter(footer string) Column {
	c.Footer = &footer
	return c
}

// Table is an ordered list of columns. Columns may differ in length.
type Table struct {
	Columns []Column
}

func New(cols ...Column) Table {
	return Table{Columns: cols}
}

// Rows returns the length of the longest column.
func (t Table) Rows() int {
	n := 0
	for _, c := range t.Columns {
		if len(c.Contents) > n {
			n = len(c.Contents)
		}
	}
	return n
}

// HasFooter reports whether any column has a footer.
func (t Table) HasFooter() bool {
	for _, c := range t.Columns {
		if c.Footer != nil {
			return true
		}
	}
	return false
}

// Cell returns the content at row i of column j, or "" past the end.
func (t Table) Cell(i, j int) string {
	if j < 0 || j >= len(t.Columns) {
		return ""
	}
	c := t.Columns[j].Contents
	if i < 0 || i >= len(c) {
		return ""
	}
	return c[i]
}

// SpecialCase selects a writer-side layout variation.
type SpecialCase int

const (
	SpecialNone SpecialCase = iota
	// SpaceAndHighlightOn4 leaves a gap after the fourth column and highlights what follows.
	SpaceAndHighlightOn4
)

// WithMeta is a table plus caption strings for the writer, such as the title, type and
// label of the secondary field of a crosstab.
type WithMeta struct {
	Meta        []string
	SpecialCase SpecialCase
	Table       Table
}
