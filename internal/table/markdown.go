package table

import (
	"strings"
)

// Markdown renders t as a GitHub-flavored table. Footers become a final bold row.
func (t Table) Markdown() string {
	if len(t.Columns) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("|")
	for _, c := range t.Columns {
		b.WriteString(" ")
		h := safeVal(c.Header.Text)
		if c.Header.Highlight && h != "" {
			h = "**" + h + "**"
		}
		b.WriteString(h)
		b.WriteString(" |")
	}
	b.WriteString("\n|")
	for range t.Columns {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for i := 0; i < t.Rows(); i++ {
		b.WriteString("|")
		for j := range t.Columns {
			b.WriteString(" ")
			b.WriteString(safeVal(t.Cell(i, j)))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	if t.HasFooter() {
		b.WriteString("|")
		for _, c := range t.Columns {
			b.WriteString(" ")
			if c.Footer != nil && *c.Footer != "" {
				b.WriteString("**" + safeVal(*c.Footer) + "**")
			}
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Markdown renders the meta line, when present, above the table.
func (m WithMeta) Markdown() string {
	var b strings.Builder
	if len(m.Meta) > 0 {
		parts := make([]string, 0, len(m.Meta))
		for _, s := range m.Meta {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, safeVal(s))
			}
		}
		b.WriteString("_" + strings.Join(parts, " / ") + "_\n\n")
	}
	b.WriteString(m.Table.Markdown())
	return b.String()
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
