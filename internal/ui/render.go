package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/KaramelBytes/crosstab-cli/internal/table"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTable draws t with a rounded border. Highlighted headers are colored and footers,
// when present, form the last row.
func RenderTable(t table.Table) string {
	if len(t.Columns) == 0 {
		return ""
	}
	headers := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		headers[j] = c.Header.Text
	}
	rows := make([][]string, 0, t.Rows()+1)
	for i := 0; i < t.Rows(); i++ {
		row := make([]string, len(t.Columns))
		for j := range t.Columns {
			row[j] = t.Cell(i, j)
		}
		rows = append(rows, row)
	}
	footerRow := -1
	if t.HasFooter() {
		row := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			if c.Footer != nil {
				row[j] = *c.Footer
			}
		}
		footerRow = len(rows)
		rows = append(rows, row)
	}

	lt := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				if col < len(t.Columns) && t.Columns[col].Header.Highlight {
					return highlightStyle
				}
				return headerStyle
			case row == footerRow:
				return footerStyle
			}
			return cellStyle
		})
	return lt.String()
}

// RenderWithMeta prints the meta line above the table.
func RenderWithMeta(m table.WithMeta) string {
	var b strings.Builder
	if len(m.Meta) > 0 {
		b.WriteString(metaStyle.Render(strings.Join(m.Meta, " / ")))
		b.WriteString("\n")
	}
	b.WriteString(RenderTable(m.Table))
	return b.String()
}
