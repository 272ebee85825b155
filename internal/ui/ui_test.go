package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/KaramelBytes/crosstab-cli/internal/table"
)

func TestStatusLines(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{"success", func(b *bytes.Buffer) { Success(b, "wrote %s", "out.xlsx") }, "✓ wrote out.xlsx\n"},
		{"error", func(b *bytes.Buffer) { Error(b, "bad %d", 1) }, "✗ Error: bad 1\n"},
		{"warning", func(b *bytes.Buffer) { Warning(b, "careful") }, "⚠ Warning: careful\n"},
		{"info", func(b *bytes.Buffer) { Info(b, "%d records", 3) }, "ℹ 3 records\n"},
		{"bold", func(b *bytes.Buffer) { Bold(b, "title") }, "title\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			tt.print(&b)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestRenderTable(t *testing.T) {
	tb := table.New(
		table.NewColumn("選択肢", false, "赤", "青").WithFooter("計"),
		table.NewColumn("件数", true, "2", "1").WithFooter("3"),
	)
	out := RenderTable(tb)
	for _, s := range []string{"選択肢", "件数", "赤", "青", "計", "3"} {
		assert.Contains(t, out, s)
	}
	// header, two rows and the footer
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 4)
	assert.Empty(t, RenderTable(table.Table{}))
}

func TestRenderWithMeta(t *testing.T) {
	out := RenderWithMeta(table.WithMeta{
		Meta:  []string{"field5", "ラジオボタン", "色"},
		Table: table.New(table.NewColumn("赤", true, "1")),
	})
	assert.Contains(t, out, "field5 / ラジオボタン / 色")
	assert.Contains(t, out, "赤")
}
