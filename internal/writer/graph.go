package writer

import (
	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/crosstab-cli/internal/report"
	"github.com/KaramelBytes/crosstab-cli/internal/table"
)

const (
	countCol     = 0
	countGap     = 2
	labelledCol  = 4
	labelledGap  = 3
	chartBarFill = "CCFFFF"
)

// chart panels along row 0 of user_graph.
var panels = []struct {
	first, last int
	title       string
	withN       bool
	red         bool
}{
	{9, 16, "n数あり 未既婚/子供の人数/世帯年収", true, false},
	{18, 25, "n数あり　年代/性別/職業/地域", true, false},
	{28, 35, "n数なし 未既婚/子供の人数/世帯年収", false, true},
	{37, 44, "n数なし　年代/性別/職業/地域", false, true},
}

type graphPlacement struct {
	age1060, age1070, gender, marital, children placed
	job, region, income                         placed
}

func writeUserGraph(w *sheetWriter, g report.GraphTables) error {
	var p graphPlacement
	at := coord{col: countCol}
	for _, c := range []struct {
		t   table.Table
		dst *placed
	}{
		{g.Age1060, &p.age1060}, {g.Age1070, &p.age1070}, {g.Gender, &p.gender},
		{g.Marital, &p.marital}, {g.Children, &p.children},
	} {
		next, err := w.plain(at, c.t)
		if err != nil {
			return err
		}
		*c.dst = placed{at: at, rows: c.t.Rows()}
		at.row = next.row + 1 + countGap
	}
	at = coord{col: labelledCol}
	for _, c := range []struct {
		t   table.Table
		dst *placed
	}{
		{g.Job, &p.job}, {g.Region, &p.region}, {g.Income, &p.income},
	} {
		next, err := w.plain(at, c.t)
		if err != nil {
			return err
		}
		*c.dst = placed{at: at, rows: c.t.Rows()}
		at.row = next.row + 1 + labelledGap
	}

	for _, pn := range panels {
		style := w.st.highlight
		if pn.red {
			style = w.st.red
		}
		if err := w.f.MergeCell(w.sheet, cellName(0, pn.first), cellName(0, pn.last)); err != nil {
			return err
		}
		if err := w.str(0, pn.first, pn.title, style); err != nil {
			return err
		}
	}

	for i := 0; i < len(panels); i += 2 {
		withN := panels[i].withN
		left, right := panels[i].first, panels[i+1].first
		charts := []struct {
			col, row int
			kind     excelize.ChartType
			src      placed
			t        table.Table
		}{
			{left, 1, excelize.Pie, p.marital, g.Marital},
			{left, 16, excelize.Pie, p.children, g.Children},
			{left, 31, excelize.Bar, p.income, g.Income},
			{right, 1, excelize.Pie, p.age1060, g.Age1060},
			{right, 16, excelize.Pie, p.gender, g.Gender},
			{right, 31, excelize.Pie, p.age1070, g.Age1070},
			{right, 46, excelize.Bar, p.job, g.Job},
			{right, 61, excelize.Bar, p.region, g.Region},
		}
		for _, c := range charts {
			if err := w.chart(c.row, c.col, c.kind, c.src, c.t, withN); err != nil {
				return err
			}
		}
	}
	return nil
}

// chart anchors one chart at (row, col) over a placed table. Bars with counts take the
// "label(n=N)" column as categories. Pies with counts show values in the plot.
func (w *sheetWriter) chart(row, col int, kind excelize.ChartType, src placed, t table.Table, withN bool) error {
	if src.rows == 0 || len(t.Columns) < 2 {
		return nil
	}
	cats := src.column(0)
	if withN && kind == excelize.Bar && len(t.Columns) > 2 {
		cats = src.column(2)
	}
	series := excelize.ChartSeries{
		Name:       w.ref(seriesRange{col: src.at.col + 1, first: src.at.row, last: src.at.row}),
		Categories: w.ref(cats),
		Values:     w.ref(src.column(1)),
	}
	if kind == excelize.Bar {
		series.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{chartBarFill}}
	}
	c := &excelize.Chart{
		Type:      kind,
		Series:    []excelize.ChartSeries{series},
		Title:     []excelize.RichTextRun{{Text: t.Columns[0].Header.Text}},
		Dimension: excelize.ChartDimension{Width: 480, Height: 270},
		PlotArea:  excelize.ChartPlotArea{ShowVal: withN && kind == excelize.Pie},
	}
	if kind == excelize.Bar {
		c.Legend = excelize.ChartLegend{Position: "none"}
	}
	return w.f.AddChart(w.sheet, cellName(row, col), c)
}
