// Package writer renders a report into an xlsx workbook or a Markdown document.
package writer

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/report"
	"github.com/KaramelBytes/crosstab-cli/internal/table"
	"github.com/KaramelBytes/crosstab-cli/internal/utils"
)

// Sheet names in workbook order.
const (
	SheetFKC          = "fkc_rawdata"
	SheetIT           = "it_rawdata"
	SheetUserGraph    = "user_graph"
	SheetAggregate    = "aggregate"
	SheetCrosstabN    = "crosstab(n)"
	SheetCrosstabPerc = "crosstab(%)"
)

// Sheets lists every sheet in workbook order.
var Sheets = []string{SheetFKC, SheetIT, SheetUserGraph, SheetAggregate, SheetCrosstabN, SheetCrosstabPerc}

type styles struct {
	normal, highlight, red, num, perc int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	fill := func(bg, font string) *excelize.Style {
		return &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{bg}},
			Font: &excelize.Font{Color: font},
		}
	}
	if s.normal, err = f.NewStyle(fill("C6EFCE", "006100")); err != nil {
		return s, err
	}
	if s.highlight, err = f.NewStyle(fill("FFEB9C", "9C6500")); err != nil {
		return s, err
	}
	if s.red, err = f.NewStyle(fill("FFC7CE", "9C0006")); err != nil {
		return s, err
	}
	if s.num, err = f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Horizontal: "right"}}); err != nil {
		return s, err
	}
	percFmt := `##.00\%`
	if s.perc, err = f.NewStyle(&excelize.Style{CustomNumFmt: &percFmt}); err != nil {
		return s, err
	}
	return s, nil
}

// coord is a zero-based row/column position.
type coord struct {
	row, col int
}

func cellName(row, col int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row+1)
	return name
}

// sheetWriter writes tables onto one worksheet.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	st    styles
}

func (w *sheetWriter) str(row, col int, s string, style int) error {
	cell := cellName(row, col)
	if err := w.f.SetCellStr(w.sheet, cell, s); err != nil {
		return err
	}
	if style != 0 {
		return w.f.SetCellStyle(w.sheet, cell, cell, style)
	}
	return nil
}

// numeric reports whether a cell reads as a number once "%" is removed.
func numeric(s string) (float64, bool) {
	t := strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	if t == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// value writes s as a number when it parses as one, with the percentage format when it
// carries "%". Everything else is a string with fallback style.
func (w *sheetWriter) value(row, col int, s string, fallback int) error {
	v, ok := numeric(s)
	if !ok {
		return w.str(row, col, s, fallback)
	}
	cell := cellName(row, col)
	if err := w.f.SetCellFloat(w.sheet, cell, v, -1, 64); err != nil {
		return err
	}
	style := w.st.num
	if strings.Contains(s, "%") {
		style = w.st.perc
	}
	return w.f.SetCellStyle(w.sheet, cell, cell, style)
}

// table writes t with its header row at start and returns the position below its last
// content row and right of its last column. The footer row is not counted.
func (w *sheetWriter) table(start coord, t table.WithMeta) (coord, error) {
	at := start
	if t.SpecialCase == table.SpaceAndHighlightOn4 {
		at.row++
	}
	rows := t.Table.Rows()
	for j, c := range t.Table.Columns {
		col := at.col + j
		hs := w.st.normal
		if c.Header.Highlight {
			hs = w.st.highlight
		}
		if err := w.str(at.row, col, c.Header.Text, hs); err != nil {
			return start, err
		}
		fallback := 0
		if t.SpecialCase == table.SpaceAndHighlightOn4 && j == 3 {
			fallback = w.st.highlight
		}
		for i, s := range c.Contents {
			if err := w.value(at.row+1+i, col, s, fallback); err != nil {
				return start, err
			}
		}
		if c.Footer != nil && *c.Footer != "" {
			if err := w.value(at.row+1+rows, col, *c.Footer, 0); err != nil {
				return start, err
			}
		}
	}
	return coord{row: at.row + 1 + rows, col: at.col + len(t.Table.Columns)}, nil
}

func (w *sheetWriter) plain(start coord, t table.Table) (coord, error) {
	return w.table(start, table.WithMeta{Table: t})
}

// seriesRange is a one-column block of written cells.
type seriesRange struct {
	col, first, last int
}

func (w *sheetWriter) ref(r seriesRange) string {
	a, _ := excelize.CoordinatesToCellName(r.col+1, r.first+1, true)
	b, _ := excelize.CoordinatesToCellName(r.col+1, r.last+1, true)
	return fmt.Sprintf("'%s'!%s:%s", w.sheet, a, b)
}

// placed records where a user_graph table landed.
type placed struct {
	at   coord
	rows int
}

func (p placed) column(offset int) seriesRange {
	return seriesRange{col: p.at.col + offset, first: p.at.row + 1, last: p.at.row + p.rows}
}

// WriteXLSX renders rep into a workbook at path. The workbook is written to a temp file
// in the same directory and renamed into place.
func WriteXLSX(rep *report.Report, path string) error {
	if err := utils.EnsureParentDir(path); err != nil {
		return apperrors.WithCode(apperrors.CodeIO, fmt.Errorf("create output dir: %w", err))
	}
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return apperrors.Wrap(err, "create styles")
	}
	if err := f.SetSheetName("Sheet1", Sheets[0]); err != nil {
		return apperrors.Wrap(err, "rename first sheet")
	}
	for _, name := range Sheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return apperrors.Wrapf(err, "create sheet %s", name)
		}
	}
	f.SetActiveSheet(0)

	steps := []struct {
		sheet string
		write func(*sheetWriter) error
	}{
		{SheetFKC, func(w *sheetWriter) error { _, err := w.plain(coord{}, rep.FKC); return err }},
		{SheetIT, func(w *sheetWriter) error { _, err := w.plain(coord{}, rep.IT); return err }},
		{SheetUserGraph, func(w *sheetWriter) error { return writeUserGraph(w, rep.Graphs) }},
		{SheetAggregate, func(w *sheetWriter) error { return writeAggregate(w, rep.Aggregates) }},
		{SheetCrosstabN, func(w *sheetWriter) error { return writeCrosstab(w, rep.CrosstabN) }},
		{SheetCrosstabPerc, func(w *sheetWriter) error { return writeCrosstab(w, rep.CrosstabPerc) }},
	}
	for _, s := range steps {
		if err := s.write(&sheetWriter{f: f, sheet: s.sheet, st: st}); err != nil {
			return apperrors.Wrapf(err, "write sheet %s", s.sheet)
		}
		slog.Debug("sheet written", "run_id", rep.RunID, "sheet", s.sheet)
	}

	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".xlsx")
	if err := f.SaveAs(tmp); err != nil {
		_ = os.Remove(tmp)
		return apperrors.WithCode(apperrors.CodeIO, fmt.Errorf("save workbook: %w", err))
	}
	if err := utils.ReplaceFile(tmp, path); err != nil {
		return apperrors.WithCode(apperrors.CodeIO, err)
	}
	slog.Info("workbook written", "run_id", rep.RunID, "path", path)
	return nil
}

func writeAggregate(w *sheetWriter, tables []table.WithMeta) error {
	at := coord{}
	for _, t := range tables {
		for _, m := range t.Meta {
			if err := w.str(at.row, at.col, m, 0); err != nil {
				return err
			}
			at.row++
		}
		next, err := w.plain(at, t.Table)
		if err != nil {
			return err
		}
		at = coord{row: 0, col: next.col + 2}
	}
	return nil
}

// writeCrosstab stacks tables top to bottom. A table with meta gets a caption row above it.
func writeCrosstab(w *sheetWriter, tables []table.WithMeta) error {
	at := coord{}
	for _, t := range tables {
		for j, m := range t.Meta {
			if err := w.str(at.row, at.col+j, m, w.st.highlight); err != nil {
				return err
			}
		}
		if len(t.Meta) > 0 {
			at.row++
		}
		next, err := w.table(at, t)
		if err != nil {
			return err
		}
		at = coord{row: next.row + 1, col: 0}
	}
	return nil
}
