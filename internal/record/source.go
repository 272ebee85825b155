package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
)

// Source reads records from one on-disk format.
type Source interface {
	CanRead(filename string) bool
	Read(path string) ([]*Record, error)
}

var registry []Source

// Register adds a source implementation to the registry.
func Register(s Source) {
	registry = append(registry, s)
}

// ReadFile selects a source by filename. Files no source claims are read as CSV.
func ReadFile(path string) ([]*Record, error) {
	for _, s := range registry {
		if s.CanRead(path) {
			return s.Read(path)
		}
	}
	return csvSource{}.Read(path)
}

func init() {
	Register(csvSource{})
	Register(xlsxSource{})
}

type csvSource struct{}

func (csvSource) CanRead(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".csv")
}

func (csvSource) Read(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeIO, fmt.Errorf("open csv: %w", err))
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses an export with a header row. Every row must have the header's width.
func ReadCSV(r io.Reader) ([]*Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.RecordParse("empty input: no header row")
		}
		return nil, apperrors.Wrap(apperrors.WithCode(apperrors.CodeRecordParse, err), "read header")
	}
	dec, err := newDecoder(header)
	if err != nil {
		return nil, err
	}
	var out []*Record
	for row := 2; ; row++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.WithCode(apperrors.CodeRecordParse, err), "read row %d", row)
		}
		rec, err := dec.decode(cells, row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	slog.Debug("csv records decoded", "rows", len(out), "custom_columns", len(dec.custom))
	return out, nil
}

type xlsxSource struct{}

func (xlsxSource) CanRead(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".xlsx")
}

// Read decodes the first sheet of a workbook.
func (xlsxSource) Read(path string) ([]*Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeIO, fmt.Errorf("open xlsx: %w", err))
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.RecordParse("xlsx %s: no sheets", filepath.Base(path))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.WithCode(apperrors.CodeRecordParse, err), "read sheet %q", sheets[0])
	}
	return fromRows(rows)
}

// fromRows decodes an in-memory table whose first row is the header. Short rows are padded
// because spreadsheet readers drop trailing empty cells.
func fromRows(rows [][]string) ([]*Record, error) {
	if len(rows) == 0 {
		return nil, apperrors.RecordParse("empty input: no header row")
	}
	dec, err := newDecoder(rows[0])
	if err != nil {
		return nil, err
	}
	out := make([]*Record, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		if len(cells) > dec.width {
			return nil, apperrors.RecordParse("row %d: %d cells, header has %d", i+2, len(cells), dec.width)
		}
		rec, err := dec.decode(cells, i+2)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
