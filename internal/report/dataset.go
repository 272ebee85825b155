// Package report loads a survey export and lays out every table of the output workbook.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	"github.com/KaramelBytes/crosstab-cli/internal/crosstab"
	"github.com/KaramelBytes/crosstab-cli/internal/distribution"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/field"
	"github.com/KaramelBytes/crosstab-cli/internal/filter"
	"github.com/KaramelBytes/crosstab-cli/internal/record"
	"github.com/KaramelBytes/crosstab-cli/internal/schema"
	"github.com/KaramelBytes/crosstab-cli/internal/table"
)

// Options control how a dataset is loaded and tabulated.
type Options struct {
	Lang category.Language
	// Year is the reference year for ages.
	Year       int
	FilterMode filter.Mode
	Rules      []filter.Rule
	// IncludeText keeps Text and TextArea answers in the raw tables.
	IncludeText bool
	Workers     int
}

// Dataset is a schema plus its filtered records.
type Dataset struct {
	RunID   string
	Schema  *schema.FieldSchema
	Records []*record.Record
	Engine  *distribution.Engine
	opts    Options
}

// Load reads the meta document and the export, then filters the records.
func Load(metaPath, inputPath string, opts Options) (*Dataset, error) {
	start := time.Now()
	s, err := schema.Load(metaPath)
	if err != nil {
		return nil, err
	}
	recs, err := record.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}
	ds, err := New(s, recs, opts)
	if err != nil {
		return nil, err
	}
	slog.Info("dataset loaded",
		"run_id", ds.RunID,
		"custom_fields", s.Len(),
		"records", len(recs),
		"kept", len(ds.Records),
		"elapsed", time.Since(start).String())
	return ds, nil
}

// New filters already parsed records. A failed birth-year validation rejects the whole set.
func New(s *schema.FieldSchema, recs []*record.Record, opts Options) (*Dataset, error) {
	f, err := filter.New(filter.Config{Mode: opts.FilterMode, Rules: opts.Rules, Year: opts.Year}, s)
	if err != nil {
		return nil, err
	}
	kept, err := f.Apply(recs)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{
		RunID:   uuid.NewString(),
		Schema:  s,
		Records: kept,
		Engine:  distribution.New(s, opts.Lang, opts.Year),
		opts:    opts,
	}
	ds.logSummaries()
	return ds, nil
}

func (d *Dataset) logSummaries() {
	for _, f := range []field.StaticField{field.Age, field.Children} {
		sum, err := d.Engine.NumericSummary(field.Static(f), d.Records)
		if err != nil {
			slog.Warn("numeric summary failed", "run_id", d.RunID, "field", f.String(), "error", err)
			continue
		}
		slog.Debug("numeric summary",
			"run_id", d.RunID,
			"field", f.String(),
			"count", sum.Count,
			"mean", sum.Mean,
			"median", sum.Median,
			"stddev", sum.StdDev)
	}
}

// Len returns the number of kept records.
func (d *Dataset) Len() int { return len(d.Records) }

// Builder returns a crosstab builder over the kept records.
func (d *Dataset) Builder() *crosstab.Builder {
	return crosstab.NewBuilder(d.Engine, d.Records, crosstab.WithWorkers(d.opts.Workers))
}

// Report holds every table of the output, grouped by sheet.
type Report struct {
	RunID        string
	FKC          table.Table
	IT           table.Table
	Graphs       GraphTables
	Aggregates   []table.WithMeta
	CrosstabN    []table.WithMeta
	CrosstabPerc []table.WithMeta
}

// Build computes every table.
func (d *Dataset) Build(ctx context.Context) (*Report, error) {
	rep := &Report{RunID: d.RunID}
	var err error
	if rep.FKC, err = d.FKCRawTable(); err != nil {
		return nil, apperrors.Wrap(err, "fkc raw table")
	}
	if rep.IT, err = d.ITRawTable(); err != nil {
		return nil, apperrors.Wrap(err, "it raw table")
	}
	if rep.Graphs, err = d.GraphTables(); err != nil {
		return nil, apperrors.Wrap(err, "graph tables")
	}
	if rep.Aggregates, err = d.AggregateTables(); err != nil {
		return nil, apperrors.Wrap(err, "aggregate tables")
	}
	b := d.Builder()
	if rep.CrosstabN, err = b.Build(ctx, crosstab.ModeN); err != nil {
		return nil, apperrors.Wrap(err, "crosstab(n)")
	}
	if rep.CrosstabPerc, err = b.Build(ctx, crosstab.ModePerc); err != nil {
		return nil, apperrors.Wrap(err, "crosstab(%)")
	}
	slog.Info("report built",
		"run_id", d.RunID,
		"aggregates", len(rep.Aggregates),
		"crosstabs", len(rep.CrosstabN))
	return rep, nil
}
