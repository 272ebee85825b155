// Package crosstab assembles self-distribution and pairwise crosstab tables over the
// candidate field set.
package crosstab

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/crosstab-cli/internal/distribution"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/field"
	"github.com/KaramelBytes/crosstab-cli/internal/record"
	"github.com/KaramelBytes/crosstab-cli/internal/table"
)

// Mode selects counts or percentages in pair tables.
type Mode int

const (
	ModeN Mode = iota
	ModePerc
)

func (m Mode) String() string {
	if m == ModePerc {
		return "perc"
	}
	return "n"
}

const (
	headerChoice  = "選択肢"
	headerCount   = "件数"
	headerPercent = "割合"
)

// StaticCandidates are the built-in fields every crosstab covers, in output order.
var StaticCandidates = []field.StaticField{
	field.AgeGroup1060, field.Gender, field.MaritalStatus, field.Children, field.Job,
	field.Region, field.YearlyIncome,
}

// Builder produces crosstab tables for one filtered record set.
type Builder struct {
	engine  *distribution.Engine
	records []*record.Record
	workers int
}

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers bounds the number of tables computed concurrently. n <= 0 means NumCPU.
func WithWorkers(n int) Option {
	return func(b *Builder) { b.workers = n }
}

// NewBuilder creates a builder over records.
func NewBuilder(engine *distribution.Engine, records []*record.Record, opts ...Option) *Builder {
	b := &Builder{engine: engine, records: records}
	for _, o := range opts {
		o(b)
	}
	if b.workers <= 0 {
		b.workers = runtime.NumCPU()
	}
	return b
}

// Candidates returns the static candidates followed by every discrete custom field in
// ascending key order.
func (b *Builder) Candidates() []field.Reference {
	out := make([]field.Reference, 0, len(StaticCandidates)+b.engine.Schema().Len())
	for _, f := range StaticCandidates {
		out = append(out, field.Static(f))
	}
	for _, k := range b.engine.Schema().Discrete() {
		out = append(out, field.Custom(k))
	}
	return out
}

// PrimaryTable is the self-distribution of ref laid out as one highlighted column per variant.
func (b *Builder) PrimaryTable(ref field.Reference) (table.WithMeta, error) {
	d, err := b.engine.Describe(ref)
	if err != nil {
		return table.WithMeta{}, err
	}
	res, err := b.engine.SelfDistribution(ref, b.records)
	if err != nil {
		return table.WithMeta{}, err
	}
	cols := []table.Column{
		table.NewColumn(d.Title, true),
		table.NewColumn(d.Type, true),
		table.NewColumn(d.Label, true),
		table.NewColumn(headerChoice, true, headerCount, headerPercent),
	}
	for i, v := range res.Variants {
		cols = append(cols, table.NewColumn(v, true,
			fmt.Sprintf("%d", res.Freq[i]),
			fmt.Sprintf("%.2f%%", res.Perc[i])))
	}
	return table.WithMeta{SpecialCase: table.SpaceAndHighlightOn4, Table: table.New(cols...)}, nil
}

// PairTable crosses base with secondary. Rows are base variants. Column j holds the
// distribution of base over the records answering the j-th variant of secondary.
func (b *Builder) PairTable(base, secondary field.Reference, mode Mode) (table.WithMeta, error) {
	bd, err := b.engine.Describe(base)
	if err != nil {
		return table.WithMeta{}, err
	}
	sd, err := b.engine.Describe(secondary)
	if err != nil {
		return table.WithMeta{}, err
	}
	self, err := b.engine.SelfDistribution(base, b.records)
	if err != nil {
		return table.WithMeta{}, err
	}
	secondaryVariants, err := b.engine.Variants(secondary)
	if err != nil {
		return table.WithMeta{}, err
	}

	freq := make([]string, len(self.Freq))
	perc := make([]string, len(self.Perc))
	for i := range self.Freq {
		freq[i] = fmt.Sprintf("%d", self.Freq[i])
		perc[i] = fmt.Sprintf("%.2f%%", self.Perc[i])
	}
	cols := []table.Column{
		table.NewColumn(bd.Title, false, bd.Type, bd.Label),
		table.NewColumn(headerChoice, false, self.Variants...),
		table.NewColumn(headerCount, false, freq...),
		table.NewColumn(headerPercent, false, perc...),
	}
	for j, v := range secondaryVariants {
		counts, err := b.engine.ConditionalDistributionAt(base, secondary, j, b.records)
		if err != nil {
			return table.WithMeta{}, apperrors.Wrapf(err, "crosstab %s x %s column %d", base, secondary, j)
		}
		cells := make([]string, len(counts))
		if mode == ModePerc {
			for i, p := range distribution.ConditionalPercentages(counts) {
				cells[i] = fmt.Sprintf("%.2f", p)
			}
		} else {
			for i, n := range counts {
				cells[i] = fmt.Sprintf("%d", n)
			}
		}
		cols = append(cols, table.NewColumn(v, true, cells...))
	}
	return table.WithMeta{Meta: sd.Strings(), Table: table.New(cols...)}, nil
}

type job struct {
	slot      int
	base      field.Reference
	secondary field.Reference
	primary   bool
}

// Build returns, for every candidate in order, its primary table followed by one pair table
// per candidate (itself included). Tables are computed concurrently but land in that order.
func (b *Builder) Build(ctx context.Context, mode Mode) ([]table.WithMeta, error) {
	cands := b.Candidates()
	stride := len(cands) + 1
	jobs := make([]job, 0, len(cands)*stride)
	for i, base := range cands {
		jobs = append(jobs, job{slot: i * stride, base: base, primary: true})
		for j, sec := range cands {
			jobs = append(jobs, job{slot: i*stride + j + 1, base: base, secondary: sec})
		}
	}

	out := make([]table.WithMeta, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for _, jb := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var (
				t   table.WithMeta
				err error
			)
			if jb.primary {
				t, err = b.PrimaryTable(jb.base)
			} else {
				t, err = b.PairTable(jb.base, jb.secondary, mode)
			}
			if err != nil {
				return err
			}
			out[jb.slot] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slog.Debug("crosstab built",
		"mode", mode.String(),
		"candidates", len(cands),
		"tables", len(out),
		"workers", b.workers)
	return out, nil
}
