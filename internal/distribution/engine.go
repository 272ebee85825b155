// Package distribution computes self and conditional frequency distributions over records.
package distribution

import (
	"fmt"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/field"
	"github.com/KaramelBytes/crosstab-cli/internal/record"
	"github.com/KaramelBytes/crosstab-cli/internal/schema"
)

// Engine resolves fields against one schema, language and reference year.
type Engine struct {
	schema *schema.FieldSchema
	lng    category.Language
	year   int
}

// New creates an engine. A nil schema has no custom fields.
func New(s *schema.FieldSchema, lng category.Language, year int) *Engine {
	return &Engine{schema: s, lng: lng, year: year}
}

// Schema returns the custom field definitions the engine resolves against.
func (e *Engine) Schema() *schema.FieldSchema { return e.schema }

// Language returns the label language of variants and descriptors.
func (e *Engine) Language() category.Language { return e.lng }

// Year returns the reference year used to derive ages.
func (e *Engine) Year() int { return e.year }

// Result is a self-distribution. Variants, Freq and Perc are index-aligned.
type Result struct {
	Variants []string
	Freq     []int
	Perc     []float64
	Nulls    int
	Total    int
}

// Sum returns the total tally, which exceeds Total-Nulls when the field fans out.
func (r Result) Sum() int {
	n := 0
	for _, f := range r.Freq {
		n += f
	}
	return n
}

// Descriptor is how a field is headed in crosstab and aggregate tables: title, type and
// label, in that order.
type Descriptor struct {
	Title string
	Type  string
	Label string
}

// Strings returns the descriptor in header order.
func (d Descriptor) Strings() []string { return []string{d.Title, d.Type, d.Label} }

// Describe returns the header descriptor of a discrete field.
func (e *Engine) Describe(ref field.Reference) (Descriptor, error) {
	switch ref.Kind {
	case field.KindStatic:
		if _, ok := ref.Static.Category(); !ok {
			return Descriptor{}, apperrors.UnsupportedField(ref.String(), "not categorical")
		}
		return Descriptor{
			Title: field.HeaderKey(ref),
			Type:  field.PulldownType(e.lng),
			Label: field.ShortLabel(ref.Static, e.lng),
		}, nil
	case field.KindCustom:
		def, err := e.discreteDef(ref)
		if err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Title: ref.String(), Type: def.Variant.TypeLabel(e.lng), Label: def.Label}, nil
	}
	return Descriptor{}, apperrors.UnsupportedField(ref.String(), "computed fields are pre-aggregated")
}

func (e *Engine) discreteDef(ref field.Reference) (*schema.CustomFieldDef, error) {
	def, ok := e.schema.Get(ref.Custom)
	if !ok {
		return nil, apperrors.UnknownField(ref.String())
	}
	if !def.Variant.HasOptions() {
		return nil, apperrors.UnsupportedField(ref.String(), "no discrete options")
	}
	return def, nil
}

// Variants returns the ordered variant labels of a discrete field: enumeration order for
// static fields, schema declaration order for custom ones.
func (e *Engine) Variants(ref field.Reference) ([]string, error) {
	switch ref.Kind {
	case field.KindStatic:
		c, ok := ref.Static.Category()
		if !ok {
			return nil, apperrors.UnsupportedField(ref.String(), "not categorical")
		}
		return c.Labels(e.lng), nil
	case field.KindCustom:
		def, err := e.discreteDef(ref)
		if err != nil {
			return nil, err
		}
		return def.OptionLabels(), nil
	}
	return nil, apperrors.UnsupportedField(ref.String(), "computed fields are pre-aggregated")
}

// IsMultiValued is true only for MultiSelect custom fields.
func (e *Engine) IsMultiValued(ref field.Reference) bool {
	return ref.IsCustom() && e.schema.IsMultiValued(ref.Custom)
}

// bucketer maps a record to the variant indices it counts toward. null reports an absent
// answer, including an empty selection. idx may be empty for an answer that matches no variant.
type bucketer func(r *record.Record, buf []int) (idx []int, null bool)

func (e *Engine) bucketer(ref field.Reference) (bucketer, int, error) {
	variants, err := e.Variants(ref)
	if err != nil {
		return nil, 0, err
	}
	if ref.IsStatic() {
		f := ref.Static
		return func(r *record.Record, buf []int) ([]int, bool) {
			i, _ := r.CategoryIndex(f, e.year)
			if i < 0 {
				return buf, false
			}
			return append(buf, i), false
		}, len(variants), nil
	}
	def, _ := e.schema.Get(ref.Custom)
	multi := def.Variant == schema.MultiSelect
	return func(r *record.Record, buf []int) ([]int, bool) {
		v := r.Custom[def.Key]
		if v.IsNull() || (v.Kind == record.KindArray && len(v.Items) == 0) {
			return buf, true
		}
		if v.Kind == record.KindArray {
			if !multi {
				return buf, false
			}
			for _, item := range v.Items {
				if i := def.OptionIndex(item); i >= 0 {
					buf = append(buf, i)
				}
			}
			return buf, false
		}
		s, _ := v.Scalar()
		if i := def.OptionIndex(s); i >= 0 {
			buf = append(buf, i)
		}
		return buf, false
	}, len(variants), nil
}

// SelfDistribution counts every record into the variant buckets of ref. Multi-valued answers
// fan out into several buckets. Percentages are over the non-null records and are all zero
// when there are none.
func (e *Engine) SelfDistribution(ref field.Reference, records []*record.Record) (Result, error) {
	b, n, err := e.bucketer(ref)
	if err != nil {
		return Result{}, err
	}
	variants, _ := e.Variants(ref)
	res := Result{Variants: variants, Freq: make([]int, n), Perc: make([]float64, n), Total: len(records)}
	var buf []int
	for _, r := range records {
		idx, null := b(r, buf[:0])
		buf = idx
		if null {
			res.Nulls++
			continue
		}
		for _, i := range idx {
			res.Freq[i]++
		}
	}
	if denom := res.Total - res.Nulls; denom > 0 {
		for i, f := range res.Freq {
			res.Perc[i] = float64(f) / float64(denom) * 100
		}
	}
	return res, nil
}

// matchIndex resolves a variant of ref given by label, canonical key or option key.
func (e *Engine) matchIndex(ref field.Reference, value string) (int, error) {
	variants, err := e.Variants(ref)
	if err != nil {
		return -1, err
	}
	for i, v := range variants {
		if v == value {
			return i, nil
		}
	}
	if ref.IsStatic() {
		c, _ := ref.Static.Category()
		if i, ok := c.LookupIndex(value); ok {
			return i, nil
		}
	} else {
		def, _ := e.schema.Get(ref.Custom)
		if i := def.OptionIndex(value); i >= 0 {
			return i, nil
		}
	}
	return -1, apperrors.MissingOption(ref.String(), value)
}

// ConditionalDistribution tallies base over the records whose secondary answer matches value.
// The result is aligned to the variants of base. A record matches when any of its secondary
// answers is value, and then counts toward every base bucket it answers.
func (e *Engine) ConditionalDistribution(base, secondary field.Reference, value string, records []*record.Record) ([]int, error) {
	want, err := e.matchIndex(secondary, value)
	if err != nil {
		return nil, err
	}
	return e.ConditionalDistributionAt(base, secondary, want, records)
}

// ConditionalDistributionAt is ConditionalDistribution with the secondary variant given by
// index. Options that share a label stay distinct.
func (e *Engine) ConditionalDistributionAt(base, secondary field.Reference, want int, records []*record.Record) ([]int, error) {
	bb, n, err := e.bucketer(base)
	if err != nil {
		return nil, err
	}
	sb, m, err := e.bucketer(secondary)
	if err != nil {
		return nil, err
	}
	if want < 0 || want >= m {
		return nil, apperrors.MissingOption(secondary.String(), fmt.Sprintf("#%d", want))
	}
	out := make([]int, n)
	var sbuf, bbuf []int
	for _, r := range records {
		sidx, null := sb(r, sbuf[:0])
		sbuf = sidx
		if null || !contains(sidx, want) {
			continue
		}
		bidx, null := bb(r, bbuf[:0])
		bbuf = bidx
		if null {
			continue
		}
		for _, i := range bidx {
			out[i]++
		}
	}
	return out, nil
}

// ConditionalPercentages divides each bucket by the sum of all buckets. An empty tally gives
// all-zero percentages.
func ConditionalPercentages(freq []int) []float64 {
	out := make([]float64, len(freq))
	sum := 0
	for _, f := range freq {
		sum += f
	}
	if sum == 0 {
		return out
	}
	for i, f := range freq {
		out[i] = float64(f) / float64(sum) * 100
	}
	return out
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
