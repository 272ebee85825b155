// Package filter validates records and applies the configured ignore or include criteria.
package filter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/field"
	"github.com/KaramelBytes/crosstab-cli/internal/record"
	"github.com/KaramelBytes/crosstab-cli/internal/schema"
)

// Mode selects how criteria are interpreted. The two modes never combine.
type Mode int

const (
	// ModeIgnore drops a record on the first matching criterion.
	ModeIgnore Mode = iota
	// ModeInclude keeps a record only if every category group has a match.
	ModeInclude
)

func (m Mode) String() string {
	if m == ModeInclude {
		return "include"
	}
	return "ignore"
}

// ParseMode accepts "ignore", "include" or "" (ignore).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return ModeIgnore, nil
	case "include":
		return ModeInclude, nil
	}
	return ModeIgnore, apperrors.ConfigInvalid("filter mode %q: want ignore or include", s)
}

// Rule is a criterion as written in configuration: names, not variants.
type Rule struct {
	Category string `mapstructure:"category" yaml:"category"`
	Value    string `mapstructure:"value" yaml:"value"`
}

// ParseRule splits "category=value".
func ParseRule(s string) (Rule, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
		return Rule{}, apperrors.ConfigInvalid("filter %q: want category=value", s)
	}
	return Rule{Category: strings.TrimSpace(k), Value: strings.TrimSpace(v)}, nil
}

func (r Rule) String() string { return r.Category + "=" + r.Value }

// Criterion is a resolved rule: a categorical static field and the index of one of its
// variants.
type Criterion struct {
	Field   field.StaticField
	Variant int
}

// Groups holds include criteria keyed by category, with the category order of first appearance.
type Groups struct {
	order []field.StaticField
	by    map[field.StaticField][]Criterion
}

// GroupByCategory groups criteria by their field.
func GroupByCategory(criteria []Criterion) Groups {
	g := Groups{by: map[field.StaticField][]Criterion{}}
	for _, c := range criteria {
		if _, seen := g.by[c.Field]; !seen {
			g.order = append(g.order, c.Field)
		}
		g.by[c.Field] = append(g.by[c.Field], c)
	}
	return g
}

// Len returns the number of category groups.
func (g Groups) Len() int { return len(g.order) }

var filterable = []field.StaticField{
	field.Gender, field.MaritalStatus, field.Children, field.Job, field.AgeGroup1060,
	field.AgeGroup1070, field.YearlyIncome, field.Prefecture, field.Region, field.PurchaseStatus,
}

// Resolve turns a configuration rule into a criterion. Category and value are matched by
// key or by label in either language.
func Resolve(r Rule) (Criterion, error) {
	cat, ok := category.CategoryByKey(r.Category)
	if !ok {
		return Criterion{}, apperrors.MissingOption(r.Category, r.Value)
	}
	for _, f := range filterable {
		c, _ := f.Category()
		if c.Key() != cat.Key() {
			continue
		}
		idx, ok := c.LookupIndex(r.Value)
		if !ok {
			return Criterion{}, apperrors.MissingOption(r.Category, r.Value)
		}
		return Criterion{Field: f, Variant: idx}, nil
	}
	return Criterion{}, apperrors.MissingOption(r.Category, r.Value)
}

// Config is the input of New.
type Config struct {
	Mode  Mode
	Rules []Rule
	// Year is the reference year for age-derived categories and validation.
	Year int
}

// Filter is a resolved filter configuration bound to one schema.
type Filter struct {
	mode     Mode
	criteria []Criterion
	groups   Groups
	schema   *schema.FieldSchema
	year     int
}

// New resolves every rule up front so an unknown category or value fails before any record
// is looked at.
func New(cfg Config, s *schema.FieldSchema) (*Filter, error) {
	f := &Filter{mode: cfg.Mode, schema: s, year: cfg.Year}
	for _, r := range cfg.Rules {
		c, err := Resolve(r)
		if err != nil {
			return nil, err
		}
		f.criteria = append(f.criteria, c)
	}
	f.groups = GroupByCategory(f.criteria)
	return f, nil
}

// Criteria returns the resolved criteria in configuration order.
func (f *Filter) Criteria() []Criterion {
	return append([]Criterion(nil), f.criteria...)
}

// Mode returns the filter mode.
func (f *Filter) Mode() Mode { return f.mode }

// Apply runs validate, normalize, filter and clean over every record in order. A failed
// validation aborts the whole batch.
func (f *Filter) Apply(records []*record.Record) ([]*record.Record, error) {
	kept := make([]*record.Record, 0, len(records))
	for i, r := range records {
		if err := ValidateBirthYear(r, f.year, i+2); err != nil {
			return nil, err
		}
		NormalizeMissingCustomFields(r, f.schema)
		if !f.Passes(r) {
			continue
		}
		CleanText(r)
		kept = append(kept, r)
	}
	slog.Debug("records filtered",
		"mode", f.mode.String(),
		"criteria", len(f.criteria),
		"in", len(records),
		"kept", len(kept))
	return kept, nil
}

// Passes evaluates the configured mode against one record.
func (f *Filter) Passes(r *record.Record) bool {
	if f.mode == ModeInclude {
		return PassesIncludeRules(r, f.groups, f.year)
	}
	return PassesIgnoreRules(r, f.criteria, f.year)
}

// ValidateBirthYear rejects a record whose age in the reference year is negative. row is the
// 1-based input row including the header.
func ValidateBirthYear(r *record.Record, year, row int) error {
	if year-r.BirthYear < 0 {
		return &apperrors.InvalidRecordError{
			Field: "birth_year",
			Value: fmt.Sprintf("%d", r.BirthYear),
			Row:   row,
		}
	}
	return nil
}

// NormalizeMissingCustomFields inserts an explicit null for every schema key the record lacks.
func NormalizeMissingCustomFields(r *record.Record, s *schema.FieldSchema) {
	if r.Custom == nil {
		r.Custom = make(map[uint64]*record.Value, s.Len())
	}
	for _, k := range s.Keys() {
		if _, ok := r.Custom[k]; !ok {
			r.Custom[k] = nil
		}
	}
}

func matches(r *record.Record, c Criterion, year int) bool {
	idx, ok := r.CategoryIndex(c.Field, year)
	return ok && idx == c.Variant
}

// PassesIgnoreRules is false as soon as one criterion matches.
func PassesIgnoreRules(r *record.Record, criteria []Criterion, year int) bool {
	for _, c := range criteria {
		if matches(r, c, year) {
			return false
		}
	}
	return true
}

// PassesIncludeRules requires a match in every non-empty group. No groups means no restriction.
func PassesIncludeRules(r *record.Record, groups Groups, year int) bool {
	for _, f := range groups.order {
		group := groups.by[f]
		if len(group) == 0 {
			continue
		}
		hit := false
		for _, c := range group {
			if matches(r, c, year) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// CleanText strips NUL characters from string answers.
func CleanText(r *record.Record) {
	for k, v := range r.Custom {
		if v == nil || v.Kind != record.KindString || !strings.ContainsRune(v.Str, 0) {
			continue
		}
		r.Custom[k] = record.StringValue(strings.ReplaceAll(v.Str, "\x00", ""))
	}
}
