package distribution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/field"
	"github.com/KaramelBytes/crosstab-cli/internal/record"
	"github.com/KaramelBytes/crosstab-cli/internal/schema"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	s, err := schema.New(
		schema.CustomFieldDef{Key: 1, Label: "Media", Variant: schema.MultiSelect, Options: []schema.Option{
			{Key: "A", Label: "TV"}, {Key: "B", Label: "Web"}, {Key: "C", Label: "Radio"},
		}},
		schema.CustomFieldDef{Key: 2, Label: "Color", Variant: schema.Radio, Options: []schema.Option{
			{Key: "r", Label: "red"}, {Key: "b", Label: "blue"},
		}},
		schema.CustomFieldDef{Key: 3, Label: "Comment", Variant: schema.Text},
	)
	require.NoError(t, err)
	return New(s, category.En, 2020)
}

func people() []*record.Record {
	mk := func(g category.Gender, children int) *record.Record {
		return record.New(record.Attributes{Gender: g, Children: children, BirthYear: 1990})
	}
	return []*record.Record{mk(category.Female, 0), mk(category.Male, 2), mk(category.Female, 2)}
}

func TestSelfDistributionGender(t *testing.T) {
	e := testEngine(t)
	res, err := e.SelfDistribution(field.Static(field.Gender), people())
	require.NoError(t, err)
	assert.Equal(t, []string{"Female", "Male"}, res.Variants)
	assert.Equal(t, []int{2, 1}, res.Freq)
	assert.InDelta(t, 66.67, res.Perc[0], 0.01)
	assert.InDelta(t, 33.33, res.Perc[1], 0.01)
	assert.Equal(t, res.Total-res.Nulls, res.Sum())
}

func TestVariantOrderIgnoresDataOrder(t *testing.T) {
	e := testEngine(t)
	recs := people()
	reversed := []*record.Record{recs[2], recs[1], recs[0]}
	a, err := e.SelfDistribution(field.Static(field.Children), recs)
	require.NoError(t, err)
	b, err := e.SelfDistribution(field.Static(field.Children), reversed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, category.ChildrenRanges.Labels(category.En), a.Variants)
}

func TestConditionalDistribution(t *testing.T) {
	e := testEngine(t)
	got, err := e.ConditionalDistribution(field.Static(field.Children), field.Static(field.Gender), "Female", people())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 0, 0}, got)

	byKey, err := e.ConditionalDistribution(field.Static(field.Children), field.Static(field.Gender), "female", people())
	require.NoError(t, err)
	assert.Equal(t, got, byKey)
}

func TestMultiSelectFanOut(t *testing.T) {
	e := testEngine(t)
	r := record.New(record.Attributes{BirthYear: 1990})
	r.Custom[1] = record.ArrayValue("A", "C")
	res, err := e.SelfDistribution(field.Custom(1), []*record.Record{r})
	require.NoError(t, err)
	assert.Equal(t, []string{"TV", "Web", "Radio"}, res.Variants)
	assert.Equal(t, []int{1, 0, 1}, res.Freq)
	assert.Greater(t, res.Sum(), res.Total)
}

func TestNullsAndMisses(t *testing.T) {
	e := testEngine(t)
	recs := people()
	recs[0].Custom[2] = record.StringValue("r")
	recs[1].Custom[2] = record.StringValue("blue")
	recs[2].Custom[2] = nil
	extra := record.New(record.Attributes{BirthYear: 1990})
	extra.Custom[2] = record.StringValue("green")
	recs = append(recs, extra)

	res, err := e.SelfDistribution(field.Custom(2), recs)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, res.Freq)
	assert.Equal(t, 1, res.Nulls)
	assert.InDelta(t, 33.33, res.Perc[0], 0.01, "a miss counts in the denominator")
}

func TestSinglePercentagesSumToHundred(t *testing.T) {
	e := testEngine(t)
	for _, f := range []field.StaticField{field.Gender, field.Children, field.AgeGroup1060, field.Region, field.YearlyIncome} {
		res, err := e.SelfDistribution(field.Static(f), people())
		require.NoError(t, err)
		sum := 0.0
		for _, p := range res.Perc {
			sum += p
		}
		assert.InDelta(t, 100.0, sum, 0.01, f.String())
	}
}

func TestEmptyRecordSet(t *testing.T) {
	e := testEngine(t)
	res, err := e.SelfDistribution(field.Static(field.Job), nil)
	require.NoError(t, err)
	assert.Len(t, res.Freq, category.Jobs.Len())
	for i := range res.Freq {
		assert.Zero(t, res.Freq[i])
		assert.Zero(t, res.Perc[i])
	}
	assert.Equal(t, []float64{0, 0, 0}, ConditionalPercentages([]int{0, 0, 0}))
}

func TestConditionalWithMultiSelectOnBothSides(t *testing.T) {
	e := testEngine(t)
	a := record.New(record.Attributes{BirthYear: 1990, Gender: category.Male})
	a.Custom[1] = record.ArrayValue("A", "B")
	b := record.New(record.Attributes{BirthYear: 1990, Gender: category.Female})
	b.Custom[1] = record.ArrayValue("B")
	recs := []*record.Record{a, b}

	got, err := e.ConditionalDistribution(field.Custom(1), field.Custom(1), "Web", recs)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, got)

	got, err = e.ConditionalDistribution(field.Static(field.Gender), field.Custom(1), "B", recs)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, got)

	perc := ConditionalPercentages([]int{1, 2, 0})
	assert.InDelta(t, 33.33, perc[0], 0.01)
	assert.InDelta(t, 66.67, perc[1], 0.01)
}

func TestUnsupportedAndUnknownFields(t *testing.T) {
	e := testEngine(t)
	tests := []struct {
		ref  field.Reference
		want error
	}{
		{field.Custom(3), apperrors.ErrUnsupportedField},
		{field.Custom(99), apperrors.ErrUnknownField},
		{field.ComputedOf(field.Gender, field.PartValue), apperrors.ErrUnsupportedField},
		{field.Static(field.Id), apperrors.ErrUnsupportedField},
	}
	for _, tt := range tests {
		t.Run(tt.ref.String(), func(t *testing.T) {
			_, err := e.Variants(tt.ref)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			_, err = e.SelfDistribution(tt.ref, people())
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := e.ConditionalDistribution(field.Static(field.Gender), field.Static(field.Gender), "Robot", people())
	assert.True(t, errors.Is(err, apperrors.ErrMissingOption))
}

func TestDescribe(t *testing.T) {
	e := testEngine(t)
	d, err := e.Describe(field.Static(field.YearlyIncome))
	require.NoError(t, err)
	assert.Equal(t, Descriptor{"household_income", "Pulldown", "Income"}, d)

	d, err = e.Describe(field.Custom(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"field1", "Multi Select", "Media"}, d.Strings())

	assert.True(t, e.IsMultiValued(field.Custom(1)))
	assert.False(t, e.IsMultiValued(field.Custom(2)))
	assert.False(t, e.IsMultiValued(field.Static(field.Gender)))
}

func TestNumericSummary(t *testing.T) {
	e := testEngine(t)
	s, err := e.NumericSummary(field.Static(field.Children), people())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 1.333, s.Mean, 0.001)
	assert.Equal(t, 2.0, s.Median)
	assert.InDelta(t, 0.943, s.StdDev, 0.001)
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 2.0, s.Max)

	s, err = e.NumericSummary(field.Static(field.Age), people())
	require.NoError(t, err)
	assert.Equal(t, 30.0, s.Mean)

	empty, err := e.NumericSummary(field.Static(field.Age), nil)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, empty)

	_, err = e.NumericSummary(field.Static(field.Gender), people())
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedField))
}

func TestEmptySelectionIsNull(t *testing.T) {
	e := testEngine(t)
	empty := record.New(record.Attributes{BirthYear: 1990})
	empty.Custom[1] = record.ParseCell("[]")
	tv := record.New(record.Attributes{Gender: category.Female, BirthYear: 1990})
	tv.Custom[1] = record.ArrayValue("A")
	recs := []*record.Record{empty, tv}

	res, err := e.SelfDistribution(field.Custom(1), recs)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Nulls)
	assert.Equal(t, []int{1, 0, 0}, res.Freq)
	assert.InDelta(t, 100.0, res.Perc[0], 0.01)
	assert.GreaterOrEqual(t, res.Sum(), res.Total-res.Nulls)

	got, err := e.ConditionalDistribution(field.Static(field.Gender), field.Custom(1), "TV", recs)
	require.NoError(t, err)
	assert.Equal(t, 1, got[0]+got[1])
}

func TestConditionalDistributionAtKeepsDuplicateLabelsApart(t *testing.T) {
	s, err := schema.New(schema.CustomFieldDef{Key: 7, Label: "Source", Variant: schema.Radio, Options: []schema.Option{
		{Key: "1", Label: "Other"}, {Key: "2", Label: "Other"},
	}})
	require.NoError(t, err)
	e := New(s, category.En, 2020)
	r := record.New(record.Attributes{Gender: category.Male, BirthYear: 1990})
	r.Custom[7] = record.StringValue("2")
	recs := []*record.Record{r}

	tests := []struct {
		name string
		at   int
		want []int
	}{
		{"first option", 0, []int{0, 0}},
		{"second option", 1, []int{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ConditionalDistributionAt(field.Static(field.Gender), field.Custom(7), tt.at, recs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = e.ConditionalDistributionAt(field.Static(field.Gender), field.Custom(7), 2, recs)
	assert.True(t, errors.Is(err, apperrors.ErrMissingOption))
}
