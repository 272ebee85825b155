package report

import (
	"fmt"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	"github.com/KaramelBytes/crosstab-cli/internal/distribution"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/field"
	"github.com/KaramelBytes/crosstab-cli/internal/schema"
	"github.com/KaramelBytes/crosstab-cli/internal/table"
)

var fkcFields = []field.StaticField{
	field.Id, field.UserId, field.CreatedAt, field.Gender, field.Prefecture, field.Region,
	field.Age, field.AgeGroup, field.Job, field.MaritalStatus, field.Children, field.YearlyIncome,
}

var itFields = []field.StaticField{
	field.Id, field.UserId, field.CreatedAt, field.Gender, field.Prefecture, field.Region,
	field.Age, field.AgeGroup, field.AgeGroup1060, field.AgeGroup1070, field.Job,
	field.MaritalStatus, field.Children, field.MaritalStatusAndChildren, field.YearlyIncome,
}

// FKCRawTable is one row per record with the basic demographics and every custom answer.
func (d *Dataset) FKCRawTable() (table.Table, error) {
	return d.rawTable(fkcFields)
}

// ITRawTable adds the bucketed age groups and the marital/children combination.
func (d *Dataset) ITRawTable() (table.Table, error) {
	return d.rawTable(itFields)
}

func (d *Dataset) rawTable(static []field.StaticField) (table.Table, error) {
	lng, year := d.opts.Lang, d.opts.Year
	var cols []table.Column
	for _, f := range static {
		contents := make([]string, len(d.Records))
		for i, r := range d.Records {
			contents[i] = r.StaticString(f, lng, year)
		}
		cols = append(cols, table.NewColumn(field.Title(field.Static(f), lng), false, contents...))
	}
	for _, k := range d.Schema.Tabulatable(d.opts.IncludeText) {
		def, _ := d.Schema.Get(k)
		cols = append(cols, d.customColumns(def)...)
	}
	return table.New(cols...), nil
}

// customColumns renders an answer column and, for multi-select fields, one 0/1 column per
// option keyed by the option key.
func (d *Dataset) customColumns(def *schema.CustomFieldDef) []table.Column {
	base := make([]string, len(d.Records))
	for i, r := range d.Records {
		base[i] = r.CustomString(def.Key)
	}
	cols := []table.Column{table.NewColumn(def.Label, false, base...)}
	if def.Variant != schema.MultiSelect {
		return cols
	}
	for _, opt := range def.Options {
		flags := make([]string, len(d.Records))
		for i, r := range d.Records {
			flags[i] = "0"
			v := r.Custom[def.Key]
			if v.IsNull() {
				continue
			}
			for _, item := range v.Items {
				if item == opt.Key {
					flags[i] = "1"
					break
				}
			}
		}
		cols = append(cols, table.NewColumn(opt.Label, true, flags...))
	}
	return cols
}

// GraphTables are the user_graph tables: plain counts for the small categories and
// labelled percentages for job, region and income.
type GraphTables struct {
	Age1060  table.Table
	Age1070  table.Table
	Gender   table.Table
	Marital  table.Table
	Children table.Table
	Job      table.Table
	Region   table.Table
	Income   table.Table
}

// All returns the tables in the order they are listed in the struct.
func (g GraphTables) All() []table.Table {
	return []table.Table{g.Age1060, g.Age1070, g.Gender, g.Marital, g.Children, g.Job, g.Region, g.Income}
}

// GraphTables computes every user_graph table.
func (d *Dataset) GraphTables() (GraphTables, error) {
	var g GraphTables
	var err error
	counts := []struct {
		f   field.StaticField
		dst *table.Table
	}{
		{field.AgeGroup1060, &g.Age1060},
		{field.AgeGroup1070, &g.Age1070},
		{field.Gender, &g.Gender},
		{field.MaritalStatus, &g.Marital},
		{field.Children, &g.Children},
	}
	for _, c := range counts {
		if *c.dst, err = d.CountTable(c.f); err != nil {
			return GraphTables{}, err
		}
	}
	labelled := []struct {
		f   field.StaticField
		dst *table.Table
	}{
		{field.Job, &g.Job},
		{field.Region, &g.Region},
		{field.YearlyIncome, &g.Income},
	}
	for _, c := range labelled {
		if *c.dst, err = d.GraphTable(c.f); err != nil {
			return GraphTables{}, err
		}
	}
	return g, nil
}

func (d *Dataset) staticCounts(f field.StaticField) (distribution.Result, []string, error) {
	res, err := d.Engine.SelfDistribution(field.Static(f), d.Records)
	if err != nil {
		return distribution.Result{}, nil, err
	}
	values := make([]string, len(res.Freq))
	for i, n := range res.Freq {
		values[i] = fmt.Sprintf("%d", n)
	}
	return res, values, nil
}

func (d *Dataset) computedTitle(f field.StaticField, p field.Part) string {
	return field.Title(field.ComputedOf(f, p), d.opts.Lang)
}

func (d *Dataset) totalLabel() string {
	return category.Localized{En: "Total", Ja: "計"}.In(d.opts.Lang)
}

// CountTable lays out label, count and a "N件" display column, with totals in the footer.
func (d *Dataset) CountTable(f field.StaticField) (table.Table, error) {
	res, values, err := d.staticCounts(f)
	if err != nil {
		return table.Table{}, err
	}
	labels := res.Variants
	display := make([]string, len(values))
	for i, v := range values {
		display[i] = v + "件"
	}
	total := fmt.Sprintf("%d", d.Len())
	return table.New(
		table.NewColumn(d.computedTitle(f, field.PartLabel), true, labels...).WithFooter(d.totalLabel()),
		table.NewColumn(d.computedTitle(f, field.PartValue), true, values...).WithFooter(total),
		table.NewColumn(d.computedTitle(f, field.PartDisplay), false, display...).WithFooter(""),
	), nil
}

// GraphTable lays out label, count, "label(n=N)" and the share of all records to one decimal.
func (d *Dataset) GraphTable(f field.StaticField) (table.Table, error) {
	res, values, err := d.staticCounts(f)
	if err != nil {
		return table.Table{}, err
	}
	labels := res.Variants
	graph := make([]string, len(labels))
	perc := make([]string, len(labels))
	for i, l := range labels {
		graph[i] = fmt.Sprintf("%s(n=%d)", l, res.Freq[i])
		perc[i] = fmt.Sprintf("%.1f%%", share(res.Freq[i], d.Len()))
	}
	total := fmt.Sprintf("%d", d.Len())
	return table.New(
		table.NewColumn(d.computedTitle(f, field.PartLabel), true, labels...).WithFooter(d.totalLabel()),
		table.NewColumn(d.computedTitle(f, field.PartValue), true, values...).WithFooter(total),
		table.NewColumn(d.computedTitle(f, field.PartGraphLabel), false, graph...).WithFooter(""),
		table.NewColumn(d.computedTitle(f, field.PartPercentage), false, perc...).WithFooter("100.0%"),
	), nil
}

// AggregateTables has one table per discrete custom field: option labels, counts and the
// share of all records. Multi-select shares can sum past 100%.
func (d *Dataset) AggregateTables() ([]table.WithMeta, error) {
	var out []table.WithMeta
	for _, k := range d.Schema.Discrete() {
		ref := field.Custom(k)
		desc, err := d.Engine.Describe(ref)
		if err != nil {
			return nil, err
		}
		res, err := d.Engine.SelfDistribution(ref, d.Records)
		if err != nil {
			return nil, apperrors.Wrapf(err, "aggregate %s", ref)
		}
		counts := make([]string, len(res.Freq))
		perc := make([]string, len(res.Freq))
		for i, n := range res.Freq {
			counts[i] = fmt.Sprintf("%d", n)
			perc[i] = fmt.Sprintf("%.2f%%", share(n, d.Len()))
		}
		out = append(out, table.WithMeta{
			Meta: desc.Strings(),
			Table: table.New(
				table.NewColumn("選択肢", false, res.Variants...),
				table.NewColumn("件数", false, counts...),
				table.NewColumn("割合", false, perc...),
			),
		})
	}
	return out, nil
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
