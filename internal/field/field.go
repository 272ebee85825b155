// Package field addresses every tabulatable attribute of a response through one Reference type.
package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
)

// Kind tags a Reference.
type Kind int

const (
	KindStatic Kind = iota
	KindCustom
	KindComputed
)

// StaticField is a built-in, schema-independent attribute.
type StaticField int

const (
	Id StaticField = iota
	UserId
	CreatedAt
	Gender
	Job
	Prefecture
	Region
	MaritalStatus
	Children
	MaritalStatusAndChildren
	YearlyIncome
	Age
	AgeGroup
	AgeGroup1060
	AgeGroup1070
	PurchaseStatus
)

var staticNames = map[StaticField]string{
	Id:                       "id",
	UserId:                   "user_id",
	CreatedAt:                "created_at",
	Gender:                   "gender",
	Job:                      "job",
	Prefecture:               "prefecture",
	Region:                   "region",
	MaritalStatus:            "marital_status",
	Children:                 "children",
	MaritalStatusAndChildren: "marital_children",
	YearlyIncome:             "income",
	Age:                      "age",
	AgeGroup:                 "age_group",
	AgeGroup1060:             "age1060",
	AgeGroup1070:             "age1070",
	PurchaseStatus:           "purchase_status",
}

func (f StaticField) String() string {
	if s, ok := staticNames[f]; ok {
		return s
	}
	return fmt.Sprintf("static(%d)", int(f))
}

// Category returns the enumeration backing a categorical static field.
func (f StaticField) Category() (category.Category, bool) {
	switch f {
	case Gender:
		return category.Genders, true
	case Job:
		return category.Jobs, true
	case Prefecture:
		return category.Prefectures, true
	case Region:
		return category.Regions, true
	case MaritalStatus:
		return category.MaritalStatuses, true
	case Children:
		return category.ChildrenRanges, true
	case YearlyIncome:
		return category.YearlyIncomeRanges, true
	case AgeGroup1060:
		return category.AgeRanges1060, true
	case AgeGroup1070:
		return category.AgeRanges1070, true
	case PurchaseStatus:
		return category.PurchaseStatuses, true
	}
	return nil, false
}

// Part selects one column of a pre-aggregated report table.
type Part int

const (
	PartLabel Part = iota
	PartValue
	PartDisplay
	PartGraphLabel
	PartPercentage
)

var partNames = [...]string{"label", "value", "display", "graph_label", "percentage"}

func (p Part) String() string {
	if p >= 0 && int(p) < len(partNames) {
		return partNames[p]
	}
	return "part(" + strconv.Itoa(int(p)) + ")"
}

// Computed identifies a report-specific derivation of a static field.
type Computed struct {
	Of   StaticField
	Part Part
}

// Reference is the tagged identifier of a field. The zero value is Static(Id).
type Reference struct {
	Kind     Kind
	Static   StaticField
	Custom   uint64
	Computed Computed
}

func Static(f StaticField) Reference { return Reference{Kind: KindStatic, Static: f} }

func Custom(key uint64) Reference { return Reference{Kind: KindCustom, Custom: key} }

func ComputedOf(of StaticField, part Part) Reference {
	return Reference{Kind: KindComputed, Computed: Computed{Of: of, Part: part}}
}

func (r Reference) IsStatic() bool   { return r.Kind == KindStatic }
func (r Reference) IsCustom() bool   { return r.Kind == KindCustom }
func (r Reference) IsComputed() bool { return r.Kind == KindComputed }

func (r Reference) String() string {
	switch r.Kind {
	case KindCustom:
		return "field" + strconv.FormatUint(r.Custom, 10)
	case KindComputed:
		return r.Computed.Of.String() + "." + r.Computed.Part.String()
	default:
		return r.Static.String()
	}
}

// Less orders references: static before custom before computed, then by declaration or key.
func (r Reference) Less(o Reference) bool {
	if r.Kind != o.Kind {
		return r.Kind < o.Kind
	}
	switch r.Kind {
	case KindCustom:
		return r.Custom < o.Custom
	case KindComputed:
		if r.Computed.Of != o.Computed.Of {
			return r.Computed.Of < o.Computed.Of
		}
		return r.Computed.Part < o.Computed.Part
	default:
		return r.Static < o.Static
	}
}

// Parse resolves the CLI name of a static or custom field ("gender", "age1060", "field12", "12").
func Parse(s string) (Reference, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range staticNames {
		if n == name {
			return Static(f), nil
		}
	}
	digits := strings.TrimPrefix(name, "field")
	if k, err := strconv.ParseUint(digits, 10, 64); err == nil {
		return Custom(k), nil
	}
	return Reference{}, apperrors.UnknownField(s)
}

// StaticNames lists the CLI names of all static fields.
func StaticNames() []string {
	out := make([]string, 0, len(staticNames))
	for f := Id; f <= PurchaseStatus; f++ {
		out = append(out, staticNames[f])
	}
	return out
}
