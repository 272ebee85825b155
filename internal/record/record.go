// Package record holds survey responses and the sources they are read from.
package record

import (
	"fmt"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	"github.com/KaramelBytes/crosstab-cli/internal/field"
)

// Attributes are the fixed columns of a response.
type Attributes struct {
	ID            string
	UserID        string
	CampaignID    string
	Price         int64
	BonusPoint    int64
	Status        category.PurchaseStatus
	CreatedAt     string
	UpdatedAt     string
	Email         string
	Nickname      string
	Gender        category.Gender
	BirthYear     int
	Job           category.Job
	Prefecture    category.Prefecture
	MaritalStatus category.MaritalStatus
	Children      int
	IncomeMin     uint64
	IncomeMax     uint64
}

// Record is one response. A nil entry in Custom is an absent answer.
type Record struct {
	Attributes
	Custom map[uint64]*Value
}

// New returns a record with an empty custom map.
func New(attrs Attributes) *Record {
	return &Record{Attributes: attrs, Custom: map[uint64]*Value{}}
}

// Age is the respondent's age in the reference year.
func (r *Record) Age(year int) int {
	return year - r.BirthYear
}

func (r *Record) AgeRange1060(year int) category.AgeRange1060 {
	return category.AgeRange1060Of(r.Age(year))
}

func (r *Record) AgeRange1070(year int) category.AgeRange1070 {
	return category.AgeRange1070Of(r.Age(year))
}

func (r *Record) Region() category.Region {
	return category.RegionOf(r.Prefecture)
}

func (r *Record) ChildrenRange() category.ChildrenRange {
	return category.ChildrenRangeOf(r.Children)
}

func (r *Record) IncomeRange() category.YearlyIncomeRange {
	return category.YearlyIncomeRangeOf(r.IncomeMin, r.IncomeMax)
}

// AgeGroupLabel is the decade label of the age ("20代", "20s").
func (r *Record) AgeGroupLabel(year int, lng category.Language) string {
	decade := r.Age(year) / 10 * 10
	if lng == category.Ja {
		return fmt.Sprintf("%d代", decade)
	}
	return fmt.Sprintf("%ds", decade)
}

func (r *Record) maritalLabel(lng category.Language) string {
	if r.MaritalStatus == category.Single {
		return category.Localized{En: "Single", Ja: "未婚"}.In(lng)
	}
	return category.Localized{En: "Married", Ja: "既婚"}.In(lng)
}

// MaritalStatusAndChildren combines marital status with whether any children are reported.
func (r *Record) MaritalStatusAndChildren(lng category.Language) string {
	m := r.maritalLabel(lng)
	if lng == category.Ja {
		if r.Children > 0 {
			return m + "(子あり)"
		}
		return m + "(子なし)"
	}
	if r.Children > 0 {
		return m + " (with children)"
	}
	return m + " (no children)"
}

// CategoryIndex returns the position of the record's variant within the enumeration of a
// categorical static field.
func (r *Record) CategoryIndex(f field.StaticField, year int) (int, bool) {
	switch f {
	case field.Gender:
		return category.Genders.Index(r.Gender), true
	case field.Job:
		return category.Jobs.Index(r.Job), true
	case field.Prefecture:
		return category.Prefectures.Index(r.Prefecture), true
	case field.Region:
		return category.Regions.Index(r.Region()), true
	case field.MaritalStatus:
		return category.MaritalStatuses.Index(r.MaritalStatus), true
	case field.Children:
		return category.ChildrenRanges.Index(r.ChildrenRange()), true
	case field.YearlyIncome:
		return category.YearlyIncomeRanges.Index(r.IncomeRange()), true
	case field.AgeGroup1060:
		return category.AgeRanges1060.Index(r.AgeRange1060(year)), true
	case field.AgeGroup1070:
		return category.AgeRanges1070.Index(r.AgeRange1070(year)), true
	case field.PurchaseStatus:
		return category.PurchaseStatuses.Index(r.Status), true
	}
	return -1, false
}

// StaticString renders a static attribute the way raw tables show it.
func (r *Record) StaticString(f field.StaticField, lng category.Language, year int) string {
	switch f {
	case field.Id:
		return r.ID
	case field.UserId:
		return r.UserID
	case field.CreatedAt:
		return r.CreatedAt
	case field.Gender:
		return category.Genders.Label(r.Gender, lng)
	case field.Prefecture:
		return category.Prefectures.Label(r.Prefecture, lng)
	case field.Region:
		return category.Regions.Label(r.Region(), lng)
	case field.Age:
		return fmt.Sprintf("%d", r.Age(year))
	case field.AgeGroup:
		return r.AgeGroupLabel(year, lng)
	case field.AgeGroup1060:
		return category.AgeRanges1060.Label(r.AgeRange1060(year), lng)
	case field.AgeGroup1070:
		return category.AgeRanges1070.Label(r.AgeRange1070(year), lng)
	case field.Job:
		return category.Jobs.Label(r.Job, lng)
	case field.MaritalStatus:
		return r.maritalLabel(lng)
	case field.Children:
		return category.ChildrenRanges.Label(r.ChildrenRange(), lng)
	case field.MaritalStatusAndChildren:
		return r.MaritalStatusAndChildren(lng)
	case field.YearlyIncome:
		return category.YearlyIncomeRanges.Label(r.IncomeRange(), lng)
	case field.PurchaseStatus:
		return category.PurchaseStatuses.Label(r.Status, lng)
	}
	return ""
}

// CustomString renders a custom answer, "NULL" when absent.
func (r *Record) CustomString(key uint64) string {
	return r.Custom[key].String()
}
