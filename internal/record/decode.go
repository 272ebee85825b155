package record

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/utils"
)

// Static column names of the export format.
const (
	ColID         = "id"
	ColUserID     = "user_id"
	ColCampaignID = "campaign_id"
	ColPrice      = "price"
	ColBonusPoint = "bonus_point"
	ColStatus     = "status"
	ColCreatedAt  = "created_at"
	ColUpdatedAt  = "updated at"
	ColEmail      = "email"
	ColNickname   = "nickname"
	ColGender     = "gender"
	ColBirthYear  = "birth_year"
	ColJob        = "job"
	ColPrefecture = "prefecture"
	ColMarital    = "marital_status"
	ColChildren   = "children"
	ColIncomeMin  = "household_income_min"
	ColIncomeMax  = "household_income_max"
)

// StaticColumns lists the fixed columns in export order.
var StaticColumns = []string{
	ColID, ColUserID, ColCampaignID, ColPrice, ColBonusPoint, ColStatus, ColCreatedAt,
	ColUpdatedAt, ColEmail, ColNickname, ColGender, ColBirthYear, ColJob, ColPrefecture,
	ColMarital, ColChildren, ColIncomeMin, ColIncomeMax,
}

type customColumn struct {
	index int
	key   uint64
}

// decoder maps header positions to record attributes.
type decoder struct {
	width  int
	static map[string]int
	custom []customColumn
}

func newDecoder(header []string) (*decoder, error) {
	d := &decoder{width: len(header), static: make(map[string]int, len(StaticColumns))}
	known := make(map[string]bool, len(StaticColumns))
	for _, c := range StaticColumns {
		known[c] = true
	}
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if known[name] {
			d.static[name] = i
			continue
		}
		if key, ok := utils.ExtractDigits(name); ok {
			d.custom = append(d.custom, customColumn{index: i, key: key})
		}
	}
	for _, c := range StaticColumns {
		if _, ok := d.static[c]; !ok {
			return nil, apperrors.RecordParse("header: missing column %q", c)
		}
	}
	return d, nil
}

// decode converts one data row. row is 1-based and counts the header.
func (d *decoder) decode(cells []string, row int) (*Record, error) {
	if len(cells) < d.width {
		padded := make([]string, d.width)
		copy(padded, cells)
		cells = padded
	}
	get := func(col string) string { return cells[d.static[col]] }
	var err error
	fail := func(col string, cause error) error {
		return apperrors.Wrapf(apperrors.WithCode(apperrors.CodeRecordParse, cause), "row %d column %q", row, col)
	}

	var a Attributes
	a.ID = get(ColID)
	a.UserID = get(ColUserID)
	a.CampaignID = get(ColCampaignID)
	a.CreatedAt = get(ColCreatedAt)
	a.UpdatedAt = get(ColUpdatedAt)
	a.Email = get(ColEmail)
	a.Nickname = get(ColNickname)

	if a.Price, err = parseInt(get(ColPrice)); err != nil {
		return nil, fail(ColPrice, err)
	}
	if a.BonusPoint, err = parseInt(get(ColBonusPoint)); err != nil {
		return nil, fail(ColBonusPoint, err)
	}
	birth := strings.TrimSpace(get(ColBirthYear))
	if birth == "" {
		return nil, fail(ColBirthYear, apperrors.New(apperrors.CodeRecordParse, "empty"))
	}
	by, err := strconv.Atoi(birth)
	if err != nil {
		return nil, fail(ColBirthYear, err)
	}
	a.BirthYear = by
	children, err := parseInt(get(ColChildren))
	if err != nil {
		return nil, fail(ColChildren, err)
	}
	a.Children = int(children)
	if a.IncomeMin, err = parseUint(get(ColIncomeMin)); err != nil {
		return nil, fail(ColIncomeMin, err)
	}
	if a.IncomeMax, err = parseUint(get(ColIncomeMax)); err != nil {
		return nil, fail(ColIncomeMax, err)
	}

	var ok bool
	if a.Status, ok = category.PurchaseStatuses.Lookup(get(ColStatus)); !ok {
		return nil, fail(ColStatus, unknownValue(get(ColStatus)))
	}
	if a.Gender, ok = category.Genders.Lookup(get(ColGender)); !ok {
		return nil, fail(ColGender, unknownValue(get(ColGender)))
	}
	if a.Job, ok = category.Jobs.Lookup(get(ColJob)); !ok {
		return nil, fail(ColJob, unknownValue(get(ColJob)))
	}
	if a.Prefecture, ok = category.Prefectures.Lookup(get(ColPrefecture)); !ok {
		return nil, fail(ColPrefecture, unknownValue(get(ColPrefecture)))
	}
	if a.MaritalStatus, ok = category.MaritalStatuses.Lookup(get(ColMarital)); !ok {
		return nil, fail(ColMarital, unknownValue(get(ColMarital)))
	}

	rec := New(a)
	for _, c := range d.custom {
		rec.Custom[c.key] = ParseCell(cells[c.index])
	}
	return rec, nil
}

// ParseCell interprets a custom-field cell: empty is nil, a JSON array literal is an array,
// anything else is a string.
func ParseCell(s string) *Value {
	if s == "" {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") {
		var items []any
		if err := sonic.UnmarshalString(trimmed, &items); err == nil {
			out := make([]string, 0, len(items))
			for _, it := range items {
				switch x := it.(type) {
				case nil:
				case string:
					out = append(out, x)
				case float64:
					out = append(out, strconv.FormatFloat(x, 'f', -1, 64))
				case bool:
					out = append(out, strconv.FormatBool(x))
				default:
					b, _ := sonic.MarshalString(x)
					out = append(out, b)
				}
			}
			return ArrayValue(out...)
		}
	}
	return StringValue(s)
}

func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func parseUint(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

func unknownValue(s string) error {
	return apperrors.Newf(apperrors.CodeRecordParse, "unknown value %q", s)
}
