package field

import "github.com/KaramelBytes/crosstab-cli/internal/category"

var staticTitles = map[StaticField]category.Localized{
	Id:                       {En: "Post ID", Ja: "投稿id"},
	UserId:                   {En: "User ID", Ja: "ユーザid"},
	CreatedAt:                {En: "Posted At", Ja: "投稿日"},
	Gender:                   {En: "Gender", Ja: "性別"},
	Prefecture:               {En: "Prefecture", Ja: "現住所"},
	Region:                   {En: "Region", Ja: "地域"},
	Age:                      {En: "Age", Ja: "年齢"},
	AgeGroup:                 {En: "Age Group", Ja: "年代"},
	AgeGroup1060:             {En: "Age Group (10s or under ~ 60s or above)", Ja: "年代(10代以下～60代以上)"},
	AgeGroup1070:             {En: "Age Group (10s or under ~ 70s or above)", Ja: "年代(10代以下～70代以上)"},
	Job:                      {En: "Job", Ja: "職業"},
	MaritalStatus:            {En: "Marital Status", Ja: "未既婚"},
	Children:                 {En: "Children", Ja: "子供の人数"},
	MaritalStatusAndChildren: {En: "Marital Status x Children", Ja: "未既婚×子有無"},
	YearlyIncome:             {En: "Household Income", Ja: "世帯年収"},
	PurchaseStatus:           {En: "Purchase Status", Ja: "購入ステータス"},
}

var labelTitles = map[StaticField]category.Localized{
	AgeGroup1060:  {En: "Age Group Label", Ja: "年代ラベル"},
	AgeGroup1070:  {En: "Age Group Label", Ja: "年代ラベル"},
	Gender:        {En: "Gender Label", Ja: "性別ラベル"},
	MaritalStatus: {En: "Marital Status Label", Ja: "未既婚ラベル"},
	Children:      {En: "Children Label", Ja: "子供の人数ラベル"},
	Job:           {En: "Job Label", Ja: "職業ラベル"},
	Region:        {En: "Region Label", Ja: "地域ラベル"},
	YearlyIncome:  {En: "Household Income Label", Ja: "世帯年収ラベル"},
}

var partTitles = map[Part]category.Localized{
	PartValue:      {En: "Value", Ja: "値"},
	PartDisplay:    {En: "Display", Ja: "表示用値"},
	PartGraphLabel: {En: "Graph Label", Ja: "グラフ用ラベル"},
	PartPercentage: {En: "Percentage", Ja: "割合"},
}

// crosstab header keys and short labels
var headerKeys = map[StaticField]string{
	AgeGroup1060:  "age_range",
	Gender:        "gender",
	MaritalStatus: "marital_status",
	Children:      "children",
	Job:           "job",
	Region:        "region",
	YearlyIncome:  "household_income",
}

var shortLabels = map[StaticField]category.Localized{
	AgeGroup1060:  {En: "Age", Ja: "年代"},
	Gender:        {En: "Gender", Ja: "性別"},
	MaritalStatus: {En: "Marital Status", Ja: "未既婚"},
	Children:      {En: "Children", Ja: "子供の人数"},
	Job:           {En: "Job", Ja: "職業"},
	Region:        {En: "Region", Ja: "地域"},
	YearlyIncome:  {En: "Income", Ja: "年収"},
}

// Title returns the column title of a static or computed field. Custom fields are titled by
// their reference name; the schema owns their labels.
func Title(r Reference, lng category.Language) string {
	switch r.Kind {
	case KindCustom:
		return r.String()
	case KindComputed:
		if r.Computed.Part == PartLabel {
			if t, ok := labelTitles[r.Computed.Of]; ok {
				return t.In(lng)
			}
			return Title(Static(r.Computed.Of), lng)
		}
		return partTitles[r.Computed.Part].In(lng)
	default:
		if t, ok := staticTitles[r.Static]; ok {
			return t.In(lng)
		}
		return r.String()
	}
}

// HeaderKey is the machine-facing title used in crosstab headers.
func HeaderKey(r Reference) string {
	if r.Kind == KindStatic {
		if k, ok := headerKeys[r.Static]; ok {
			return k
		}
	}
	return r.String()
}

// ShortLabel is the human-facing label used in crosstab headers for static fields.
func ShortLabel(f StaticField, lng category.Language) string {
	if l, ok := shortLabels[f]; ok {
		return l.In(lng)
	}
	return Title(Static(f), lng)
}

// PulldownType is the type shown for static fields in crosstab headers.
func PulldownType(lng category.Language) string {
	return category.Localized{En: "Pulldown", Ja: "プルダウン"}.In(lng)
}
