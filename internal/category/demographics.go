package category

// Gender of the respondent.
type Gender int

const (
	Female Gender = iota
	Male
)

var Genders = newEnumeration("gender", Localized{"Gender", "性別"},
	Entry[Gender]{Female, "Female", Localized{"Female", "女性"}, []string{"女"}},
	Entry[Gender]{Male, "Male", Localized{"Male", "男性"}, []string{"男"}},
)

// MaritalStatus of the respondent.
type MaritalStatus int

const (
	Married MaritalStatus = iota
	Single
)

var MaritalStatuses = newEnumeration("marital_status", Localized{"Marital Status", "配偶者の有無"},
	Entry[MaritalStatus]{Married, "Married", Localized{"Married", "既婚"}, nil},
	Entry[MaritalStatus]{Single, "Single", Localized{"Single", "未婚"}, nil},
)

// ChildrenRange buckets the number of children.
type ChildrenRange int

const (
	Children0 ChildrenRange = iota
	Children1
	Children2
	Children3
	Children4OrMore
)

var ChildrenRanges = newEnumeration("children", Localized{"Children", "子供数"},
	Entry[ChildrenRange]{Children0, "Group0", Localized{"0", "0人"}, nil},
	Entry[ChildrenRange]{Children1, "Group1", Localized{"1", "1人"}, nil},
	Entry[ChildrenRange]{Children2, "Group2", Localized{"2", "2人"}, nil},
	Entry[ChildrenRange]{Children3, "Group3", Localized{"3", "3人"}, nil},
	Entry[ChildrenRange]{Children4OrMore, "Above4", Localized{"4 or above", "4人以上"}, []string{"4+"}},
)

// ChildrenRangeOf buckets a child count.
func ChildrenRangeOf(n int) ChildrenRange {
	switch {
	case n <= 0:
		return Children0
	case n == 1:
		return Children1
	case n == 2:
		return Children2
	case n == 3:
		return Children3
	default:
		return Children4OrMore
	}
}

// PurchaseStatus of the campaign post.
type PurchaseStatus int

const (
	Purchased PurchaseStatus = iota
	Rejected
	Evaluated
)

var PurchaseStatuses = newEnumeration("purchase_status", Localized{"PurchaseStatus", "購入ステータス"},
	Entry[PurchaseStatus]{Purchased, "Purchased", Localized{"Purchased", "購入済み"}, nil},
	Entry[PurchaseStatus]{Rejected, "Rejected", Localized{"Rejected", "拒否済み"}, nil},
	Entry[PurchaseStatus]{Evaluated, "Evaluated", Localized{"Evaluated", "評価済み"}, nil},
)
