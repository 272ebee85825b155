package category

// YearlyIncomeRange buckets household income in yen.
type YearlyIncomeRange int

const (
	IncomeBelow1M YearlyIncomeRange = iota
	Income1To2M
	Income2To3M
	Income3To4M
	Income4To5M
	Income5To6M
	Income6To7M
	Income7To8M
	Income8To9M
	Income9To10M
	Income10To12M
	Income12To15M
	Income15To20M
	IncomeAbove20M
)

var YearlyIncomeRanges = newEnumeration("income", Localized{"Yearly Income Range", "年間収入の範囲"},
	Entry[YearlyIncomeRange]{IncomeBelow1M, "Below1Mil", Localized{"Below 1 million yen", "100万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income1To2M, "Group1To2Mil", Localized{"1~2 million yen", "100～200万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income2To3M, "Group2To3Mil", Localized{"2~3 million yen", "200～300万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income3To4M, "Group3To4Mil", Localized{"3~4 million yen", "300～400万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income4To5M, "Group4To5Mil", Localized{"4~5 million yen", "400～500万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income5To6M, "Group5To6Mil", Localized{"5~6 million yen", "500～600万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income6To7M, "Group6To7Mil", Localized{"6~7 million yen", "600～700万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income7To8M, "Group7To8Mil", Localized{"7~8 million yen", "700～800万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income8To9M, "Group8To9Mil", Localized{"8~9 million yen", "800～900万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income9To10M, "Group9To10Mil", Localized{"9~10 million yen", "900～1000万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income10To12M, "Group10To12Mil", Localized{"10~12 million yen", "1000～1200万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income12To15M, "Group12To15Mil", Localized{"12~15 million yen", "1200～1500万円未満"}, nil},
	Entry[YearlyIncomeRange]{Income15To20M, "Group15To20Mil", Localized{"15~20 million yen", "1500～2000万円未満"}, nil},
	Entry[YearlyIncomeRange]{IncomeAbove20M, "Above20Mil", Localized{"20 million yen or above", "2000万円以上"}, nil},
)

// upper bounds (exclusive) of every bounded bucket, in declaration order
var incomeBounds = []uint64{
	1_000_000, 2_000_000, 3_000_000, 4_000_000, 5_000_000, 6_000_000, 7_000_000,
	8_000_000, 9_000_000, 10_000_000, 12_000_000, 15_000_000, 20_000_000,
}

// YearlyIncomeRangeOf buckets a reported [min, max] income band. A band is only placed in a
// bounded bucket when both ends fall inside it; anything else lands in IncomeAbove20M.
func YearlyIncomeRangeOf(min, max uint64) YearlyIncomeRange {
	var lower uint64
	for i, upper := range incomeBounds {
		if min >= lower && min < upper && max >= lower && max < upper {
			return YearlyIncomeRange(i)
		}
		lower = upper
	}
	return IncomeAbove20M
}
