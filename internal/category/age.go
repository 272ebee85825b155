package category

// AgeRange1060 buckets ages into six groups, the last one open-ended from 60.
type AgeRange1060 int

const (
	Age1060Under20 AgeRange1060 = iota
	Age1060In20s
	Age1060In30s
	Age1060In40s
	Age1060In50s
	Age1060Over60
)

var AgeRanges1060 = newEnumeration("age1060", Localized{"Age Range 1060", "年代1060"},
	Entry[AgeRange1060]{Age1060Under20, "Under10s", Localized{"10s or under", "10代以下"}, nil},
	Entry[AgeRange1060]{Age1060In20s, "Group20s", Localized{"20s", "20代"}, nil},
	Entry[AgeRange1060]{Age1060In30s, "Group30s", Localized{"30s", "30代"}, nil},
	Entry[AgeRange1060]{Age1060In40s, "Group40s", Localized{"40s", "40代"}, nil},
	Entry[AgeRange1060]{Age1060In50s, "Group50s", Localized{"50s", "50代"}, nil},
	Entry[AgeRange1060]{Age1060Over60, "Above60s", Localized{"60s or above", "60代以上"}, nil},
)

// AgeRange1060Of buckets an age.
func AgeRange1060Of(age int) AgeRange1060 {
	switch {
	case age < 20:
		return Age1060Under20
	case age < 30:
		return Age1060In20s
	case age < 40:
		return Age1060In30s
	case age < 50:
		return Age1060In40s
	case age < 60:
		return Age1060In50s
	default:
		return Age1060Over60
	}
}

// AgeRange1070 buckets ages into seven groups, the last one open-ended from 70.
type AgeRange1070 int

const (
	Age1070Under20 AgeRange1070 = iota
	Age1070In20s
	Age1070In30s
	Age1070In40s
	Age1070In50s
	Age1070In60s
	Age1070Over70
)

var AgeRanges1070 = newEnumeration("age1070", Localized{"Age Range 1070", "年代1070"},
	Entry[AgeRange1070]{Age1070Under20, "Under10s", Localized{"10s or under", "10代以下"}, nil},
	Entry[AgeRange1070]{Age1070In20s, "Group20s", Localized{"20s", "20代"}, nil},
	Entry[AgeRange1070]{Age1070In30s, "Group30s", Localized{"30s", "30代"}, nil},
	Entry[AgeRange1070]{Age1070In40s, "Group40s", Localized{"40s", "40代"}, nil},
	Entry[AgeRange1070]{Age1070In50s, "Group50s", Localized{"50s", "50代"}, nil},
	Entry[AgeRange1070]{Age1070In60s, "Group60s", Localized{"60s", "60代"}, nil},
	Entry[AgeRange1070]{Age1070Over70, "Above70s", Localized{"70s or above", "70代以上"}, nil},
)

// AgeRange1070Of buckets an age.
func AgeRange1070Of(age int) AgeRange1070 {
	if age >= 70 {
		return Age1070Over70
	}
	if age >= 60 {
		return Age1070In60s
	}
	// Below 60 the two bucketings agree.
	return AgeRange1070(AgeRange1060Of(age))
}
