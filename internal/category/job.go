package category

// Job is the respondent's occupation. Input files carry the Japanese label.
type Job int

const (
	FullTimeHousewife Job = iota
	PartTime
	EmployeeOffice
	EmployeeOthers
	EmployeeTech
	Unemployed
	Student
	SelfEmployed
	Freelancer
	CivilServant
	Entrepreneur
	OtherJob
)

var Jobs = newEnumeration("job", Localized{"Job", "仕事"},
	Entry[Job]{FullTimeHousewife, "FullTimeHousewife", Localized{"Full-time Housewife", "専業主婦（主夫）"}, nil},
	Entry[Job]{PartTime, "PartTime", Localized{"Part-time", "パート・アルバイト"}, nil},
	Entry[Job]{EmployeeOffice, "EmployeeOffice", Localized{"Employee (Office)", "会社員（事務系）"}, nil},
	Entry[Job]{EmployeeOthers, "EmployeeOthers", Localized{"Employee (Others)", "会社員（その他）"}, nil},
	Entry[Job]{EmployeeTech, "EmployeeTech", Localized{"Employee (Tech)", "会社員（技術系）"}, nil},
	Entry[Job]{Unemployed, "Unemployed", Localized{"Unemployed", "無職"}, nil},
	Entry[Job]{Student, "Student", Localized{"Student", "学生"}, nil},
	Entry[Job]{SelfEmployed, "SelfEmployed", Localized{"Self-employed", "自営業"}, nil},
	Entry[Job]{Freelancer, "Freelancer", Localized{"Freelancer", "自由業"}, nil},
	Entry[Job]{CivilServant, "CivilServant", Localized{"Civil Servant", "公務員"}, nil},
	Entry[Job]{Entrepreneur, "Entrepreneur", Localized{"Entrepreneur", "経営者・役員"}, nil},
	Entry[Job]{OtherJob, "Others", Localized{"Others", "その他"}, nil},
)
