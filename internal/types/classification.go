package types

// EmploymentType labels how a role was held.
type EmploymentType string

// Employment types, ordered from strongest to weakest ATS credit.
// The order is also the classifier's deterministic tie-break order.
const (
	FullTime   EmploymentType = "full_time"
	Internship EmploymentType = "internship"
	Contract   EmploymentType = "contract"
	PartTime   EmploymentType = "part_time"
	Research   EmploymentType = "research"
	Volunteer  EmploymentType = "volunteer"
	Unknown    EmploymentType = "unknown"
)

// EmploymentTypes is the fixed iteration order over classifiable types.
// Unknown is excluded: it is a fallback label, never scored.
var EmploymentTypes = []EmploymentType{
	FullTime, Internship, Contract, PartTime, Research, Volunteer,
}

// Signal records one piece of evidence that contributed to a role's
// employment classification.
type Signal struct {
	Source  string `json:"signal"`
	Pattern string `json:"pattern,omitempty"`
	Matched string `json:"matched,omitempty"`
	Value   string `json:"value,omitempty"`
	Weight  int    `json:"weight"`
}

// Classification is the employment-type decision for one role.
// Created once per role per evaluation and never mutated. Scores
// exposes the raw per-type score map for debuggability.
type Classification struct {
	Type        EmploymentType         `json:"type"`
	Confidence  float64                `json:"confidence"`
	Signals     []Signal               `json:"signals"`
	Scores      map[EmploymentType]int `json:"scores"`
	NeedsReview bool                   `json:"needs_review"`
}

// ClassifiedRole pairs a role with its classification.
type ClassifiedRole struct {
	Role           Role           `json:"role"`
	Classification Classification `json:"employment_classification"`
}

// ExperienceTotals aggregates classified roles into deduplicated,
// type-weighted experience totals. Recomputed each run from the
// roles and their classifications.
type ExperienceTotals struct {
	MonthsByType    map[EmploymentType]int `json:"months_by_type"`
	TotalMonthsAll  int                    `json:"total_months_all"`
	WeightedMonths  float64                `json:"weighted_months"`
	WeightedYears   float64                `json:"weighted_years"`
	FullTimeYears   float64                `json:"full_time_years"`
	InternshipYears float64                `json:"internship_years"`
	TotalYearsAll   float64                `json:"total_years_all"`
}
