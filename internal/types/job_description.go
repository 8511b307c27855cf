package types

// JobDescription is a parsed job description as produced by the external
// JD parser.
type JobDescription struct {
	Role         RoleInfo     `json:"role"`
	Requirements Requirements `json:"requirements"`
}

// RoleInfo holds JD role metadata.
type RoleInfo struct {
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
}

// Requirements splits JD skills into mandatory and preferred groups.
type Requirements struct {
	Hard      HardRequirements      `json:"hard"`
	Preferred PreferredRequirements `json:"preferred"`
}

// HardRequirements are the mandatory skills plus the hard-eligibility filters.
type HardRequirements struct {
	Skills  []string  `json:"skills"`
	Filters FilterSet `json:"filters"`
}

// PreferredRequirements are the nice-to-have skills.
type PreferredRequirements struct {
	Skills []string `json:"skills"`
}

// FilterSet holds the structured hard-requirement facts extracted from
// the JD. A nil filter means the JD did not state that requirement.
type FilterSet struct {
	WorkAuthorization *WorkAuthorizationFilter `json:"work_authorization,omitempty"`
	Location          *LocationFilter          `json:"location,omitempty"`
	YearsExperience   *YearsExperienceFilter   `json:"years_experience,omitempty"`
	Degree            *DegreeFilter            `json:"degree,omitempty"`
	Certifications    *CertificationFilter     `json:"certifications,omitempty"`
	Clearance         *ClearanceFilter         `json:"clearance,omitempty"`
	Languages         *LanguageFilter          `json:"languages,omitempty"`
}

// Empty reports whether the JD supplied no filters at all.
func (f FilterSet) Empty() bool {
	return f.WorkAuthorization == nil &&
		f.Location == nil &&
		f.YearsExperience == nil &&
		f.Degree == nil &&
		f.Certifications == nil &&
		f.Clearance == nil &&
		f.Languages == nil
}

// WorkAuthorizationFilter states that the JD requires work authorization.
// SponsorshipAvailable is nil when the JD is silent on sponsorship.
type WorkAuthorizationFilter struct {
	Required             bool   `json:"required"`
	SponsorshipAvailable *bool  `json:"sponsorship_available,omitempty"`
	Raw                  string `json:"raw,omitempty"`
}

// LocationFilter states the JD's required location as raw text.
type LocationFilter struct {
	Required string `json:"required"`
}

// YearsExperienceFilter states the JD's minimum years of experience.
type YearsExperienceFilter struct {
	MinYears float64 `json:"min_years"`
}

// DegreeFilter states the JD's degree requirement. Level is the minimum
// level ("bachelors", "masters", ...); AcceptedLevels enumerates every
// level that satisfies the JD (e.g. ["masters","doctorate"] for
// "PhD or MS"). OrEquivalent is set when the JD accepts equivalent
// experience in place of a degree.
type DegreeFilter struct {
	Required       bool     `json:"required"`
	Level          string   `json:"level,omitempty"`
	AcceptedLevels []string `json:"accepted_levels,omitempty"`
	OrEquivalent   bool     `json:"or_equivalent,omitempty"`
}

// CertificationFilter lists the certifications the JD requires.
type CertificationFilter struct {
	Required []string `json:"required"`
}

// ClearanceFilter states the JD's security clearance requirement.
type ClearanceFilter struct {
	Required bool   `json:"required"`
	Level    string `json:"level,omitempty"`
}

// LanguageFilter lists the spoken languages the JD requires.
type LanguageFilter struct {
	Required []string `json:"required"`
}
