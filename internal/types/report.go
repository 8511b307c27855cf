package types

import "time"

// SchemaVersion identifies the report format.
const SchemaVersion = "1.0"

// CheckStatus is the outcome of a single knockout rule.
type CheckStatus string

// Knockout check outcomes. Risk marks a rule that a human reviewer
// should verify but that must not auto-reject the resume.
const (
	StatusPass CheckStatus = "pass"
	StatusRisk CheckStatus = "risk"
	StatusFail CheckStatus = "fail"
)

// Mention is one occurrence of a canonical skill in resume text.
type Mention struct {
	Skill    string  `json:"skill"`
	Section  string  `json:"section"`
	Evidence float64 `json:"evidence"`
	Context  string  `json:"context"`
}

// SkillEvidence aggregates every mention of one canonical skill.
// BestEvidence is the maximum evidence score across mentions;
// InExperience is true iff at least one mention came from the
// experience section. The full mention list is retained for the
// downstream recommendation generator.
type SkillEvidence struct {
	Original     string    `json:"original"`
	Mentions     []Mention `json:"mentions"`
	BestEvidence float64   `json:"best_evidence"`
	InExperience bool      `json:"in_experience"`
}

// Sections lists the section names the skill was seen in, in mention order.
func (e SkillEvidence) Sections() []string {
	sections := make([]string, len(e.Mentions))
	for i, m := range e.Mentions {
		sections[i] = m.Section
	}
	return sections
}

// SkillMatch is a JD skill found in the resume.
type SkillMatch struct {
	JDSkill          string   `json:"jd_skill"`
	ResumeSkill      string   `json:"resume_skill"`
	EvidenceScore    float64  `json:"evidence_score"`
	InExperience     bool     `json:"in_experience"`
	Sections         []string `json:"sections"`
	ImportanceWeight float64  `json:"importance_weight,omitempty"`
}

// MissingSkill is a JD skill absent from the resume.
type MissingSkill struct {
	Skill      string  `json:"skill"`
	Importance string  `json:"importance"`
	Weight     float64 `json:"weight,omitempty"`
}

// MatchSummary carries the composite score and its components.
type MatchSummary struct {
	OverallScore      float64 `json:"overall_score"`
	HardSkillMatch    string  `json:"hard_skill_match"`
	SoftSkillMatch    string  `json:"soft_skill_match"`
	HardScore         float64 `json:"hard_score"`
	SoftScore         float64 `json:"soft_score"`
	EvidenceAvg       float64 `json:"evidence_avg"`
	SkillsOnlyPenalty float64 `json:"skills_only_penalty"`
	ExperienceBonus   float64 `json:"experience_bonus"`
}

// MatchedSkills groups hard and soft matches.
type MatchedSkills struct {
	Hard         []SkillMatch `json:"hard"`
	Soft         []SkillMatch `json:"soft"`
	TotalMatched int          `json:"total_matched"`
}

// MissingSkills groups hard and soft misses.
type MissingSkills struct {
	Hard         []MissingSkill `json:"hard"`
	Soft         []MissingSkill `json:"soft"`
	TotalMissing int            `json:"total_missing"`
}

// MatchResult is the full output of the matching engine.
type MatchResult struct {
	MatchSummary MatchSummary  `json:"match_summary"`
	Matches      MatchedSkills `json:"matches"`
	Missing      MissingSkills `json:"missing"`
}

// ExperienceBreakdown accompanies the years-of-experience check so a
// reviewer can see how the totals were derived.
type ExperienceBreakdown struct {
	FullTimeYears   float64 `json:"full_time_years"`
	InternshipYears float64 `json:"internship_years"`
	TotalYearsAll   float64 `json:"total_years_all"`
	WeightedYears   float64 `json:"weighted_years_ats"`
}

// KnockoutCheck is one rule's outcome. Exactly one per rule per
// evaluation, in a stable rule order across runs.
type KnockoutCheck struct {
	Rule        string               `json:"rule"`
	JDValue     string               `json:"jd_value,omitempty"`
	ResumeValue string               `json:"resume_value,omitempty"`
	Status      CheckStatus          `json:"status"`
	Message     string               `json:"message"`
	Breakdown   *ExperienceBreakdown `json:"breakdown,omitempty"`
}

// KnockoutResult aggregates all knockout checks.
type KnockoutResult struct {
	OverallStatus CheckStatus     `json:"overall_status"`
	Passed        bool            `json:"passed"`
	Checks        []KnockoutCheck `json:"checks"`
	FailedRules   []string        `json:"failed_rules"`
	Risks         []string        `json:"risks"`
}

// Overall is the final verdict node combining knockout and matching.
// When the knockout aggregate is fail, EffectiveScore is forced to 0
// and the verdict is prefixed BLOCKED while ATSScore still reports
// the skill-based score.
type Overall struct {
	Verdict          string   `json:"verdict"`
	ATSScore         float64  `json:"ats_score"`
	EffectiveScore   float64  `json:"effective_score"`
	KnockoutFailed   bool     `json:"knockout_failed"`
	Message          string   `json:"message"`
	FailedFilters    []string `json:"failed_filters,omitempty"`
	TopMissingSkills []string `json:"top_missing_skills"`
}

// ResumeInfo echoes resume identity into the report.
type ResumeInfo struct {
	Name string `json:"name,omitempty"`
}

// JDInfo echoes JD identity and skill counts into the report.
type JDInfo struct {
	Title           string `json:"title,omitempty"`
	HardSkillsCount int    `json:"hard_skills_count"`
	SoftSkillsCount int    `json:"soft_skills_count"`
}

// Report is the complete analysis output for one (resume, JD) pair.
type Report struct {
	SchemaVersion string         `json:"schema_version"`
	ReportID      string         `json:"report_id"`
	AnalyzedAt    time.Time      `json:"analyzed_at"`
	Resume        ResumeInfo     `json:"resume"`
	JD            JDInfo         `json:"jd"`
	Knockout      KnockoutResult `json:"knockout"`
	Matching      MatchResult    `json:"matching"`
	Overall       Overall        `json:"overall"`
}
