// Package types provides type definitions for the structured resume and job
// description documents exchanged with the external parsing layer, and for
// the analysis reports produced by the engine.
package types

import (
	"encoding/json"
	"strings"
)

// Resume is a parsed resume document as produced by the external
// resume parser. Sections the parser could not find are left empty;
// the engine treats every field as optional.
type Resume struct {
	Profile          Profile           `json:"profile"`
	Sections         Sections          `json:"sections"`
	ExperienceTotals *ExperienceTotals `json:"experience_totals,omitempty"`
}

// Profile holds candidate identity fields.
type Profile struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Location Location `json:"location,omitempty"`
}

// Location is the candidate's stated location, as raw text plus any
// components the parser managed to split out.
type Location struct {
	Raw     string `json:"raw,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// String returns the best available textual form of the location.
func (l Location) String() string {
	if l.Raw != "" {
		return l.Raw
	}
	if l.State != "" {
		return l.State
	}
	return l.Country
}

// Sections groups the named resume blocks the engine consumes.
type Sections struct {
	Experience []Role        `json:"experience"`
	Skills     SkillsSection `json:"skills"`
	Projects   []Project     `json:"projects"`
	Education  []Education   `json:"education"`
}

// Role is a single job entry from the experience section. Immutable
// within one evaluation run; classification results are attached
// alongside, never written back into the role.
type Role struct {
	Title   string    `json:"title"`
	Company string    `json:"company"`
	Dates   DateRange `json:"dates"`
	Bullets []string  `json:"bullets"`
}

// BulletText joins all bullets into one lowercased string for
// keyword scanning.
func (r Role) BulletText() string {
	return strings.ToLower(strings.Join(r.Bullets, " "))
}

// DateRange is a role's date span. Start and End are "YYYY-MM" strings;
// an empty End means the role is ongoing.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

// SkillsSection is the flat skills list, grouped into named categories.
type SkillsSection struct {
	Categories []SkillCategory `json:"categories"`
}

// SkillCategory is one named group of skill items.
type SkillCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Project is a portfolio/project entry with its tech stack and bullets.
type Project struct {
	Name    string   `json:"name"`
	Stack   []string `json:"stack"`
	Bullets []string `json:"bullets"`
}

// Education is a single education entry. Degree is free text
// ("M.S. Computer Science"); level resolution happens in the
// knockout evaluator.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Dates  string `json:"dates,omitempty"`
}

// SerializedText returns the whole resume as one lowercased string.
// Used for presence checks (certifications, clearance, languages)
// that scan everything the candidate wrote, wherever it appears.
func (r *Resume) SerializedText() string {
	data, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return strings.ToLower(string(data))
}
