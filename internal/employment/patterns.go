// Package employment classifies resume roles by employment type and
// aggregates their date spans into weighted experience totals.
package employment

import (
	"regexp"

	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// weightedPattern is one signal regex with its score contribution.
type weightedPattern struct {
	re     *regexp.Regexp
	weight int
}

// titlePatterns are the strongest classification signals. Keyed lookups
// always iterate in types.EmploymentTypes order so signal output and
// tie-breaking stay deterministic.
var titlePatterns = map[types.EmploymentType][]weightedPattern{
	types.Internship: {
		{regexp.MustCompile(`\bintern\b`), 90},
		{regexp.MustCompile(`\binternship\b`), 90},
		{regexp.MustCompile(`\bco-?op\b`), 85},
		{regexp.MustCompile(`\btrainee\b`), 80},
		{regexp.MustCompile(`\bapprentice\b`), 80},
		{regexp.MustCompile(`\bstudent\s+(?:developer|engineer|analyst)\b`), 75},
		{regexp.MustCompile(`\bsummer\s+(?:intern|associate)\b`), 90},
	},
	types.Contract: {
		{regexp.MustCompile(`\bcontract(?:or)?\b`), 90},
		{regexp.MustCompile(`\bconsultant\b`), 85},
		{regexp.MustCompile(`\bfreelance\b`), 90},
		{regexp.MustCompile(`\b1099\b`), 95},
		{regexp.MustCompile(`\bindependent\b`), 70},
		{regexp.MustCompile(`\bcontingent\b`), 80},
	},
	types.PartTime: {
		{regexp.MustCompile(`\bpart[\s-]?time\b`), 90},
		{regexp.MustCompile(`\bpt\b`), 60},
	},
	types.Research: {
		{regexp.MustCompile(`\bresearch\s+assistant\b`), 90},
		{regexp.MustCompile(`\bra\b`), 50}, // ambiguous, kept low
		{regexp.MustCompile(`\blab\s+assistant\b`), 85},
		{regexp.MustCompile(`\bfellow\b`), 80},
		{regexp.MustCompile(`\bphd\s+(?:student|candidate|researcher)\b`), 90},
		{regexp.MustCompile(`\bgraduate\s+assistant\b`), 85},
		{regexp.MustCompile(`\bpostdoc\b`), 85},
	},
	types.Volunteer: {
		{regexp.MustCompile(`\bvolunteer\b`), 90},
		{regexp.MustCompile(`\bunpaid\b`), 85},
		{regexp.MustCompile(`\bpro\s+bono\b`), 90},
	},
}

// orgPatterns are weak signals from the organization name.
var orgPatterns = map[types.EmploymentType][]weightedPattern{
	types.Research: {
		{regexp.MustCompile(`\buniversity\b`), 30},
		{regexp.MustCompile(`\bcollege\b`), 25},
		{regexp.MustCompile(`\blab(?:oratory)?\b`), 35},
		{regexp.MustCompile(`\bresearch\s+(?:center|institute)\b`), 40},
		{regexp.MustCompile(`\binstitute\b`), 25},
	},
}

// bulletSignal is a keyword signal drawn from bullet content.
type bulletSignal struct {
	re      *regexp.Regexp
	empType types.EmploymentType
	weight  int
}

var bulletSignals = []bulletSignal{
	{regexp.MustCompile(`summer\s+internship`), types.Internship, 30},
	{regexp.MustCompile(`internship\s+program`), types.Internship, 25},
	{regexp.MustCompile(`part[\s-]?time`), types.PartTime, 40},
	{regexp.MustCompile(`contract\s+(?:position|role)`), types.Contract, 30},
	{regexp.MustCompile(`research\s+project`), types.Research, 25},
}

// fullTimeTitleRe matches standard professional titles. A hit adds a
// fixed boost to full_time exactly once per role.
var fullTimeTitleRe = regexp.MustCompile(
	`\b(?:engineer|developer|manager|analyst|designer|architect|lead|senior|junior|staff|principal|sde|swe)\b`,
)
