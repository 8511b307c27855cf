package knockout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// usLocationHints are substrings that suggest a US-based resume location.
var usLocationHints = []string{"us", "usa", "united states", "sc", "ca", "ny", "tx"}

// clearanceKeywords mark an existing security clearance anywhere in the
// resume text.
var clearanceKeywords = []string{"clearance", "secret", "ts/sci", "top secret"}

// degreeOrder ranks recognized degree levels for comparisons.
var degreeOrder = map[string]int{
	"doctorate": 4,
	"masters":   3,
	"bachelors": 2,
	"associate": 1,
}

// checkWorkAuthorization never fails: authorization cannot be reliably
// confirmed from resume text, so a stated requirement is at most a risk.
func checkWorkAuthorization(filter *types.WorkAuthorizationFilter) types.KnockoutCheck {
	check := types.KnockoutCheck{
		Rule:        "work_authorization",
		ResumeValue: "not_specified",
		Status:      types.StatusPass,
	}
	if filter == nil || !filter.Required {
		check.Message = "No work authorization requirement in JD"
		return check
	}

	check.JDValue = filter.Raw
	if check.JDValue == "" {
		check.JDValue = "Required"
	}

	check.Status = types.StatusRisk
	if filter.SponsorshipAvailable != nil && !*filter.SponsorshipAvailable {
		check.Message = "JD states no sponsorship available - verify your authorization status"
	} else {
		check.Message = "Work authorization required but not explicitly stated in resume"
	}
	return check
}

// checkLocation is advisory only and never fails.
func checkLocation(resume *types.Resume, filter *types.LocationFilter) types.KnockoutCheck {
	check := types.KnockoutCheck{Rule: "location", Status: types.StatusPass}
	if filter == nil || filter.Required == "" {
		check.Message = "No specific location requirement in JD"
		return check
	}

	check.JDValue = filter.Required
	resumeLoc := resume.Profile.Location.String()
	if resumeLoc == "" {
		check.ResumeValue = "not_specified"
		check.Status = types.StatusRisk
		check.Message = "Location not specified in resume"
		return check
	}
	check.ResumeValue = resumeLoc

	jdLoc := strings.ToLower(filter.Required)
	if !strings.Contains(jdLoc, "us") && !strings.Contains(jdLoc, "united states") {
		check.Message = "Location check passed"
		return check
	}

	lower := strings.ToLower(resumeLoc)
	for _, hint := range usLocationHints {
		if strings.Contains(lower, hint) {
			check.Message = "Location matches US requirement"
			return check
		}
	}
	check.Status = types.StatusRisk
	check.Message = "Location may not match US requirement"
	return check
}

// checkExperience compares the JD's minimum years against the weighted
// experience total. Weighted years are the primary measure; full-time
// years alone meeting the bar rescue a fail down to a risk, since a
// reviewer might credit full-time tenure only.
func checkExperience(resume *types.Resume, filter *types.YearsExperienceFilter, policy config.Policy) types.KnockoutCheck {
	check := types.KnockoutCheck{Rule: "years_experience", Status: types.StatusPass}
	if filter == nil || filter.MinYears <= 0 {
		check.Message = "No years of experience requirement in JD"
		return check
	}

	minYears := filter.MinYears
	check.JDValue = fmt.Sprintf("%g+ years", minYears)

	totals := resume.ExperienceTotals
	if totals == nil {
		check.ResumeValue = "0 years"
		check.Status = types.StatusFail
		check.Message = "No experience data found"
		return check
	}

	check.Breakdown = &types.ExperienceBreakdown{
		FullTimeYears:   totals.FullTimeYears,
		InternshipYears: totals.InternshipYears,
		TotalYearsAll:   totals.TotalYearsAll,
		WeightedYears:   totals.WeightedYears,
	}
	check.ResumeValue = fmt.Sprintf("%g years (weighted) / %g full-time",
		totals.WeightedYears, totals.FullTimeYears)

	switch {
	case totals.WeightedYears >= minYears:
		check.Message = fmt.Sprintf("Weighted experience (%g years) meets requirement (%g+ years)",
			totals.WeightedYears, minYears)
	case totals.WeightedYears >= minYears*policy.ExperienceRiskRatio:
		check.Status = types.StatusRisk
		check.Message = fmt.Sprintf(
			"Weighted experience (%g years) is slightly below requirement (%g+ years). Full-time only: %g years",
			totals.WeightedYears, minYears, totals.FullTimeYears)
	case totals.FullTimeYears >= minYears:
		check.Status = types.StatusRisk
		check.Message = fmt.Sprintf(
			"Full-time experience (%g years) meets requirement, but weighted total (%g) is low",
			totals.FullTimeYears, totals.WeightedYears)
	default:
		check.Status = types.StatusFail
		check.Message = fmt.Sprintf(
			"Experience does not meet requirement. Weighted: %g years, Full-time: %g years, Required: %g+",
			totals.WeightedYears, totals.FullTimeYears, minYears)
	}
	return check
}

// highestDegree resolves the highest recognized degree level from the
// resume's education entries by substring match on the degree text.
func highestDegree(education []types.Education) string {
	best := ""
	for _, edu := range education {
		degree := strings.ToLower(edu.Degree)
		level := ""
		switch {
		// "ph" also matches philosophy and physics degree names.
		case strings.Contains(degree, "ph") || strings.Contains(degree, "doctor"):
			level = "doctorate"
		case strings.Contains(degree, "m.s") || strings.Contains(degree, "master") || strings.Contains(degree, "m.a"):
			level = "masters"
		case strings.Contains(degree, "b.s") || strings.Contains(degree, "b.a") || strings.Contains(degree, "bachelor"):
			level = "bachelors"
		case strings.Contains(degree, "associate"):
			level = "associate"
		}
		if degreeOrder[level] > degreeOrder[best] {
			best = level
		}
	}
	return best
}

func checkDegree(resume *types.Resume, filter *types.DegreeFilter) types.KnockoutCheck {
	check := types.KnockoutCheck{Rule: "degree", Status: types.StatusPass}
	if filter == nil || !filter.Required {
		check.Message = "No degree requirement in JD"
		return check
	}

	check.JDValue = filter.Level
	if check.JDValue == "" {
		check.JDValue = "Required"
	}

	highest := highestDegree(resume.Sections.Education)
	if highest == "" {
		check.ResumeValue = "not_found"
		if filter.OrEquivalent {
			check.Status = types.StatusRisk
			check.Message = "No degree found, but JD allows equivalent experience"
		} else {
			check.Status = types.StatusFail
			check.Message = "Degree required but not found in resume"
		}
		return check
	}
	check.ResumeValue = highest

	switch {
	case filter.OrEquivalent:
		check.Message = fmt.Sprintf("Degree (%s) found - JD accepts degree or equivalent experience", highest)
	case slices.Contains(filter.AcceptedLevels, highest):
		check.Message = fmt.Sprintf("Degree (%s) is in accepted levels (%s)",
			highest, strings.Join(filter.AcceptedLevels, ", "))
	case degreeOrder[highest] >= requiredOrder(filter.Level):
		check.Message = fmt.Sprintf("Degree (%s) meets requirement", highest)
	default:
		check.Status = types.StatusFail
		check.Message = fmt.Sprintf("Degree (%s) does not meet requirement (%s)", highest, filter.Level)
	}
	return check
}

// requiredOrder ranks the JD's minimum degree level, defaulting to
// bachelors when the level text is unrecognized.
func requiredOrder(level string) int {
	if rank, ok := degreeOrder[strings.ToLower(level)]; ok {
		return rank
	}
	return degreeOrder["bachelors"]
}

// checkCertifications is a presence check over the whole serialized
// resume: a required certification term missing anywhere in the text
// fails the rule, with no partial credit.
func checkCertifications(resume *types.Resume, filter *types.CertificationFilter) types.KnockoutCheck {
	check := types.KnockoutCheck{Rule: "certification", Status: types.StatusPass}
	if filter == nil || len(filter.Required) == 0 {
		check.Message = "No certification requirement in JD"
		return check
	}

	check.JDValue = strings.Join(filter.Required, ", ")
	text := resume.SerializedText()

	var found, missing []string
	for _, cert := range filter.Required {
		if strings.Contains(text, strings.ToLower(cert)) {
			found = append(found, cert)
		} else {
			missing = append(missing, cert)
		}
	}
	check.ResumeValue = strings.Join(found, ", ")

	if len(missing) > 0 {
		check.Status = types.StatusFail
		check.Message = "Missing certifications: " + strings.Join(missing, ", ")
	} else {
		check.Message = "All required certifications found"
	}
	return check
}

// checkClearance may hard-fail on silence: a clearance is either stated
// in the resume or assumed absent.
func checkClearance(resume *types.Resume, filter *types.ClearanceFilter) types.KnockoutCheck {
	check := types.KnockoutCheck{
		Rule:        "security_clearance",
		ResumeValue: "not_specified",
		Status:      types.StatusPass,
	}
	if filter == nil || !filter.Required {
		check.Message = "No security clearance requirement in JD"
		return check
	}

	check.JDValue = filter.Level
	if check.JDValue == "" {
		check.JDValue = "Required"
	}

	text := resume.SerializedText()
	for _, kw := range clearanceKeywords {
		if strings.Contains(text, kw) {
			check.ResumeValue = "mentioned"
			check.Message = "Security clearance mentioned in resume"
			return check
		}
	}
	check.Status = types.StatusFail
	check.Message = "Security clearance required but not found in resume"
	return check
}

// checkLanguages auto-passes an English-only requirement and otherwise
// degrades to risk, never fail, on missing languages.
func checkLanguages(resume *types.Resume, filter *types.LanguageFilter) types.KnockoutCheck {
	check := types.KnockoutCheck{Rule: "language", Status: types.StatusPass}
	if filter == nil || len(filter.Required) == 0 {
		check.Message = "No language requirement in JD"
		return check
	}

	check.JDValue = strings.Join(filter.Required, ", ")

	if len(filter.Required) == 1 && strings.EqualFold(filter.Required[0], "english") {
		check.ResumeValue = "English"
		check.Message = "English fluency assumed"
		return check
	}

	text := resume.SerializedText()
	var found, missing []string
	for _, lang := range filter.Required {
		if strings.Contains(text, strings.ToLower(lang)) {
			found = append(found, lang)
		} else {
			missing = append(missing, lang)
		}
	}
	check.ResumeValue = strings.Join(found, ", ")

	if len(missing) > 0 {
		check.Status = types.StatusRisk
		check.Message = "Languages not explicitly stated: " + strings.Join(missing, ", ")
	} else {
		check.Message = "All required languages found"
	}
	return check
}
