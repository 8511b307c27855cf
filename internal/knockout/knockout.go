// Package knockout evaluates a resume against a job description's
// hard-eligibility filters. Knockout rules run before scoring; a failed
// rule means the resume would be auto-rejected by an ATS regardless of
// skill match.
package knockout

import (
	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// Evaluate runs every knockout rule and aggregates their statuses.
// Rules never short-circuit: all seven checks are collected, in a
// fixed order, before the overall status is derived. Any fail makes
// the aggregate fail; otherwise any risk makes it risk.
func Evaluate(resume *types.Resume, jd *types.JobDescription, policy config.Policy) types.KnockoutResult {
	filters := jd.Requirements.Hard.Filters

	checks := []types.KnockoutCheck{
		checkWorkAuthorization(filters.WorkAuthorization),
		checkLocation(resume, filters.Location),
		checkExperience(resume, filters.YearsExperience, policy),
		checkDegree(resume, filters.Degree),
		checkCertifications(resume, filters.Certifications),
		checkClearance(resume, filters.Clearance),
		checkLanguages(resume, filters.Languages),
	}

	var failed []string
	var risks []string
	for _, c := range checks {
		switch c.Status {
		case types.StatusFail:
			failed = append(failed, c.Rule)
		case types.StatusRisk:
			risks = append(risks, c.Message)
		}
	}

	overall := types.StatusPass
	if len(failed) > 0 {
		overall = types.StatusFail
	} else if len(risks) > 0 {
		overall = types.StatusRisk
	}

	// A JD with no filters is not positive evidence of eligibility.
	if filters.Empty() {
		risks = append(risks, "No explicit hard filters found in JD")
		if overall == types.StatusPass {
			overall = types.StatusRisk
		}
	}

	return types.KnockoutResult{
		OverallStatus: overall,
		Passed:        overall != types.StatusFail,
		Checks:        checks,
		FailedRules:   failed,
		Risks:         risks,
	}
}
