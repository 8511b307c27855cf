package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// Verdict bands on the adjusted score.
const (
	VerdictStrong  = "STRONG MATCH"
	VerdictGood    = "GOOD MATCH"
	VerdictPartial = "PARTIAL MATCH"
	VerdictWeak    = "WEAK MATCH"
)

// buildOverall combines the knockout and matching results into the
// final verdict node. A failed knockout forces the effective score to
// zero while the skill-based score stays visible, so the candidate
// still sees how close the skills were.
func buildOverall(ko types.KnockoutResult, match types.MatchResult, policy config.Policy) types.Overall {
	adjusted := match.MatchSummary.OverallScore
	if ko.OverallStatus != types.StatusPass {
		adjusted = math.Max(0, adjusted-policy.RiskPenalty*float64(len(ko.Risks)))
	}
	adjusted = round1(adjusted)

	verdict := verdictLabel(adjusted, policy)
	topMissing := missingSkillNames(match.Missing.Hard, 3)

	if !ko.Passed {
		return types.Overall{
			Verdict:        fmt.Sprintf("BLOCKED (%s)", verdict),
			ATSScore:       adjusted,
			EffectiveScore: 0,
			KnockoutFailed: true,
			Message: fmt.Sprintf(
				"KNOCKOUT FILTER FAILED - ATS will likely auto-reject. Skill match is %g%% but blocked by: %s",
				adjusted, strings.Join(ko.FailedRules, ", ")),
			FailedFilters:    ko.FailedRules,
			TopMissingSkills: topMissing,
		}
	}

	return types.Overall{
		Verdict:          verdict,
		ATSScore:         adjusted,
		EffectiveScore:   adjusted,
		Message:          verdictMessage(verdict, match),
		TopMissingSkills: topMissing,
	}
}

func verdictLabel(score float64, policy config.Policy) string {
	switch {
	case score >= policy.StrongCutoff:
		return VerdictStrong
	case score >= policy.GoodCutoff:
		return VerdictGood
	case score >= policy.PartialCutoff:
		return VerdictPartial
	default:
		return VerdictWeak
	}
}

func verdictMessage(verdict string, match types.MatchResult) string {
	missing := match.Missing.Hard
	switch verdict {
	case VerdictStrong:
		return "Resume is well-aligned with job requirements. High chance of passing ATS."
	case VerdictGood:
		if len(missing) > 0 {
			return "Good match but consider adding: " + strings.Join(missingSkillNames(missing, 2), ", ")
		}
		return "Good match with job requirements."
	case VerdictPartial:
		return fmt.Sprintf("Missing %d required skills. Resume may rank lower in ATS.", len(missing))
	default:
		return "Significant skill gaps. Consider tailoring resume or different role."
	}
}

func missingSkillNames(missing []types.MissingSkill, limit int) []string {
	names := make([]string, 0, limit)
	for _, m := range missing {
		if len(names) == limit {
			break
		}
		names = append(names, m.Skill)
	}
	return names
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
