package matching

import (
	"fmt"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/parsing"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// Match evaluates the resume against the JD's skill requirements and
// returns the evidence-weighted match result. Hard skills are matched
// first; a preferred skill that duplicates a matched hard skill is
// skipped rather than double counted.
func Match(resume *types.Resume, jd *types.JobDescription, policy config.Policy) types.MatchResult {
	jdHard := dedupeSkills(jd.Requirements.Hard.Skills)
	jdSoft := dedupeSkills(jd.Requirements.Preferred.Skills)

	all := make([]string, 0, len(jdHard)+len(jdSoft))
	all = append(all, jdHard...)
	all = append(all, jdSoft...)
	evidence := ExtractSkillEvidence(resume, all)

	var matchesHard, matchesSoft []types.SkillMatch
	var missingHard, missingSoft []types.MissingSkill
	matchedHard := make(map[string]bool)

	for _, skill := range jdHard {
		canon := parsing.NormalizeSkill(skill)
		if ev, ok := evidence[canon]; ok {
			matchedHard[canon] = true
			matchesHard = append(matchesHard, types.SkillMatch{
				JDSkill:          skill,
				ResumeSkill:      ev.Original,
				EvidenceScore:    ev.BestEvidence,
				InExperience:     ev.InExperience,
				Sections:         ev.Sections(),
				ImportanceWeight: SkillWeight(skill),
			})
		} else {
			missingHard = append(missingHard, types.MissingSkill{
				Skill:      skill,
				Importance: "required",
				Weight:     SkillWeight(skill),
			})
		}
	}

	for _, skill := range jdSoft {
		canon := parsing.NormalizeSkill(skill)
		if matchedHard[canon] {
			continue
		}
		if ev, ok := evidence[canon]; ok {
			matchesSoft = append(matchesSoft, types.SkillMatch{
				JDSkill:       skill,
				ResumeSkill:   ev.Original,
				EvidenceScore: ev.BestEvidence,
				InExperience:  ev.InExperience,
				Sections:      ev.Sections(),
			})
		} else {
			missingSoft = append(missingSoft, types.MissingSkill{
				Skill:      skill,
				Importance: "preferred",
			})
		}
	}

	return types.MatchResult{
		MatchSummary: compositeSummary(policy, matchesHard, matchesSoft, jdHard, jdSoft),
		Matches: types.MatchedSkills{
			Hard:         matchesHard,
			Soft:         matchesSoft,
			TotalMatched: len(matchesHard) + len(matchesSoft),
		},
		Missing: types.MissingSkills{
			Hard:         missingHard,
			Soft:         missingSoft,
			TotalMissing: len(missingHard) + len(missingSoft),
		},
	}
}

// dedupeSkills removes canonical duplicates while preserving the JD's
// listing order, which keeps match output order-stable across runs.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		canon := parsing.NormalizeSkill(s)
		if canon == "" || seen[canon] {
			continue
		}
		seen[canon] = true
		out = append(out, s)
	}
	return out
}

func ratio(matched, total int) string {
	return fmt.Sprintf("%d/%d", matched, total)
}
