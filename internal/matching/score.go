package matching

import (
	"math"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/parsing"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// Importance categories for well-known skills. Anything not listed
// gets defaultImportance.
var (
	mustHaveSkills = skillSet("python", "sql", "javascript", "typescript", "java")
	coreSkills     = skillSet(
		"react", "nodejs", "postgresql", "mongodb", "aws", "docker",
		"rest", "api", "git", "linux", "kubernetes",
	)
	secondarySkills = skillSet(
		"redis", "graphql", "express", "nextjs", "vue", "angular",
		"gcp", "azure", "terraform", "jenkins", "cicd",
	)
	bonusSkills = skillSet("kafka", "elasticsearch", "nginx", "rabbitmq", "prometheus")
)

const (
	mustHaveWeight    = 1.0
	coreWeight        = 0.9
	secondaryWeight   = 0.7
	bonusWeight       = 0.5
	defaultImportance = 0.6
)

func skillSet(skills ...string) map[string]bool {
	m := make(map[string]bool, len(skills))
	for _, s := range skills {
		m[s] = true
	}
	return m
}

// SkillWeight returns the importance weight for a JD skill.
func SkillWeight(skill string) float64 {
	canon := parsing.NormalizeSkill(skill)
	switch {
	case mustHaveSkills[canon]:
		return mustHaveWeight
	case coreSkills[canon]:
		return coreWeight
	case secondarySkills[canon]:
		return secondaryWeight
	case bonusSkills[canon]:
		return bonusWeight
	default:
		return defaultImportance
	}
}

// compositeSummary combines matches and misses into the final match
// summary. Hard sub-score weights each match's evidence by skill
// importance; an empty requirement list scores 100 by convention.
func compositeSummary(
	policy config.Policy,
	matchesHard, matchesSoft []types.SkillMatch,
	jdHard, jdSoft []string,
) types.MatchSummary {
	hardScore := 100.0
	if len(jdHard) > 0 {
		var weighted, maxWeight float64
		for _, m := range matchesHard {
			weighted += m.EvidenceScore * m.ImportanceWeight
		}
		for _, s := range jdHard {
			maxWeight += SkillWeight(s)
		}
		if maxWeight > 0 {
			hardScore = weighted / maxWeight * 100
		} else {
			hardScore = 0
		}
	}

	softScore := 100.0
	if len(jdSoft) > 0 {
		var weighted float64
		for _, m := range matchesSoft {
			weighted += m.EvidenceScore
		}
		softScore = weighted / float64(len(jdSoft)) * 100
	}

	// Penalty for hard skills that live only in the flat skills list,
	// bonus for hard skills well-evidenced in experience.
	var penalty, bonus float64
	for _, m := range matchesHard {
		if !m.InExperience && containsSection(m.Sections, SectionSkills) {
			penalty += policy.SkillsOnlyPenalty
		}
		if m.InExperience && m.EvidenceScore >= policy.EvidenceBonusFloor {
			bonus += policy.ExperienceBonus
		}
	}

	raw := hardScore*policy.HardWeight + softScore*policy.SoftWeight
	final := raw - penalty + bonus
	final = math.Max(0, math.Min(100, final))

	evidenceAvg := 0.0
	if len(matchesHard) > 0 {
		var sum float64
		for _, m := range matchesHard {
			sum += m.EvidenceScore
		}
		evidenceAvg = sum / float64(len(matchesHard))
	}

	return types.MatchSummary{
		OverallScore:      round1(final),
		HardSkillMatch:    ratio(len(matchesHard), len(jdHard)),
		SoftSkillMatch:    ratio(len(matchesSoft), len(jdSoft)),
		HardScore:         round1(hardScore),
		SoftScore:         round1(softScore),
		EvidenceAvg:       round2(evidenceAvg),
		SkillsOnlyPenalty: penalty,
		ExperienceBonus:   round1(bonus),
	}
}

func containsSection(sections []string, name string) bool {
	for _, s := range sections {
		if s == name {
			return true
		}
	}
	return false
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
