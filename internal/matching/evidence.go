package matching

import (
	"regexp"
	"strings"
)

// Evidence score levels. A bare mention scores evidenceBase; an action
// verb or a quantified metric in the context each add evidenceSignal,
// capped at 1.0, so the only reachable levels are 0.4, 0.7 and 1.0.
const (
	evidenceBase   = 0.4
	evidenceSignal = 0.3

	// EvidenceStackMention is the fixed score for a skill listed in a
	// project's tech stack.
	EvidenceStackMention = 0.6

	// EvidenceSkillsList is the fixed score for a skill seen only in
	// the flat skills list. An unsubstantiated list entry is weak
	// proof of use, whatever its surroundings say.
	EvidenceSkillsList = 0.3
)

// actionVerbs indicate the candidate actually used the skill.
var actionVerbs = []string{
	"built", "developed", "designed", "implemented", "created", "deployed",
	"architected", "led", "managed", "optimized", "improved", "reduced",
	"increased", "automated", "integrated", "migrated", "refactored",
	"scaled", "shipped", "launched", "maintained", "debugged", "tested",
	"wrote", "configured", "established", "trained", "mentored",
}

// metricPatterns match quantified impact: percentages, multipliers,
// currency, and counts with units.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\d+x`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+k\+?`),
	regexp.MustCompile(`\d+m\+?`),
	regexp.MustCompile(`\d+\s*(?:users?|customers?|clients?|requests?)`),
	regexp.MustCompile(`(?:reduced|improved|increased)\s+(?:by\s+)?\d+`),
}

// ScoreEvidence scores how strongly a mention's context suggests real
// usage of the skill rather than keyword listing.
func ScoreEvidence(context string) float64 {
	contextLower := strings.ToLower(context)
	score := evidenceBase

	for _, verb := range actionVerbs {
		if strings.Contains(contextLower, verb) {
			score += evidenceSignal
			break
		}
	}

	for _, re := range metricPatterns {
		if re.MatchString(contextLower) {
			score += evidenceSignal
			break
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
