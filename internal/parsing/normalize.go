// Package parsing provides skill-name canonicalization shared by the
// matching engine and the report layer.
package parsing

import "strings"

// synonymGroups maps each canonical skill to its known variants.
var synonymGroups = map[string][]string{
	"javascript":    {"js", "ecmascript", "es6"},
	"typescript":    {"ts"},
	"python":        {"py", "python3"},
	"golang":        {"go"},
	"csharp":        {"c#", "c sharp"},
	"cplusplus":     {"c++", "cpp"},
	"react":         {"reactjs", "react.js"},
	"vue":           {"vuejs", "vue.js"},
	"angular":       {"angularjs"},
	"nextjs":        {"next.js", "next"},
	"nodejs":        {"node.js", "node"},
	"express":       {"expressjs", "express.js"},
	"postgresql":    {"postgres", "psql"},
	"mongodb":       {"mongo"},
	"elasticsearch": {"elastic"},
	"dynamodb":      {"dynamo"},
	"aws":           {"amazon web services"},
	"gcp":           {"google cloud", "google cloud platform"},
	"azure":         {"microsoft azure"},
	"kubernetes":    {"k8s"},
	"docker":        {"containers", "containerization"},
	"cicd":          {"ci/cd", "continuous integration", "continuous deployment"},
	"rest":          {"restful", "rest api"},
	"graphql":       {"gql"},
	"microservices": {"micro services"},
	"agile":         {"scrum", "kanban"},
}

// canonical is the reverse lookup: every variant (and every canonical
// name itself) maps to its canonical form. Built once at process start.
var canonical = buildCanonical()

func buildCanonical() map[string]string {
	m := make(map[string]string, len(synonymGroups)*3)
	for canon, variants := range synonymGroups {
		m[canon] = canon
		for _, v := range variants {
			m[v] = canon
		}
	}
	return m
}

// NormalizeSkill canonicalizes a skill name: lower-case, trim, then
// resolve through the synonym table. Unmapped inputs pass through in
// lower case. Idempotent: NormalizeSkill(NormalizeSkill(x)) equals
// NormalizeSkill(x) for every input.
func NormalizeSkill(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if canon, ok := canonical[lower]; ok {
		return canon
	}
	return lower
}

// SkillsEquivalent reports whether two skill names resolve to the same
// canonical form. Equivalence is canonical equality only, never a
// substring or prefix comparison.
func SkillsEquivalent(a, b string) bool {
	return NormalizeSkill(a) == NormalizeSkill(b)
}

// Variants returns the skill's canonical form plus every known variant
// of it, for use as a search list. The canonical form is always first.
func Variants(skill string) []string {
	canon := NormalizeSkill(skill)
	out := []string{canon}
	out = append(out, synonymGroups[canon]...)
	return out
}
