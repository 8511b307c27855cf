package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"js to javascript", "js", "javascript"},
		{"JS uppercase", "JS", "javascript"},
		{"k8s to kubernetes", "k8s", "kubernetes"},
		{"postgres to postgresql", "postgres", "postgresql"},
		{"node.js to nodejs", "node.js", "nodejs"},
		{"react.js to react", "react.js", "react"},
		{"c++ to cplusplus", "c++", "cplusplus"},
		{"c# to csharp", "c#", "csharp"},
		{"scrum to agile", "scrum", "agile"},
		{"amazon web services to aws", "Amazon Web Services", "aws"},
		{"unmapped passes through lowered", "Rust", "rust"},
		{"whitespace trimmed", "  Python3  ", "python"},
		{"canonical stays canonical", "javascript", "javascript"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkill(tt.input))
		})
	}
}

func TestNormalizeSkillIdempotent(t *testing.T) {
	// Every variant in the table plus some unmapped inputs must be
	// stable under double normalization.
	inputs := []string{"js", "ts", "k8s", "postgres", "node", "ci/cd", "rust", "distributed systems"}
	for canon, variants := range synonymGroups {
		inputs = append(inputs, canon)
		inputs = append(inputs, variants...)
	}

	for _, in := range inputs {
		once := NormalizeSkill(in)
		assert.Equal(t, once, NormalizeSkill(once), "normalize must be idempotent for %q", in)
	}
}

func TestSkillsEquivalent(t *testing.T) {
	assert.True(t, SkillsEquivalent("js", "JavaScript"))
	assert.True(t, SkillsEquivalent("k8s", "kubernetes"))
	assert.False(t, SkillsEquivalent("java", "javascript"), "substring overlap is not equivalence")
	assert.False(t, SkillsEquivalent("go", "golang v2"))
}

func TestVariants(t *testing.T) {
	vs := Variants("js")
	assert.Equal(t, "javascript", vs[0], "canonical form comes first")
	assert.Contains(t, vs, "es6")
	assert.Contains(t, vs, "ecmascript")

	assert.Equal(t, []string{"rust"}, Variants("Rust"), "unmapped skill has only itself")
}
