package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

func testResume() *types.Resume {
	return &types.Resume{
		Sections: types.Sections{
			Experience: []types.Role{
				{
					Title:   "Software Engineer",
					Company: "Acme",
					Dates:   types.DateRange{Start: "2020-01", End: "2024-01"},
					Bullets: []string{
						"Optimized Python data pipeline, reduced latency by 30%",
						"Maintained internal tooling for deployments",
					},
				},
			},
			Skills: types.SkillsSection{
				Categories: []types.SkillCategory{
					{Name: "Databases", Items: []string{"SQL", "PostgreSQL"}},
				},
			},
			Projects: []types.Project{
				{Name: "Sidecar", Stack: []string{"Docker"}, Bullets: []string{"Packaged the service with docker compose"}},
			},
		},
	}
}

func testJD(hard, soft []string) *types.JobDescription {
	return &types.JobDescription{
		Requirements: types.Requirements{
			Hard:      types.HardRequirements{Skills: hard},
			Preferred: types.PreferredRequirements{Skills: soft},
		},
	}
}

func TestExtractSkillEvidence(t *testing.T) {
	evidence := ExtractSkillEvidence(testResume(), []string{"python", "sql", "docker"})

	py, ok := evidence["python"]
	require.True(t, ok)
	assert.InDelta(t, 1.0, py.BestEvidence, 1e-9, "verb plus metric in experience bullet")
	assert.True(t, py.InExperience)

	sql, ok := evidence["sql"]
	require.True(t, ok)
	assert.InDelta(t, EvidenceSkillsList, sql.BestEvidence, 1e-9, "skills-list-only entry keeps fixed low score")
	assert.False(t, sql.InExperience)
	assert.Equal(t, []string{"skills"}, sql.Sections())

	docker, ok := evidence["docker"]
	require.True(t, ok)
	assert.False(t, docker.InExperience, "project mentions do not count as experience")
	assert.GreaterOrEqual(t, docker.BestEvidence, EvidenceStackMention)
}

func TestExtractSkillEvidenceSynonyms(t *testing.T) {
	resume := &types.Resume{
		Sections: types.Sections{
			Experience: []types.Role{
				{Bullets: []string{"Deployed workloads to k8s clusters"}},
			},
		},
	}

	evidence := ExtractSkillEvidence(resume, []string{"kubernetes"})
	ev, ok := evidence["kubernetes"]
	require.True(t, ok, "JD skill must match via its synonym")
	assert.True(t, ev.InExperience)
}

func TestMatchScenario(t *testing.T) {
	// JD requires python and sql; python is well-evidenced in
	// experience, sql sits only in the skills list.
	result := Match(testResume(), testJD([]string{"python", "sql"}, []string{"docker"}), config.Default())

	require.Len(t, result.Matches.Hard, 2)
	byName := map[string]types.SkillMatch{}
	for _, m := range result.Matches.Hard {
		byName[m.JDSkill] = m
	}

	assert.InDelta(t, 1.0, byName["python"].EvidenceScore, 1e-9)
	assert.True(t, byName["python"].InExperience)
	assert.InDelta(t, 0.3, byName["sql"].EvidenceScore, 1e-9)
	assert.False(t, byName["sql"].InExperience)

	// python and sql are both must-have importance (weight 1.0 each):
	// hard = (1.0*1.0 + 0.3*1.0) / 2.0 * 100 = 65.
	assert.InDelta(t, 65.0, result.MatchSummary.HardScore, 0.05)
	assert.Equal(t, "2/2", result.MatchSummary.HardSkillMatch)

	// sql only in skills list: -2; python in experience with
	// evidence >= 0.7: +1.5.
	assert.InDelta(t, 2.0, result.MatchSummary.SkillsOnlyPenalty, 1e-9)
	assert.InDelta(t, 1.5, result.MatchSummary.ExperienceBonus, 1e-9)

	assert.Empty(t, result.Missing.Hard)
	assert.Len(t, result.Matches.Soft, 1, "docker matched as soft")
	assert.Equal(t, 3, result.Matches.TotalMatched)
}

func TestMatchMissingSkills(t *testing.T) {
	result := Match(testResume(), testJD([]string{"python", "terraform"}, []string{"kafka"}), config.Default())

	require.Len(t, result.Missing.Hard, 1)
	assert.Equal(t, "terraform", result.Missing.Hard[0].Skill)
	assert.Equal(t, "required", result.Missing.Hard[0].Importance)
	assert.InDelta(t, 0.7, result.Missing.Hard[0].Weight, 1e-9)

	require.Len(t, result.Missing.Soft, 1)
	assert.Equal(t, "kafka", result.Missing.Soft[0].Skill)
	assert.Equal(t, 2, result.Missing.TotalMissing)
}

func TestMatchEmptyJDScoresFull(t *testing.T) {
	result := Match(testResume(), testJD(nil, nil), config.Default())
	assert.InDelta(t, 100.0, result.MatchSummary.HardScore, 1e-9)
	assert.InDelta(t, 100.0, result.MatchSummary.SoftScore, 1e-9)
	assert.InDelta(t, 100.0, result.MatchSummary.OverallScore, 1e-9)
}

func TestMatchSoftDuplicateOfHardSkipped(t *testing.T) {
	result := Match(testResume(), testJD([]string{"python"}, []string{"py"}), config.Default())
	assert.Len(t, result.Matches.Hard, 1)
	assert.Empty(t, result.Matches.Soft, "preferred duplicate of a matched hard skill is skipped")
	assert.Empty(t, result.Missing.Soft)
}

func TestMatchScoreBounded(t *testing.T) {
	jd := testJD(
		[]string{"python", "sql", "terraform", "kafka", "rust", "scala", "haskell"},
		[]string{"redis", "nginx"},
	)
	result := Match(testResume(), jd, config.Default())
	assert.GreaterOrEqual(t, result.MatchSummary.OverallScore, 0.0)
	assert.LessOrEqual(t, result.MatchSummary.OverallScore, 100.0)
}
