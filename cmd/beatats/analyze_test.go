package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamdevjs/BeatATS/internal/types"
)

const testResumeJSON = `{
	"profile": {"name": "Jane Doe"},
	"sections": {
		"experience": [{
			"title": "Software Engineer",
			"company": "Initech",
			"dates": {"start": "2020-01", "end": "2023-12"},
			"bullets": ["Optimized Python data pipeline, reduced latency by 30%"]
		}],
		"skills": {"categories": [{"name": "Databases", "items": ["SQL"]}]}
	}
}`

const testJDJSON = `{
	"role": {"title": "Backend Engineer"},
	"requirements": {
		"hard": {
			"skills": ["python", "sql"],
			"filters": {"years_experience": {"min_years": 3}}
		},
		"preferred": {"skills": ["docker"]}
	}
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunAnalyzeEndToEnd(t *testing.T) {
	analyzeResumeFile = writeTempFile(t, "resume.json", testResumeJSON)
	analyzeJDFile = writeTempFile(t, "jd.json", testJDJSON)
	analyzeOutputFile = filepath.Join(t.TempDir(), "report.json")
	analyzePolicyFile = ""
	analyzePretty = true
	analyzeVerbose = false

	require.NoError(t, runAnalyze(nil, nil))

	data, err := os.ReadFile(analyzeOutputFile)
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, types.SchemaVersion, report.SchemaVersion)
	assert.Equal(t, "Jane Doe", report.Resume.Name)
	assert.Equal(t, types.StatusPass, report.Knockout.OverallStatus)
	assert.False(t, report.Overall.KnockoutFailed)
}

func TestRunAnalyzeRejectsInvalidResume(t *testing.T) {
	analyzeResumeFile = writeTempFile(t, "resume.json", `{"profile": {"name": "Jane Doe"}}`)
	analyzeJDFile = writeTempFile(t, "jd.json", testJDJSON)
	analyzeOutputFile = ""
	analyzePolicyFile = ""

	err := runAnalyze(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not validate")
}

func TestLoadPolicyDefaults(t *testing.T) {
	t.Setenv("BEATATS_POLICY", "")
	policy, err := loadPolicy("")
	require.NoError(t, err)
	assert.NoError(t, policy.Validate())
}

func TestLoadResumeMissingFile(t *testing.T) {
	_, err := loadResume(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
