package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamdevjs/BeatATS/internal/types"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"experience_risk_ratio": 0.9, "strong_cutoff": 85}`), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.9, p.ExperienceRiskRatio)
	assert.Equal(t, 85.0, p.StrongCutoff)
	// Untouched fields keep defaults.
	assert.Equal(t, 0.75, p.ReviewThreshold)
	assert.Equal(t, 1.0, p.TypeWeights[types.FullTime])
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"ratio above one", `{"experience_risk_ratio": 1.5}`},
		{"weights not summing to one", `{"hard_weight": 0.9, "soft_weight": 0.9}`},
		{"cutoffs out of order", `{"strong_cutoff": 40, "good_cutoff": 60}`},
		{"negative type weight", `{"type_weights": {"full_time": -1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "policy.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
