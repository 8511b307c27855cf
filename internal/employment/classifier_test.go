package employment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

func newTestClassifier() *Classifier {
	return NewClassifier(config.Default(), testNow)
}

func TestClassifyIntern(t *testing.T) {
	role := types.Role{
		Title:   "Software Engineering Intern",
		Company: "Acme University Labs",
		Dates:   types.DateRange{Start: "2024-06", End: "2024-08"},
		Bullets: []string{"Built an internal dashboard during the summer internship"},
	}

	c := newTestClassifier().Classify(role)
	assert.Equal(t, types.Internship, c.Type)
	assert.GreaterOrEqual(t, c.Confidence, 0.75)
	assert.False(t, c.NeedsReview)
	assert.Greater(t, c.Scores[types.Internship], c.Scores[types.Research],
		"university org signal must not outweigh the intern title")
}

func TestClassifyFullTimeDefault(t *testing.T) {
	role := types.Role{
		Title:   "Senior Software Engineer",
		Company: "Initech",
		Dates:   types.DateRange{Start: "2020-01", End: ""},
		Bullets: []string{"Led the payments team"},
	}

	c := newTestClassifier().Classify(role)
	assert.Equal(t, types.FullTime, c.Type)
	assert.GreaterOrEqual(t, c.Confidence, 0.75)
	assert.False(t, c.NeedsReview)

	sources := make(map[string]bool)
	for _, s := range c.Signals {
		sources[s.Source] = true
	}
	assert.True(t, sources["default"], "long tenure with no other signals defaults to full time")
	assert.True(t, sources["title"], "professional title keyword recorded")
}

func TestClassifyContract(t *testing.T) {
	role := types.Role{
		Title:   "Freelance Consultant",
		Company: "Self-employed",
		Dates:   types.DateRange{Start: "2023-01", End: "2023-10"},
	}

	c := newTestClassifier().Classify(role)
	assert.Equal(t, types.Contract, c.Type)
	assert.InDelta(t, 0.99, c.Confidence, 1e-9, "confidence is capped")
}

func TestClassifyPartTimeBullet(t *testing.T) {
	role := types.Role{
		Title:   "Barista",
		Company: "Cafe Nine",
		Dates:   types.DateRange{Start: "2022-01", End: "2022-12"},
		Bullets: []string{"Worked part-time while completing coursework"},
	}

	c := newTestClassifier().Classify(role)
	assert.Equal(t, types.PartTime, c.Type)
}

func TestClassifyWeakSignalConfidence(t *testing.T) {
	// A lone org hint is the only signal. The confidence formula is
	// reported as computed, not floored.
	role := types.Role{Title: "Tutor", Company: "State University"}

	c := newTestClassifier().Classify(role)
	assert.Equal(t, types.Research, c.Type)
	assert.InDelta(t, 0.30, c.Confidence, 1e-9)
	assert.True(t, c.NeedsReview)
}

func TestClassifyNoSignalsNeedsReview(t *testing.T) {
	role := types.Role{Title: "Engineer", Company: "Acme"}

	c := newTestClassifier().Classify(role)
	assert.Equal(t, types.FullTime, c.Type)
	assert.True(t, c.NeedsReview, "weak default classification is flagged for review")
	assert.GreaterOrEqual(t, c.Confidence, 0.5)
}

func TestClassifyShortStintBoostsInternship(t *testing.T) {
	// Same title, different durations. Only the short stint picks up
	// the internship duration signal.
	short := newTestClassifier().Classify(types.Role{
		Title: "Intern", Company: "Acme",
		Dates: types.DateRange{Start: "2024-06", End: "2024-08"},
	})
	long := newTestClassifier().Classify(types.Role{
		Title: "Intern", Company: "Acme",
		Dates: types.DateRange{Start: "2023-01", End: "2024-08"},
	})

	require.Equal(t, types.Internship, short.Type)
	require.Equal(t, types.Internship, long.Type)
	assert.Greater(t, short.Scores[types.Internship], long.Scores[types.Internship])
}

func TestClassifyStintBoostBands(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		boost int
	}{
		{"five month stint", "2024-01", "2024-06", shortStintBoost},
		{"one month stint", "2024-01", "2024-02", veryShortStintBoost},
		{"six month stint", "2024-01", "2024-07", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier().Classify(types.Role{
				Title: "Intern", Company: "Acme",
				Dates: types.DateRange{Start: tt.start, End: tt.end},
			})

			boost := 0
			for _, s := range c.Signals {
				if s.Source == "duration" {
					boost = s.Weight
				}
			}
			assert.Equal(t, tt.boost, boost)
		})
	}
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	roles := []types.Role{
		{Title: "Software Engineer", Company: "Acme", Dates: types.DateRange{Start: "2020-01", End: "2023-12"}},
		{Title: "Research Assistant", Company: "State University", Dates: types.DateRange{Start: "2019-01", End: "2019-12"}},
	}

	classified := newTestClassifier().ClassifyAll(roles)
	require.Len(t, classified, 2)
	assert.Equal(t, types.FullTime, classified[0].Classification.Type)
	assert.Equal(t, types.Research, classified[1].Classification.Type)
}
