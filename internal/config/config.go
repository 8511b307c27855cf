// Package config provides the tunable scoring policy for the engine.
//
// The cutoffs collected here (risk thresholds, verdict bands, employment
// weights) are heuristic policy choices rather than derived constants, so
// they are loaded from an optional JSON file instead of being hard-coded
// at their use sites.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// Policy holds every tunable constant of the scoring pipeline.
type Policy struct {
	// ExperienceRiskRatio is the fraction of the JD's minimum years at
	// which the experience check degrades to risk instead of fail.
	ExperienceRiskRatio float64 `json:"experience_risk_ratio" validate:"gt=0,lte=1"`

	// ReviewThreshold is the classification confidence below which a
	// role is flagged for human review.
	ReviewThreshold float64 `json:"review_threshold" validate:"gt=0,lte=1"`

	// HardWeight and SoftWeight blend the hard and soft sub-scores.
	HardWeight float64 `json:"hard_weight" validate:"gte=0,lte=1"`
	SoftWeight float64 `json:"soft_weight" validate:"gte=0,lte=1"`

	// SkillsOnlyPenalty is deducted per hard skill seen only in the
	// flat skills list; ExperienceBonus is added per hard skill that is
	// well-evidenced in experience.
	SkillsOnlyPenalty float64 `json:"skills_only_penalty" validate:"gte=0"`
	ExperienceBonus   float64 `json:"experience_bonus" validate:"gte=0"`

	// EvidenceBonusFloor is the minimum evidence score an in-experience
	// match needs to earn the experience bonus.
	EvidenceBonusFloor float64 `json:"evidence_bonus_floor" validate:"gte=0,lte=1"`

	// RiskPenalty is deducted from the adjusted score per knockout risk
	// item when the knockout aggregate is not a clean pass.
	RiskPenalty float64 `json:"risk_penalty" validate:"gte=0"`

	// Verdict band cutoffs on the adjusted score.
	StrongCutoff  float64 `json:"strong_cutoff" validate:"gte=0,lte=100"`
	GoodCutoff    float64 `json:"good_cutoff" validate:"gte=0,lte=100"`
	PartialCutoff float64 `json:"partial_cutoff" validate:"gte=0,lte=100"`

	// TypeWeights scales each employment type's months when computing
	// the weighted experience total.
	TypeWeights map[types.EmploymentType]float64 `json:"type_weights" validate:"required,dive,gte=0,lte=1"`
}

// Default returns the policy the original scoring rules were tuned with.
func Default() Policy {
	return Policy{
		ExperienceRiskRatio: 0.8,
		ReviewThreshold:     0.75,
		HardWeight:          0.75,
		SoftWeight:          0.25,
		SkillsOnlyPenalty:   2,
		ExperienceBonus:     1.5,
		EvidenceBonusFloor:  0.7,
		RiskPenalty:         2,
		StrongCutoff:        80,
		GoodCutoff:          60,
		PartialCutoff:       40,
		TypeWeights: map[types.EmploymentType]float64{
			types.FullTime:   1.0,
			types.Contract:   1.0,
			types.PartTime:   0.5,
			types.Internship: 0.35,
			types.Research:   0.35,
			types.Volunteer:  0.1,
			types.Unknown:    0.25,
		},
	}
}

// Load reads a policy JSON file over the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Policy, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse policy JSON: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks that the policy values are usable.
func (p Policy) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}
	if p.HardWeight+p.SoftWeight != 1.0 {
		return fmt.Errorf("policy error: hard_weight and soft_weight must sum to 1.0")
	}
	if !(p.StrongCutoff >= p.GoodCutoff && p.GoodCutoff >= p.PartialCutoff) {
		return fmt.Errorf("policy error: verdict cutoffs must be non-increasing")
	}
	for _, t := range types.EmploymentTypes {
		if _, ok := p.TypeWeights[t]; !ok {
			return fmt.Errorf("policy error: missing type weight for %q", t)
		}
	}
	if _, ok := p.TypeWeights[types.Unknown]; !ok {
		return fmt.Errorf("policy error: missing type weight for %q", types.Unknown)
	}
	return nil
}
