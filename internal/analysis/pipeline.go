// Package analysis orchestrates the full scoring pipeline for one
// (resume, JD) pair: employment classification and experience
// aggregation feed the knockout evaluation, which runs alongside skill
// matching, and both results combine into the overall verdict.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/employment"
	"github.com/shubhamdevjs/BeatATS/internal/knockout"
	"github.com/shubhamdevjs/BeatATS/internal/matching"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// Analyze runs the complete analysis and assembles the report.
//
// The eligibility branch (classification, totals, knockout) and the
// matching branch are independent, so they run concurrently. Matching
// always runs even when knockout fails; the report shows the skill
// score alongside the block.
func Analyze(ctx context.Context, resume *types.Resume, jd *types.JobDescription, policy config.Policy) (*types.Report, error) {
	now := time.Now().UTC()

	var knockoutResult types.KnockoutResult
	var matchResult types.MatchResult

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		classifier := employment.NewClassifier(policy, now)
		classified := classifier.ClassifyAll(resume.Sections.Experience)
		totals := employment.Totals(classified, policy, now)

		// Knockout sees a copy so the caller's resume stays untouched.
		enriched := *resume
		enriched.ExperienceTotals = &totals
		knockoutResult = knockout.Evaluate(&enriched, jd, policy)
		return nil
	})
	g.Go(func() error {
		matchResult = matching.Match(resume, jd, policy)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.Report{
		SchemaVersion: types.SchemaVersion,
		ReportID:      uuid.NewString(),
		AnalyzedAt:    now,
		Resume:        types.ResumeInfo{Name: resume.Profile.Name},
		JD: types.JDInfo{
			Title:           jd.Role.Title,
			HardSkillsCount: len(jd.Requirements.Hard.Skills),
			SoftSkillsCount: len(jd.Requirements.Preferred.Skills),
		},
		Knockout: knockoutResult,
		Matching: matchResult,
		Overall:  buildOverall(knockoutResult, matchResult, policy),
	}, nil
}
