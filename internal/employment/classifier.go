package employment

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

const (
	defaultFullTimeLong  = 60
	defaultFullTimeShort = 35
	fullTimeTitleBoost   = 25
	shortStintBoost      = 20
	veryShortStintBoost  = 10
	maxConfidence        = 0.99
	floorConfidence      = 0.5
)

// Classifier scores each resume role against employment-type signal
// tables and picks the highest-scoring type.
type Classifier struct {
	reviewThreshold float64
	now             time.Time
}

// NewClassifier builds a classifier pinned to a single evaluation
// instant so ongoing roles resolve consistently across one run.
func NewClassifier(policy config.Policy, now time.Time) *Classifier {
	return &Classifier{reviewThreshold: policy.ReviewThreshold, now: now}
}

// Classify determines the employment type of a single role.
//
// Signals accumulate per type from the title, the organization name,
// the role duration, and bullet keywords. A role with no non-full-time
// signals is presumed full time, weighted by how long it ran.
func (c *Classifier) Classify(role types.Role) types.Classification {
	title := strings.ToLower(role.Title)
	org := strings.ToLower(role.Company)

	scores := make(map[types.EmploymentType]int, len(types.EmploymentTypes))
	for _, t := range types.EmploymentTypes {
		scores[t] = 0
	}
	var signals []types.Signal

	for _, t := range types.EmploymentTypes {
		for _, p := range titlePatterns[t] {
			if m := p.re.FindString(title); m != "" {
				scores[t] += p.weight
				signals = append(signals, types.Signal{
					Source: "title", Pattern: p.re.String(), Matched: m, Weight: p.weight,
				})
			}
		}
		for _, p := range orgPatterns[t] {
			if m := p.re.FindString(org); m != "" {
				scores[t] += p.weight
				signals = append(signals, types.Signal{
					Source: "organization", Pattern: p.re.String(), Matched: m, Weight: p.weight,
				})
			}
		}
	}

	months := durationMonths(role.Dates.Start, role.Dates.End, c.now)
	switch {
	case months >= 2 && months <= 5:
		scores[types.Internship] += shortStintBoost
		signals = append(signals, types.Signal{
			Source: "duration", Value: fmt.Sprintf("%d months", months), Weight: shortStintBoost,
		})
	case months == 1:
		scores[types.Internship] += veryShortStintBoost
		signals = append(signals, types.Signal{
			Source: "duration", Value: "1 month", Weight: veryShortStintBoost,
		})
	}

	bullets := role.BulletText()
	for _, s := range bulletSignals {
		if m := s.re.FindString(bullets); m != "" {
			scores[s.empType] += s.weight
			signals = append(signals, types.Signal{
				Source: "bullets", Pattern: s.re.String(), Matched: m, Weight: s.weight,
			})
		}
	}

	nonFullTime := 0
	for _, t := range types.EmploymentTypes {
		if t != types.FullTime {
			nonFullTime += scores[t]
		}
	}
	if nonFullTime == 0 {
		boost := defaultFullTimeShort
		reason := "no non-full-time signals"
		if months > 5 {
			boost = defaultFullTimeLong
			reason = fmt.Sprintf("no non-full-time signals, %d months tenure", months)
		}
		scores[types.FullTime] += boost
		signals = append(signals, types.Signal{Source: "default", Value: reason, Weight: boost})
	}
	if m := fullTimeTitleRe.FindString(title); m != "" {
		scores[types.FullTime] += fullTimeTitleBoost
		signals = append(signals, types.Signal{
			Source: "title", Pattern: fullTimeTitleRe.String(), Matched: m, Weight: fullTimeTitleBoost,
		})
	}

	best, confidence := decide(scores)
	confidence = round2(confidence)
	return types.Classification{
		Type:        best,
		Confidence:  confidence,
		Signals:     signals,
		Scores:      scores,
		NeedsReview: confidence < c.reviewThreshold,
	}
}

// ClassifyAll classifies every experience role in listing order.
func (c *Classifier) ClassifyAll(roles []types.Role) []types.ClassifiedRole {
	out := make([]types.ClassifiedRole, 0, len(roles))
	for _, role := range roles {
		out = append(out, types.ClassifiedRole{Role: role, Classification: c.Classify(role)})
	}
	return out
}

// decide picks the top-scoring type and derives a confidence from how
// strong and how isolated the winner is. Ties resolve to whichever
// type comes first in types.EmploymentTypes.
func decide(scores map[types.EmploymentType]int) (types.EmploymentType, float64) {
	best := types.FullTime
	top, second := 0, 0
	for _, t := range types.EmploymentTypes {
		s := scores[t]
		if s > top {
			second = top
			top = s
			best = t
		} else if s > second {
			second = s
		}
	}
	if top == 0 {
		return types.FullTime, floorConfidence
	}
	gap := top - second
	confidence := 0.6*float64(top)/100 + 0.4*float64(gap)/100
	return best, math.Min(maxConfidence, confidence)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
