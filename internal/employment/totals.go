package employment

import (
	"math"
	"time"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// Totals aggregates classified roles into experience totals.
//
// Months are collected per type as a calendar-month set, so two
// overlapping roles of the same type count each shared month once.
// Unparseable date ranges contribute nothing.
func Totals(roles []types.ClassifiedRole, policy config.Policy, now time.Time) types.ExperienceTotals {
	monthSets := make(map[types.EmploymentType]map[string]bool)
	for _, cr := range roles {
		t := cr.Classification.Type
		if _, ok := policy.TypeWeights[t]; !ok {
			t = types.Unknown
		}
		for _, m := range spanMonths(cr.Role.Dates.Start, cr.Role.Dates.End, now) {
			if monthSets[t] == nil {
				monthSets[t] = make(map[string]bool)
			}
			monthSets[t][m] = true
		}
	}

	totals := types.ExperienceTotals{
		MonthsByType: make(map[types.EmploymentType]int, len(monthSets)),
	}
	for t, set := range monthSets {
		months := len(set)
		totals.MonthsByType[t] = months
		totals.TotalMonthsAll += months
		totals.WeightedMonths += float64(months) * policy.TypeWeights[t]
	}

	totals.WeightedMonths = round1(totals.WeightedMonths)
	totals.WeightedYears = round1(totals.WeightedMonths / 12)
	totals.FullTimeYears = round1(float64(totals.MonthsByType[types.FullTime]) / 12)
	totals.InternshipYears = round1(float64(totals.MonthsByType[types.Internship]) / 12)
	totals.TotalYearsAll = round1(float64(totals.TotalMonthsAll) / 12)
	return totals
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
