// Package aggregator folds normalized per-category tallies into one
// overall statistics value. Aggregation is pure and deterministic:
// identical tallies always yield identical statistics.
package aggregator

import (
	"math"

	"yqhp/perf-report/pkg/types"
)

// Aggregate combines category tallies into aggregate statistics. Every
// known category appears in the output even when its tally is absent
// (all-zero). Rates are percentages rounded to two decimal places; a
// zero total short-circuits to 0 rather than dividing.
func Aggregate(tallies map[types.TestCategory]types.SuiteTally) types.AggregateStats {
	stats := types.AggregateStats{
		Suites: make(map[types.TestCategory]types.SuiteStats, len(tallies)),
	}

	for _, category := range types.TestCategories() {
		tally := tallies[category]
		stats.TotalPassed += tally.Passed
		stats.TotalFailed += tally.Failed
		stats.TotalSkipped += tally.Skipped
		stats.TotalTests += tally.Total

		stats.Suites[category] = types.SuiteStats{
			SuiteTally: tally,
			PassRate:   rate(tally.Passed, tally.Total),
		}
	}

	// Categories outside the fixed set still count; a new runner source
	// must not silently vanish from the totals.
	for category, tally := range tallies {
		if _, known := stats.Suites[category]; known {
			continue
		}
		stats.TotalPassed += tally.Passed
		stats.TotalFailed += tally.Failed
		stats.TotalSkipped += tally.Skipped
		stats.TotalTests += tally.Total
		stats.Suites[category] = types.SuiteStats{
			SuiteTally: tally,
			PassRate:   rate(tally.Passed, tally.Total),
		}
	}

	stats.PassRate = rate(stats.TotalPassed, stats.TotalTests)
	stats.FailRate = rate(stats.TotalFailed, stats.TotalTests)
	return stats
}

// rate returns part/total as a percentage rounded to two decimals, 0
// when total is 0.
func rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}
