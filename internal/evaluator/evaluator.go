// Package evaluator classifies observed measurements against benchmark
// thresholds. Classification is a pure function: it never errors and has
// no state, so a corrected threshold ordering can be swapped in here
// without touching any caller.
package evaluator

import (
	"yqhp/perf-report/pkg/types"
)

// Classify compares an observed value against one benchmark.
//
// The branches are evaluated in this order: at-or-under target is a pass;
// otherwise the warning threshold is checked before the critical one, and
// a value over target that crosses neither configured threshold defaults
// to warning. With the shipped catalog convention warning <= critical, a
// value over the critical threshold is also over the warning threshold,
// so the warning branch wins; the critical branch fires only when no
// warning threshold is configured.
func Classify(b types.Benchmark, actual float64) types.Classification {
	diff := actual - b.Target

	if diff <= 0 {
		return types.Classification{MeetsTarget: true, Status: types.StatusPass, Diff: diff}
	}

	if b.WarningThreshold != nil && actual >= *b.WarningThreshold {
		return types.Classification{MeetsTarget: false, Status: types.StatusWarning, Diff: diff}
	}

	if b.CriticalThreshold != nil && actual >= *b.CriticalThreshold {
		return types.Classification{MeetsTarget: false, Status: types.StatusFail, Diff: diff}
	}

	return types.Classification{MeetsTarget: false, Status: types.StatusWarning, Diff: diff}
}

// Result pairs a benchmark with the classification of its observed value.
type Result struct {
	Benchmark      types.Benchmark      `json:"benchmark"`
	Actual         float64              `json:"actual"`
	Classification types.Classification `json:"classification"`
}

// ClassifyAll classifies every benchmark that has an observed value.
// Benchmarks without an observation are skipped; observations for unknown
// benchmark ids are ignored.
func ClassifyAll(benchmarks []types.Benchmark, observed map[string]float64) []Result {
	results := make([]Result, 0, len(benchmarks))
	for _, b := range benchmarks {
		actual, ok := observed[b.ID]
		if !ok {
			continue
		}
		results = append(results, Result{
			Benchmark:      b,
			Actual:         actual,
			Classification: Classify(b, actual),
		})
	}
	return results
}
