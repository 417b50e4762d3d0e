package normalizer

import (
	"encoding/json"

	"yqhp/perf-report/pkg/types"
)

// runReport mirrors the flat runner output: a top-level run list, each
// run carrying a flat test list with a state field.
type runReport struct {
	Runs []run `json:"runs"`
}

type run struct {
	Stats runStats  `json:"stats"`
	Tests []runTest `json:"tests"`
}

type runStats struct {
	DurationMs float64 `json:"duration"`
}

type runTest struct {
	Title string `json:"title"`
	State string `json:"state"`
}

// parseRuns tallies a run-shaped report. Any state other than
// passed/failed counts as skipped.
func parseRuns(data []byte) (types.SuiteTally, error) {
	var report runReport
	if err := json.Unmarshal(data, &report); err != nil {
		return types.SuiteTally{}, err
	}

	var tally types.SuiteTally
	for _, r := range report.Runs {
		tally.DurationMs += r.Stats.DurationMs
		for _, t := range r.Tests {
			switch t.State {
			case "passed":
				tally.Passed++
			case "failed":
				tally.Failed++
			default:
				tally.Skipped++
			}
			tally.Total++
		}
	}
	return tally, nil
}
