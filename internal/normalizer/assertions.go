package normalizer

import (
	"encoding/json"

	"yqhp/perf-report/pkg/types"
)

// assertionReport mirrors the suite/assertion runner output: a top-level
// suite list, each suite carrying flat assertions with a status field.
type assertionReport struct {
	Suites []assertionSuite `json:"suites"`
}

type assertionSuite struct {
	Name       string      `json:"name"`
	DurationMs float64     `json:"duration"`
	Assertions []assertion `json:"assertions"`
}

type assertion struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// parseAssertions tallies an assertion-shaped report. Any status other
// than passed/failed counts as skipped.
func parseAssertions(data []byte) (types.SuiteTally, error) {
	var report assertionReport
	if err := json.Unmarshal(data, &report); err != nil {
		return types.SuiteTally{}, err
	}

	var tally types.SuiteTally
	for _, suite := range report.Suites {
		tally.DurationMs += suite.DurationMs
		for _, a := range suite.Assertions {
			switch a.Status {
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
