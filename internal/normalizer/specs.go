package normalizer

import (
	"encoding/json"

	"yqhp/perf-report/pkg/types"
)

// specReport mirrors the suite/spec/test runner output. Tests carry a
// list of result attempts; retries append further attempts, so only the
// first attempt's status is authoritative.
type specReport struct {
	Suites []specSuite `json:"suites"`
}

type specSuite struct {
	Title  string      `json:"title"`
	Specs  []spec      `json:"specs"`
	Suites []specSuite `json:"suites"` // nested groups
}

type spec struct {
	Title string     `json:"title"`
	Tests []specTest `json:"tests"`
}

type specTest struct {
	Results []specResult `json:"results"`
}

type specResult struct {
	Status     string  `json:"status"`
	DurationMs float64 `json:"duration"`
}

// parseSpecs tallies a spec-shaped report.
func parseSpecs(data []byte) (types.SuiteTally, error) {
	var report specReport
	if err := json.Unmarshal(data, &report); err != nil {
		return types.SuiteTally{}, err
	}

	var tally types.SuiteTally
	for _, suite := range report.Suites {
		tallySpecSuite(suite, &tally)
	}
	return tally, nil
}

func tallySpecSuite(suite specSuite, tally *types.SuiteTally) {
	for _, sp := range suite.Specs {
		for _, test := range sp.Tests {
			if len(test.Results) == 0 {
				tally.Skipped++
				tally.Total++
				continue
			}
			first := test.Results[0]
			tally.DurationMs += first.DurationMs
			switch first.Status {
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
	for _, nested := range suite.Suites {
		tallySpecSuite(nested, tally)
	}
}
