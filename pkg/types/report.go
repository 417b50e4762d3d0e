package types

import (
	"sort"
)

// TestCategory identifies a logical test suite in the aggregated summary.
type TestCategory string

const (
	TestUnit          TestCategory = "unit"
	TestIntegration   TestCategory = "integration"
	TestE2E           TestCategory = "e2e"
	TestVisual        TestCategory = "visual"
	TestAccessibility TestCategory = "accessibility"
	TestPerformance   TestCategory = "performance"
)

// TestCategories returns all known categories in their canonical render
// order.
func TestCategories() []TestCategory {
	return []TestCategory{
		TestUnit,
		TestIntegration,
		TestE2E,
		TestVisual,
		TestAccessibility,
		TestPerformance,
	}
}

// SuiteTally holds per-category counters of test outcomes.
// Invariant: Total == Passed + Failed + Skipped.
type SuiteTally struct {
	Passed     int64   `json:"passed"`
	Failed     int64   `json:"failed"`
	Skipped    int64   `json:"skipped"`
	Total      int64   `json:"total"`
	DurationMs float64 `json:"duration_ms"`
}

// Merge adds another tally's counters into this one.
func (t *SuiteTally) Merge(other SuiteTally) {
	t.Passed += other.Passed
	t.Failed += other.Failed
	t.Skipped += other.Skipped
	t.Total += other.Total
	t.DurationMs += other.DurationMs
}

// SuiteStats is a tally augmented with its pass rate.
type SuiteStats struct {
	SuiteTally
	PassRate float64 `json:"pass_rate"`
}

// OrderedCategories returns the categories present in the stats in
// canonical render order, with any categories outside the fixed set
// appended in name order. Renderers share this so every suite appears
// exactly once in every output.
func (s *AggregateStats) OrderedCategories() []TestCategory {
	ordered := make([]TestCategory, 0, len(s.Suites))
	seen := make(map[TestCategory]bool)
	for _, category := range TestCategories() {
		if _, ok := s.Suites[category]; ok {
			ordered = append(ordered, category)
			seen[category] = true
		}
	}
	extras := make([]string, 0)
	for category := range s.Suites {
		if !seen[category] {
			extras = append(extras, string(category))
		}
	}
	sort.Strings(extras)
	for _, category := range extras {
		ordered = append(ordered, TestCategory(category))
	}
	return ordered
}

// AggregateStats is the overall result of one aggregation run. Constructed
// once per run, never mutated afterwards; rates are percentages rounded to
// two decimal places.
type AggregateStats struct {
	TotalPassed  int64                       `json:"total_passed"`
	TotalFailed  int64                       `json:"total_failed"`
	TotalSkipped int64                       `json:"total_skipped"`
	TotalTests   int64                       `json:"total_tests"`
	PassRate     float64                     `json:"pass_rate"`
	FailRate     float64                     `json:"fail_rate"`
	Suites       map[TestCategory]SuiteStats `json:"suites"`
}
