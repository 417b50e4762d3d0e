package aggregator

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yqhp/perf-report/pkg/types"
)

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, int64(0), stats.TotalTests)
	assert.Equal(t, 0.0, stats.PassRate)
	assert.Equal(t, 0.0, stats.FailRate)

	// Every known category is present even with no input.
	assert.Len(t, stats.Suites, len(types.TestCategories()))
	for _, category := range types.TestCategories() {
		suite, ok := stats.Suites[category]
		require.True(t, ok, "category %s missing", category)
		assert.Equal(t, int64(0), suite.Total)
		assert.Equal(t, 0.0, suite.PassRate)
	}
}

func TestAggregateSingleCategory(t *testing.T) {
	// Unit tally present, every other source absent: the absent suites
	// still appear in the output with all-zero counts.
	tallies := map[types.TestCategory]types.SuiteTally{
		types.TestUnit: {Passed: 8, Failed: 2, Skipped: 0, Total: 10},
	}

	stats := Aggregate(tallies)

	assert.Equal(t, int64(8), stats.TotalPassed)
	assert.Equal(t, int64(2), stats.TotalFailed)
	assert.Equal(t, int64(0), stats.TotalSkipped)
	assert.Equal(t, int64(10), stats.TotalTests)
	assert.Equal(t, 80.0, stats.PassRate)
	assert.Equal(t, 20.0, stats.FailRate)

	integration, ok := stats.Suites[types.TestIntegration]
	require.True(t, ok)
	assert.Equal(t, types.SuiteTally{}, integration.SuiteTally)
	assert.Equal(t, 0.0, integration.PassRate)
}

func TestAggregateMultipleCategories(t *testing.T) {
	tallies := map[types.TestCategory]types.SuiteTally{
		types.TestUnit:        {Passed: 90, Failed: 5, Skipped: 5, Total: 100, DurationMs: 1000},
		types.TestIntegration: {Passed: 20, Failed: 10, Skipped: 0, Total: 30, DurationMs: 5000},
		types.TestE2E:         {Passed: 7, Failed: 0, Skipped: 3, Total: 10, DurationMs: 60000},
	}

	stats := Aggregate(tallies)

	assert.Equal(t, int64(117), stats.TotalPassed)
	assert.Equal(t, int64(15), stats.TotalFailed)
	assert.Equal(t, int64(8), stats.TotalSkipped)
	assert.Equal(t, int64(140), stats.TotalTests)
	assert.InDelta(t, 83.57, stats.PassRate, 0.001)
	assert.InDelta(t, 10.71, stats.FailRate, 0.001)

	assert.Equal(t, 90.0, stats.Suites[types.TestUnit].PassRate)
	assert.InDelta(t, 66.67, stats.Suites[types.TestIntegration].PassRate, 0.001)
	assert.Equal(t, 70.0, stats.Suites[types.TestE2E].PassRate)
}

func TestAggregateRatesRoundToTwoDecimals(t *testing.T) {
	tallies := map[types.TestCategory]types.SuiteTally{
		types.TestUnit: {Passed: 1, Failed: 2, Total: 3},
	}

	stats := Aggregate(tallies)
	assert.Equal(t, 33.33, stats.PassRate)
	assert.Equal(t, 66.67, stats.FailRate)
}

func TestAggregateZeroTotalGuard(t *testing.T) {
	tallies := map[types.TestCategory]types.SuiteTally{
		types.TestUnit: {Passed: 0, Failed: 0, Skipped: 0, Total: 0},
	}

	stats := Aggregate(tallies)
	assert.Equal(t, 0.0, stats.PassRate)
	assert.Equal(t, 0.0, stats.FailRate)
	assert.Equal(t, 0.0, stats.Suites[types.TestUnit].PassRate)
}

func TestAggregateKeepsUnknownCategories(t *testing.T) {
	tallies := map[types.TestCategory]types.SuiteTally{
		"contract": {Passed: 4, Failed: 1, Total: 5},
	}

	stats := Aggregate(tallies)

	contract, ok := stats.Suites["contract"]
	require.True(t, ok)
	assert.Equal(t, 80.0, contract.PassRate)
	assert.Equal(t, int64(5), stats.TotalTests)
}

func TestAggregateIsIdempotent(t *testing.T) {
	tallies := map[types.TestCategory]types.SuiteTally{
		types.TestUnit: {Passed: 8, Failed: 2, Total: 10, DurationMs: 123.4},
		types.TestE2E:  {Passed: 3, Skipped: 1, Total: 4, DurationMs: 9000},
	}

	first := Aggregate(tallies)
	second := Aggregate(tallies)
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	tallies := map[types.TestCategory]types.SuiteTally{
		types.TestUnit: {Passed: 1, Total: 1},
	}

	_ = Aggregate(tallies)
	assert.Equal(t, types.SuiteTally{Passed: 1, Total: 1}, tallies[types.TestUnit])
	assert.Len(t, tallies, 1)
}
