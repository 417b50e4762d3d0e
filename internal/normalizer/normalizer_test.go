package normalizer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yqhp/perf-report/pkg/types"
)

func writeReport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNormalizeMissingFileYieldsZeroTally(t *testing.T) {
	src := Source{
		Category: types.TestUnit,
		Shape:    ShapeAssertions,
		Path:     filepath.Join(t.TempDir(), "does-not-exist.json"),
	}

	tally, err := Normalize(src)
	require.NoError(t, err)
	assert.Equal(t, types.SuiteTally{}, tally)
}

func TestNormalizeMalformedFileFailsLoudly(t *testing.T) {
	path := writeReport(t, "unit-results.json", "{not json")
	src := Source{Category: types.TestUnit, Shape: ShapeAssertions, Path: path}

	_, err := Normalize(src)
	require.Error(t, err)

	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, types.TestUnit, srcErr.Category)
	assert.Equal(t, path, srcErr.Path)
	assert.Contains(t, err.Error(), path)
}

func TestNormalizeUnknownShape(t *testing.T) {
	path := writeReport(t, "weird.json", "{}")
	_, err := Normalize(Source{Category: types.TestUnit, Shape: "bogus", Path: path})
	assert.Error(t, err)
}

func TestNormalizeUnknownShapeRejectedEvenWhenFileAbsent(t *testing.T) {
	// A misconfigured shape must not be mistaken for a clean absent
	// source.
	src := Source{
		Category: types.TestUnit,
		Shape:    "bogus",
		Path:     filepath.Join(t.TempDir(), "does-not-exist.json"),
	}

	_, err := Normalize(src)
	require.Error(t, err)

	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, types.TestUnit, srcErr.Category)
	assert.Contains(t, err.Error(), "unknown report shape")
}

func TestParseAssertionsShape(t *testing.T) {
	path := writeReport(t, "unit-results.json", `{
		"suites": [
			{
				"name": "math",
				"duration": 120.5,
				"assertions": [
					{"title": "adds", "status": "passed"},
					{"title": "subtracts", "status": "passed"},
					{"title": "divides by zero", "status": "failed"},
					{"title": "todo", "status": "pending"}
				]
			},
			{
				"name": "strings",
				"duration": 30,
				"assertions": [
					{"title": "concat", "status": "passed"}
				]
			}
		]
	}`)

	tally, err := Normalize(Source{Category: types.TestUnit, Shape: ShapeAssertions, Path: path})
	require.NoError(t, err)

	assert.Equal(t, int64(3), tally.Passed)
	assert.Equal(t, int64(1), tally.Failed)
	assert.Equal(t, int64(1), tally.Skipped)
	assert.Equal(t, int64(5), tally.Total)
	assert.InDelta(t, 150.5, tally.DurationMs, 0.001)
}

func TestParseSpecsShapeFirstAttemptAuthoritative(t *testing.T) {
	// The second result entry is a retry; only the first attempt counts.
	path := writeReport(t, "e2e-results.json", `{
		"suites": [
			{
				"title": "checkout",
				"specs": [
					{
						"title": "pays by card",
						"tests": [
							{"results": [{"status": "failed", "duration": 800}, {"status": "passed", "duration": 400}]},
							{"results": [{"status": "passed", "duration": 200}]}
						]
					}
				],
				"suites": [
					{
						"title": "nested",
						"specs": [
							{
								"title": "applies coupon",
								"tests": [
									{"results": [{"status": "timedOut", "duration": 0}]},
									{"results": []}
								]
							}
						]
					}
				]
			}
		]
	}`)

	tally, err := Normalize(Source{Category: types.TestE2E, Shape: ShapeSpecs, Path: path})
	require.NoError(t, err)

	assert.Equal(t, int64(1), tally.Passed)
	assert.Equal(t, int64(1), tally.Failed)
	assert.Equal(t, int64(2), tally.Skipped) // timedOut + no attempts
	assert.Equal(t, int64(4), tally.Total)
	assert.InDelta(t, 1000, tally.DurationMs, 0.001)
}

func TestParseRunsShape(t *testing.T) {
	path := writeReport(t, "performance-results.json", `{
		"runs": [
			{
				"stats": {"duration": 5000},
				"tests": [
					{"title": "homepage load", "state": "passed"},
					{"title": "search latency", "state": "failed"},
					{"title": "cold start", "state": "pending"}
				]
			},
			{
				"stats": {"duration": 2500},
				"tests": [
					{"title": "api burst", "state": "passed"}
				]
			}
		]
	}`)

	tally, err := Normalize(Source{Category: types.TestPerformance, Shape: ShapeRuns, Path: path})
	require.NoError(t, err)

	assert.Equal(t, int64(2), tally.Passed)
	assert.Equal(t, int64(1), tally.Failed)
	assert.Equal(t, int64(1), tally.Skipped)
	assert.Equal(t, int64(4), tally.Total)
	assert.InDelta(t, 7500, tally.DurationMs, 0.001)
}

func TestTallyInvariantHolds(t *testing.T) {
	paths := map[Shape]string{
		ShapeAssertions: writeReport(t, "a.json", `{"suites":[{"assertions":[{"status":"passed"},{"status":"x"},{"status":"failed"}]}]}`),
		ShapeSpecs:      writeReport(t, "s.json", `{"suites":[{"specs":[{"tests":[{"results":[{"status":"passed"}]},{"results":[]}]}]}]}`),
		ShapeRuns:       writeReport(t, "r.json", `{"runs":[{"tests":[{"state":"failed"},{"state":"skipped"}]}]}`),
	}

	for shape, path := range paths {
		tally, err := Normalize(Source{Category: types.TestUnit, Shape: shape, Path: path})
		require.NoError(t, err, "shape %s", shape)
		assert.Equal(t, tally.Total, tally.Passed+tally.Failed+tally.Skipped, "shape %s", shape)
	}
}

func TestNormalizeAll(t *testing.T) {
	unit := writeReport(t, "unit.json", `{"suites":[{"assertions":[{"status":"passed"},{"status":"failed"}]}]}`)

	sources := []Source{
		{Category: types.TestUnit, Shape: ShapeAssertions, Path: unit},
		{Category: types.TestIntegration, Shape: ShapeAssertions, Path: filepath.Join(t.TempDir(), "missing.json")},
	}

	tallies, err := NormalizeAll(sources)
	require.NoError(t, err)

	assert.Equal(t, int64(1), tallies[types.TestUnit].Passed)
	assert.Equal(t, int64(1), tallies[types.TestUnit].Failed)
	assert.Equal(t, types.SuiteTally{}, tallies[types.TestIntegration])
}

func TestNormalizeAllMergesSameCategory(t *testing.T) {
	first := writeReport(t, "one.json", `{"suites":[{"assertions":[{"status":"passed"}]}]}`)
	second := writeReport(t, "two.json", `{"suites":[{"assertions":[{"status":"failed"}]}]}`)

	tallies, err := NormalizeAll([]Source{
		{Category: types.TestUnit, Shape: ShapeAssertions, Path: first},
		{Category: types.TestUnit, Shape: ShapeAssertions, Path: second},
	})
	require.NoError(t, err)

	tally := tallies[types.TestUnit]
	assert.Equal(t, int64(1), tally.Passed)
	assert.Equal(t, int64(1), tally.Failed)
	assert.Equal(t, int64(2), tally.Total)
}

func TestNormalizeAllAbortsOnFirstMalformedSource(t *testing.T) {
	good := writeReport(t, "good.json", `{"suites":[]}`)
	bad := writeReport(t, "bad.json", "not json at all")

	_, err := NormalizeAll([]Source{
		{Category: types.TestUnit, Shape: ShapeAssertions, Path: good},
		{Category: types.TestIntegration, Shape: ShapeAssertions, Path: bad},
	})
	require.Error(t, err)

	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, types.TestIntegration, srcErr.Category)
}
