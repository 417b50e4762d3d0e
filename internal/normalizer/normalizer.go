// Package normalizer converts the report files emitted by the external
// test runners into canonical per-category tallies. Each runner has its
// own report shape; one adapter per shape hides the difference from the
// aggregator, so supporting a new runner means adding an adapter here.
package normalizer

import (
	"errors"
	"io/fs"
	"os"

	"yqhp/perf-report/pkg/types"
)

// Shape identifies one of the known external report layouts.
type Shape string

const (
	// ShapeAssertions is a top-level suite list where each suite carries
	// flat assertions with a status field.
	ShapeAssertions Shape = "assertions"
	// ShapeSpecs nests suites -> specs -> tests, each test carrying a
	// list of result attempts; the first attempt is authoritative.
	ShapeSpecs Shape = "specs"
	// ShapeRuns is a top-level run list, each run carrying a flat test
	// list with a state field.
	ShapeRuns Shape = "runs"
)

// Source describes one external report file feeding the aggregation.
// The category is a fixed external contract per source, never inferred
// from the file's content.
type Source struct {
	Category types.TestCategory
	Shape    Shape
	Path     string
}

// Normalize reads one source and produces its tally. An absent file is
// not an error and contributes an all-zero tally; an unknown shape or a
// present but unreadable or malformed file aborts with a SourceError
// naming the source. The shape is checked before touching the file so a
// misconfigured source fails loudly even when its file is absent.
func Normalize(src Source) (types.SuiteTally, error) {
	var parse func([]byte) (types.SuiteTally, error)
	switch src.Shape {
	case ShapeAssertions:
		parse = parseAssertions
	case ShapeSpecs:
		parse = parseSpecs
	case ShapeRuns:
		parse = parseRuns
	default:
		return types.SuiteTally{}, &SourceError{Category: src.Category, Path: src.Path, Cause: errUnknownShape(src.Shape)}
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.SuiteTally{}, nil
		}
		return types.SuiteTally{}, &SourceError{Category: src.Category, Path: src.Path, Cause: err}
	}

	tally, err := parse(data)
	if err != nil {
		return types.SuiteTally{}, &SourceError{Category: src.Category, Path: src.Path, Cause: err}
	}
	return tally, nil
}

// NormalizeAll produces the tally for every source, keyed by category.
// Sources sharing a category are merged. The first malformed source
// aborts the whole pass.
func NormalizeAll(sources []Source) (map[types.TestCategory]types.SuiteTally, error) {
	tallies := make(map[types.TestCategory]types.SuiteTally, len(sources))
	for _, src := range sources {
		tally, err := Normalize(src)
		if err != nil {
			return nil, err
		}
		merged := tallies[src.Category]
		merged.Merge(tally)
		tallies[src.Category] = merged
	}
	return tallies, nil
}
