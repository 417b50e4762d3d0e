package normalizer

import (
	"fmt"

	"yqhp/perf-report/pkg/types"
)

// SourceError reports a present-but-unusable report source. It always
// identifies which source failed so the enclosing pipeline can surface
// it in its diagnostic before aborting.
type SourceError struct {
	Category types.TestCategory
	Path     string
	Cause    error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("malformed %s report %s: %v", e.Category, e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Cause
}

type errUnknownShape Shape

func (e errUnknownShape) Error() string {
	return fmt.Sprintf("unknown report shape: %s", string(e))
}
