package query

import (
	"errors"
	"fmt"
)

var (
	// ErrConflictingSelectors is the parent of every combination error.
	ErrConflictingSelectors = errors.New("conflicting selectors")

	// ErrConflictingRangeSelectors is returned when more than one of
	// line-range, head and tail is requested.
	ErrConflictingRangeSelectors = fmt.Errorf("%w: only one of --line-range, --head, --tail may be used", ErrConflictingSelectors)

	// ErrConflictingEvalStrategy is returned when both --all and --any are requested.
	ErrConflictingEvalStrategy = fmt.Errorf("%w: only one of --all, --any may be used", ErrConflictingSelectors)

	// ErrInvalidValue is returned for values that cannot describe a selection.
	ErrInvalidValue = errors.New("invalid value")
)
