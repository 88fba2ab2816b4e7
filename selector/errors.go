package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderViolation reports a fragment introduced after a fragment
	// kind that must render later was already populated.
	ErrOrderViolation = errors.New("selector: fragment out of order")

	// ErrDuplicateFragment reports a second set of a singleton fragment
	// (element, id, attribute or pseudo-element).
	ErrDuplicateFragment = errors.New("selector: duplicate fragment")

	// ErrSchemaMismatch reports a selector document record that does not
	// match any expected rule shape.
	ErrSchemaMismatch = errors.New("selector: record does not match expected schema")
)

func orderError(f, last Fragment, combined bool) error {
	if combined {
		return fmt.Errorf("%w: %s fragment on a combined selector", ErrOrderViolation, f)
	}
	return fmt.Errorf("%w: %s cannot follow %s", ErrOrderViolation, f, last)
}

func duplicateError(f Fragment) error {
	return fmt.Errorf("%w: %s already set", ErrDuplicateFragment, f)
}
