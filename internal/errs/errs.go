// Package errs contains sentinel errors shared across layers for stable
// error mapping at the transport boundary.
package errs

import "errors"

var (
	// ErrConflict indicates a uniqueness constraint violation
	// (duplicate plate or chassis code).
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates a field failed a domain constraint.
	ErrValidation = errors.New("validation failed")
)
