package domain

import "errors"

var (
	// ErrNotFound is returned when no project matches the given id.
	ErrNotFound = errors.New("project not found")

	// ErrValidation is returned when a required field is missing or the
	// category is outside the accepted enumeration.
	ErrValidation = errors.New("validation failed")

	// ErrStorageUnavailable marks a failure to reach the project store, as
	// opposed to a failure of the operation itself.
	ErrStorageUnavailable = errors.New("project storage unavailable")
)
