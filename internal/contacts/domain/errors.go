package domain

import "errors"

var (
	// ErrNotFound is returned when no contact matches the given id.
	ErrNotFound = errors.New("contact not found")

	// ErrValidation is returned when a required field is missing.
	ErrValidation = errors.New("validation failed")

	// ErrNotification marks a mail delivery failure. It is kept separate from
	// storage errors so callers can tell "saved but not notified" apart from
	// "not saved".
	ErrNotification = errors.New("notification failed")

	// ErrStorageUnavailable marks a failure to reach the contact store, as
	// opposed to a failure of the operation itself.
	ErrStorageUnavailable = errors.New("contact storage unavailable")
)
