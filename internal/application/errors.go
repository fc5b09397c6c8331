package application

import "errors"

// Expected use-case outcomes. Handlers match these with errors.Is and map
// them to HTTP statuses; anything else is treated as an internal failure and
// surfaced as a generic error without detail.
var (
	// ErrValidation covers malformed input: blank ids, blank emails, invalid
	// domain values.
	ErrValidation = errors.New("invalid input")
	// ErrConflict is returned when a create collides with an existing email.
	ErrConflict = errors.New("email already registered")
	// ErrNotFound is returned when an operation targets a nonexistent user.
	ErrNotFound = errors.New("user not found")
	// ErrAuthRejected is returned when an identity assertion fails
	// verification. The reason is logged internally, never surfaced.
	ErrAuthRejected = errors.New("invalid google token")
	// ErrStorage wraps persistence failures with the cause preserved.
	ErrStorage = errors.New("storage failure")
)
