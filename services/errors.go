package services

import "errors"

// Error taxonomy surfaced to callers. Controllers map these onto HTTP
// statuses; anything else is treated as an internal failure.
var (
	// ErrInvalidArgument covers malformed ids, self-swipes and
	// non-positive limits. Never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means a referenced profile does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMatchImmutable is returned when a swipe flip is attempted on a
	// pair that already has a confirmed match.
	ErrMatchImmutable = errors.New("match is immutable")

	// ErrUnavailable is surfaced after bounded retries of a transient
	// storage failure are exhausted.
	ErrUnavailable = errors.New("storage unavailable")
)
