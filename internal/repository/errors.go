package repository

import "errors"

var (
	// ErrNotFound is returned when no activity has the requested name.
	ErrNotFound = errors.New("activity not found")
	// ErrNotEnrolled is returned when removing an email that is not on the roster.
	ErrNotEnrolled = errors.New("participant not enrolled")
)
