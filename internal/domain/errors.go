package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidDate is returned when a calendar date string is malformed.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidStatus is returned when an assignment status is not one of
	// the known values.
	ErrInvalidStatus = errors.New("invalid assignment status")

	// ErrInvalidWeight is returned at the input boundary when a weight is
	// negative or missing. The core itself tolerates any stored weight.
	ErrInvalidWeight = errors.New("invalid assignment weight")

	// ErrInvalidGrade is returned at the input boundary when a grade falls
	// outside [0,100]. The core itself tolerates out-of-range grades.
	ErrInvalidGrade = errors.New("invalid assignment grade")
)
