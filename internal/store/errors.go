package store

import (
	"errors"
	"fmt"
)

// Common store errors used across the application.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrCourseNotFound indicates that the referenced course does not exist.
	ErrCourseNotFound = fmt.Errorf("%w: course", ErrNotFound)

	// ErrAssignmentNotFound indicates that the referenced assignment does
	// not exist in its course.
	ErrAssignmentNotFound = fmt.Errorf("%w: assignment", ErrNotFound)

	// ErrSnapshotNotFound is returned by a SnapshotStore when no prior
	// snapshot has been saved. The tracker starts empty in that case.
	ErrSnapshotNotFound = fmt.Errorf("%w: snapshot", ErrNotFound)

	// ErrInvalidSnapshot is returned when an imported or loaded payload does
	// not have the required shape. An invalid payload is rejected as a whole
	// and never partially applied.
	ErrInvalidSnapshot = errors.New("invalid snapshot payload")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
