package domain

import "github.com/google/uuid"

// Course represents one tracked course and exclusively owns its assignment
// sequence. Assignment order is insertion order; display layers may re-sort
// their own copies. Deleting a course deletes every assignment with it.
type Course struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Assignments []Assignment `json:"assignments"`
}

// NewCourse creates a Course with the given display name, a freshly generated
// ID, and an empty assignment list. An empty name is accepted; rejecting it
// is an input-boundary concern.
func NewCourse(name string) Course {
	return Course{
		ID:          uuid.New().String(),
		Name:        name,
		Assignments: []Assignment{},
	}
}

// Clone returns a deep copy of the course and all its assignments.
func (c Course) Clone() Course {
	out := c
	out.Assignments = CloneAssignments(c.Assignments)
	return out
}

// CloneAssignments returns a deep copy of an assignment sequence, preserving
// order. A nil input yields an empty, non-nil slice so the copy always
// serializes as a JSON array.
func CloneAssignments(assignments []Assignment) []Assignment {
	out := make([]Assignment, len(assignments))
	for i, a := range assignments {
		out[i] = a.Clone()
	}
	return out
}

// CloneCourses returns a deep copy of a course sequence, preserving order.
func CloneCourses(courses []Course) []Course {
	out := make([]Course, len(courses))
	for i, c := range courses {
		out[i] = c.Clone()
	}
	return out
}
