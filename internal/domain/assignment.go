package domain

import "github.com/google/uuid"

// Assignment represents a single graded item inside a course.
//
// Weight is stored exactly as the user entered it: either a fraction in
// [0,1] or a percentage in (1,100]. It is canonicalized on read by the
// progress package and never rewritten in place. Grade, when present, is
// expected to lie in [0,100]; out-of-range values are tolerated by every
// computation rather than rejected here, since strict validation belongs to
// the input boundary.
type Assignment struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	DueDate *Date    `json:"dueDate"`
	Weight  float64  `json:"weight"`
	Status  Status   `json:"status"`
	Grade   *float64 `json:"grade"`
}

// AssignmentFields holds the caller-supplied fields for a new assignment.
// The ID is generated by the store, never supplied.
type AssignmentFields struct {
	Title   string
	DueDate *Date
	Weight  float64
	Status  Status
	Grade   *float64
}

// NewAssignment creates an Assignment from the given fields with a freshly
// generated ID. An empty status defaults to not_started.
func NewAssignment(fields AssignmentFields) Assignment {
	status := fields.Status
	if status == "" {
		status = StatusNotStarted
	}
	return Assignment{
		ID:      uuid.New().String(),
		Title:   fields.Title,
		DueDate: cloneDate(fields.DueDate),
		Weight:  fields.Weight,
		Status:  status,
		Grade:   cloneGrade(fields.Grade),
	}
}

// AssignmentPatch describes a partial update to an assignment. A nil pointer
// leaves the field untouched; the Clear flags remove the optional fields.
// Merge semantics are last-write-wins over this fixed field set, with no
// history retained.
type AssignmentPatch struct {
	Title        *string
	DueDate      *Date
	ClearDueDate bool
	Weight       *float64
	Status       *Status
	Grade        *float64
	ClearGrade   bool
}

// Apply merges the patch into the assignment in place.
func (a *Assignment) Apply(patch AssignmentPatch) {
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.ClearDueDate {
		a.DueDate = nil
	} else if patch.DueDate != nil {
		a.DueDate = cloneDate(patch.DueDate)
	}
	if patch.Weight != nil {
		a.Weight = *patch.Weight
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.ClearGrade {
		a.Grade = nil
	} else if patch.Grade != nil {
		a.Grade = cloneGrade(patch.Grade)
	}
}

// Clone returns a deep copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := a
	out.DueDate = cloneDate(a.DueDate)
	out.Grade = cloneGrade(a.Grade)
	return out
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	copied := *d
	return &copied
}

func cloneGrade(g *float64) *float64 {
	if g == nil {
		return nil
	}
	copied := *g
	return &copied
}
