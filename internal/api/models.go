package api

import (
	"encoding/json"

	"github.com/coursetrack/coursetrack/internal/domain"
)

// CreateCourseRequest represents the request body for creating a course.
// The core store would accept an empty name; the boundary does not.
type CreateCourseRequest struct {
	Name string `json:"name" validate:"required"`
}

// RenameCourseRequest represents the request body for renaming a course.
type RenameCourseRequest struct {
	Name string `json:"name" validate:"required"`
}

// LoginRequest represents the request body for owner login.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// CreateAssignmentRequest represents the request body for adding an
// assignment to a course.
type CreateAssignmentRequest struct {
	Title   string   `json:"title"`
	DueDate *string  `json:"dueDate"           validate:"omitempty,datetime=2006-01-02"`
	Weight  float64  `json:"weight"            validate:"gte=0"`
	Status  string   `json:"status,omitempty"  validate:"omitempty,oneof=not_started in_progress completed overdue"`
	Grade   *float64 `json:"grade"             validate:"omitempty,gte=0,lte=100"`
}

// UpdateAssignmentRequest represents a partial patch. Each field records
// whether it appeared in the request body at all, so "absent" (leave alone)
// and "null" (clear) stay distinguishable.
type UpdateAssignmentRequest struct {
	Title   OptionalString `json:"title"`
	DueDate OptionalString `json:"dueDate"`
	Weight  OptionalFloat  `json:"weight"`
	Status  OptionalString `json:"status"`
	Grade   OptionalFloat  `json:"grade"`
}

// MetricsResponse represents the derived progress figures for one course.
// GradeSoFar is null until at least one assignment is completed.
type MetricsResponse struct {
	TotalWeights      float64  `json:"totalWeights"`
	CompletedWeighted float64  `json:"completedWeighted"`
	CurrentMark       float64  `json:"currentMark"`
	GradeSoFar        *float64 `json:"gradeSoFar"`
}

// OptionalString is a string field that knows whether it was present in the
// payload. A present-but-null value decodes as Set with a nil Value.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for keys
// that actually appear in the payload, which is what records presence.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// OptionalFloat is a float field that knows whether it was present in the
// payload.
type OptionalFloat struct {
	Set   bool
	Value *float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// toFields converts a validated create request into domain fields.
func (req CreateAssignmentRequest) toFields() (domain.AssignmentFields, error) {
	fields := domain.AssignmentFields{
		Title:  req.Title,
		Weight: req.Weight,
		Status: domain.Status(req.Status),
		Grade:  req.Grade,
	}
	if req.DueDate != nil {
		due, err := domain.ParseDate(*req.DueDate)
		if err != nil {
			return domain.AssignmentFields{}, err
		}
		fields.DueDate = &due
	}
	return fields, nil
}
