package domain

import (
	"testing"
	"time"
)

func TestNewAssignment(t *testing.T) {
	t.Parallel()

	due := NewDate(2025, time.May, 1)
	grade := 85.0
	a := NewAssignment(AssignmentFields{
		Title:   "Essay",
		DueDate: &due,
		Weight:  0.25,
		Status:  StatusInProgress,
		Grade:   &grade,
	})

	if a.ID == "" {
		t.Error("Expected a generated ID, got empty string")
	}
	if a.Title != "Essay" {
		t.Errorf("Expected title Essay, got %q", a.Title)
	}
	if a.DueDate == nil || *a.DueDate != due {
		t.Errorf("Expected due date %v, got %v", due, a.DueDate)
	}
	if a.Weight != 0.25 {
		t.Errorf("Expected raw weight 0.25, got %v", a.Weight)
	}
	if a.Status != StatusInProgress {
		t.Errorf("Expected status in_progress, got %s", a.Status)
	}
	if a.Grade == nil || *a.Grade != 85 {
		t.Errorf("Expected grade 85, got %v", a.Grade)
	}

	// Empty status defaults to not_started.
	b := NewAssignment(AssignmentFields{Title: "Quiz"})
	if b.Status != StatusNotStarted {
		t.Errorf("Expected default status not_started, got %s", b.Status)
	}
	if b.DueDate != nil || b.Grade != nil {
		t.Error("Expected absent due date and grade to stay nil")
	}
	if a.ID == b.ID {
		t.Error("Expected distinct generated IDs")
	}
}

func TestAssignmentApply(t *testing.T) {
	t.Parallel()

	due := NewDate(2025, time.May, 1)
	grade := 70.0
	a := NewAssignment(AssignmentFields{
		Title:   "Lab 1",
		DueDate: &due,
		Weight:  10,
		Grade:   &grade,
	})
	id := a.ID

	// Untouched fields survive a partial patch.
	title := "Lab 1 (revised)"
	status := StatusCompleted
	a.Apply(AssignmentPatch{Title: &title, Status: &status})
	if a.ID != id {
		t.Error("Expected patch to leave the ID alone")
	}
	if a.Title != title {
		t.Errorf("Expected title %q, got %q", title, a.Title)
	}
	if a.Status != StatusCompleted {
		t.Errorf("Expected status completed, got %s", a.Status)
	}
	if a.DueDate == nil || *a.DueDate != due {
		t.Errorf("Expected due date untouched, got %v", a.DueDate)
	}
	if a.Grade == nil || *a.Grade != 70 {
		t.Errorf("Expected grade untouched, got %v", a.Grade)
	}

	// Clear flags remove the optional fields.
	a.Apply(AssignmentPatch{ClearDueDate: true, ClearGrade: true})
	if a.DueDate != nil {
		t.Errorf("Expected due date cleared, got %v", a.DueDate)
	}
	if a.Grade != nil {
		t.Errorf("Expected grade cleared, got %v", a.Grade)
	}

	// Patches copy pointer values instead of aliasing them.
	newDue := NewDate(2025, time.June, 2)
	newGrade := 50.0
	a.Apply(AssignmentPatch{DueDate: &newDue, Grade: &newGrade})
	newGrade = 99
	newDue = NewDate(2030, time.January, 1)
	if *a.Grade != 50 {
		t.Errorf("Expected grade 50 independent of caller's pointer, got %v", *a.Grade)
	}
	if a.DueDate.String() != "2025-06-02" {
		t.Errorf("Expected due date 2025-06-02 independent of caller's pointer, got %s", a.DueDate)
	}
}

func TestAssignmentClone(t *testing.T) {
	t.Parallel()

	due := NewDate(2025, time.May, 1)
	grade := 60.0
	a := NewAssignment(AssignmentFields{Title: "Final", DueDate: &due, Weight: 50, Grade: &grade})

	clone := a.Clone()
	*clone.Grade = 10
	*clone.DueDate = NewDate(2030, time.January, 1)

	if *a.Grade != 60 {
		t.Errorf("Expected original grade 60, got %v", *a.Grade)
	}
	if a.DueDate.String() != "2025-05-01" {
		t.Errorf("Expected original due date 2025-05-01, got %s", a.DueDate)
	}
}
