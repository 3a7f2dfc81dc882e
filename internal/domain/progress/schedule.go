package progress

import (
	"time"

	"github.com/coursetrack/coursetrack/internal/domain"
)

// IsPast reports whether a due date has fully elapsed: the end of its
// calendar day (23:59:59 in now's location) lies strictly before now.
// An absent due date is never past.
func IsPast(due *domain.Date, now time.Time) bool {
	if due == nil {
		return false
	}
	return due.EndOfDay(now.Location()).Before(now)
}

// ReconcileStatus applies the single automatic status transition: a
// non-completed assignment whose due date has passed becomes overdue.
// It returns the reconciled status and whether it changed.
//
// Completed is terminal with respect to this rule and is never overwritten.
// Every other transition, including moving an assignment out of overdue, is
// an explicit user edit.
func ReconcileStatus(status domain.Status, due *domain.Date, now time.Time) (domain.Status, bool) {
	if status == domain.StatusCompleted || status == domain.StatusOverdue {
		return status, false
	}
	if IsPast(due, now) {
		return domain.StatusOverdue, true
	}
	return status, false
}

// NextDue selects the next actionable assignment: the one with the earliest
// not-yet-past due date among assignments that have a due date and are not
// completed. It returns a copy and reports whether one was found, and never
// mutates the input order.
func NextDue(assignments []domain.Assignment, now time.Time) (domain.Assignment, bool) {
	var best *domain.Assignment
	for i := range assignments {
		a := &assignments[i]
		if a.DueDate == nil || a.Status == domain.StatusCompleted || IsPast(a.DueDate, now) {
			continue
		}
		if best == nil || a.DueDate.Before(*best.DueDate) {
			best = a
		}
	}
	if best == nil {
		return domain.Assignment{}, false
	}
	return best.Clone(), true
}
