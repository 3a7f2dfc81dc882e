package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coursetrack/coursetrack/internal/domain"
	"github.com/coursetrack/coursetrack/internal/domain/progress"
	"github.com/coursetrack/coursetrack/internal/redact"
	"github.com/coursetrack/coursetrack/internal/store"
)

// saveTimeout bounds a single background snapshot save.
const saveTimeout = 10 * time.Second

// Tracker is the single writer of course and assignment state. It serializes
// all mutations behind one mutex, so it is safe to share across goroutines
// even though the design assumes a single interactive user.
//
// Persistence is write-through and fire-and-forget: each mutation captures a
// deep copy of the new state and saves it in the background. A failed save is
// logged and dropped; the in-memory state is the source of truth for the
// running session and is never rolled back.
type Tracker struct {
	mu      sync.Mutex
	courses []domain.Course

	persist store.SnapshotStore
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the wall clock used for overdue reconciliation.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates a Tracker seeded from the backend's prior snapshot, or empty if
// none exists. The loaded state is reconciled against the current clock
// before use. A corrupt stored snapshot is an error; a missing one is not.
func New(ctx context.Context, persist store.SnapshotStore, logger *slog.Logger, opts ...Option) (*Tracker, error) {
	if persist == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("persist cannot be nil for Tracker")
	}
	if logger == nil {
		logger = slog.Default()
	}

	t := &Tracker{
		courses: []domain.Course{},
		persist: persist,
		logger:  logger.With(slog.String("component", "tracker")),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	snap, err := persist.Load(ctx)
	switch {
	case errors.Is(err, store.ErrSnapshotNotFound):
		t.logger.Info("no prior snapshot, starting empty")
	case err != nil:
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	default:
		t.courses = snap.Clone().Courses
		t.logger.Info("snapshot loaded", slog.Int("courses", len(t.courses)))
	}

	if changed := t.reconcileLocked(); changed > 0 {
		t.logger.Info("reconciled overdue assignments on load", slog.Int("transitioned", changed))
		t.saveAsync(t.snapshotLocked())
	}

	return t, nil
}

// Snapshot returns a reconciled deep copy of the full state. Callers may
// mutate the copy freely; it shares nothing with the tracker's own state.
func (t *Tracker) Snapshot() store.Snapshot {
	t.mu.Lock()
	changed := t.reconcileLocked()
	snap := t.snapshotLocked()
	t.mu.Unlock()

	if changed > 0 {
		t.saveAsync(snap.Clone())
	}
	return snap
}

// Course returns a reconciled deep copy of one course. The second return
// value reports whether the course exists.
func (t *Tracker) Course(id string) (domain.Course, bool) {
	t.mu.Lock()
	changed := t.reconcileLocked()
	idx := t.courseIndexLocked(id)
	var course domain.Course
	if idx >= 0 {
		course = t.courses[idx].Clone()
	}
	var snap store.Snapshot
	if changed > 0 {
		snap = t.snapshotLocked()
	}
	t.mu.Unlock()

	if changed > 0 {
		t.saveAsync(snap)
	}
	return course, idx >= 0
}

// AddCourse appends a new course with an empty assignment list and returns a
// copy of it. Any name is accepted, including the empty string.
func (t *Tracker) AddCourse(name string) domain.Course {
	t.mu.Lock()
	course := domain.NewCourse(name)
	t.courses = append(t.courses, course)
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.saveAsync(snap)
	return course.Clone()
}

// RenameCourse replaces a course's display name in place. An unknown id is a
// no-op, reported through the return value.
func (t *Tracker) RenameCourse(id, name string) bool {
	t.mu.Lock()
	idx := t.courseIndexLocked(id)
	if idx < 0 {
		t.mu.Unlock()
		return false
	}
	t.courses[idx].Name = name
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.saveAsync(snap)
	return true
}

// RemoveCourse removes a course and, with it, every assignment it owns.
// An unknown id is a no-op.
func (t *Tracker) RemoveCourse(id string) bool {
	t.mu.Lock()
	idx := t.courseIndexLocked(id)
	if idx < 0 {
		t.mu.Unlock()
		return false
	}
	t.courses = append(t.courses[:idx], t.courses[idx+1:]...)
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.saveAsync(snap)
	return true
}

// AddAssignment appends a new assignment built from the given fields to the
// course's sequence, generating a fresh id. The new assignment is reconciled
// immediately, so one created with a past due date surfaces as overdue.
// An unknown course id is a no-op.
func (t *Tracker) AddAssignment(courseID string, fields domain.AssignmentFields) (domain.Assignment, bool) {
	t.mu.Lock()
	idx := t.courseIndexLocked(courseID)
	if idx < 0 {
		t.mu.Unlock()
		return domain.Assignment{}, false
	}

	assignment := domain.NewAssignment(fields)
	if status, changed := progress.ReconcileStatus(assignment.Status, assignment.DueDate, t.now()); changed {
		assignment.Status = status
	}
	t.courses[idx].Assignments = append(t.courses[idx].Assignments, assignment)
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.saveAsync(snap)
	return assignment.Clone(), true
}

// UpdateAssignment merges a partial patch into an existing assignment,
// leaving unspecified fields untouched, then reconciles the result against
// the clock. Unknown course or assignment ids are no-ops.
func (t *Tracker) UpdateAssignment(courseID, assignmentID string, patch domain.AssignmentPatch) (domain.Assignment, bool) {
	t.mu.Lock()
	cIdx := t.courseIndexLocked(courseID)
	if cIdx < 0 {
		t.mu.Unlock()
		return domain.Assignment{}, false
	}
	aIdx := assignmentIndex(t.courses[cIdx].Assignments, assignmentID)
	if aIdx < 0 {
		t.mu.Unlock()
		return domain.Assignment{}, false
	}

	a := &t.courses[cIdx].Assignments[aIdx]
	a.Apply(patch)
	if status, changed := progress.ReconcileStatus(a.Status, a.DueDate, t.now()); changed {
		a.Status = status
	}
	updated := a.Clone()
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.saveAsync(snap)
	return updated, true
}

// RemoveAssignment removes one assignment from its course. Unknown ids are
// no-ops.
func (t *Tracker) RemoveAssignment(courseID, assignmentID string) bool {
	t.mu.Lock()
	cIdx := t.courseIndexLocked(courseID)
	if cIdx < 0 {
		t.mu.Unlock()
		return false
	}
	assignments := t.courses[cIdx].Assignments
	aIdx := assignmentIndex(assignments, assignmentID)
	if aIdx < 0 {
		t.mu.Unlock()
		return false
	}
	t.courses[cIdx].Assignments = append(assignments[:aIdx], assignments[aIdx+1:]...)
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.saveAsync(snap)
	return true
}

// Import replaces the entire state with the given snapshot, all or nothing.
// The snapshot must already be shape-validated (store.DecodeSnapshot); the
// tracker deep-copies it, reconciles it, and persists the result. Existing
// state is untouched until the new state is fully built.
func (t *Tracker) Import(snap store.Snapshot) {
	incoming := snap.Clone()
	if incoming.Courses == nil {
		incoming.Courses = []domain.Course{}
	}

	t.mu.Lock()
	t.courses = incoming.Courses
	t.reconcileLocked()
	out := t.snapshotLocked()
	t.mu.Unlock()

	t.logger.Info("snapshot imported", slog.Int("courses", len(out.Courses)))
	t.saveAsync(out)
}

// Reconcile runs the overdue derivation pass over every assignment against
// the current clock and returns the number of assignments transitioned.
// State is persisted only when something actually changed.
func (t *Tracker) Reconcile() int {
	t.mu.Lock()
	changed := t.reconcileLocked()
	var snap store.Snapshot
	if changed > 0 {
		snap = t.snapshotLocked()
	}
	t.mu.Unlock()

	if changed > 0 {
		t.logger.Debug("reconciliation pass transitioned assignments", slog.Int("transitioned", changed))
		t.saveAsync(snap)
	}
	return changed
}

// reconcileLocked applies the overdue rule in place. Caller must hold mu.
func (t *Tracker) reconcileLocked() int {
	now := t.now()
	changed := 0
	for ci := range t.courses {
		for ai := range t.courses[ci].Assignments {
			a := &t.courses[ci].Assignments[ai]
			if status, ok := progress.ReconcileStatus(a.Status, a.DueDate, now); ok {
				a.Status = status
				changed++
			}
		}
	}
	return changed
}

// snapshotLocked deep-copies the current state. Caller must hold mu.
func (t *Tracker) snapshotLocked() store.Snapshot {
	return store.Snapshot{Courses: domain.CloneCourses(t.courses)}
}

// courseIndexLocked finds a course by id. Caller must hold mu.
func (t *Tracker) courseIndexLocked(id string) int {
	for i := range t.courses {
		if t.courses[i].ID == id {
			return i
		}
	}
	return -1
}

func assignmentIndex(assignments []domain.Assignment, id string) int {
	for i := range assignments {
		if assignments[i].ID == id {
			return i
		}
	}
	return -1
}

// saveAsync persists a snapshot copy in the background. The caller is never
// blocked and never sees the outcome; failures are logged and the in-memory
// state stands.
func (t *Tracker) saveAsync(snap store.Snapshot) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := t.persist.Save(ctx, snap); err != nil {
			t.logger.Error("background snapshot save failed",
				slog.String("error", redact.Error(err)),
				slog.Int("courses", len(snap.Courses)))
		}
	}()
}
