package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack/internal/store"
	"github.com/coursetrack/coursetrack/internal/tracker"
)

// memStore is an in-memory SnapshotStore for handler tests.
type memStore struct {
	mu   sync.Mutex
	snap *store.Snapshot
}

func (s *memStore) Load(_ context.Context) (store.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return store.Snapshot{}, store.ErrSnapshotNotFound
	}
	return s.snap.Clone(), nil
}

func (s *memStore) Save(_ context.Context, snap store.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := snap.Clone()
	s.snap = &clone
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTracker(t *testing.T) *tracker.Tracker {
	t.Helper()

	tr, err := tracker.New(context.Background(), &memStore{}, testLogger())
	require.NoError(t, err)
	return tr
}

// newTestRouter wires the course, assignment, and snapshot handlers onto the
// same route shapes the server uses.
func newTestRouter(tr *tracker.Tracker) http.Handler {
	log := testLogger()
	courses := NewCourseHandler(tr, log)
	assignments := NewAssignmentHandler(tr, log)
	snapshots := NewSnapshotHandler(tr, log)

	r := chi.NewRouter()
	r.Get("/courses", courses.ListCourses)
	r.Post("/courses", courses.CreateCourse)
	r.Put("/courses/{id}", courses.RenameCourse)
	r.Delete("/courses/{id}", courses.DeleteCourse)
	r.Get("/courses/{id}/metrics", courses.GetMetrics)
	r.Get("/courses/{id}/next-due", courses.GetNextDue)
	r.Post("/courses/{id}/assignments", assignments.CreateAssignment)
	r.Patch("/courses/{courseID}/assignments/{assignmentID}", assignments.UpdateAssignment)
	r.Delete("/courses/{courseID}/assignments/{assignmentID}", assignments.DeleteAssignment)
	r.Get("/snapshot", snapshots.ExportSnapshot)
	r.Post("/snapshot", snapshots.ImportSnapshot)
	return r
}
