package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/coursetrack/coursetrack/internal/api/shared"
	"github.com/coursetrack/coursetrack/internal/domain/progress"
	"github.com/coursetrack/coursetrack/internal/platform/logger"
	"github.com/coursetrack/coursetrack/internal/tracker"
)

// CourseHandler handles course-related HTTP requests, including the derived
// metrics and next-due reads.
type CourseHandler struct {
	tracker *tracker.Tracker
	logger  *slog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(t *tracker.Tracker, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CourseHandler")
	}

	return &CourseHandler{
		tracker: t,
		logger:  logger.With(slog.String("component", "course_handler")),
	}
}

// ListCourses handles GET /courses requests.
// It returns the full ordered course collection.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	snap := h.tracker.Snapshot()
	shared.RespondWithJSON(w, r, http.StatusOK, snap.Courses)
}

// CreateCourse handles POST /courses requests.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCourseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Course name is required")
		return
	}

	course := h.tracker.AddCourse(req.Name)
	log.Debug("course created", slog.String("course_id", course.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, course)
}

// RenameCourse handles PUT /courses/{id} requests.
func (h *CourseHandler) RenameCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	courseID := chi.URLParam(r, "id")

	var req RenameCourseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Course name is required")
		return
	}

	if !h.tracker.RenameCourse(courseID, req.Name) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Course not found")
		return
	}

	course, _ := h.tracker.Course(courseID)
	log.Debug("course renamed", slog.String("course_id", courseID))
	shared.RespondWithJSON(w, r, http.StatusOK, course)
}

// DeleteCourse handles DELETE /courses/{id} requests. Deleting a course
// deletes every assignment it owns.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	courseID := chi.URLParam(r, "id")

	if !h.tracker.RemoveCourse(courseID) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Course not found")
		return
	}

	log.Debug("course deleted", slog.String("course_id", courseID))
	w.WriteHeader(http.StatusNoContent)
}

// GetMetrics handles GET /courses/{id}/metrics requests.
// All four figures are derived fresh from the current state on every call.
func (h *CourseHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	course, ok := h.tracker.Course(courseID)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Course not found")
		return
	}

	m := progress.ComputeMetrics(course)
	shared.RespondWithJSON(w, r, http.StatusOK, MetricsResponse{
		TotalWeights:      m.TotalWeights,
		CompletedWeighted: m.CompletedWeighted,
		CurrentMark:       m.CurrentMark,
		GradeSoFar:        m.GradeSoFar,
	})
}

// GetNextDue handles GET /courses/{id}/next-due requests.
// Responds 204 when no assignment qualifies, mirroring "none".
func (h *CourseHandler) GetNextDue(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	course, ok := h.tracker.Course(courseID)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Course not found")
		return
	}

	next, ok := progress.NextDue(course.Assignments, time.Now())
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, next)
}
