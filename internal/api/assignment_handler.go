package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coursetrack/coursetrack/internal/api/shared"
	"github.com/coursetrack/coursetrack/internal/domain"
	"github.com/coursetrack/coursetrack/internal/platform/logger"
	"github.com/coursetrack/coursetrack/internal/tracker"
)

// AssignmentHandler handles assignment-related HTTP requests.
type AssignmentHandler struct {
	tracker *tracker.Tracker
	logger  *slog.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(t *tracker.Tracker, logger *slog.Logger) *AssignmentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AssignmentHandler")
	}

	return &AssignmentHandler{
		tracker: t,
		logger:  logger.With(slog.String("component", "assignment_handler")),
	}
}

// CreateAssignment handles POST /courses/{id}/assignments requests.
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	courseID := chi.URLParam(r, "id")

	var req CreateAssignmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid assignment fields")
		return
	}

	fields, err := req.toFields()
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	assignment, ok := h.tracker.AddAssignment(courseID, fields)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Course not found")
		return
	}

	log.Debug("assignment created",
		slog.String("course_id", courseID),
		slog.String("assignment_id", assignment.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, assignment)
}

// UpdateAssignment handles PATCH /courses/{courseID}/assignments/{assignmentID}
// requests. Only fields present in the body are touched; explicit nulls clear
// the optional due date and grade.
func (h *AssignmentHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	courseID := chi.URLParam(r, "courseID")
	assignmentID := chi.URLParam(r, "assignmentID")

	var req UpdateAssignmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	patch, err := patchFromRequest(req)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	assignment, ok := h.tracker.UpdateAssignment(courseID, assignmentID, patch)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Assignment not found")
		return
	}

	log.Debug("assignment updated",
		slog.String("course_id", courseID),
		slog.String("assignment_id", assignmentID))
	shared.RespondWithJSON(w, r, http.StatusOK, assignment)
}

// DeleteAssignment handles DELETE /courses/{courseID}/assignments/{assignmentID}
// requests.
func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	courseID := chi.URLParam(r, "courseID")
	assignmentID := chi.URLParam(r, "assignmentID")

	if !h.tracker.RemoveAssignment(courseID, assignmentID) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Assignment not found")
		return
	}

	log.Debug("assignment deleted",
		slog.String("course_id", courseID),
		slog.String("assignment_id", assignmentID))
	w.WriteHeader(http.StatusNoContent)
}

// patchFromRequest validates the boundary representation and converts it to
// a domain patch. Semantic checks (date format, known status, grade range,
// non-negative weight) live here so the core never has to reject anything.
func patchFromRequest(req UpdateAssignmentRequest) (domain.AssignmentPatch, error) {
	var patch domain.AssignmentPatch

	if req.Title.Set {
		title := ""
		if req.Title.Value != nil {
			title = *req.Title.Value
		}
		patch.Title = &title
	}

	if req.DueDate.Set {
		if req.DueDate.Value == nil {
			patch.ClearDueDate = true
		} else {
			due, err := domain.ParseDate(*req.DueDate.Value)
			if err != nil {
				return domain.AssignmentPatch{}, err
			}
			patch.DueDate = &due
		}
	}

	if req.Weight.Set {
		if req.Weight.Value == nil || *req.Weight.Value < 0 {
			return domain.AssignmentPatch{}, domain.ErrInvalidWeight
		}
		patch.Weight = req.Weight.Value
	}

	if req.Status.Set {
		if req.Status.Value == nil || !domain.Status(*req.Status.Value).IsValid() {
			return domain.AssignmentPatch{}, domain.ErrInvalidStatus
		}
		status := domain.Status(*req.Status.Value)
		patch.Status = &status
	}

	if req.Grade.Set {
		if req.Grade.Value == nil {
			patch.ClearGrade = true
		} else if *req.Grade.Value < 0 || *req.Grade.Value > 100 {
			return domain.AssignmentPatch{}, domain.ErrInvalidGrade
		} else {
			patch.Grade = req.Grade.Value
		}
	}

	return patch, nil
}
