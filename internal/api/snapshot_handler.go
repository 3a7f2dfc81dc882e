package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/coursetrack/coursetrack/internal/api/shared"
	"github.com/coursetrack/coursetrack/internal/platform/logger"
	"github.com/coursetrack/coursetrack/internal/store"
	"github.com/coursetrack/coursetrack/internal/tracker"
)

// maxSnapshotBytes bounds the import payload size.
const maxSnapshotBytes = 10 << 20

// SnapshotHandler handles whole-state export and import requests.
type SnapshotHandler struct {
	tracker *tracker.Tracker
	logger  *slog.Logger
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(t *tracker.Tracker, logger *slog.Logger) *SnapshotHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SnapshotHandler")
	}

	return &SnapshotHandler{
		tracker: t,
		logger:  logger.With(slog.String("component", "snapshot_handler")),
	}
}

// ExportSnapshot handles GET /snapshot requests. The response body is the
// same document the persistence layer writes, so it can be re-imported as is.
func (h *SnapshotHandler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.tracker.Snapshot()
	shared.RespondWithJSON(w, r, http.StatusOK, snap)
}

// ImportSnapshot handles POST /snapshot requests. The incoming document is
// validated in full before any state is replaced; a malformed payload leaves
// the current state untouched.
func (h *SnapshotHandler) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		log.Warn("failed to read snapshot body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	snap, err := store.DecodeSnapshot(body)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.tracker.Import(snap)

	courseCount := len(snap.Courses)
	log.Info("snapshot imported", slog.Int("course_count", courseCount))
	shared.RespondWithJSON(w, r, http.StatusOK, h.tracker.Snapshot())
}
