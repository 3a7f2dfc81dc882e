package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/coursetrack/coursetrack/internal/domain"
)

// Snapshot is the full persisted state: the ordered course collection with
// assignments nested under each course. It doubles as the import/export file
// format, so its field names are part of the interchange contract.
type Snapshot struct {
	Courses []domain.Course `json:"courses"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{Courses: domain.CloneCourses(s.Courses)}
}

// SnapshotStore is the persistence collaborator of the tracker. The tracker
// loads once at startup and saves the full state after every mutation;
// backends never see individual operations.
type SnapshotStore interface {
	// Load retrieves the most recently saved snapshot.
	// Returns ErrSnapshotNotFound if nothing has been saved yet and
	// ErrInvalidSnapshot if the stored payload is malformed.
	Load(ctx context.Context) (Snapshot, error)

	// Save persists the full snapshot, replacing any previous one.
	Save(ctx context.Context, snap Snapshot) error
}

// DecodeSnapshot parses and validates a snapshot payload. The whole payload
// is validated before anything is returned: the top level must be an object
// whose "courses" field is array-shaped, and every nested entity must decode
// cleanly. Any failure yields ErrInvalidSnapshot and no partial result.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var envelope struct {
		Courses json.RawMessage `json:"courses"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if !isJSONArray(envelope.Courses) {
		return Snapshot{}, fmt.Errorf("%w: courses must be an array", ErrInvalidSnapshot)
	}

	var courses []domain.Course
	if err := json.Unmarshal(envelope.Courses, &courses); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	snap := Snapshot{Courses: courses}
	for i := range snap.Courses {
		if snap.Courses[i].Assignments == nil {
			snap.Courses[i].Assignments = []domain.Assignment{}
		}
	}
	return snap, nil
}

// EncodeSnapshot serializes a snapshot to its interchange form.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	if snap.Courses == nil {
		snap.Courses = []domain.Course{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
