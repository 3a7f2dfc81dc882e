package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack/internal/domain"
)

func sampleSnapshot() Snapshot {
	due := domain.NewDate(2025, time.April, 1)
	grade := 82.5
	return Snapshot{
		Courses: []domain.Course{
			{
				ID:   "course-1",
				Name: "Databases",
				Assignments: []domain.Assignment{
					{ID: "a-1", Title: "Schema design", DueDate: &due, Weight: 0.3, Status: domain.StatusCompleted, Grade: &grade},
					{ID: "a-2", Title: "", Weight: 70, Status: domain.StatusNotStarted},
				},
			},
			{ID: "course-2", Name: "Networks", Assignments: []domain.Assignment{}},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	original := sampleSnapshot()
	data, err := EncodeSnapshot(original)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)

	// Field-for-field equality with order preserved.
	assert.Equal(t, original, decoded)

	// Optional fields survive as explicit nulls.
	assert.Contains(t, string(data), `"dueDate":null`)
	assert.Contains(t, string(data), `"dueDate":"2025-04-01"`)
	assert.Contains(t, string(data), `"grade":null`)
}

func TestDecodeSnapshotRejectsMalformedPayloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{"courses": [`},
		{"courses is a number", `{"courses": 5}`},
		{"courses is an object", `{"courses": {"id": "x"}}`},
		{"courses is null", `{"courses": null}`},
		{"courses missing", `{}`},
		{"top level is an array", `[]`},
		{"course with bad date", `{"courses": [{"id": "c", "name": "n", "assignments": [{"id": "a", "dueDate": "01/02/2025"}]}]}`},
		{"course with bad grade type", `{"courses": [{"id": "c", "name": "n", "assignments": [{"id": "a", "grade": "ninety"}]}]}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeSnapshot([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestDecodeSnapshotNormalizesMissingAssignmentLists(t *testing.T) {
	t.Parallel()

	snap, err := DecodeSnapshot([]byte(`{"courses": [{"id": "c", "name": "n"}]}`))
	require.NoError(t, err)
	require.Len(t, snap.Courses, 1)
	assert.NotNil(t, snap.Courses[0].Assignments)
	assert.Empty(t, snap.Courses[0].Assignments)
}

func TestSnapshotClone(t *testing.T) {
	t.Parallel()

	original := sampleSnapshot()
	clone := original.Clone()

	clone.Courses[0].Name = "changed"
	clone.Courses[0].Assignments[0].Title = "changed"
	*clone.Courses[0].Assignments[0].Grade = 1

	assert.Equal(t, "Databases", original.Courses[0].Name)
	assert.Equal(t, "Schema design", original.Courses[0].Assignments[0].Title)
	assert.Equal(t, 82.5, *original.Courses[0].Assignments[0].Grade)
}
