package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack/internal/domain"
)

func TestCreateCourse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid course",
			body:       `{"name":"Algorithms"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"name":"Algorithms","credits":3}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(newTestTracker(t))
			req := httptest.NewRequest(
				http.MethodPost, "/courses", bytes.NewBufferString(tc.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusCreated {
				var course domain.Course
				require.NoError(t, json.NewDecoder(w.Body).Decode(&course))
				assert.Equal(t, "Algorithms", course.Name)
				assert.NotEmpty(t, course.ID)
				assert.NotNil(t, course.Assignments)
			}
		})
	}
}

func TestListCourses(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	router := newTestRouter(tr)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String(), "empty state serializes as an empty array")

	first := tr.AddCourse("Calculus")
	second := tr.AddCourse("Physics")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var courses []domain.Course
	require.NoError(t, json.NewDecoder(w.Body).Decode(&courses))
	require.Len(t, courses, 2)
	assert.Equal(t, first.ID, courses[0].ID, "insertion order preserved")
	assert.Equal(t, second.ID, courses[1].ID)
}

func TestRenameCourse(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	router := newTestRouter(tr)
	course := tr.AddCourse("Chemstry")

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
	}{
		{
			name:       "rename existing course",
			target:     course.ID,
			body:       `{"name":"Chemistry"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown course",
			target:     "no-such-id",
			body:       `{"name":"Chemistry"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing name",
			target:     course.ID,
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(
				http.MethodPut, "/courses/"+tc.target, bytes.NewBufferString(tc.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				var got domain.Course
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, "Chemistry", got.Name)
			}
		})
	}
}

func TestDeleteCourse(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	router := newTestRouter(tr)
	course := tr.AddCourse("History")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/courses/"+course.ID, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Deleting again is a miss, not an error.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/courses/"+course.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMetrics(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	router := newTestRouter(tr)
	course := tr.AddCourse("Statistics")

	grade := 80.0
	_, ok := tr.AddAssignment(course.ID, domain.AssignmentFields{
		Title:  "Midterm",
		Weight: 0.5,
		Status: domain.StatusCompleted,
		Grade:  &grade,
	})
	require.True(t, ok)
	_, ok = tr.AddAssignment(course.ID, domain.AssignmentFields{
		Title:  "Final",
		Weight: 50,
		Status: domain.StatusNotStarted,
	})
	require.True(t, ok)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodGet, "/courses/"+course.ID+"/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var m MetricsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&m))
	assert.InDelta(t, 100, m.TotalWeights, 1e-9)
	assert.InDelta(t, 50, m.CompletedWeighted, 1e-9)
	assert.InDelta(t, 40, m.CurrentMark, 1e-9)
	require.NotNil(t, m.GradeSoFar)
	assert.InDelta(t, 80, *m.GradeSoFar, 1e-9)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodGet, "/courses/no-such-id/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMetricsNoCompletedWork(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	router := newTestRouter(tr)
	course := tr.AddCourse("Biology")
	_, ok := tr.AddAssignment(course.ID, domain.AssignmentFields{Title: "Lab", Weight: 30})
	require.True(t, ok)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodGet, "/courses/"+course.ID+"/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	assert.Equal(t, "null", string(raw["gradeSoFar"]),
		"gradeSoFar is null until completed weight exists")
}

func TestGetNextDue(t *testing.T) {
	t.Parallel()

	tr := newTestTracker(t)
	router := newTestRouter(tr)
	course := tr.AddCourse("Economics")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodGet, "/courses/"+course.ID+"/next-due", nil))
	assert.Equal(t, http.StatusNoContent, w.Code, "no candidates means no content")

	soon := time.Now().AddDate(0, 0, 3)
	later := time.Now().AddDate(0, 0, 30)
	soonBody := fmt.Sprintf(`{"title":"Essay","dueDate":%q,"weight":20}`, soon.Format(domain.DateLayout))
	laterBody := fmt.Sprintf(`{"title":"Exam","dueDate":%q,"weight":40}`, later.Format(domain.DateLayout))

	for _, body := range []string{laterBody, soonBody} {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(
			http.MethodPost, "/courses/"+course.ID+"/assignments", bytes.NewBufferString(body)))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodGet, "/courses/"+course.ID+"/next-due", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var next domain.Assignment
	require.NoError(t, json.NewDecoder(w.Body).Decode(&next))
	assert.Equal(t, "Essay", next.Title, "earliest upcoming due date wins")
}
