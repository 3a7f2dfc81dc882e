package progress

import "github.com/coursetrack/coursetrack/internal/domain"

// Metrics holds the aggregate progress figures for one course. All four
// values are recomputed fresh from the current assignment list on every call;
// nothing is cached on the entities.
type Metrics struct {
	// TotalWeights is the sum of normalized weights over all assignments.
	// It may exceed 100 when the user's weights are misconfigured; the
	// engine surfaces the number as-is and leaves warning the user to the
	// display layer.
	TotalWeights float64

	// CompletedWeighted is the sum of normalized weights over completed
	// assignments, graded or not: how much of the course's weight is
	// behind you.
	CompletedWeighted float64

	// CurrentMark is the projected overall grade if every ungraded
	// assignment scored zero. Each term is bounded by its normalized
	// weight, so CurrentMark never exceeds TotalWeights.
	CurrentMark float64

	// GradeSoFar is the weighted average over completed work, nil until at
	// least one assignment is completed. A completed-but-ungraded
	// assignment still consumes weight in the denominator without adding
	// to the numerator, deliberately depressing the average.
	GradeSoFar *float64
}

// ComputeMetrics derives the aggregate progress figures for a course.
// Out-of-range grades are tolerated and simply distort the numbers.
func ComputeMetrics(course domain.Course) Metrics {
	var m Metrics
	var completedGradedMark float64

	for _, a := range course.Assignments {
		weight := NormalizeWeight(a.Weight)
		m.TotalWeights += weight

		grade := 0.0
		if a.Grade != nil {
			grade = *a.Grade
		}
		m.CurrentMark += weight * grade / 100

		if a.Status == domain.StatusCompleted {
			m.CompletedWeighted += weight
			if a.Grade != nil {
				completedGradedMark += weight * *a.Grade / 100
			}
		}
	}

	if m.CompletedWeighted > 0 {
		gradeSoFar := completedGradedMark / m.CompletedWeighted * 100
		m.GradeSoFar = &gradeSoFar
	}

	return m
}
