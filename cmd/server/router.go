package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/coursetrack/coursetrack/internal/api"
	apiMiddleware "github.com/coursetrack/coursetrack/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. When owner authentication is configured, everything except
// login and the health check requires a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	courseHandler := api.NewCourseHandler(app.tracker, app.logger)
	assignmentHandler := api.NewAssignmentHandler(app.tracker, app.logger)
	snapshotHandler := api.NewSnapshotHandler(app.tracker, app.logger)

	r.Route("/api", func(r chi.Router) {
		if app.config.Auth.AuthEnabled() {
			authHandler := api.NewAuthHandler(
				app.config.Auth.PasswordHash,
				app.passwordVerifier,
				app.jwtService,
				app.logger,
			)
			r.Post("/auth/login", authHandler.Login)

			authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				registerTrackerRoutes(r, courseHandler, assignmentHandler, snapshotHandler)
			})
			return
		}

		registerTrackerRoutes(r, courseHandler, assignmentHandler, snapshotHandler)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// registerTrackerRoutes mounts the course, assignment, and snapshot routes.
func registerTrackerRoutes(
	r chi.Router,
	courses *api.CourseHandler,
	assignments *api.AssignmentHandler,
	snapshots *api.SnapshotHandler,
) {
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
}
