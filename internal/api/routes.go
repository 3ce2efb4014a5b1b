package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/problems", func(r chi.Router) {
			r.Get("/", s.handleListProblems)
			r.Post("/", s.handleCreateProblem)
			r.Get("/{id}", s.handleGetProblem)
			r.Put("/{id}", s.handleEditProblem)
			r.Delete("/{id}", s.handleDeleteProblem)
			r.Post("/{id}/attempts", s.handleRecordAttempt)
		})

		r.Get("/review/today", s.handleDueToday)
		r.Get("/stats", s.handleStats)
		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)
	})

	return r
}
