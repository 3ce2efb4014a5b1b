package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfreitas/leetrack/internal/errors"
	"github.com/mfreitas/leetrack/internal/models"
)

// POST /api/problems/{id}/attempts
func (s *Server) handleRecordAttempt(w http.ResponseWriter, r *http.Request) {
	var input models.AttemptInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	p, err := s.ReviewService.RecordAttempt(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// GET /api/review/today
func (s *Server) handleDueToday(w http.ResponseWriter, r *http.Request) {
	due, err := s.ReviewService.DueToday(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if due == nil {
		due = []models.Problem{}
	}
	respondJSON(w, http.StatusOK, due)
}
