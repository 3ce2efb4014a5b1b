package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfreitas/leetrack/internal/errors"
	"github.com/mfreitas/leetrack/internal/models"
)

type createProblemRequest struct {
	Name       string            `json:"name"`
	URL        string            `json:"url"`
	Difficulty models.Difficulty `json:"difficulty"`
	Category   string            `json:"category"`
}

// GET /api/problems
func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ProblemFilter{
		Status:     models.Status(q.Get("status")),
		Difficulty: models.Difficulty(q.Get("difficulty")),
		Category:   q.Get("category"),
		Search:     q.Get("search"),
	}

	problems, err := s.ProblemService.ListProblems(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if problems == nil {
		problems = []models.Problem{}
	}
	respondJSON(w, http.StatusOK, problems)
}

// POST /api/problems
func (s *Server) handleCreateProblem(w http.ResponseWriter, r *http.Request) {
	var req createProblemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	p, err := s.ProblemService.CreateProblem(r.Context(), req.Name, req.URL, req.Difficulty, req.Category)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// GET /api/problems/{id}
func (s *Server) handleGetProblem(w http.ResponseWriter, r *http.Request) {
	p, err := s.ProblemService.GetProblem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// PUT /api/problems/{id}
func (s *Server) handleEditProblem(w http.ResponseWriter, r *http.Request) {
	var edit models.ProblemEdit
	if err := decodeJSON(r, &edit); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	p, err := s.ProblemService.EditProblem(r.Context(), chi.URLParam(r, "id"), edit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// DELETE /api/problems/{id}
func (s *Server) handleDeleteProblem(w http.ResponseWriter, r *http.Request) {
	if err := s.ProblemService.DeleteProblem(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
