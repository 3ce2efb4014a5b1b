package api

import "net/http"

// GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	result, err := s.StatsService.GetStats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
