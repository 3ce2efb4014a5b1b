package api

import (
	"io"
	"net/http"

	"github.com/mfreitas/leetrack/internal/errors"
)

// GET /api/export
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	backup, err := s.BackupService.Export(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=leetrack-export.json")
	respondJSON(w, http.StatusOK, backup)
}

// POST /api/import
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("failed to read request body"))
		return
	}

	count, err := s.BackupService.Import(r.Context(), data)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"imported": count})
}
