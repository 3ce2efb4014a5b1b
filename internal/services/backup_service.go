package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mfreitas/leetrack/internal/errors"
	"github.com/mfreitas/leetrack/internal/logger"
	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/repository"
)

// BackupService handles export and import of the whole problem collection
type BackupService interface {
	Export(ctx context.Context) (*models.Backup, error)
	// Import validates the document shape and replaces the entire
	// collection. Storage is untouched when validation fails.
	Import(ctx context.Context, data []byte) (int, error)
}

type backupService struct {
	repo repository.ProblemRepository
}

// NewBackupService creates a new BackupService
func NewBackupService(repo repository.ProblemRepository) BackupService {
	return &backupService{repo: repo}
}

func (s *backupService) Export(ctx context.Context) (*models.Backup, error) {
	log := logger.FromContext(ctx)
	log.Debug("exporting collection")

	problems, err := s.repo.List(ctx, models.ProblemFilter{})
	if err != nil {
		log.Error("failed to load problems: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if problems == nil {
		problems = []models.Problem{}
	}

	return &models.Backup{
		Version:    models.BackupVersion,
		ExportedAt: time.Now().UTC(),
		Problems:   problems,
	}, nil
}

func (s *backupService) Import(ctx context.Context, data []byte) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("importing backup: %d bytes", len(data))

	problems, err := validateBackup(data)
	if err != nil {
		log.Warn("rejected backup: %v", err)
		return 0, errors.NewInvalidBackupError(err)
	}

	if err := s.repo.ReplaceAll(ctx, problems); err != nil {
		log.Error("failed to replace collection: %v", err)
		return 0, errors.NewInternalError(err)
	}

	log.Info("backup imported: %d problems", len(problems))
	return len(problems), nil
}

// validateBackup checks the document shape: version must be a number and
// problems must be an array. Unknown versions are accepted as long as the
// shape matches.
func validateBackup(data []byte) ([]models.Problem, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	versionRaw, ok := raw["version"]
	if !ok {
		return nil, fmt.Errorf("missing version field")
	}
	var version float64
	if err := json.Unmarshal(versionRaw, &version); err != nil {
		return nil, fmt.Errorf("version is not a number")
	}

	problemsRaw, ok := raw["problems"]
	if !ok {
		return nil, fmt.Errorf("missing problems field")
	}
	trimmed := bytes.TrimSpace(problemsRaw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("problems is not an array")
	}
	var problems []models.Problem
	if err := json.Unmarshal(problemsRaw, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}
