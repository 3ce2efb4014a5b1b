package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mfreitas/leetrack/internal/errors"
	"github.com/mfreitas/leetrack/internal/logger"
	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/repository"
	"github.com/mfreitas/leetrack/internal/scheduler"
)

// ProblemService handles problem-collection business logic
type ProblemService interface {
	CreateProblem(ctx context.Context, name, url string, difficulty models.Difficulty, category string) (*models.Problem, error)
	GetProblem(ctx context.Context, id string) (*models.Problem, error)
	ListProblems(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error)
	// EditProblem updates descriptive fields only; scheduling state is
	// never touched by an edit.
	EditProblem(ctx context.Context, id string, edit models.ProblemEdit) (*models.Problem, error)
	DeleteProblem(ctx context.Context, id string) error
}

type problemService struct {
	repo repository.ProblemRepository
}

// NewProblemService creates a new ProblemService
func NewProblemService(repo repository.ProblemRepository) ProblemService {
	return &problemService{repo: repo}
}

func (s *problemService) CreateProblem(ctx context.Context, name, url string, difficulty models.Difficulty, category string) (*models.Problem, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating problem: name=%s, difficulty=%s", name, difficulty)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}
	if !difficulty.Valid() {
		return nil, errors.NewValidationError("difficulty", "must be easy, medium or hard")
	}

	p := scheduler.NewProblem(name, url, difficulty, category, time.Now())
	if err := s.repo.Insert(ctx, p); err != nil {
		log.Error("failed to insert problem: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("problem created: id=%s, name=%s", p.ID, p.Name)
	return &p, nil
}

func (s *problemService) GetProblem(ctx context.Context, id string) (*models.Problem, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting problem: id=%s", id)

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error("failed to get problem: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("problem", id)
	}
	return p, nil
}

func (s *problemService) ListProblems(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing problems")

	problems, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return problems, nil
}

func (s *problemService) EditProblem(ctx context.Context, id string, edit models.ProblemEdit) (*models.Problem, error) {
	log := logger.FromContext(ctx)
	log.Debug("editing problem: id=%s", id)

	edit.Name = strings.TrimSpace(edit.Name)
	if edit.Name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}
	if !edit.Difficulty.Valid() {
		return nil, errors.NewValidationError("difficulty", "must be easy, medium or hard")
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error("failed to get problem: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("problem", id)
	}

	p.Name = edit.Name
	p.URL = edit.URL
	p.Difficulty = edit.Difficulty
	p.Category = edit.Category

	if err := s.repo.Update(ctx, *p); err != nil {
		log.Error("failed to update problem: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return p, nil
}

func (s *problemService) DeleteProblem(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting problem: id=%s", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("problem", id)
		}
		log.Error("failed to delete problem: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("problem deleted: id=%s", id)
	return nil
}
