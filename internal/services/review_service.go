package services

import (
	"context"
	"time"

	"github.com/mfreitas/leetrack/internal/errors"
	"github.com/mfreitas/leetrack/internal/logger"
	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/repository"
	"github.com/mfreitas/leetrack/internal/scheduler"
)

// ReviewService handles attempt recording and due-today selection
type ReviewService interface {
	RecordAttempt(ctx context.Context, problemID string, input models.AttemptInput) (*models.Problem, error)
	DueToday(ctx context.Context) ([]models.Problem, error)
}

type reviewService struct {
	repo repository.ProblemRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(repo repository.ProblemRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) RecordAttempt(ctx context.Context, problemID string, input models.AttemptInput) (*models.Problem, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording attempt: problem_id=%s, success=%v, rating=%d", problemID, input.Success, input.DifficultyRating)

	p, err := s.repo.Get(ctx, problemID)
	if err != nil {
		log.Error("failed to get problem: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("problem", problemID)
	}

	// One clock read per call keeps the computed schedule internally
	// consistent across day boundaries.
	updated := scheduler.ApplyAttempt(*p, input, time.Now())

	log.Debug("applied attempt, new interval=%d days, ease_factor=%.2f, status=%s",
		updated.IntervalDays, updated.EaseFactor, updated.Status)

	if err := s.repo.Update(ctx, updated); err != nil {
		log.Error("failed to persist updated problem: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &updated, nil
}

func (s *reviewService) DueToday(ctx context.Context) ([]models.Problem, error) {
	log := logger.FromContext(ctx)
	log.Debug("selecting problems due today")

	problems, err := s.repo.List(ctx, models.ProblemFilter{})
	if err != nil {
		log.Error("failed to load problems: %v", err)
		return nil, errors.NewInternalError(err)
	}

	due := scheduler.SelectDueToday(problems, time.Now())
	log.Debug("%d of %d problems due today", len(due), len(problems))
	return due, nil
}
