package services

import (
	"context"
	"time"

	"github.com/mfreitas/leetrack/internal/errors"
	"github.com/mfreitas/leetrack/internal/logger"
	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/repository"
	"github.com/mfreitas/leetrack/internal/stats"
)

// StatsService handles statistics-related business logic
type StatsService interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	repo   repository.ProblemRepository
	period stats.Period
}

// NewStatsService creates a new StatsService
func NewStatsService(repo repository.ProblemRepository, period stats.Period) StatsService {
	return &statsService{repo: repo, period: period}
}

func (s *statsService) GetStats(ctx context.Context) (*models.Stats, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing stats")

	problems, err := s.repo.List(ctx, models.ProblemFilter{})
	if err != nil {
		log.Error("failed to load problems: %v", err)
		return nil, errors.NewInternalError(err)
	}

	result := stats.Compute(problems, time.Now(), s.period)
	return &result, nil
}
