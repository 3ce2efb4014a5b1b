package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mfreitas/leetrack/internal/models"
)

// MockProblemRepository is a mock implementation of repository.ProblemRepository
type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Problem), args.Error(1)
}

func (m *MockProblemRepository) Get(ctx context.Context, id string) (*models.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Problem), args.Error(1)
}

func (m *MockProblemRepository) Insert(ctx context.Context, p models.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) Update(ctx context.Context, p models.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProblemRepository) ReplaceAll(ctx context.Context, problems []models.Problem) error {
	args := m.Called(ctx, problems)
	return args.Error(0)
}
