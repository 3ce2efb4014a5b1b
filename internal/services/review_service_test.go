package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mfreitas/leetrack/internal/errors"
	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/scheduler"
	"github.com/mfreitas/leetrack/internal/services"
	"github.com/mfreitas/leetrack/internal/testutil/mocks"
)

var now = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

func TestRecordAttempt_UpdatesScheduling(t *testing.T) {
	repo := new(mocks.MockProblemRepository)
	svc := services.NewReviewService(repo)

	p := scheduler.NewProblem("Two Sum", "", models.DifficultyEasy, "arrays", now)
	p.IntervalDays = 4
	p.Status = models.StatusLearning

	repo.On("Get", mock.Anything, p.ID).Return(&p, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("models.Problem")).Return(nil)

	updated, err := svc.RecordAttempt(context.Background(), p.ID, models.AttemptInput{Success: true, DifficultyRating: 1})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 8, updated.IntervalDays, "interval doubles on success")
	assert.Len(t, updated.Attempts, 1)
	assert.Equal(t, models.StatusReviewing, updated.Status)

	repo.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(got models.Problem) bool {
		return got.ID == p.ID && got.IntervalDays == 8 && len(got.Attempts) == 1
	}))
}

func TestRecordAttempt_NotFound(t *testing.T) {
	repo := new(mocks.MockProblemRepository)
	svc := services.NewReviewService(repo)

	repo.On("Get", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.RecordAttempt(context.Background(), "missing", models.AttemptInput{Success: true})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDueToday_DelegatesToSelection(t *testing.T) {
	repo := new(mocks.MockProblemRepository)
	svc := services.NewReviewService(repo)

	fresh := scheduler.NewProblem("fresh", "", models.DifficultyEasy, "", time.Now().AddDate(0, 0, -3))
	mastered := scheduler.NewProblem("done", "", models.DifficultyHard, "", time.Now().AddDate(0, 0, -3))
	mastered.Status = models.StatusMastered
	mastered.Mastered = true

	repo.On("List", mock.Anything, models.ProblemFilter{}).Return([]models.Problem{fresh, mastered}, nil)

	due, err := svc.DueToday(context.Background())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, fresh.ID, due[0].ID)
}
