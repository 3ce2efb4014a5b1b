package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/repository/sqlite"
	"github.com/mfreitas/leetrack/internal/scheduler"
	"github.com/mfreitas/leetrack/internal/testutil"
)

var now = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

func TestProblemRepository_InsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewProblemRepository(db)
	ctx := context.Background()

	p := scheduler.NewProblem("Two Sum", "https://leetcode.com/problems/two-sum", models.DifficultyEasy, "arrays", now)
	require.NoError(t, repo.Insert(ctx, p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Two Sum", got.Name)
	assert.Equal(t, models.DifficultyEasy, got.Difficulty)
	assert.Equal(t, "arrays", got.Category)
	assert.Equal(t, models.StatusNew, got.Status)
	assert.Equal(t, 2.5, got.EaseFactor)
	assert.Equal(t, 0, got.IntervalDays)
	assert.False(t, got.Mastered)
	assert.Nil(t, got.LastReviewed)
	assert.Empty(t, got.Attempts)
	assert.True(t, got.NextReviewDate.Equal(p.NextReviewDate))
}

func TestProblemRepository_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewProblemRepository(db)

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProblemRepository_UpdateAppendsAttempts(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewProblemRepository(db)
	ctx := context.Background()

	p := scheduler.NewProblem("LRU Cache", "", models.DifficultyMedium, "design", now)
	require.NoError(t, repo.Insert(ctx, p))

	p = scheduler.ApplyAttempt(p, models.AttemptInput{Success: true, DifficultyRating: 2, Notes: "hash map + list"}, now)
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Attempts, 1)
	assert.Equal(t, p.Attempts[0].ID, got.Attempts[0].ID)
	assert.True(t, got.Attempts[0].Success)
	assert.Equal(t, "hash map + list", got.Attempts[0].Notes)
	require.NotNil(t, got.LastReviewed)

	// Second update carries the full log; already stored attempts stay put.
	p = scheduler.ApplyAttempt(p, models.AttemptInput{Success: false, DifficultyRating: 4}, now.AddDate(0, 0, 1))
	require.NoError(t, repo.Update(ctx, p))

	got, err = repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Attempts, 2)
	assert.Equal(t, p.Attempts[0].ID, got.Attempts[0].ID, "attempt log order preserved")
	assert.Equal(t, p.Attempts[1].ID, got.Attempts[1].ID)
}

func TestProblemRepository_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewProblemRepository(db)

	p := scheduler.NewProblem("ghost", "", models.DifficultyEasy, "", now)
	err := repo.Update(context.Background(), p)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProblemRepository_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewProblemRepository(db)
	ctx := context.Background()

	easy := scheduler.NewProblem("Two Sum", "", models.DifficultyEasy, "arrays", now)
	med := scheduler.NewProblem("Coin Change", "", models.DifficultyMedium, "dp", now)
	hard := scheduler.NewProblem("Word Ladder II", "", models.DifficultyHard, "graphs", now)
	for _, p := range []models.Problem{easy, med, hard} {
		require.NoError(t, repo.Insert(ctx, p))
	}

	all, err := repo.List(ctx, models.ProblemFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byDifficulty, err := repo.List(ctx, models.ProblemFilter{Difficulty: models.DifficultyMedium})
	require.NoError(t, err)
	require.Len(t, byDifficulty, 1)
	assert.Equal(t, med.ID, byDifficulty[0].ID)

	byCategory, err := repo.List(ctx, models.ProblemFilter{Category: "graphs"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, hard.ID, byCategory[0].ID)

	bySearch, err := repo.List(ctx, models.ProblemFilter{Search: "ladder"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, hard.ID, bySearch[0].ID)
}

func TestProblemRepository_ListOrdersByNextReview(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewProblemRepository(db)
	ctx := context.Background()

	later := scheduler.NewProblem("later", "", models.DifficultyEasy, "", now)
	later.NextReviewDate = now.AddDate(0, 0, 10)
	sooner := scheduler.NewProblem("sooner", "", models.DifficultyEasy, "", now)
	sooner.NextReviewDate = now.AddDate(0, 0, 1)

	require.NoError(t, repo.Insert(ctx, later))
	require.NoError(t, repo.Insert(ctx, sooner))

	all, err := repo.List(ctx, models.ProblemFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, sooner.ID, all[0].ID)
	assert.Equal(t, later.ID, all[1].ID)
}

func TestProblemRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewProblemRepository(db)
	ctx := context.Background()

	p := scheduler.NewProblem("gone", "", models.DifficultyEasy, "", now)
	p = scheduler.ApplyAttempt(p, models.AttemptInput{Success: true, DifficultyRating: 1}, now)
	require.NoError(t, repo.Insert(ctx, p))

	require.NoError(t, repo.Delete(ctx, p.ID))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Attempts are removed with their problem.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM attempts`).Scan(&count))
	assert.Equal(t, 0, count)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), sql.ErrNoRows)
}

func TestProblemRepository_ReplaceAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewProblemRepository(db)
	ctx := context.Background()

	old := scheduler.NewProblem("old", "", models.DifficultyEasy, "", now)
	require.NoError(t, repo.Insert(ctx, old))

	a := scheduler.NewProblem("a", "", models.DifficultyMedium, "", now)
	a = scheduler.ApplyAttempt(a, models.AttemptInput{Success: true, DifficultyRating: 2}, now)
	b := scheduler.NewProblem("b", "", models.DifficultyHard, "", now)

	require.NoError(t, repo.ReplaceAll(ctx, []models.Problem{a, b}))

	all, err := repo.List(ctx, models.ProblemFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	got, err := repo.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "previous collection is gone")

	gotA, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, gotA)
	assert.Len(t, gotA.Attempts, 1, "imported attempt logs survive")
}
