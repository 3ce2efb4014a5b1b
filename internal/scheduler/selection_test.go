package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/scheduler"
)

func newProblem(name string, difficulty models.Difficulty) models.Problem {
	return scheduler.NewProblem(name, "", difficulty, "", now.AddDate(0, 0, -30))
}

// attemptedOn appends a synthetic attempt dated on the given day.
func attemptedOn(p models.Problem, day time.Time, success bool) models.Problem {
	return scheduler.ApplyAttempt(p, models.AttemptInput{Success: success, DifficultyRating: 2}, day)
}

func ids(problems []models.Problem) []string {
	out := make([]string, len(problems))
	for i, p := range problems {
		out[i] = p.ID
	}
	return out
}

func TestSelectDueToday_Empty(t *testing.T) {
	assert.Empty(t, scheduler.SelectDueToday(nil, now))
	assert.Empty(t, scheduler.SelectDueToday([]models.Problem{}, now))
}

func TestSelectDueToday_NewProblemCapAndOrdering(t *testing.T) {
	easy1 := newProblem("easy-1", models.DifficultyEasy)
	easy2 := newProblem("easy-2", models.DifficultyEasy)
	med1 := newProblem("med-1", models.DifficultyMedium)
	med2 := newProblem("med-2", models.DifficultyMedium)
	hard1 := newProblem("hard-1", models.DifficultyHard)

	due := scheduler.SelectDueToday([]models.Problem{med1, hard1, easy1, med2, easy2}, now)

	require.Len(t, due, 2, "never more than two untouched problems")
	assert.Equal(t, []string{easy1.ID, easy2.ID}, ids(due), "easiest problems first, input order among equals")
}

func TestSelectDueToday_FewerNewThanCap(t *testing.T) {
	hard := newProblem("hard", models.DifficultyHard)

	due := scheduler.SelectDueToday([]models.Problem{hard}, now)

	assert.Equal(t, []string{hard.ID}, ids(due))
}

func TestSelectDueToday_InProgressNewProblemFirst(t *testing.T) {
	started := attemptedOn(newProblem("started-hard", models.DifficultyHard), now.Add(-2*time.Hour), false)
	untouched := newProblem("untouched-easy", models.DifficultyEasy)

	due := scheduler.SelectDueToday([]models.Problem{untouched, started}, now)

	require.Len(t, due, 2)
	assert.Equal(t, started.ID, due[0].ID, "a problem already started today outranks untouched ones")
	assert.Equal(t, untouched.ID, due[1].ID)
}

func TestSelectDueToday_NewProblemExhaustedForToday(t *testing.T) {
	p := newProblem("twice-today", models.DifficultyEasy)
	p = attemptedOn(p, now.Add(-3*time.Hour), false)
	p = attemptedOn(p, now.Add(-1*time.Hour), false)

	due := scheduler.SelectDueToday([]models.Problem{p}, now)

	assert.Empty(t, due, "two attempts today exhausts a new problem")
}

func TestSelectDueToday_RepeatDueByCalendarDay(t *testing.T) {
	overdue := attemptedOn(newProblem("overdue", models.DifficultyMedium), now.AddDate(0, 0, -3), false)
	// Failed three days ago, so it came due two days ago and is overdue now.
	dueLater := attemptedOn(newProblem("due-later", models.DifficultyMedium), now.AddDate(0, 0, -1), true)
	dueLater.IntervalDays = 4
	dueLater.NextReviewDate = now.AddDate(0, 0, 3)

	due := scheduler.SelectDueToday([]models.Problem{overdue, dueLater}, now)

	assert.Equal(t, []string{overdue.ID}, ids(due))
}

func TestSelectDueToday_RepeatDueAtEndOfDay(t *testing.T) {
	p := attemptedOn(newProblem("due-today", models.DifficultyMedium), now.AddDate(0, 0, -1), false)
	// Due later today by clock time; day-granularity comparison must still
	// surface it.
	p.NextReviewDate = now.Add(5 * time.Hour)

	due := scheduler.SelectDueToday([]models.Problem{p}, now)

	assert.Equal(t, []string{p.ID}, ids(due))
}

func TestSelectDueToday_RepeatAlreadyReviewedToday(t *testing.T) {
	p := attemptedOn(newProblem("reviewed", models.DifficultyMedium), now.AddDate(0, 0, -2), false)
	p = attemptedOn(p, now.Add(-1*time.Hour), true)

	due := scheduler.SelectDueToday([]models.Problem{p}, now)

	assert.Empty(t, due, "one review today clears a repeat until tomorrow")
}

func TestSelectDueToday_ExcludesMastered(t *testing.T) {
	mastered := newProblem("mastered", models.DifficultyEasy)
	mastered.Status = models.StatusMastered
	mastered.Mastered = true
	mastered.NextReviewDate = now.AddDate(0, 0, -10)

	due := scheduler.SelectDueToday([]models.Problem{mastered}, now)

	assert.Empty(t, due)
}

func TestSelectDueToday_RepeatsBeforeNew(t *testing.T) {
	repeat := attemptedOn(newProblem("repeat", models.DifficultyHard), now.AddDate(0, 0, -2), false)
	fresh := newProblem("fresh", models.DifficultyEasy)

	due := scheduler.SelectDueToday([]models.Problem{fresh, repeat}, now)

	require.Len(t, due, 2)
	assert.Equal(t, []string{repeat.ID, fresh.ID}, ids(due), "repeat group comes first")
}

func TestSelectDueToday_Deterministic(t *testing.T) {
	problems := []models.Problem{
		attemptedOn(newProblem("repeat", models.DifficultyHard), now.AddDate(0, 0, -2), false),
		newProblem("easy", models.DifficultyEasy),
		newProblem("medium", models.DifficultyMedium),
	}

	first := scheduler.SelectDueToday(problems, now)
	second := scheduler.SelectDueToday(problems, now)

	assert.Equal(t, ids(first), ids(second))
}
