// Package scheduler implements the spaced-repetition engine: applying a
// recorded attempt to a problem's scheduling state and selecting the problems
// due for review on a given day. All functions are pure; "now" is passed in by
// the caller and read exactly once per call.
package scheduler

import (
	"time"

	"github.com/mfreitas/leetrack/internal/id"
	"github.com/mfreitas/leetrack/internal/models"
)

const (
	// InitialEaseFactor is the ease assigned to freshly created problems.
	InitialEaseFactor = 2.5
	// MinEaseFactor is the floor the ease factor never drops below.
	MinEaseFactor = 1.3
	// MasteryIntervalDays is the review interval at which a problem is
	// considered mastered. Mastery is sticky: it never reverts.
	MasteryIntervalDays = 30
)

// NewProblem creates a problem with default scheduling state: never attempted,
// due for its first look tomorrow.
func NewProblem(name, url string, difficulty models.Difficulty, category string, now time.Time) models.Problem {
	return models.Problem{
		ID:             id.New(),
		Name:           name,
		URL:            url,
		Difficulty:     difficulty,
		Category:       category,
		Status:         models.StatusNew,
		Attempts:       []models.Attempt{},
		NextReviewDate: now.AddDate(0, 0, 1),
		EaseFactor:     InitialEaseFactor,
		IntervalDays:   0,
		CreatedAt:      now,
	}
}

// ApplyAttempt records one attempt against a problem and returns the updated
// record. The input problem is not mutated; the returned problem carries the
// appended attempt (with id and date assigned here) and recomputed scheduling
// fields. Out-of-range difficulty ratings are clamped, never rejected.
func ApplyAttempt(p models.Problem, in models.AttemptInput, now time.Time) models.Problem {
	rating := clamp(in.DifficultyRating, 0, 5)

	// A failed attempt scores zero regardless of perceived difficulty;
	// otherwise an easier-feeling solve earns a higher quality.
	quality := 0
	if in.Success {
		quality = clamp(5-rating, 0, 5)
	}

	ease := p.EaseFactor + (0.1 - float64(5-quality)*(0.08+float64(5-quality)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	// Exponential doubling with instant reset: failure restarts at one day,
	// success doubles the current interval (first success gives one day).
	interval := 1
	if quality > 0 && p.IntervalDays > 0 {
		interval = p.IntervalDays * 2
	}

	attempts := make([]models.Attempt, len(p.Attempts), len(p.Attempts)+1)
	copy(attempts, p.Attempts)
	p.Attempts = append(attempts, models.Attempt{
		ID:               id.New(),
		Date:             now,
		Success:          in.Success,
		DifficultyRating: rating,
		Notes:            in.Notes,
	})

	p.Status, p.Mastered = transition(p.Status, p.Mastered, interval)
	p.EaseFactor = ease
	p.IntervalDays = interval
	p.NextReviewDate = now.AddDate(0, 0, interval)
	reviewed := now
	p.LastReviewed = &reviewed
	return p
}

// transition is the single writer for the status/mastered pair, which keeps
// the one-way mastered transition structurally enforced.
func transition(prev models.Status, mastered bool, interval int) (models.Status, bool) {
	if mastered || prev == models.StatusMastered || interval >= MasteryIntervalDays {
		return models.StatusMastered, true
	}
	if prev == models.StatusNew {
		return models.StatusLearning, false
	}
	return models.StatusReviewing, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
