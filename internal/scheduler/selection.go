package scheduler

import (
	"sort"
	"time"

	"github.com/mfreitas/leetrack/internal/models"
)

// MaxNewPerDay caps how many not-yet-started problems surface in a single day.
const MaxNewPerDay = 2

// SelectDueToday returns the ordered subset of problems to review today.
//
// Repeat candidates (attempted on an earlier day, due by calendar day, not yet
// reviewed today) are included unconditionally and come first. New candidates
// (no attempts before today, fewer than two attempts today) follow, with
// problems already started today ahead of untouched ones, then easier
// difficulties first, capped at MaxNewPerDay. Mastered problems never appear.
// Day comparisons use local midnight-to-midnight boundaries.
func SelectDueToday(problems []models.Problem, now time.Time) []models.Problem {
	today := dayOf(now)

	var repeats, fresh []models.Problem
	attemptsToday := make(map[string]int)

	for _, p := range problems {
		if p.Mastered || p.Status == models.StatusMastered {
			continue
		}

		todayCount := countAttemptsOn(p, today)
		attemptsToday[p.ID] = todayCount
		priorCount := len(p.Attempts) - todayCount

		if priorCount > 0 {
			if todayCount < 1 && !dayOf(p.NextReviewDate).After(today) {
				repeats = append(repeats, p)
			}
			continue
		}

		if todayCount < MaxNewPerDay {
			fresh = append(fresh, p)
		}
	}

	// In-progress problems (one attempt already today) outrank untouched
	// ones, then easier problems come first. Stable to keep input order
	// among equals.
	sort.SliceStable(fresh, func(i, j int) bool {
		si, sj := attemptsToday[fresh[i].ID] > 0, attemptsToday[fresh[j].ID] > 0
		if si != sj {
			return si
		}
		return fresh[i].Difficulty.Priority() < fresh[j].Difficulty.Priority()
	})
	if len(fresh) > MaxNewPerDay {
		fresh = fresh[:MaxNewPerDay]
	}

	// De-duplicate by id, first occurrence wins, order preserved.
	seen := make(map[string]struct{}, len(repeats)+len(fresh))
	out := make([]models.Problem, 0, len(repeats)+len(fresh))
	for _, p := range append(repeats, fresh...) {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func countAttemptsOn(p models.Problem, day time.Time) int {
	n := 0
	for _, a := range p.Attempts {
		if dayOf(a.Date).Equal(day) {
			n++
		}
	}
	return n
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
