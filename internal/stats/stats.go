// Package stats aggregates the problem collection into summary counts and
// calendar activity heatmaps. Compute is a pure function of the collection,
// the supplied "now", and the configured period start.
package stats

import (
	"math"
	"time"

	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/scheduler"
)

const dayFormat = "2006-01-02"

// Heatmap window names in Stats.ActivityHeatmaps.
const (
	WindowRolling = "rolling"
	WindowPeriod  = "period"
)

// Period configures the fixed annual-cycle heatmap window by its start date
// within the year.
type Period struct {
	StartMonth time.Month
	StartDay   int
}

// DefaultPeriod starts the annual cycle on January 1st.
var DefaultPeriod = Period{StartMonth: time.January, StartDay: 1}

// Compute builds summary statistics for the collection as of now. An empty
// collection yields zeroed counts and empty heatmaps, never an error.
func Compute(problems []models.Problem, now time.Time, period Period) models.Stats {
	s := models.Stats{
		TotalProblems:    len(problems),
		ProblemsDueToday: len(scheduler.SelectDueToday(problems, now)),
		ProblemsByDifficulty: map[models.Difficulty]int{
			models.DifficultyEasy:   0,
			models.DifficultyMedium: 0,
			models.DifficultyHard:   0,
		},
		ActivityHeatmaps: make(map[string]models.HeatmapWindow, 2),
	}

	var easeSum float64
	for _, p := range problems {
		if p.Mastered {
			s.MasteredProblems++
		}
		s.ProblemsByDifficulty[p.Difficulty]++
		easeSum += p.EaseFactor
	}
	if len(problems) > 0 {
		s.AverageEaseFactor = math.Round(easeSum/float64(len(problems))*100) / 100
	}

	rollStart := startOfDay(now).AddDate(0, 0, -364)
	s.ActivityHeatmaps[WindowRolling] = heatmap(problems, rollStart, endOfDay(now))

	periodStart, periodEnd := period.window(now)
	s.ActivityHeatmaps[WindowPeriod] = heatmap(problems, periodStart, periodEnd)

	return s
}

// window resolves the annual cycle that contains now: this year's start date,
// or last year's when this year's has not arrived yet.
func (p Period) window(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), p.StartMonth, p.StartDay, 0, 0, 0, 0, now.Location())
	if start.After(now) {
		start = start.AddDate(-1, 0, 0)
	}
	end := endOfDay(start.AddDate(1, 0, -1))
	return start, end
}

// heatmap buckets every attempt by calendar day within [start, end].
func heatmap(problems []models.Problem, start, end time.Time) models.HeatmapWindow {
	days := make(map[string]int)
	for _, p := range problems {
		for _, a := range p.Attempts {
			if a.Date.Before(start) || a.Date.After(end) {
				continue
			}
			days[a.Date.Format(dayFormat)]++
		}
	}
	return models.HeatmapWindow{StartDate: start, EndDate: end, Days: days}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
