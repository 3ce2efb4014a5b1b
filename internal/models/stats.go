package models

import "time"

// HeatmapWindow is a sparse calendar of attempt counts restricted to an
// inclusive date window. Days maps YYYY-MM-DD to the number of attempts logged
// that day; days without attempts are absent.
type HeatmapWindow struct {
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Days      map[string]int `json:"days"`
}

// Stats summarizes the whole problem collection as of a single point in time.
type Stats struct {
	TotalProblems        int                      `json:"total_problems"`
	ProblemsDueToday     int                      `json:"problems_due_today"`
	MasteredProblems     int                      `json:"mastered_problems"`
	ProblemsByDifficulty map[Difficulty]int       `json:"problems_by_difficulty"`
	AverageEaseFactor    float64                  `json:"average_ease_factor"`
	ActivityHeatmaps     map[string]HeatmapWindow `json:"activity_heatmaps"`
}
