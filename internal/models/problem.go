package models

import "time"

// Difficulty is the problem's difficulty tier as labeled by the problem source.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Priority orders difficulties for new-problem selection: easier first.
func (d Difficulty) Priority() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 4
	}
}

// Valid reports whether d is one of the known difficulty tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Status is the problem's progress label. It moves new -> learning -> reviewing
// and transitions one-way into mastered.
type Status string

const (
	StatusNew       Status = "new"
	StatusLearning  Status = "learning"
	StatusReviewing Status = "reviewing"
	StatusMastered  Status = "mastered"
)

// Attempt is one logged practice event. ID and Date are assigned by the
// scheduler when the attempt is recorded and never change afterwards.
type Attempt struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	Success          bool      `json:"success"`
	DifficultyRating int       `json:"difficulty_rating"`
	Notes            string    `json:"notes,omitempty"`
}

// AttemptInput is the caller-supplied part of an attempt.
type AttemptInput struct {
	Success          bool   `json:"success"`
	DifficultyRating int    `json:"difficulty_rating"`
	Notes            string `json:"notes,omitempty"`
}

// Problem is one tracked practice item. Attempts is an append-only log in
// chronological recording order; scheduling fields are written only by the
// scheduler package.
type Problem struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	URL            string     `json:"url,omitempty"`
	Difficulty     Difficulty `json:"difficulty"`
	Category       string     `json:"category,omitempty"`
	Status         Status     `json:"status"`
	Attempts       []Attempt  `json:"attempts"`
	NextReviewDate time.Time  `json:"next_review_date"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	LastReviewed   *time.Time `json:"last_reviewed,omitempty"`
	Mastered       bool       `json:"mastered"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ProblemFilter narrows List queries.
type ProblemFilter struct {
	Status     Status
	Difficulty Difficulty
	Category   string
	Search     string
	Limit      int
	Offset     int
}

// ProblemEdit carries the descriptive fields that can change after creation.
// Scheduling state is untouched by edits.
type ProblemEdit struct {
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
}
