package repository

import (
	"context"

	"github.com/mfreitas/leetrack/internal/models"
)

// ProblemRepository handles problem persistence. Attempts ride along with
// their problem: reads return problems with the full attempt log attached,
// and writes persist any attempts not yet stored (the log is append-only).
type ProblemRepository interface {
	List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error)
	Get(ctx context.Context, id string) (*models.Problem, error)
	Insert(ctx context.Context, p models.Problem) error
	Update(ctx context.Context, p models.Problem) error
	Delete(ctx context.Context, id string) error
	// ReplaceAll swaps the entire collection in one transaction. Used by
	// backup import after validation has passed.
	ReplaceAll(ctx context.Context, problems []models.Problem) error
}
