package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mfreitas/leetrack/internal/logger"
	"github.com/mfreitas/leetrack/internal/models"
	"github.com/mfreitas/leetrack/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const problemColumns = "id, name, url, difficulty, category, status, next_review_date, ease_factor, interval_days, last_reviewed, mastered, created_at"

type problemRepository struct {
	db *sql.DB
}

// NewProblemRepository creates a new ProblemRepository implementation
func NewProblemRepository(db *sql.DB) repository.ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) Get(ctx context.Context, id string) (*models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("getting problem: id=%s", id)

	row := r.db.QueryRowContext(ctx, `
SELECT `+problemColumns+`
FROM problems
WHERE id = ?
`, id)
	p, err := scanProblem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("problem not found: id=%s", id)
			return nil, nil
		}
		log.Error("failed to get problem: %v", err)
		return nil, err
	}

	attempts, err := r.loadAttempts(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Attempts = attempts[p.ID]
	if p.Attempts == nil {
		p.Attempts = []models.Attempt{}
	}
	return p, nil
}

func (r *problemRepository) List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("listing problems: status=%s, difficulty=%s, category=%s, search=%s",
		filter.Status, filter.Difficulty, filter.Category, filter.Search)

	query := sqlBuilder.Select(
		"id", "name", "url", "difficulty", "category", "status", "next_review_date",
		"ease_factor", "interval_days", "last_reviewed", "mastered", "created_at",
	).From("problems")

	// Dynamic WHERE clauses
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": filter.Difficulty})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.Like{"name": "%" + filter.Search + "%"})
	}

	query = query.OrderBy("next_review_date ASC", "created_at ASC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
		if filter.Offset > 0 {
			query = query.Offset(uint64(filter.Offset))
		}
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, err
	}
	defer rows.Close()

	var problems []models.Problem
	var ids []string
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			log.Error("failed to scan problem row: %v", err)
			return nil, err
		}
		problems = append(problems, *p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	attempts, err := r.loadAttempts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range problems {
		problems[i].Attempts = attempts[problems[i].ID]
		if problems[i].Attempts == nil {
			problems[i].Attempts = []models.Attempt{}
		}
	}

	log.Debug("found %d problems", len(problems))
	return problems, nil
}

func (r *problemRepository) Insert(ctx context.Context, p models.Problem) error {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("inserting problem: id=%s, name=%s", p.ID, p.Name)

	return tx(ctx, r.db, func(t *sql.Tx) error {
		return insertProblemTx(ctx, t, p)
	})
}

func (r *problemRepository) Update(ctx context.Context, p models.Problem) error {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("updating problem: id=%s, interval=%d, ease=%.2f", p.ID, p.IntervalDays, p.EaseFactor)

	return tx(ctx, r.db, func(t *sql.Tx) error {
		res, err := t.ExecContext(ctx, `
UPDATE problems
SET name = ?, url = ?, difficulty = ?, category = ?, status = ?, next_review_date = ?,
    ease_factor = ?, interval_days = ?, last_reviewed = ?, mastered = ?
WHERE id = ?
`, p.Name, p.URL, p.Difficulty, p.Category, p.Status, p.NextReviewDate,
			p.EaseFactor, p.IntervalDays, nullTime(p.LastReviewed), p.Mastered, p.ID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return sql.ErrNoRows
		}
		return insertAttemptsTx(ctx, t, p)
	})
}

func (r *problemRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("deleting problem: id=%s", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM problems WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete problem: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *problemRepository) ReplaceAll(ctx context.Context, problems []models.Problem) error {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Info("replacing collection: %d problems", len(problems))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
			return err
		}
		if _, err := t.ExecContext(ctx, `DELETE FROM problems`); err != nil {
			return err
		}
		for _, p := range problems {
			if err := insertProblemTx(ctx, t, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertProblemTx(ctx context.Context, t *sql.Tx, p models.Problem) error {
	_, err := t.ExecContext(ctx, `
INSERT INTO problems (`+problemColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, p.ID, p.Name, p.URL, p.Difficulty, p.Category, p.Status, p.NextReviewDate,
		p.EaseFactor, p.IntervalDays, nullTime(p.LastReviewed), p.Mastered, p.CreatedAt)
	if err != nil {
		return err
	}
	return insertAttemptsTx(ctx, t, p)
}

// insertAttemptsTx persists attempts not yet stored. The attempt log is
// append-only, so existing rows are left alone.
func insertAttemptsTx(ctx context.Context, t *sql.Tx, p models.Problem) error {
	for _, a := range p.Attempts {
		_, err := t.ExecContext(ctx, `
INSERT OR IGNORE INTO attempts (id, problem_id, date, success, difficulty_rating, notes)
VALUES (?, ?, ?, ?, ?, ?)
`, a.ID, p.ID, a.Date, a.Success, a.DifficultyRating, a.Notes)
		if err != nil {
			return err
		}
	}
	return nil
}

// loadAttempts fetches attempt logs for the given problem ids, in insertion
// order per problem.
func (r *problemRepository) loadAttempts(ctx context.Context, ids []string) (map[string][]models.Attempt, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")

	out := make(map[string][]models.Attempt, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	sqlStr, args, err := sqlBuilder.Select("id", "problem_id", "date", "success", "difficulty_rating", "notes").
		From("attempts").
		Where(squirrel.Eq{"problem_id": ids}).
		OrderBy("rowid ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to load attempts: %v", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.Attempt
		var problemID string
		if err := rows.Scan(&a.ID, &problemID, &a.Date, &a.Success, &a.DifficultyRating, &a.Notes); err != nil {
			log.Error("failed to scan attempt row: %v", err)
			return nil, err
		}
		out[problemID] = append(out[problemID], a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblem(row rowScanner) (*models.Problem, error) {
	var p models.Problem
	var lastReviewed sql.NullTime
	err := row.Scan(&p.ID, &p.Name, &p.URL, &p.Difficulty, &p.Category, &p.Status,
		&p.NextReviewDate, &p.EaseFactor, &p.IntervalDays, &lastReviewed, &p.Mastered, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if lastReviewed.Valid {
		t := lastReviewed.Time
		p.LastReviewed = &t
	}
	return &p, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
