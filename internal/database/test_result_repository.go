package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/citizenprep/pkg/models"
	"github.com/jmoiron/sqlx"
)

// TestResultRepository handles database operations for test results
type TestResultRepository struct {
	db Querier
}

// NewTestResultRepository creates a new repository instance
func NewTestResultRepository(db Querier) *TestResultRepository {
	return &TestResultRepository{db: db}
}

// Create inserts a new test result and fills in its ID
func (r *TestResultRepository) Create(ctx context.Context, result *models.TestResult) error {
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now().UTC()
	}

	query := r.db.Rebind(`
		INSERT INTO test_results (
			user_id, category, score, total_questions,
			correct_answers, time_taken, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowxContext(ctx, query,
		result.UserID,
		result.Category,
		result.Score,
		result.TotalQuestions,
		result.CorrectAnswers,
		result.TimeTaken,
		result.CompletedAt,
	).Scan(&result.ID)
	if err != nil {
		return fmt.Errorf("failed to create test result: %w", err)
	}
	return nil
}

// ListByUser returns a user's most recent results, optionally for one category
func (r *TestResultRepository) ListByUser(ctx context.Context, userID int64, category string, limit int) ([]models.TestResult, error) {
	query := `
		SELECT id, user_id, category, score, total_questions, correct_answers, time_taken, completed_at
		FROM test_results
		WHERE user_id = ?`
	args := []interface{}{userID}

	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}

	query += " ORDER BY completed_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	results := []models.TestResult{}
	if err := r.db.SelectContext(ctx, &results, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get test results: %w", err)
	}
	return results, nil
}

// Stats aggregates every result recorded for a user
func (r *TestResultRepository) Stats(ctx context.Context, userID int64) (models.ResultStats, error) {
	query := r.db.Rebind(`
		SELECT
			COUNT(*) AS total_tests,
			COALESCE(AVG(score), 0) AS average_score,
			COALESCE(SUM(total_questions), 0) AS total_questions,
			COALESCE(SUM(correct_answers), 0) AS total_correct
		FROM test_results
		WHERE user_id = ?
	`)

	var stats models.ResultStats
	if err := r.db.GetContext(ctx, &stats, query, userID); err != nil {
		return models.ResultStats{}, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}
	return stats, nil
}

// CountAll returns the number of recorded results
func (r *TestResultRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM test_results"); err != nil {
		return 0, fmt.Errorf("failed to count test results: %w", err)
	}
	return count, nil
}

// ResultStore records a completed test together with its progress update
type ResultStore struct {
	*TestResultRepository
	progress *UserProgressRepository
	db       *sqlx.DB
}

// NewResultStore creates a store bound to db
func NewResultStore(db *sqlx.DB) *ResultStore {
	return &ResultStore{
		TestResultRepository: NewTestResultRepository(db),
		progress:             NewUserProgressRepository(db),
		db:                   db,
	}
}

// Save inserts result and accumulates the user's category progress atomically
func (s *ResultStore) Save(ctx context.Context, result *models.TestResult) error {
	return WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := NewTestResultRepository(tx).Create(ctx, result); err != nil {
			return err
		}
		return NewUserProgressRepository(tx).Accumulate(ctx,
			result.UserID,
			result.Category,
			result.TotalQuestions,
			result.CorrectAnswers,
			result.CompletedAt,
		)
	})
}

// Progress returns the progress aggregates for a user
func (s *ResultStore) Progress(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	return s.progress.ListByUser(ctx, userID)
}
