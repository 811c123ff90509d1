package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/citizenprep/pkg/models"
)

// UserProgressRepository handles database operations for user progress
type UserProgressRepository struct {
	db Querier
}

// NewUserProgressRepository creates a new repository instance
func NewUserProgressRepository(db Querier) *UserProgressRepository {
	return &UserProgressRepository{db: db}
}

// Accumulate adds one test's counts to the user's category row, creating it on first attempt.
// SQLite (3.24+) and PostgreSQL share the ON CONFLICT syntax.
func (r *UserProgressRepository) Accumulate(ctx context.Context, userID int64, category string, attempted, correct int, at time.Time) error {
	query := r.db.Rebind(`
		INSERT INTO user_progress (user_id, category, questions_attempted, questions_correct, last_attempted)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, category) DO UPDATE SET
			questions_attempted = user_progress.questions_attempted + excluded.questions_attempted,
			questions_correct = user_progress.questions_correct + excluded.questions_correct,
			last_attempted = excluded.last_attempted
	`)

	if _, err := r.db.ExecContext(ctx, query, userID, category, attempted, correct, at); err != nil {
		return fmt.Errorf("failed to update user progress: %w", err)
	}
	return nil
}

// ListByUser returns every category aggregate for a user, most recent first
func (r *UserProgressRepository) ListByUser(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, category, questions_attempted, questions_correct, last_attempted
		FROM user_progress
		WHERE user_id = ?
		ORDER BY last_attempted DESC, category
	`)

	progress := []models.UserProgress{}
	if err := r.db.SelectContext(ctx, &progress, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get user progress: %w", err)
	}
	return progress, nil
}
