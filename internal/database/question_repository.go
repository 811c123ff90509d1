package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/citizenprep/pkg/models"
	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, category, question, options, correct_answer, explanation,
	COALESCE(difficulty, 'medium') AS difficulty, COALESCE(province, 'all') AS province, created_at`

// QuestionFilter narrows a random question draw
type QuestionFilter struct {
	Category string // Empty or "full" means every category
	Province string // Empty or "all" means no province restriction
	Limit    int
}

// QuestionRepository handles database operations for questions
type QuestionRepository struct {
	db Querier
}

// NewQuestionRepository creates a new repository instance
func NewQuestionRepository(db Querier) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Random returns up to f.Limit questions in random order
func (r *QuestionRepository) Random(ctx context.Context, f QuestionFilter) ([]models.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions WHERE 1=1"
	args := []interface{}{}

	if f.Province != "" && f.Province != models.ProvinceAll {
		query += " AND (province = ? OR province = ?)"
		args = append(args, f.Province, models.ProvinceAll)
	}

	if f.Category != "" && f.Category != models.CategoryFull {
		query += " AND category = ?"
		args = append(args, f.Category)
	}

	query += " ORDER BY RANDOM() LIMIT ?"
	args = append(args, f.Limit)

	questions := []models.Question{}
	if err := r.db.SelectContext(ctx, &questions, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	return questions, nil
}

// GetByID returns a question by ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	var q models.Question
	err := r.db.GetContext(ctx, &q, r.db.Rebind("SELECT "+questionColumns+" FROM questions WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &q, nil
}

// Count returns the number of stored questions
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM questions"); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// CountByCategory returns the number of questions per category
func (r *QuestionRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Category string `db:"category"`
		Count    int    `db:"count"`
	}
	err := r.db.SelectContext(ctx, &rows, "SELECT category, COUNT(*) AS count FROM questions GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to count questions by category: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

// Sample returns the first n questions by ID
func (r *QuestionRepository) Sample(ctx context.Context, n int) ([]models.Question, error) {
	questions := []models.Question{}
	err := r.db.SelectContext(ctx, &questions, r.db.Rebind("SELECT "+questionColumns+" FROM questions ORDER BY id LIMIT ?"), n)
	if err != nil {
		return nil, fmt.Errorf("failed to sample questions: %w", err)
	}
	return questions, nil
}

// All returns every question ordered by ID
func (r *QuestionRepository) All(ctx context.Context) ([]models.Question, error) {
	questions := []models.Question{}
	if err := r.db.SelectContext(ctx, &questions, "SELECT "+questionColumns+" FROM questions ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	return questions, nil
}

// Create inserts a question and fills in its ID
func (r *QuestionRepository) Create(ctx context.Context, q *models.Question) error {
	if q.Difficulty == "" {
		q.Difficulty = "medium"
	}
	if q.Province == "" {
		q.Province = models.ProvinceAll
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	query := r.db.Rebind(`
		INSERT INTO questions (category, question, options, correct_answer, explanation, difficulty, province, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	err := r.db.QueryRowxContext(ctx, query,
		q.Category,
		q.Question,
		q.Options,
		q.CorrectAnswer,
		q.Explanation,
		q.Difficulty,
		q.Province,
		q.CreatedAt,
	).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// DeleteAll removes every question
func (r *QuestionRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM questions"); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}
	return nil
}

// QuestionStore adds transactional bulk operations on top of QuestionRepository
type QuestionStore struct {
	*QuestionRepository
	db *sqlx.DB
}

// NewQuestionStore creates a store bound to db
func NewQuestionStore(db *sqlx.DB) *QuestionStore {
	return &QuestionStore{
		QuestionRepository: NewQuestionRepository(db),
		db:                 db,
	}
}

// ReplaceAll swaps the whole question bank for questions in one transaction
func (s *QuestionStore) ReplaceAll(ctx context.Context, questions []models.Question) (int, error) {
	inserted := 0
	err := WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		repo := NewQuestionRepository(tx)
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		for i := range questions {
			if err := repo.Create(ctx, &questions[i]); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
