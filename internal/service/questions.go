package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/citizenprep/internal/database"
	"github.com/example/citizenprep/pkg/models"
	"go.uber.org/zap"
)

const (
	DefaultQuestionLimit = 20
	MaxQuestionLimit     = 50
)

// QuestionQuery is a request for a random set of questions.
// Empty category and province select everything; Limit must be set.
type QuestionQuery struct {
	Category string
	Province string
	Limit    int
}

type QuestionS struct {
	repo QuestionRI
	log  *zap.Logger
}

func NewQuestionService(repo QuestionRI, log *zap.Logger) *QuestionS {
	return &QuestionS{
		repo: repo,
		log:  log,
	}
}

// Normalize applies defaults and checks the query against the catalogue
func (q QuestionQuery) Normalize() (QuestionQuery, error) {
	if q.Province == "" {
		q.Province = models.ProvinceAll
	}

	if q.Category != "" && !models.IsCategory(q.Category) {
		return q, invalidInput("Invalid category")
	}
	if !models.IsProvince(q.Province) {
		return q, invalidInput("Invalid province")
	}
	if q.Limit < 1 || q.Limit > MaxQuestionLimit {
		return q, invalidInput(fmt.Sprintf("Limit must be between 1 and %d", MaxQuestionLimit))
	}
	return q, nil
}

// Questions returns a random selection matching query.
// Rows whose options could not be decoded are dropped.
func (s *QuestionS) Questions(ctx context.Context, query QuestionQuery) ([]models.Question, error) {
	query, err := query.Normalize()
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.Random(ctx, database.QuestionFilter{
		Category: query.Category,
		Province: query.Province,
		Limit:    query.Limit,
	})
	if err != nil {
		s.log.Warn("failed to fetch questions",
			zap.String("category", query.Category),
			zap.String("province", query.Province),
			zap.Error(err))
		return nil, err
	}

	valid := questions[:0]
	for _, q := range questions {
		if len(q.Options) == 0 {
			s.log.Debug("dropping question without options", zap.Int64("question_id", q.ID))
			continue
		}
		valid = append(valid, q)
	}
	return valid, nil
}

// Question returns a single question by ID
func (s *QuestionS) Question(ctx context.Context, id int64) (*models.Question, error) {
	q, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Warn("failed to fetch question", zap.Int64("question_id", id), zap.Error(err))
		return nil, err
	}
	return q, nil
}

// Categories returns the catalogue with the number of stored questions per category
func (s *QuestionS) Categories(ctx context.Context) ([]models.Category, error) {
	counts, err := s.repo.CountByCategory(ctx)
	if err != nil {
		s.log.Warn("failed to count questions by category", zap.Error(err))
		return nil, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	categories := make([]models.Category, len(models.Categories))
	copy(categories, models.Categories)
	for i := range categories {
		if categories[i].Key == models.CategoryFull {
			categories[i].Available = total
			continue
		}
		categories[i].Available = counts[categories[i].Key]
	}
	return categories, nil
}
