package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/example/citizenprep/internal/database"
	"github.com/example/citizenprep/pkg/models"
	"github.com/example/citizenprep/pkg/validator"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

// SubmitResult is a completed test as reported by the client
type SubmitResult struct {
	Category       string `validate:"required" message:"Category is required"`
	Score          int    `validate:"min=0,max=100" message:"Score must be between 0 and 100"`
	TotalQuestions int    `validate:"min=1" message:"Total questions must be at least 1"`
	CorrectAnswers int    `validate:"min=0,ltefield=TotalQuestions" message:"Correct answers must be between 0 and the number of questions"`
	TimeTaken      *int   `validate:"omitempty,min=0" message:"Time taken cannot be negative"`
}

type ResultS struct {
	repo  ResultRI
	users UserRI
	log   *zap.Logger
	now   func() time.Time
}

func NewResultService(repo ResultRI, users UserRI, log *zap.Logger) *ResultS {
	return &ResultS{
		repo:  repo,
		users: users,
		log:   log,
		now:   time.Now,
	}
}

// Submit records a completed test for userID and folds it into the category progress
func (s *ResultS) Submit(ctx context.Context, userID int64, in SubmitResult) (int64, error) {
	if err := validator.ValidateMessage(&in); err != nil {
		return 0, invalidInput(err.Error())
	}
	if !models.IsCategory(in.Category) {
		return 0, invalidInput("Invalid category")
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return 0, err
	}

	result := &models.TestResult{
		UserID:         userID,
		Category:       in.Category,
		Score:          in.Score,
		TotalQuestions: in.TotalQuestions,
		CorrectAnswers: in.CorrectAnswers,
		TimeTaken:      in.TimeTaken,
		CompletedAt:    s.now().UTC(),
	}

	if err := s.repo.Save(ctx, result); err != nil {
		s.log.Warn("failed to save test result",
			zap.Int64("user_id", userID),
			zap.String("category", in.Category),
			zap.Error(err))
		return 0, err
	}

	s.log.Info("test result saved",
		zap.Int64("user_id", userID),
		zap.Int64("result_id", result.ID),
		zap.String("category", in.Category),
		zap.Int("score", in.Score),
		zap.Bool("passed", result.Passed()))

	return result.ID, nil
}

// History returns the user's most recent results, newest first
func (s *ResultS) History(ctx context.Context, userID int64, category string, limit int) ([]models.TestResult, error) {
	if limit < 1 || limit > MaxHistoryLimit {
		return nil, invalidInput("Limit must be between 1 and 100")
	}
	if category != "" && !models.IsCategory(category) {
		return nil, invalidInput("Invalid category")
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	results, err := s.repo.ListByUser(ctx, userID, category, limit)
	if err != nil {
		s.log.Warn("failed to fetch test results", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return results, nil
}

// Dashboard returns the progress overview for userID
func (s *ResultS) Dashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return models.Dashboard{}, ErrUserNotFound
	}
	if err != nil {
		s.log.Warn("failed to fetch user", zap.Int64("user_id", userID), zap.Error(err))
		return models.Dashboard{}, err
	}

	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		s.log.Warn("failed to fetch result stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.Dashboard{}, err
	}

	progress, err := s.repo.Progress(ctx, userID)
	if err != nil {
		s.log.Warn("failed to fetch progress", zap.Int64("user_id", userID), zap.Error(err))
		return models.Dashboard{}, err
	}

	recent, err := s.repo.ListByUser(ctx, userID, "", 5)
	if err != nil {
		s.log.Warn("failed to fetch recent results", zap.Int64("user_id", userID), zap.Error(err))
		return models.Dashboard{}, err
	}

	dashboard := models.Dashboard{
		Name:           user.DisplayName(),
		TotalTests:     stats.TotalTests,
		AverageScore:   int(math.Round(stats.AverageScore)),
		TotalQuestions: stats.TotalQuestions,
		TotalCorrect:   stats.TotalCorrect,
		Progress:       progress,
		Recent:         recent,
	}
	if dashboard.TotalTests > 0 {
		dashboard.Grade = models.Grade(dashboard.AverageScore)
	}
	return dashboard, nil
}

func (s *ResultS) ensureUser(ctx context.Context, userID int64) error {
	_, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		s.log.Warn("failed to fetch user", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
