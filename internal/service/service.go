package service

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock_service

import (
	"context"
	"errors"

	"github.com/example/citizenprep/internal/config"
	"github.com/example/citizenprep/internal/database"
	"github.com/example/citizenprep/pkg/models"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

// InputError carries a message that is safe to return to the client
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// Is makes errors.Is(err, ErrInvalidInput) true for every InputError
func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

func invalidInput(msg string) error {
	return &InputError{Msg: msg}
}

type QuestionRI interface {
	Random(ctx context.Context, f database.QuestionFilter) ([]models.Question, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}

type ResultRI interface {
	Save(ctx context.Context, result *models.TestResult) error
	ListByUser(ctx context.Context, userID int64, category string, limit int) ([]models.TestResult, error)
	Stats(ctx context.Context, userID int64) (models.ResultStats, error)
	Progress(ctx context.Context, userID int64) ([]models.UserProgress, error)
}

type UserRI interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type MaintenanceRI interface {
	Reset(ctx context.Context) error
	Tables(ctx context.Context) ([]string, error)
	DatabaseType() string
}

type QuestionBankRI interface {
	Count(ctx context.Context) (int, error)
	Sample(ctx context.Context, n int) ([]models.Question, error)
	ReplaceAll(ctx context.Context, questions []models.Question) (int, error)
}

type Service struct {
	*QuestionS
	*ResultS
	*AuthS
	*SetupS
}

// Repositories groups the stores the services depend on
type Repositories struct {
	Questions   QuestionRI
	Bank        QuestionBankRI
	Results     ResultRI
	Users       UserRI
	Maintenance MaintenanceRI
}

func InitServices(cfg *config.Config, repo Repositories, log *zap.Logger) *Service {
	return &Service{
		QuestionS: NewQuestionService(repo.Questions, log),
		ResultS:   NewResultService(repo.Results, repo.Users, log),
		AuthS:     NewAuthService(cfg.Auth, repo.Users, log),
		SetupS:    NewSetupService(cfg.Setup, cfg.IsProduction(), repo.Maintenance, repo.Bank, log),
	}
}
