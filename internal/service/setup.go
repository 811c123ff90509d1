package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"

	"github.com/example/citizenprep/internal/config"
	"github.com/example/citizenprep/internal/importer"
	"github.com/example/citizenprep/pkg/models"
	"go.uber.org/zap"
)

const debugSampleSize = 3

// SetupReport summarizes a database setup run
type SetupReport struct {
	Tables []string               `json:"tables"`
	Import *importer.ImportResult `json:"import,omitempty"`
}

// DebugReport describes the current state of the store
type DebugReport struct {
	Tables          []string          `json:"tables"`
	QuestionsCount  int               `json:"questionsCount"`
	SampleQuestions []models.Question `json:"sampleQuestions"`
	DatabaseType    string            `json:"databaseType"`
}

type SetupS struct {
	cfg         config.SetupConfig
	production  bool
	maintenance MaintenanceRI
	bank        QuestionBankRI
	log         *zap.Logger
}

func NewSetupService(cfg config.SetupConfig, production bool, maintenance MaintenanceRI, bank QuestionBankRI, log *zap.Logger) *SetupS {
	return &SetupS{
		cfg:         cfg,
		production:  production,
		maintenance: maintenance,
		bank:        bank,
		log:         log,
	}
}

// Authorize checks secret against the configured setup secret.
// An unset secret rejects everything.
func (s *SetupS) Authorize(secret string) error {
	if s.cfg.Secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(s.cfg.Secret)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// Setup recreates the schema and loads the configured question bank.
// Only available in production.
func (s *SetupS) Setup(ctx context.Context, secret string) (SetupReport, error) {
	if !s.production {
		return SetupReport{}, ErrForbidden
	}
	if err := s.Authorize(secret); err != nil {
		return SetupReport{}, err
	}

	s.log.Info("setting up database")

	if err := s.maintenance.Reset(ctx); err != nil {
		s.log.Error("failed to reset schema", zap.Error(err))
		return SetupReport{}, err
	}

	report := SetupReport{}
	if _, err := os.Stat(s.cfg.QuestionsFile); err == nil {
		cfg := importer.DefaultImportConfig()
		cfg.FilePath = s.cfg.QuestionsFile

		result, err := importer.ImportFile(ctx, cfg, s.bank)
		if err != nil && !errors.Is(err, importer.ErrNoQuestions) {
			s.log.Error("failed to import questions", zap.String("file", s.cfg.QuestionsFile), zap.Error(err))
			return SetupReport{}, err
		}
		report.Import = result
		s.log.Info("questions imported",
			zap.String("file", s.cfg.QuestionsFile),
			zap.Int("imported", result.Imported),
			zap.Int("skipped", result.Skipped))
	} else {
		s.log.Warn("questions file not found, skipping import", zap.String("file", s.cfg.QuestionsFile))
	}

	tables, err := s.maintenance.Tables(ctx)
	if err != nil {
		return SetupReport{}, err
	}
	report.Tables = tables

	return report, nil
}

// Debug reports the tables, question count and a few sample questions
func (s *SetupS) Debug(ctx context.Context, secret string) (DebugReport, error) {
	if err := s.Authorize(secret); err != nil {
		return DebugReport{}, err
	}

	tables, err := s.maintenance.Tables(ctx)
	if err != nil {
		s.log.Warn("failed to list tables", zap.Error(err))
		return DebugReport{}, err
	}

	report := DebugReport{
		Tables:          tables,
		SampleQuestions: []models.Question{},
		DatabaseType:    s.maintenance.DatabaseType(),
	}

	// A missing questions table still yields a report
	if count, err := s.bank.Count(ctx); err != nil {
		s.log.Warn("failed to count questions", zap.Error(err))
	} else {
		report.QuestionsCount = count
	}

	if sample, err := s.bank.Sample(ctx, debugSampleSize); err != nil {
		s.log.Warn("failed to sample questions", zap.Error(err))
	} else {
		report.SampleQuestions = sample
	}

	return report, nil
}
