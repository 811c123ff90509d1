package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

const heartbeatTimeout = 10 * time.Second

// Sweeper drops expired entries and reports how many were removed
type Sweeper interface {
	Sweep() int
}

// QuestionCounter reports the size of the question bank
type QuestionCounter interface {
	Count(ctx context.Context) (int, error)
}

// ResultCounter reports how many test results are stored
type ResultCounter interface {
	CountAll(ctx context.Context) (int, error)
}

// Scheduler runs the periodic housekeeping jobs of the service
type Scheduler struct {
	scheduler     *gocron.Scheduler
	sweepInterval time.Duration
	limiters      []Sweeper
	questions     QuestionCounter
	results       ResultCounter
	log           *zap.Logger
}

// New creates a new scheduler instance
func New(sweepInterval time.Duration, questions QuestionCounter, results ResultCounter, log *zap.Logger, limiters ...Sweeper) *Scheduler {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	return &Scheduler{
		scheduler:     gocron.NewScheduler(time.UTC),
		sweepInterval: sweepInterval,
		limiters:      limiters,
		questions:     questions,
		results:       results,
		log:           log,
	}
}

// Start registers the jobs and runs them in the background
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.sweepInterval).Do(s.SweepLimiters); err != nil {
		return fmt.Errorf("failed to schedule limiter sweep: %w", err)
	}

	// The first heartbeat fires at start, then hourly
	if _, err := s.scheduler.Every(1).Hour().Do(s.heartbeat); err != nil {
		return fmt.Errorf("failed to schedule heartbeat: %w", err)
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// Jobs returns the number of registered jobs
func (s *Scheduler) Jobs() int {
	return s.scheduler.Len()
}

// SweepLimiters purges expired rate limit windows and returns the number removed
func (s *Scheduler) SweepLimiters() int {
	removed := 0
	for _, l := range s.limiters {
		removed += l.Sweep()
	}
	if removed > 0 {
		s.log.Debug("swept rate limit entries", zap.Int("removed", removed))
	}
	return removed
}

func (s *Scheduler) heartbeat() {
	ctx, cancel := context.WithTimeout(context.Background(), heartbeatTimeout)
	defer cancel()

	if err := s.Heartbeat(ctx); err != nil {
		s.log.Warn("heartbeat failed", zap.Error(err))
	}
}

// Heartbeat logs the current size of the question bank and result history
func (s *Scheduler) Heartbeat(ctx context.Context) error {
	questions, err := s.questions.Count(ctx)
	if err != nil {
		return err
	}

	results, err := s.results.CountAll(ctx)
	if err != nil {
		return err
	}

	s.log.Info("heartbeat",
		zap.Int("questions", questions),
		zap.Int("test_results", results))
	return nil
}
