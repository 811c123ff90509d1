package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/citizenprep/internal/api"
	"github.com/example/citizenprep/internal/bot"
	"github.com/example/citizenprep/internal/config"
	"github.com/example/citizenprep/internal/database"
	"github.com/example/citizenprep/internal/ratelimit"
	"github.com/example/citizenprep/internal/scheduler"
	"github.com/example/citizenprep/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.InitializeSchema(ctx, db); err != nil {
		logger.Fatal("failed to initialize schema", zap.Error(err))
	}
	logger.Info("database ready", zap.String("driver", db.DriverName()))

	questions := database.NewQuestionStore(db)
	results := database.NewResultStore(db)
	maintenance := database.NewMaintenance(db)

	services := service.InitServices(cfg, service.Repositories{
		Questions:   questions,
		Bank:        questions,
		Results:     results,
		Users:       database.NewUserRepository(db),
		Maintenance: maintenance,
	}, logger)

	limiters := api.Limiters{
		Default: ratelimit.New(ratelimit.Config{Window: cfg.RateLimit.Window, MaxRequests: cfg.RateLimit.MaxRequests}),
		Auth:    ratelimit.New(ratelimit.Config{Window: cfg.RateLimit.AuthWindow, MaxRequests: cfg.RateLimit.AuthMaxRequests}),
	}

	sched := scheduler.New(cfg.RateLimit.SweepInterval, questions, results, logger, limiters.Default, limiters.Auth)
	if err := sched.Start(); err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	var practiceBot *bot.Bot
	if cfg.Telegram.Enabled {
		practiceBot, err = bot.New(cfg.Telegram, services, logger)
		if err != nil {
			logger.Fatal("failed to create bot", zap.Error(err))
		}
		go func() {
			if err := practiceBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("bot stopped with error", zap.Error(err))
			}
		}()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := api.NewHandler(services, maintenance, limiters, cfg.Server, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server started", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// In-flight requests get ShutdownTimeout to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	if practiceBot != nil {
		if err := practiceBot.Stop(shutdownCtx); err != nil {
			logger.Error("error during bot shutdown", zap.Error(err))
		}
	}

	logger.Info("stopped")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == config.EnvProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
