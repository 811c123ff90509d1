package api

import (
	"context"
	"net/http"
	"time"

	"github.com/example/citizenprep/internal/config"
	"github.com/example/citizenprep/internal/ratelimit"
	"github.com/example/citizenprep/internal/service"
	"github.com/example/citizenprep/pkg/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionService interface {
	Questions(ctx context.Context, query service.QuestionQuery) ([]models.Question, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type ResultService interface {
	Submit(ctx context.Context, userID int64, in service.SubmitResult) (int64, error)
	History(ctx context.Context, userID int64, category string, limit int) ([]models.TestResult, error)
	Dashboard(ctx context.Context, userID int64) (models.Dashboard, error)
}

type AuthService interface {
	Signup(ctx context.Context, in service.Signup) (int64, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ParseToken(token string) (*service.Claims, error)
}

type SetupService interface {
	Setup(ctx context.Context, secret string) (service.SetupReport, error)
	Debug(ctx context.Context, secret string) (service.DebugReport, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Services is satisfied by *service.Service
type Services interface {
	QuestionService
	ResultService
	AuthService
	SetupService
}

// Limiters are the process-wide rate limiters consulted by the handlers
type Limiters struct {
	Default *ratelimit.Limiter
	Auth    *ratelimit.Limiter
}

type Handler struct {
	questions QuestionService
	results   ResultService
	auth      AuthService
	setup     SetupService
	db        Pinger
	limiters  Limiters
	cfg       config.ServerConfig
	log       *zap.Logger
	now       func() time.Time
}

func NewHandler(svc Services, db Pinger, limiters Limiters, cfg config.ServerConfig, log *zap.Logger) *Handler {
	return &Handler{
		questions: svc,
		results:   svc,
		auth:      svc,
		setup:     svc,
		db:        db,
		limiters:  limiters,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Routes builds the gin engine with every route and middleware installed
func (h *Handler) Routes() *gin.Engine {
	r := gin.New()

	// Forwarding headers only count when they come from a listed proxy
	if err := r.SetTrustedProxies(h.cfg.TrustedProxies); err != nil {
		h.log.Error("invalid trusted proxies, trusting none", zap.Strings("trusted_proxies", h.cfg.TrustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(RequestID())
	r.Use(Logger(h.log))
	r.Use(Recovery(h.log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{h.cfg.CorsAllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", h.health)
	r.GET("/sitemap.xml", h.sitemap)

	api := r.Group("/api")
	{
		api.GET("/questions", RateLimit(h.limiters.Default, h.now), h.listQuestions)
		api.GET("/categories", h.listCategories)

		auth := api.Group("/auth", RateLimit(h.limiters.Auth, h.now))
		auth.POST("/signup", h.signup)
		auth.POST("/login", h.login)

		protected := api.Group("", RequireAuth(h.auth))
		protected.POST("/results", h.submitResult)
		protected.GET("/results", h.listResults)
		protected.GET("/progress", h.progress)

		api.GET("/setup-database", h.setupDatabase)
		api.POST("/setup-database", h.setupDatabase)
		api.GET("/debug-database", h.debugDatabase)

		api.GET("/blog", h.listPosts)
		api.GET("/blog/:slug", h.getPost)
	}

	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "Not found")
	})

	return r
}
