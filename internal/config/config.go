package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/example/citizenprep/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"

	devJWTSecret = "development-only-jwt-secret"
)

type Config struct {
	Env       string          `mapstructure:"env" validate:"oneof=development production test"`
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"db"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Setup     SetupConfig     `mapstructure:"setup"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
}

type ServerConfig struct {
	Port              string        `mapstructure:"port" validate:"required,numeric"`
	BaseURL           string        `mapstructure:"base_url" validate:"required,url"`
	CorsAllowedOrigin string        `mapstructure:"cors_allowed_origin" validate:"required,http_url"`
	TrustedProxies    []string      `mapstructure:"trusted_proxies" validate:"dive,ip|cidr"` // Empty trusts no proxy headers
	ReadTimeout       time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

type DBConfig struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	Path            string        `mapstructure:"path"` // SQLite file, or ":memory:"
	URL             string        `mapstructure:"url"`  // PostgreSQL connection string
	SSL             bool          `mapstructure:"ssl"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret" validate:"required"`
	TokenTTL   time.Duration `mapstructure:"token_ttl" validate:"min=1"`
	BcryptCost int           `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
}

type RateLimitConfig struct {
	Window          time.Duration `mapstructure:"window" validate:"min=1"`
	MaxRequests     int           `mapstructure:"max_requests" validate:"min=1"`
	AuthWindow      time.Duration `mapstructure:"auth_window" validate:"min=1"`
	AuthMaxRequests int           `mapstructure:"auth_max_requests" validate:"min=1"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval" validate:"min=1"`
}

type SetupConfig struct {
	Secret        string `mapstructure:"secret"`
	QuestionsFile string `mapstructure:"questions_file"`
}

type TelegramConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token"`
	Debug   bool   `mapstructure:"debug"`
}

// IsProduction reports whether the service runs against the production store
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

var envBindings = map[string]string{
	"env":                        "APP_ENV",
	"server.port":                "PORT",
	"server.base_url":            "BASE_URL",
	"server.cors_allowed_origin": "CORS_ALLOWED_ORIGIN",
	"server.trusted_proxies":     "TRUSTED_PROXIES",
	"db.driver":                  "DB_DRIVER",
	"db.path":                    "DB_PATH",
	"db.url":                     "DATABASE_URL",
	"auth.jwt_secret":            "JWT_SECRET",
	"setup.secret":               "SETUP_SECRET",
	"setup.questions_file":       "QUESTIONS_FILE",
	"telegram.enabled":           "TELEGRAM_ENABLED",
	"telegram.token":             "TELEGRAM_BOT_TOKEN",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", EnvDevelopment)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors_allowed_origin", "http://localhost:3000")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("db.driver", "")
	v.SetDefault("db.path", filepath.Join("data", "citizenship-test.db"))
	v.SetDefault("db.url", "")
	v.SetDefault("db.ssl", false)
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_life_time", 30*time.Minute)
	v.SetDefault("db.conn_max_idle_time", 5*time.Minute)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 12)

	v.SetDefault("rate_limit.window", 15*time.Minute)
	v.SetDefault("rate_limit.max_requests", 100)
	v.SetDefault("rate_limit.auth_window", 15*time.Minute)
	v.SetDefault("rate_limit.auth_max_requests", 5)
	v.SetDefault("rate_limit.sweep_interval", time.Minute)

	v.SetDefault("setup.secret", "")
	v.SetDefault("setup.questions_file", filepath.Join("Questions&Answers", "AlbertaQuestions.txt"))

	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.debug", false)
}

// Init loads configuration from defaults, an optional configs/<CONFIG_NAME>.yaml,
// an optional .env file and the process environment, in increasing precedence.
func Init() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}
	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvironment(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvironment fills settings whose defaults depend on the environment
func applyEnvironment(cfg *Config) {
	if cfg.DB.Driver == "" {
		if cfg.Env == EnvProduction {
			cfg.DB.Driver = DriverPostgres
		} else {
			cfg.DB.Driver = DriverSQLite
		}
	}

	if cfg.Env == EnvProduction {
		cfg.DB.SSL = true
	}

	if cfg.Auth.JWTSecret == "" && cfg.Env != EnvProduction {
		cfg.Auth.JWTSecret = devJWTSecret
	}
}

// Validate checks struct tags plus the cross-field rules tags cannot express
func Validate(cfg *Config) error {
	if err := validator.ValidateStruct(cfg); err != nil {
		return err
	}

	switch cfg.DB.Driver {
	case DriverPostgres:
		if cfg.DB.URL == "" {
			return errors.New("DATABASE_URL environment variable is not set")
		}
	case DriverSQLite:
		if cfg.DB.Path == "" {
			return errors.New("sqlite database path is empty")
		}
	}

	if cfg.Telegram.Enabled && cfg.Telegram.Token == "" {
		return errors.New("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	return nil
}
