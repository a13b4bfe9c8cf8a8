package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName  string `env:"APP_NAME"  envDefault:"OrderDesk"`
	Env      string `env:"APP_ENV"   envDefault:"development"`
	Port     string `env:"PORT"      envDefault:"3001"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`

	// JWTSecret signs every session token. Changing it logs everyone out.
	JWTSecret string `env:"JWT_SECRET,notEmpty"`

	ShutdownPeriod time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"  envDefault:"10s"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL"  envDefault:"24h"`

	// LoginRateLimit caps login attempts per phone per minute. Zero disables it.
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT" envDefault:"0"`

	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

// Load reads an optional .env file, then populates a Config from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}
	return parse()
}

func parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.DatabaseURL == "" && !cfg.IsDev() {
		return Config{}, fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", cfg.Env)
	}
	if cfg.LoginRateLimit < 0 {
		return Config{}, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %d", cfg.LoginRateLimit)
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid REQUEST_TIMEOUT: %s", cfg.RequestTimeout)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the app runs in a local development environment, where
// in-memory repositories stand in for Postgres.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.Env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}
