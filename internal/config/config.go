package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// App
	Env string `env:"ENV" envDefault:"dev"` // dev / staging / prod

	// HTTP
	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPIdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"1m"`

	// Auth / Security
	JWTSecret      string        `env:"JWT_SECRET,notEmpty"`
	JWTIssuer      string        `env:"JWT_ISSUER" envDefault:"learner-service"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`

	// Postgres
	DBAddr    string `env:"DB_ADDR,notEmpty"`
	DBDebug   bool   `env:"DB_DEBUG" envDefault:"false"`
	DBMigrate bool   `env:"DB_MIGRATE" envDefault:"true"`

	// Redis roster cache; empty addr disables it.
	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	RosterCacheTTL time.Duration `env:"ROSTER_CACHE_TTL" envDefault:"10m"`

	// RabbitMQ; empty url falls back to a logging publisher.
	RabbitURL      string `env:"RABBIT_URL"`
	RabbitExchange string `env:"RABBIT_EXCHANGE" envDefault:"learner.events"`

	// External progress system
	ProgressAPIURL     string        `env:"PROGRESS_API_URL,notEmpty"`
	ProgressAPIKey     string        `env:"PROGRESS_API_KEY"`
	ProgressAPITimeout time.Duration `env:"PROGRESS_API_TIMEOUT" envDefault:"3s"`

	// CORS
	CORSEnabled        bool          `env:"CORS_ENABLED" envDefault:"true"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:*,http://127.0.0.1:*"`
	CORSMaxAge         time.Duration `env:"CORS_MAX_AGE" envDefault:"1h"`
}

func (c *Config) IsDev() bool { return c.Env == "dev" }

// Load reads an optional .env file, then the process environment.
// Values already present in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case "dev", "staging", "prod":
	default:
		return fmt.Errorf("invalid ENV %q (want dev|staging|prod)", c.Env)
	}

	if c.Env == "prod" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes in prod")
	}

	if !strings.HasPrefix(c.DBAddr, "postgres://") && !strings.HasPrefix(c.DBAddr, "postgresql://") {
		return fmt.Errorf("DB_ADDR must be a postgres:// URL")
	}

	u, err := url.Parse(c.ProgressAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("PROGRESS_API_URL must be an absolute http(s) URL: %q", c.ProgressAPIURL)
	}

	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST out of range: %d", c.BcryptCost)
	}

	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}
