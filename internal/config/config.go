package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const devSecret = "dev_secret_change_me"

// Config holds all configuration for the application
type Config struct {
	AppMode        string `env:"APP_MODE, default=dev"`
	Port           string `env:"PORT, default=3000"`
	LogLevel       string `env:"LOG_LEVEL, default=info"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	Database DatabaseConfig
	JWT      JWTConfig
	Reminder ReminderConfig
	Seed     SeedConfig
}

// DatabaseConfig holds database configuration. Read with a DEV_ or PROD_
// prefix depending on APP_MODE.
type DatabaseConfig struct {
	Host     string `env:"DB_HOST, default=localhost"`
	Port     string `env:"DB_PORT, default=3306"`
	User     string `env:"DB_USER, default=root"`
	Password string `env:"DB_PASS"`
	DBName   string `env:"DB_NAME, default=petcare"`
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL, default=168h"`
}

// ReminderConfig holds the daily caretaker reminder job settings
type ReminderConfig struct {
	Enabled    bool   `env:"REMINDER_ENABLED, default=true"`
	Spec       string `env:"REMINDER_CRON, default=30 7 * * *"`
	WebhookURL string `env:"REMINDER_WEBHOOK_URL"`
}

// SeedConfig describes the caretaker account created by cmd/seed
type SeedConfig struct {
	Name     string `env:"SEED_ADMIN_NAME, default=Caretaker"`
	Email    string `env:"SEED_ADMIN_EMAIL"`
	Phone    string `env:"SEED_ADMIN_PHONE"`
	Birthday string `env:"SEED_ADMIN_BIRTHDAY, default=1990-01-01"`
	Password string `env:"SEED_ADMIN_PASSWORD"`
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	_ = godotenv.Load()

	return LoadFrom(context.Background(), envconfig.OsLookuper())
}

// LoadFrom builds the configuration from an arbitrary lookuper
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	// trim spaces for Windows compatibility
	cfg.AppMode = strings.TrimSpace(cfg.AppMode)
	if cfg.AppMode != "dev" && cfg.AppMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", cfg.AppMode)
	}

	// database credentials come from DEV_ or PROD_ keys only
	cfg.Database = DatabaseConfig{}
	prefix := "DEV_"
	if cfg.IsProd() {
		prefix = "PROD_"
	}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg.Database,
		Lookuper: envconfig.PrefixLookuper(prefix, lookuper),
	}); err != nil {
		return nil, fmt.Errorf("failed to process database config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		if cfg.IsProd() {
			return nil, errors.New("JWT_SECRET is required in prod mode")
		}
		cfg.JWT.Secret = devSecret
	}

	return &cfg, nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:5173"
	}
	return c.AllowedOrigins
}
