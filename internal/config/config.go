package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/types/business"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	Stage              string
	Port               string
	DatabaseURL        string
	DatabaseSecretARN  string
	DBMaxConns         int32
	DBMinConns         int32
	Timezone           string
	Location           *time.Location
	DefaultVATRate     decimal.Decimal
	RateLimitRPS       int
	RateLimitBurst     int
	CORSAllowedOrigins []string
	AuditQueueURL      string
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults and validating.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Stage:             get("STAGE", constants.StageLocal),
		Port:              get("PORT", "8000"),
		DatabaseURL:       get("DATABASE_URL", ""),
		DatabaseSecretARN: get("DATABASE_SECRET_ARN", ""),
		Timezone:          get("TIMEZONE", constants.DefaultTimezone),
		AuditQueueURL:     get("AUDIT_QUEUE_URL", ""),
	}

	if !helpers.IsValidStage(cfg.Stage) {
		return nil, errors.Errorf("invalid STAGE %q", cfg.Stage)
	}

	var err error
	if cfg.DBMaxConns, err = parseInt32(get("DB_MAX_CONNS", "20"), "DB_MAX_CONNS"); err != nil {
		return nil, err
	}
	if cfg.DBMinConns, err = parseInt32(get("DB_MIN_CONNS", "2"), "DB_MIN_CONNS"); err != nil {
		return nil, err
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		return nil, errors.Errorf("DB_MIN_CONNS %d exceeds DB_MAX_CONNS %d", cfg.DBMinConns, cfg.DBMaxConns)
	}
	if cfg.RateLimitRPS, err = parsePositiveInt(get("RATE_LIMIT_RPS", "20"), "RATE_LIMIT_RPS"); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = parsePositiveInt(get("RATE_LIMIT_BURST", "40"), "RATE_LIMIT_BURST"); err != nil {
		return nil, err
	}

	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid TIMEZONE %q", cfg.Timezone)
	}

	cfg.DefaultVATRate, err = decimal.NewFromString(get("DEFAULT_VAT_RATE", "0"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid DEFAULT_VAT_RATE")
	}
	if cfg.DefaultVATRate.IsNegative() || cfg.DefaultVATRate.GreaterThan(business.MaxVATRate) {
		return nil, errors.Errorf("DEFAULT_VAT_RATE %s must be between 0 and 100", cfg.DefaultVATRate)
	}

	for _, origin := range strings.Split(get("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// SecretResolver turns a secret ARN into a database URL.
type SecretResolver interface {
	GetDatabaseURL(ctx context.Context, secretArn string) (string, error)
}

// ResolveDatabaseURL prefers DATABASE_URL and falls back to the secret.
func (c *Config) ResolveDatabaseURL(ctx context.Context, secrets SecretResolver) (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	if c.DatabaseSecretARN == "" {
		return "", errors.New("DATABASE_URL or DATABASE_SECRET_ARN is required")
	}
	if secrets == nil {
		return "", errors.New("DATABASE_SECRET_ARN is set but no secrets client is available")
	}
	dsn, err := secrets.GetDatabaseURL(ctx, c.DatabaseSecretARN)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve database URL")
	}
	return dsn, nil
}

func (c *Config) IsProduction() bool {
	return c.Stage == constants.StageProd
}

func parseInt32(value, key string) (int32, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil || n <= 0 {
		return 0, errors.Errorf("%s must be a positive integer, got %q", key, value)
	}
	return int32(n), nil
}

func parsePositiveInt(value, key string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, errors.Errorf("%s must be a positive integer, got %q", key, value)
	}
	return n, nil
}
