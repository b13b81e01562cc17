package config

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/fornada/fornada/internal/database"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Fornada"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"fornada"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`

		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Log struct {
		Level slog.Level `envconfig:"LOG_LEVEL" default:"INFO"`
	}

	Auth struct {
		// Empty disables token verification.
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	OCR struct {
		APIKey       string        `envconfig:"OCR_SPACE_API_KEY"`
		URL          string        `envconfig:"OCR_URL" default:"https://api.ocr.space/parse/image"`
		Language     string        `envconfig:"OCR_LANGUAGE" default:"por"`
		Timeout      time.Duration `envconfig:"OCR_TIMEOUT" default:"60s"`
		TaxIDPattern string        `envconfig:"OCR_TAXID_PATTERN" default:"\\b\\d{2}\\.\\d{3}\\.\\d{3}/\\d{4}-\\d{2}\\b|\\b\\d{14}\\b"`
		NFePattern   string        `envconfig:"OCR_NFE_PATTERN" default:"(?i)NFe\\s*(\\d{6,})"`
	}

	Match struct {
		Threshold float64 `envconfig:"MATCH_THRESHOLD" default:"0.6"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func (c *Config) Pool() database.Pool {
	return database.Pool{
		MaxOpenConns:    c.DB.MaxOpenConns,
		MaxIdleConns:    c.DB.MaxIdleConns,
		ConnMaxLifetime: c.DB.ConnMaxLifetime,
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Match.Threshold <= 0 || c.Match.Threshold > 1 {
		return fmt.Errorf("MATCH_THRESHOLD must be in (0, 1], got %v", c.Match.Threshold)
	}

	if _, err := regexp.Compile(c.OCR.TaxIDPattern); err != nil {
		return fmt.Errorf("OCR_TAXID_PATTERN: %w", err)
	}

	if _, err := regexp.Compile(c.OCR.NFePattern); err != nil {
		return fmt.Errorf("OCR_NFE_PATTERN: %w", err)
	}

	return nil
}
