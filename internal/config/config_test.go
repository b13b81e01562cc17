package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornada/fornada/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 0.6, cfg.Match.Threshold)
	assert.Equal(t, "por", cfg.OCR.Language)
	assert.Equal(t, 60*time.Second, cfg.OCR.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "postgres://postgres:@localhost:5432/fornada?sslmode=disable", cfg.ConnectionString())

	pool := cfg.Pool()
	assert.Equal(t, 25, pool.MaxOpenConns)
	assert.Equal(t, 5, pool.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, pool.ConnMaxLifetime)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "0.75")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 0.75, cfg.Match.Threshold)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "ThresholdZero", key: "MATCH_THRESHOLD", value: "0"},
		{name: "ThresholdAboveOne", key: "MATCH_THRESHOLD", value: "1.5"},
		{name: "BadTaxIDPattern", key: "OCR_TAXID_PATTERN", value: "(["},
		{name: "BadNFePattern", key: "OCR_NFE_PATTERN", value: "(?i"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
