package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points SECRETS_DIR at an empty directory and clears the variables
// LoadConfig reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	for _, key := range []string{
		"CI", "ENV", "CONFIG_FILE", "SERVER_HOST", "SERVER_PORT", "MEALDB_BASE_URL",
		"UPSTREAM_TIMEOUT_SECONDS", "CACHE_ENABLED", "REDIS_URL", "REDIS_HOST", "REDIS_PORT",
		"REDIS_DB", "REDIS_PASSWORD", "CORS_ALLOWED_ORIGINS", "LOG_MODE", "OTEL_ENABLED",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE", "OTEL_SAMPLE_RATIO",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, DefaultMealDBBaseURL, cfg.MealDBBaseURL)
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout())
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Empty(t, cfg.RedisAddr())
}

func TestLoadConfig(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MEALDB_BASE_URL", "http://mealdb.local/api")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "3")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "from-env")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://recipes.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "http://mealdb.local/api", cfg.MealDBBaseURL)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout())
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, "redis:6379", cfg.RedisAddr())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "from-env", cfg.RedisPassword)
	assert.Equal(t, []string{"http://localhost:3000", "https://recipes.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigSecretWinsOverEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "redis_password"), []byte("from-secret\n"), 0o600))
	t.Setenv("REDIS_PASSWORD", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-secret", cfg.RedisPassword)
}

func TestLoadConfigFileOverlay(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_port: "7070"
log_mode: prod
cache_enabled: true
redis_url: redis://cache:6379/1
cors_allowed_origins:
  - https://a.example.com
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "7171")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7171", cfg.ServerPort, "environment overrides the file")
	assert.Equal(t, "prod", cfg.LogMode)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, []string{"https://a.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigMissingFile(t *testing.T) {
	isolate(t)
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigBadNumber(t *testing.T) {
	isolate(t)
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "soon")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "UPSTREAM_TIMEOUT_SECONDS")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:             "8080",
			MealDBBaseURL:          DefaultMealDBBaseURL,
			UpstreamTimeoutSeconds: 15,
			OtelSampleRatio:        1,
		}
	}

	assert.NoError(t, ValidateConfig(valid()))

	tests := []struct {
		name  string
		mod   func(*Config)
		field string
	}{
		{"non-numeric port", func(c *Config) { c.ServerPort = "http" }, "SERVER_PORT"},
		{"port out of range", func(c *Config) { c.ServerPort = "70000" }, "SERVER_PORT"},
		{"relative base url", func(c *Config) { c.MealDBBaseURL = "/api/json" }, "MEALDB_BASE_URL"},
		{"zero timeout", func(c *Config) { c.UpstreamTimeoutSeconds = 0 }, "UPSTREAM_TIMEOUT_SECONDS"},
		{"cache without redis", func(c *Config) { c.CacheEnabled = true }, "REDIS_URL"},
		{"sample ratio", func(c *Config) { c.OtelSampleRatio = 2 }, "OTEL_SAMPLE_RATIO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mod(cfg)

			err := ValidateConfig(cfg)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Production, ParseEnvironment("PRODUCTION"))
	assert.Equal(t, Production, ParseEnvironment("prod"))
	assert.Equal(t, Test, ParseEnvironment("test"))
	assert.Equal(t, Development, ParseEnvironment(""))
	assert.Equal(t, Development, ParseEnvironment("staging"))
	assert.Equal(t, "prod", Production.DefaultLogMode())
	assert.Equal(t, "dev", Test.DefaultLogMode())
}
