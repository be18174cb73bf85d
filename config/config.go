package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServerHost             = "0.0.0.0"
	DefaultServerPort             = "8080"
	DefaultMealDBBaseURL          = "https://www.themealdb.com/api/json/v1/1"
	DefaultUpstreamTimeoutSeconds = 15
	DefaultRedisPort              = "6379"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment `yaml:"-"`

	// Server configuration
	ServerHost string `yaml:"server_host"`
	ServerPort string `yaml:"server_port"`

	// Upstream recipe API
	MealDBBaseURL          string `yaml:"mealdb_base_url"`
	UpstreamTimeoutSeconds int    `yaml:"upstream_timeout_seconds"`

	// Response cache
	CacheEnabled  bool   `yaml:"cache_enabled"`
	RedisURL      string `yaml:"redis_url"`
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"-"`
	RedisDB       int    `yaml:"redis_db"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	LogMode            string   `yaml:"log_mode"`

	// Tracing
	OtelEnabled     bool    `yaml:"otel_enabled"`
	OtelEndpoint    string  `yaml:"otel_endpoint"`
	OtelInsecure    bool    `yaml:"otel_insecure"`
	OtelSampleRatio float64 `yaml:"otel_sample_ratio"`
}

// UpstreamTimeout is the per-request timeout for the recipe API.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RedisAddr returns host:port, or "" when no Redis host is configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	port := c.RedisPort
	if port == "" {
		port = DefaultRedisPort
	}
	return c.RedisHost + ":" + port
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// named by CONFIG_FILE, environment variables and the redis_password secret,
// in that order of precedence.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{
		Environment:            env,
		ServerHost:             DefaultServerHost,
		ServerPort:             DefaultServerPort,
		MealDBBaseURL:          DefaultMealDBBaseURL,
		UpstreamTimeoutSeconds: DefaultUpstreamTimeoutSeconds,
		CORSAllowedOrigins:     []string{"*"},
		LogMode:                env.DefaultLogMode(),
		OtelSampleRatio:        1,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	if pw := readSecret("redis_password"); pw != "" {
		cfg.RedisPassword = pw
	} else {
		cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) error {
	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.MealDBBaseURL, "MEALDB_BASE_URL")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.RedisHost, "REDIS_HOST")
	setString(&cfg.RedisPort, "REDIS_PORT")
	setString(&cfg.LogMode, "LOG_MODE")
	setString(&cfg.OtelEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}

	if err := setInt(&cfg.UpstreamTimeoutSeconds, "UPSTREAM_TIMEOUT_SECONDS"); err != nil {
		return err
	}
	if err := setInt(&cfg.RedisDB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setBool(&cfg.CacheEnabled, "CACHE_ENABLED"); err != nil {
		return err
	}
	if err := setBool(&cfg.OtelEnabled, "OTEL_ENABLED"); err != nil {
		return err
	}
	if err := setBool(&cfg.OtelInsecure, "OTEL_EXPORTER_OTLP_INSECURE"); err != nil {
		return err
	}
	if v := strings.TrimSpace(os.Getenv("OTEL_SAMPLE_RATIO")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("OTEL_SAMPLE_RATIO: %w", err)
		}
		cfg.OtelSampleRatio = f
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
