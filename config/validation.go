package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks the loaded configuration for values the server
// cannot start with.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if u, err := url.Parse(cfg.MealDBBaseURL); err != nil || !u.IsAbs() || u.Host == "" {
		errs = append(errs, ValidationError{Field: "MEALDB_BASE_URL", Message: fmt.Sprintf("must be an absolute URL, got %q", cfg.MealDBBaseURL)})
	}

	if cfg.UpstreamTimeoutSeconds <= 0 {
		errs = append(errs, ValidationError{Field: "UPSTREAM_TIMEOUT_SECONDS", Message: "must be positive"})
	}

	if cfg.CacheEnabled && cfg.RedisURL == "" && cfg.RedisAddr() == "" {
		errs = append(errs, ValidationError{Field: "REDIS_URL", Message: "REDIS_URL or REDIS_HOST is required when CACHE_ENABLED is set"})
	}

	if cfg.OtelSampleRatio < 0 || cfg.OtelSampleRatio > 1 {
		errs = append(errs, ValidationError{Field: "OTEL_SAMPLE_RATIO", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
