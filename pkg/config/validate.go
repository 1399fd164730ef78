package config

import (
	"fmt"
	"net"
	"strings"
)

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every invalid field found.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the whole configuration and reports every invalid
// field, not just the first.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	add := func(field, message string) {
		errs = append(errs, &ValidationError{Field: field, Message: message})
	}

	if _, _, err := net.SplitHostPort(cfg.Server.ListenAddress); err != nil {
		add("server.listen_address", fmt.Sprintf("invalid address %q", cfg.Server.ListenAddress))
	}
	if cfg.Server.ReadTimeout < 0 {
		add("server.read_timeout", "must not be negative")
	}
	if cfg.Server.WriteTimeout < 0 {
		add("server.write_timeout", "must not be negative")
	}
	if cfg.Server.RequestTimeout <= 0 {
		add("server.request_timeout", "must be positive")
	}

	switch cfg.Provider.Name {
	case "openliga":
	case "":
		add("provider.name", "must be set")
	default:
		add("provider.name", fmt.Sprintf("unknown provider %q", cfg.Provider.Name))
	}
	if cfg.Provider.Timeout <= 0 {
		add("provider.timeout", "must be positive")
	}

	if cfg.RateLimit.MaxRequests < 0 {
		add("rate_limit.max_requests", "must not be negative")
	}
	if cfg.RateLimit.Window <= 0 {
		add("rate_limit.window", "must be positive")
	}

	if cfg.Retry.MaxRetries < 0 {
		add("retry.max_retries", "must not be negative")
	}
	if cfg.Retry.BaseDelay <= 0 {
		add("retry.base_delay", "must be positive")
	}
	if cfg.Retry.MaxDelay < cfg.Retry.BaseDelay {
		add("retry.max_delay", "must not be smaller than base_delay")
	}
	if cfg.Retry.Multiplier < 1 {
		add("retry.multiplier", "must be at least 1")
	}
	if cfg.Retry.JitterRange < 0 || cfg.Retry.JitterRange > 1 {
		add("retry.jitter_range", "must be between 0 and 1")
	}

	switch cfg.Audit.Backend {
	case "sqlite", "memory":
	default:
		add("audit.backend", fmt.Sprintf("unknown backend %q", cfg.Audit.Backend))
	}
	if cfg.Audit.Backend == "sqlite" && cfg.Audit.Path == "" {
		add("audit.path", "must be set for the sqlite backend")
	}
	if cfg.Audit.RetentionDays < 0 {
		add("audit.retention_days", "must not be negative")
	}

	switch cfg.Telemetry.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		add("telemetry.logging.level", fmt.Sprintf("unknown level %q", cfg.Telemetry.Logging.Level))
	}
	switch cfg.Telemetry.Logging.Format {
	case "json", "text":
	default:
		add("telemetry.logging.format", fmt.Sprintf("unknown format %q", cfg.Telemetry.Logging.Format))
	}
	if cfg.Telemetry.Metrics.Enabled && !strings.HasPrefix(cfg.Telemetry.Metrics.Path, "/") {
		add("telemetry.metrics.path", "must start with /")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
