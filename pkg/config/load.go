package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies defaults, and
// validates. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and then
// applies SPORTSGATE_* environment variable overrides. Environment
// variables always take precedence over file values.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies SPORTSGATE_SECTION_FIELD overrides.
func applyEnvOverrides(cfg *Config) {
	setString("SPORTSGATE_SERVER_LISTEN_ADDRESS", &cfg.Server.ListenAddress)
	setDuration("SPORTSGATE_SERVER_READ_TIMEOUT", &cfg.Server.ReadTimeout)
	setDuration("SPORTSGATE_SERVER_WRITE_TIMEOUT", &cfg.Server.WriteTimeout)
	setDuration("SPORTSGATE_SERVER_IDLE_TIMEOUT", &cfg.Server.IdleTimeout)
	setDuration("SPORTSGATE_SERVER_REQUEST_TIMEOUT", &cfg.Server.RequestTimeout)
	setDuration("SPORTSGATE_SERVER_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)
	setInt("SPORTSGATE_SERVER_MAX_HEADER_BYTES", &cfg.Server.MaxHeaderBytes)

	setString("SPORTSGATE_PROVIDER_NAME", &cfg.Provider.Name)
	setString("SPORTSGATE_PROVIDER_BASE_URL", &cfg.Provider.BaseURL)
	setDuration("SPORTSGATE_PROVIDER_TIMEOUT", &cfg.Provider.Timeout)

	setInt("SPORTSGATE_RATE_LIMIT_MAX_REQUESTS", &cfg.RateLimit.MaxRequests)
	setDuration("SPORTSGATE_RATE_LIMIT_WINDOW", &cfg.RateLimit.Window)

	setInt("SPORTSGATE_RETRY_MAX_RETRIES", &cfg.Retry.MaxRetries)
	setDuration("SPORTSGATE_RETRY_BASE_DELAY", &cfg.Retry.BaseDelay)
	setDuration("SPORTSGATE_RETRY_MAX_DELAY", &cfg.Retry.MaxDelay)
	setFloat("SPORTSGATE_RETRY_MULTIPLIER", &cfg.Retry.Multiplier)
	setFloat("SPORTSGATE_RETRY_JITTER_RANGE", &cfg.Retry.JitterRange)

	setBool("SPORTSGATE_AUDIT_ENABLED", &cfg.Audit.Enabled)
	setString("SPORTSGATE_AUDIT_BACKEND", &cfg.Audit.Backend)
	setString("SPORTSGATE_AUDIT_PATH", &cfg.Audit.Path)
	setInt("SPORTSGATE_AUDIT_RETENTION_DAYS", &cfg.Audit.RetentionDays)
	setString("SPORTSGATE_AUDIT_PRUNE_SCHEDULE", &cfg.Audit.PruneSchedule)

	setString("SPORTSGATE_LOG_LEVEL", &cfg.Telemetry.Logging.Level)
	setString("SPORTSGATE_LOG_FORMAT", &cfg.Telemetry.Logging.Format)
	setBool("SPORTSGATE_METRICS_ENABLED", &cfg.Telemetry.Metrics.Enabled)
	setString("SPORTSGATE_METRICS_PATH", &cfg.Telemetry.Metrics.Path)
}

func setString(name string, target *string) {
	if val := os.Getenv(name); val != "" {
		*target = val
	}
}

func setInt(name string, target *int) {
	if val := os.Getenv(name); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			*target = i
		}
	}
}

func setFloat(name string, target *float64) {
	if val := os.Getenv(name); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*target = f
		}
	}
}

func setBool(name string, target *bool) {
	if val := os.Getenv(name); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*target = b
		}
	}
}

func setDuration(name string, target *time.Duration) {
	if val := os.Getenv(name); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*target = d
		}
	}
}
