package config

import "time"

// Config is the root configuration for the proxy.
type Config struct {
	// Server contains the HTTP server configuration.
	Server ServerConfig `yaml:"server"`

	// Provider selects and configures the upstream sports data provider.
	Provider ProviderConfig `yaml:"provider"`

	// RateLimit configures the process-wide request budget.
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Retry configures the backoff retry policy for provider calls.
	Retry RetryConfig `yaml:"retry"`

	// Audit configures the audit trail.
	Audit AuditConfig `yaml:"audit"`

	// Telemetry configures logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains the HTTP server configuration.
type ServerConfig struct {
	// ListenAddress is "host:port" for the server to listen on.
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading a request.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration for writing a response.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle timeout.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// RequestTimeout bounds the full dispatch of one request, including
	// retries and backoff sleeps.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// ShutdownTimeout is the graceful shutdown grace period.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes caps request header size.
	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

// ProviderConfig configures the upstream provider.
type ProviderConfig struct {
	// Name selects the provider backend ("openliga").
	Name string `yaml:"name"`

	// BaseURL overrides the provider's default API base URL.
	BaseURL string `yaml:"base_url"`

	// Timeout is the per-call timeout towards the provider.
	Timeout time.Duration `yaml:"timeout"`

	// MaxIdleConns caps the provider HTTP connection pool.
	MaxIdleConns int `yaml:"max_idle_conns"`

	// MaxIdleConnsPerHost caps idle connections to one host.
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host"`

	// IdleConnTimeout closes idle connections after this duration.
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout"`
}

// RateLimitConfig configures the sliding window request budget shared by
// all operations.
type RateLimitConfig struct {
	// MaxRequests is the number of admissions per window.
	MaxRequests int `yaml:"max_requests"`

	// Window is the sliding window size.
	Window time.Duration `yaml:"window"`
}

// RetryConfig configures the exponential backoff retry policy.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int `yaml:"max_retries"`

	// BaseDelay is the first backoff delay.
	BaseDelay time.Duration `yaml:"base_delay"`

	// MaxDelay caps the backoff delay.
	MaxDelay time.Duration `yaml:"max_delay"`

	// Multiplier is the exponential growth factor.
	Multiplier float64 `yaml:"multiplier"`

	// JitterRange is the uniform jitter fraction (0.1 means +/-10%).
	JitterRange float64 `yaml:"jitter_range"`
}

// AuditConfig configures the audit trail.
type AuditConfig struct {
	// Enabled enables audit recording.
	Enabled bool `yaml:"enabled"`

	// Backend selects the storage backend ("sqlite", "memory").
	Backend string `yaml:"backend"`

	// Path is the SQLite database file path.
	Path string `yaml:"path"`

	// AsyncBuffer is the recorder's channel buffer size.
	AsyncBuffer int `yaml:"async_buffer"`

	// WriteTimeout bounds each storage write.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// RetentionDays is how long events are kept; 0 keeps them forever.
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is the cron expression for retention pruning.
	PruneSchedule string `yaml:"prune_schedule"`

	// MaxEvents caps the trail size; 0 means unlimited.
	MaxEvents int64 `yaml:"max_events"`
}

// TelemetryConfig configures logging and metrics.
type TelemetryConfig struct {
	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures Prometheus exposition.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the output format ("json", "text").
	Format string `yaml:"format"`

	// AddSource includes file and line number in logs.
	AddSource bool `yaml:"add_source"`

	// RedactSecrets enables automatic secret redaction.
	RedactSecrets bool `yaml:"redact_secrets"`
}

// MetricsConfig configures Prometheus exposition.
type MetricsConfig struct {
	// Enabled enables the /metrics endpoint.
	Enabled bool `yaml:"enabled"`

	// Path is the metrics endpoint path.
	Path string `yaml:"path"`
}
