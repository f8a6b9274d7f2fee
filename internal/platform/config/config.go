// Package config provides configuration loading and validation for the
// tracker. Configuration is loaded from YAML files with environment variable
// overrides using a layered system: defaults -> base.yaml -> {profile}.yaml ->
// env vars.
package config

import "time"

// Config holds all configuration for the tracker binaries.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Storage   StorageConfig   `koanf:"storage"`
	Events    EventsConfig    `koanf:"events"`
	Pipeline  PipelineConfig  `koanf:"pipeline"`
	Notifier  NotifierConfig  `koanf:"notifier"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// RequestTimeout bounds each API request, including its storage calls.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds outbound HTTP client settings used for webhook delivery.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// StorageConfig selects the project store.
type StorageConfig struct {
	Driver string `koanf:"driver"`
	// Path is the SQLite database file. ":memory:" opens a private in-memory
	// database.
	Path string `koanf:"path"`
}

// EventsConfig controls domain event dispatch.
type EventsConfig struct {
	Async          bool          `koanf:"async"`
	BufferSize     int           `koanf:"buffer_size"`
	DrainTimeout   time.Duration `koanf:"drain_timeout"`
	EnqueueTimeout time.Duration `koanf:"enqueue_timeout"`
}

// Pipeline strategy names.
const (
	RenameGuarded   = "guarded"
	RenameResult    = "result"
	RenameImmutable = "immutable"

	AddItemMutating = "mutating"
	AddItemContext  = "context"
)

// PipelineConfig selects which aggregate operations the command pipeline
// uses for rename and add-item.
type PipelineConfig struct {
	RenameStrategy  string `koanf:"rename_strategy"`
	AddItemStrategy string `koanf:"add_item_strategy"`
}

// NotifierConfig controls webhook delivery of domain events.
type NotifierConfig struct {
	Enabled        bool     `koanf:"enabled"`
	Endpoints      []string `koanf:"endpoints"`
	MaxConcurrency int      `koanf:"max_concurrency"`
	// SigningSecret, when set, signs each payload with HMAC-SHA256.
	SigningSecret string `koanf:"signing_secret"`
}
