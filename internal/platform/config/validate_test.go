package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "port out of range",
			mutate:  func(cfg *config.Config) { cfg.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *config.Config) { cfg.Server.RequestTimeout = 0 },
			wantErr: "server.request_timeout",
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *config.Config) { cfg.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(cfg *config.Config) { cfg.Log.Format = "xml" },
			wantErr: "log.format",
		},
		{
			name:    "no retry attempts",
			mutate:  func(cfg *config.Config) { cfg.Client.Retry.MaxAttempts = 0 },
			wantErr: "client.retry.max_attempts",
		},
		{
			name:    "negative rate limit",
			mutate:  func(cfg *config.Config) { cfg.Client.RateLimit.RequestsPerSecond = -1 },
			wantErr: "client.rate_limit.requests_per_second",
		},
		{
			name:    "rate limit without burst",
			mutate:  func(cfg *config.Config) { cfg.Client.RateLimit.BurstSize = 0 },
			wantErr: "client.rate_limit.burst_size",
		},
		{
			name:   "unlimited rate ignores burst",
			mutate: func(cfg *config.Config) { cfg.Client.RateLimit = config.RateLimitConfig{} },
		},
		{
			name: "otlp without endpoint",
			mutate: func(cfg *config.Config) {
				cfg.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"}
			},
			wantErr: "telemetry.endpoint",
		},
		{
			name:   "disabled telemetry skips exporter check",
			mutate: func(cfg *config.Config) { cfg.Telemetry.Exporter = "zipkin" },
		},
		{
			name:    "unknown storage driver",
			mutate:  func(cfg *config.Config) { cfg.Storage.Driver = "postgres" },
			wantErr: "storage.driver",
		},
		{
			name:    "sqlite without path",
			mutate:  func(cfg *config.Config) { cfg.Storage.Path = "" },
			wantErr: "storage.path",
		},
		{
			name:   "memory ignores path",
			mutate: func(cfg *config.Config) { cfg.Storage = config.StorageConfig{Driver: config.DriverMemory} },
		},
		{
			name: "async events without buffer",
			mutate: func(cfg *config.Config) {
				cfg.Events.Async = true
				cfg.Events.BufferSize = 0
			},
			wantErr: "events.buffer_size",
		},
		{
			name: "async events without drain timeout",
			mutate: func(cfg *config.Config) {
				cfg.Events.Async = true
				cfg.Events.DrainTimeout = 0
			},
			wantErr: "events.drain_timeout",
		},
		{
			name: "negative enqueue timeout",
			mutate: func(cfg *config.Config) {
				cfg.Events.Async = true
				cfg.Events.EnqueueTimeout = -time.Second
			},
			wantErr: "events.enqueue_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_PipelineStrategies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rename  string
		addItem string
		wantErr bool
	}{
		{name: "guarded mutating", rename: config.RenameGuarded, addItem: config.AddItemMutating},
		{name: "result context", rename: config.RenameResult, addItem: config.AddItemContext},
		{name: "immutable mutating", rename: config.RenameImmutable, addItem: config.AddItemMutating},
		{name: "unknown rename", rename: "eventual", addItem: config.AddItemMutating, wantErr: true},
		{name: "unknown add item", rename: config.RenameGuarded, addItem: "batch", wantErr: true},
		{name: "empty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.Pipeline = config.PipelineConfig{RenameStrategy: tt.rename, AddItemStrategy: tt.addItem}

			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestValidate_Notifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		endpoints []string
		fanout    int
		wantErr   bool
	}{
		{name: "valid", endpoints: []string{"https://hooks.example.com/tracker"}, fanout: 2},
		{name: "no endpoints", fanout: 2, wantErr: true},
		{name: "relative endpoint", endpoints: []string{"/hooks"}, fanout: 2, wantErr: true},
		{name: "unsupported scheme", endpoints: []string{"ftp://hooks.example.com"}, fanout: 2, wantErr: true},
		{name: "zero concurrency", endpoints: []string{"http://localhost:9000"}, fanout: 0, wantErr: true},
		{name: "unsplit list", endpoints: []string{"http://localhost:9001/hook,http://localhost:9002/hook"}, fanout: 2, wantErr: true},
		{name: "embedded whitespace", endpoints: []string{"http://localhost:9001/a hook"}, fanout: 2, wantErr: true},
		{name: "bad port", endpoints: []string{"http://localhost:port/hook"}, fanout: 2, wantErr: true},
		{name: "several endpoints", endpoints: []string{"http://localhost:9001/hook", "https://hooks.example.com"}, fanout: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.Notifier = config.NotifierConfig{
				Enabled:        true,
				Endpoints:      tt.endpoints,
				MaxConcurrency: tt.fanout,
			}

			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 70000
	cfg.Log.Level = "loud"
	cfg.Storage.Driver = "mongo"

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"server.port", "log.level", "storage.driver"} {
		assert.Contains(t, err.Error(), key)
	}
}

// validConfig mirrors the shipped base.yaml.
func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 8 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			Timeout: 10 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			RateLimit: config.RateLimitConfig{RequestsPerSecond: 20, BurstSize: 10},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout", ServiceName: "project-tracker"},
		Storage:   config.StorageConfig{Driver: config.DriverSQLite, Path: "tracker.db"},
		Events:    config.EventsConfig{BufferSize: 256, DrainTimeout: 5 * time.Second},
		Pipeline: config.PipelineConfig{
			RenameStrategy:  config.RenameGuarded,
			AddItemStrategy: config.AddItemMutating,
		},
		Notifier: config.NotifierConfig{MaxConcurrency: 4},
	}
}
