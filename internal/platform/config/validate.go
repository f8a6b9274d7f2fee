package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Storage.validate(),
		c.Events.validate(),
		c.Pipeline.validate(),
		c.Notifier.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverSQLite:
		if s.Path == "" {
			return errors.New("storage.path must not be empty for the sqlite driver")
		}
		return nil
	case DriverMemory:
		return nil
	default:
		return fmt.Errorf("storage.driver must be one of: sqlite, memory; got %q", s.Driver)
	}
}

func (e *EventsConfig) validate() error {
	if !e.Async {
		return nil
	}

	var errs []error

	if e.BufferSize < 1 {
		errs = append(errs, fmt.Errorf("events.buffer_size must be >= 1 when async, got %d", e.BufferSize))
	}
	if e.DrainTimeout <= 0 {
		errs = append(errs, errors.New("events.drain_timeout must be positive when async"))
	}
	if e.EnqueueTimeout < 0 {
		errs = append(errs, fmt.Errorf("events.enqueue_timeout must not be negative, got %s", e.EnqueueTimeout))
	}

	return errors.Join(errs...)
}

func (p *PipelineConfig) validate() error {
	var errs []error

	switch p.RenameStrategy {
	case RenameGuarded, RenameResult, RenameImmutable:
	default:
		errs = append(errs, fmt.Errorf("pipeline.rename_strategy must be one of: guarded, result, immutable; got %q",
			p.RenameStrategy))
	}

	switch p.AddItemStrategy {
	case AddItemMutating, AddItemContext:
	default:
		errs = append(errs, fmt.Errorf("pipeline.add_item_strategy must be one of: mutating, context; got %q",
			p.AddItemStrategy))
	}

	return errors.Join(errs...)
}

func (n *NotifierConfig) validate() error {
	if !n.Enabled {
		return nil
	}

	var errs []error

	if len(n.Endpoints) == 0 {
		errs = append(errs, errors.New("notifier.endpoints must not be empty when enabled"))
	}
	for i, endpoint := range n.Endpoints {
		u, err := url.ParseRequestURI(endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" ||
			strings.ContainsAny(endpoint, ", \t") {
			errs = append(errs, fmt.Errorf("notifier.endpoints[%d] must be an absolute http(s) URL, got %q", i, endpoint))
		}
	}
	if n.MaxConcurrency < 1 {
		errs = append(errs, fmt.Errorf("notifier.max_concurrency must be >= 1, got %d", n.MaxConcurrency))
	}

	return errors.Join(errs...)
}
