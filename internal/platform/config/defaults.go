package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 10

	defaultEventBufferSize   = 256
	defaultNotifierFanout    = 4
	defaultStoragePath       = "tracker.db"
	defaultTelemetryService  = "project-tracker"
	defaultEventDrainTimeout = "5s"

	defaultEventEnqueueTimeout = "250ms"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.request_timeout": "8s",

		"log.level":  "info",
		"log.format": "json",

		"client.timeout":                         "10s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": defaultTelemetryService,

		"storage.driver": DriverSQLite,
		"storage.path":   defaultStoragePath,

		"events.async":           false,
		"events.buffer_size":     defaultEventBufferSize,
		"events.drain_timeout":   defaultEventDrainTimeout,
		"events.enqueue_timeout": defaultEventEnqueueTimeout,

		"pipeline.rename_strategy":   RenameGuarded,
		"pipeline.add_item_strategy": AddItemMutating,

		"notifier.enabled":         false,
		"notifier.endpoints":       []string{},
		"notifier.max_concurrency": defaultNotifierFanout,
		"notifier.signing_secret":  "",
	}
}
