package config

const (
	defaultServerPort = 8080

	defaultRateLimitBurst = 50
	defaultCORSMaxAge     = 300

	defaultRedisMaxTxRetries = 5

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultResolveWorkers = 8
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                           "0.0.0.0",
		"server.port":                           defaultServerPort,
		"server.read_timeout":                   "5s",
		"server.write_timeout":                  "10s",
		"server.idle_timeout":                   "120s",
		"server.request_timeout":                "30s",
		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst_size":          defaultRateLimitBurst,
		"server.cors.allowed_origins":           []string{},
		"server.cors.max_age":                   defaultCORSMaxAge,

		"log.level":  "info",
		"log.format": "json",

		"store.driver":                                DriverMemory,
		"store.redis.addr":                            "localhost:6379",
		"store.redis.password":                        "",
		"store.redis.db":                              0,
		"store.redis.key_prefix":                      "library",
		"store.redis.dial_timeout":                    "5s",
		"store.redis.max_tx_retries":                  defaultRedisMaxTxRetries,
		"store.redis.retry_base_delay":                "5ms",
		"store.redis.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.redis.circuit_breaker.timeout":         "30s",
		"store.redis.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"library.seed":            true,
		"library.seed_file":       "",
		"library.resolve_workers": defaultResolveWorkers,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "go-library-service",
	}
}
