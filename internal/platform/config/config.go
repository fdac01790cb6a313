// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	Library   LibraryConfig   `koanf:"library"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string          `koanf:"host"`
	Port           int             `koanf:"port"`
	ReadTimeout    time.Duration   `koanf:"read_timeout"`
	WriteTimeout   time.Duration   `koanf:"write_timeout"`
	IdleTimeout    time.Duration   `koanf:"idle_timeout"`
	RequestTimeout time.Duration   `koanf:"request_timeout"`
	RateLimit      RateLimitConfig `koanf:"rate_limit"`
	CORS           CORSConfig      `koanf:"cors"`
}

// CORSConfig holds browser cross-origin settings. An empty AllowedOrigins
// list disables CORS handling.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	// MaxAge is how long, in seconds, browsers may cache a preflight.
	MaxAge int `koanf:"max_age"`
}

// RateLimitConfig holds inbound token bucket settings.
// A RequestsPerSecond of zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects and configures the record store backend.
type StoreConfig struct {
	Driver string      `koanf:"driver"`
	Redis  RedisConfig `koanf:"redis"`
}

// RedisConfig holds settings for the Redis store backend.
type RedisConfig struct {
	Addr           string               `koanf:"addr"`
	Password       string               `koanf:"password"`
	DB             int                  `koanf:"db"`
	KeyPrefix      string               `koanf:"key_prefix"`
	DialTimeout    time.Duration        `koanf:"dial_timeout"`
	MaxTxRetries   int                  `koanf:"max_tx_retries"`
	RetryBaseDelay time.Duration        `koanf:"retry_base_delay"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// LibraryConfig holds catalog behavior settings.
type LibraryConfig struct {
	// Seed loads the starting catalog and patrons at startup.
	Seed bool `koanf:"seed"`
	// SeedFile replaces the built-in catalog with a YAML file when set.
	SeedFile string `koanf:"seed_file"`
	// ResolveWorkers bounds concurrent field resolution for list responses.
	ResolveWorkers int `koanf:"resolve_workers"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
