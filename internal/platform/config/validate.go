package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Library.validate(),
		c.Telemetry.validate(),
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
	if s.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit.requests_per_second must be >= 0, got %g",
			s.RateLimit.RequestsPerSecond))
	}
	if s.RateLimit.RequestsPerSecond > 0 && s.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("server.rate_limit.burst_size must be >= 1 when limiting, got %d",
			s.RateLimit.BurstSize))
	}
	if s.CORS.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("server.cors.max_age must be >= 0, got %d", s.CORS.MaxAge))
	}
	for _, origin := range s.CORS.AllowedOrigins {
		if origin == "" {
			errs = append(errs, errors.New("server.cors.allowed_origins must not contain empty entries"))
			break
		}
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

func (st *StoreConfig) validate() error {
	var errs []error

	switch st.Driver {
	case DriverMemory:
		return nil
	case DriverRedis:
		// Checked below.
	default:
		return fmt.Errorf("store.driver must be one of: memory, redis; got %q", st.Driver)
	}

	r := st.Redis
	if r.Addr == "" {
		errs = append(errs, errors.New("store.redis.addr must not be empty"))
	}
	if r.DB < 0 {
		errs = append(errs, fmt.Errorf("store.redis.db must be >= 0, got %d", r.DB))
	}
	if r.KeyPrefix == "" {
		errs = append(errs, errors.New("store.redis.key_prefix must not be empty"))
	}
	if r.MaxTxRetries < 1 {
		errs = append(errs, fmt.Errorf("store.redis.max_tx_retries must be >= 1, got %d", r.MaxTxRetries))
	}
	if r.RetryBaseDelay < 0 {
		errs = append(errs, errors.New("store.redis.retry_base_delay must not be negative"))
	}
	if r.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.redis.circuit_breaker.max_failures must be >= 1, got %d",
			r.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (l *LibraryConfig) validate() error {
	if l.ResolveWorkers < 1 {
		return fmt.Errorf("library.resolve_workers must be >= 1, got %d", l.ResolveWorkers)
	}
	return nil
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
