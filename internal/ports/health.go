package ports

import "context"

// HealthChecker is a dependency the readiness probe asks about, in practice
// a record store backend.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g.
	// "redis-book-store".
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per registered name; a nil error means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
