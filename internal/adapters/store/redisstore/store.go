package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/go-library-service/internal/platform/config"
	"github.com/jsamuelsen11/go-library-service/internal/ports"
)

const jitterFactor = 0.5

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrTxConflict is returned when an optimistic transaction keeps losing to
// concurrent writers after every retry.
var ErrTxConflict = errors.New("redis transaction conflict")

// patchError carries a patch rejection through the breaker without counting
// it as a backend failure.
type patchError struct{ err error }

func (e *patchError) Error() string { return e.err.Error() }
func (e *patchError) Unwrap() error { return e.err }

// Store is a Redis-backed ports.Store for one record kind.
type Store[T ports.Identifiable] struct {
	client     redis.UniversalClient
	kind       string
	prefix     string
	breaker    *gobreaker.CircuitBreaker[struct{}]
	maxRetries int
	baseDelay  time.Duration
	logger     *slog.Logger
}

// Compile-time interface checks.
var (
	_ ports.Store[ports.Identifiable] = (*Store[ports.Identifiable])(nil)
	_ ports.HealthChecker             = (*Store[ports.Identifiable])(nil)
)

// New creates a Store for records of the given kind (e.g. "book").
func New[T ports.Identifiable](
	client redis.UniversalClient, kind string, cfg *config.RedisConfig, logger *slog.Logger,
) *Store[T] {
	name := "redis:" + kind
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			var pe *patchError
			return err == nil || errors.As(err, &pe) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store[T]{
		client:     client,
		kind:       kind,
		prefix:     cfg.KeyPrefix,
		breaker:    cb,
		maxRetries: max(cfg.MaxTxRetries, 1),
		baseDelay:  cfg.RetryBaseDelay,
		logger:     logger,
	}
}

// Get retrieves the record stored under id.
func (s *Store[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var (
		rec   T
		found bool
	)
	err := s.execute(func() error {
		data, err := s.client.Get(ctx, s.recordKey(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return rec, false, fmt.Errorf("redis get %s %s: %w", s.kind, id, err)
	}
	return rec, found, nil
}

// GetAll returns all records in insertion order.
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	var result []T
	err := s.execute(func() error {
		ids, err := s.client.LRange(ctx, s.indexKey(), 0, -1).Result()
		if err != nil {
			return err
		}
		result = make([]T, 0, len(ids))
		if len(ids) == 0 {
			return nil
		}

		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = s.recordKey(id)
		}
		values, err := s.client.MGet(ctx, keys...).Result()
		if err != nil {
			return err
		}
		for _, v := range values {
			raw, ok := v.(string)
			if !ok {
				continue
			}
			var rec T
			if err := json.UnmarshalFromString(raw, &rec); err != nil {
				return err
			}
			result = append(result, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis get all %s: %w", s.kind, err)
	}
	return result, nil
}

// Create stores rec under its identity. The index is appended only the
// first time an id is written.
func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	id := rec.Identity()
	data, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("encoding %s %s: %w", s.kind, id, err)
	}

	key := s.recordKey(id)
	err = s.transact(ctx, key, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			if n == 0 {
				pipe.RPush(ctx, s.indexKey(), id)
			}
			return nil
		})
		return err
	})
	if err != nil {
		return rec, fmt.Errorf("redis create %s %s: %w", s.kind, id, err)
	}
	return rec, nil
}

// Update reads the current record, applies patch and writes the result only
// if no other writer touched the key in between.
func (s *Store[T]) Update(ctx context.Context, id string, patch ports.Patch[T]) (T, bool, error) {
	var (
		next  T
		found bool
	)

	key := s.recordKey(id)
	err := s.transact(ctx, key, func(tx *redis.Tx) error {
		var zero T
		next, found = zero, false

		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		if err := json.Unmarshal(data, &next); err != nil {
			return err
		}
		if err := patch(&next); err != nil {
			return &patchError{err: err}
		}
		encoded, err := json.Marshal(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, 0)
			return nil
		})
		return err
	})

	var pe *patchError
	if errors.As(err, &pe) {
		var zero T
		return zero, true, pe.err
	}
	if err != nil {
		var zero T
		return zero, false, fmt.Errorf("redis update %s %s: %w", s.kind, id, err)
	}
	if !found {
		var zero T
		return zero, false, nil
	}
	return next, true, nil
}

// Delete removes the record stored under id if it exists.
func (s *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := s.execute(func() error {
		var del *redis.IntCmd
		_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			del = pipe.Del(ctx, s.recordKey(id))
			pipe.LRem(ctx, s.indexKey(), 0, id)
			return nil
		})
		if err != nil {
			return err
		}
		deleted = del.Val() > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis delete %s %s: %w", s.kind, id, err)
	}
	return deleted, nil
}

// Exists reports whether a record is stored under id.
func (s *Store[T]) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.execute(func() error {
		n, err := s.client.Exists(ctx, s.recordKey(id)).Result()
		exists = n > 0
		return err
	})
	if err != nil {
		return false, fmt.Errorf("redis exists %s %s: %w", s.kind, id, err)
	}
	return exists, nil
}

// Name identifies this store in health reports.
func (s *Store[T]) Name() string {
	return "redis-" + s.kind + "-store"
}

// HealthCheck reports the breaker state and, when closed, pings Redis.
func (s *Store[T]) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateClosed:
		if err := s.client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("%s: ping failed: %w", s.Name(), err)
		}
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", s.Name())
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", s.Name())
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", s.Name(), state)
	}
}

// execute runs fn through the circuit breaker.
func (s *Store[T]) execute(fn func() error) error {
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// transact runs fn as an optimistic transaction watching key. Aborted
// transactions are retried with exponential backoff and jitter.
func (s *Store[T]) transact(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	for attempt := range s.maxRetries {
		if attempt > 0 {
			if err := s.backoff(ctx, attempt); err != nil {
				return err
			}
		}

		err := s.execute(func() error {
			return s.client.Watch(ctx, fn, key)
		})
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		s.logger.DebugContext(ctx, "redis transaction aborted, retrying",
			slog.String("key", key),
			slog.Int("attempt", attempt+1),
		)
	}
	return fmt.Errorf("%w after %d attempts on %s", ErrTxConflict, s.maxRetries, key)
}

// backoff waits baseDelay * 2^(attempt-1) plus jitter, or until ctx is done.
func (s *Store[T]) backoff(ctx context.Context, attempt int) error {
	delay := s.baseDelay * time.Duration(1<<min(attempt-1, 16))
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor) //nolint:gosec // jitter only

	timer := time.NewTimer(delay + jitter)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store[T]) recordKey(id string) string {
	return s.prefix + ":" + s.kind + ":" + id
}

func (s *Store[T]) indexKey() string {
	return s.prefix + ":" + s.kind + ":index"
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
