// Package instrumented decorates a ports.Store with OpenTelemetry metrics.
package instrumented

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-library-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-library-service/internal/ports"
)

// Operation results recorded on store metrics.
const (
	ResultSuccess = "success"
	ResultMiss    = "miss"
	ResultError   = "error"
)

// Store records the duration and outcome of every call to the wrapped store.
// A nil metrics makes it a transparent pass-through.
type Store[T ports.Identifiable] struct {
	next    ports.Store[T]
	kind    string
	metrics *telemetry.Metrics
}

// Compile-time interface check.
var _ ports.Store[ports.Identifiable] = (*Store[ports.Identifiable])(nil)

// Wrap returns next decorated with metrics labeled store.kind=kind.
func Wrap[T ports.Identifiable](next ports.Store[T], kind string, metrics *telemetry.Metrics) *Store[T] {
	return &Store[T]{next: next, kind: kind, metrics: metrics}
}

// Get implements ports.Store.
func (s *Store[T]) Get(ctx context.Context, id string) (T, bool, error) {
	start := time.Now()
	rec, ok, err := s.next.Get(ctx, id)
	s.record(ctx, "get", start, outcome(ok, err))
	return rec, ok, err
}

// GetAll implements ports.Store.
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	start := time.Now()
	recs, err := s.next.GetAll(ctx)
	s.record(ctx, "get_all", start, outcome(true, err))
	return recs, err
}

// Create implements ports.Store.
func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	start := time.Now()
	created, err := s.next.Create(ctx, rec)
	s.record(ctx, "create", start, outcome(true, err))
	return created, err
}

// Update implements ports.Store. A patch rejection is recorded as an error.
func (s *Store[T]) Update(ctx context.Context, id string, patch ports.Patch[T]) (T, bool, error) {
	start := time.Now()
	rec, ok, err := s.next.Update(ctx, id, patch)
	s.record(ctx, "update", start, outcome(ok, err))
	return rec, ok, err
}

// Delete implements ports.Store.
func (s *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	ok, err := s.next.Delete(ctx, id)
	s.record(ctx, "delete", start, outcome(ok, err))
	return ok, err
}

// Exists implements ports.Store.
func (s *Store[T]) Exists(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	ok, err := s.next.Exists(ctx, id)
	s.record(ctx, "exists", start, outcome(ok, err))
	return ok, err
}

func outcome(found bool, err error) string {
	switch {
	case err != nil:
		return ResultError
	case !found:
		return ResultMiss
	default:
		return ResultSuccess
	}
}

func (s *Store[T]) record(ctx context.Context, op string, start time.Time, result string) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStoreKind.String(s.kind),
		telemetry.AttrStoreOp.String(op),
		telemetry.AttrResult.String(result),
	)
	s.metrics.StoreOpDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOpTotal.Add(ctx, 1, attrs)
}
