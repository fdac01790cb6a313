package instrumented_test

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/instrumented"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/platform/telemetry"
)

func newMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}
	return metrics, reader
}

// counts returns store.operation.total data points keyed by "op/result".
func counts(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	got := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "library.store.operation.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("store.operation.total has data type %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value(telemetry.AttrStoreOp)
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				kind, _ := dp.Attributes.Value(telemetry.AttrStoreKind)
				if kind.AsString() != "book" {
					t.Errorf("store.kind = %q, want book", kind.AsString())
				}
				got[op.AsString()+"/"+result.AsString()] += dp.Value
			}
		}
	}
	return got
}

func TestStore_RecordsOutcomes(t *testing.T) {
	t.Parallel()

	metrics, reader := newMetrics(t)
	s := instrumented.Wrap[book.Book](memory.New[book.Book](), "book", metrics)
	ctx := context.Background()

	if _, err := s.Create(ctx, book.Book{ID: "1", Title: "T", Author: "A"}); err != nil {
		t.Fatal(err)
	}
	_, _, _ = s.Get(ctx, "1")
	_, _, _ = s.Get(ctx, "1")
	_, _, _ = s.Get(ctx, "999")
	_, _ = s.GetAll(ctx)
	_, _, _ = s.Update(ctx, "999", func(*book.Book) error { return nil })

	got := counts(t, reader)
	want := map[string]int64{
		"create/success":  1,
		"get/success":     2,
		"get/miss":        1,
		"get_all/success": 1,
		"update/miss":     1,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("count[%s] = %d, want %d (all: %v)", k, got[k], v, got)
		}
	}
}

func TestStore_NilMetricsPassThrough(t *testing.T) {
	t.Parallel()

	s := instrumented.Wrap[book.Book](memory.New[book.Book](), "book", nil)
	ctx := context.Background()

	if _, err := s.Create(ctx, book.Book{ID: "1", Title: "T", Author: "A"}); err != nil {
		t.Fatal(err)
	}
	if ok, _ := s.Exists(ctx, "1"); !ok {
		t.Error("Exists(1) = false, want true")
	}
	if ok, _ := s.Delete(ctx, "1"); !ok {
		t.Error("Delete(1) = false, want true")
	}
}
