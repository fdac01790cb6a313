package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		wantHeader bool
	}{
		{name: "incoming kept", header: "corr-checkout-42", wantHeader: true},
		{name: "absent falls back to request ID"},
		{name: "padded falls back to request ID", header: " corr "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.RequestID()(
				middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					gotID = middleware.CorrelationIDFromContext(r.Context())
				})),
			)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkouts", http.NoBody)
			req.Header.Set("X-Request-ID", "req-fallback")
			if tt.header != "" {
				req.Header.Set("X-Correlation-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			want := "req-fallback"
			if tt.wantHeader {
				want = tt.header
			}
			if gotID != want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, want)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != want {
				t.Errorf("response X-Correlation-ID = %q, want %q", got, want)
			}
		})
	}
}

func TestCorrelationIDContext(t *testing.T) {
	t.Parallel()

	if got := middleware.CorrelationIDFromContext(context.Background()); got != "" {
		t.Errorf("CorrelationIDFromContext(empty) = %q, want empty", got)
	}

	ctx := middleware.WithCorrelationID(context.Background(), "corr-9")
	if got := middleware.CorrelationIDFromContext(ctx); got != "corr-9" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "corr-9")
	}
}
