package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-library-service/internal/platform/config"
	"github.com/jsamuelsen11/go-library-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-library-service/internal/platform/telemetry"
)

// StackConfig holds what the standard middleware stack needs.
type StackConfig struct {
	Logger         *slog.Logger
	Metrics        *telemetry.Metrics
	CORS           config.CORSConfig
	RateLimit      config.RateLimitConfig
	RequestTimeout time.Duration
}

// Stack returns the standard middleware in application order. The first
// element is the outermost: it sees the request first and the response last.
func Stack(cfg StackConfig) []func(http.Handler) http.Handler {
	logger := logging.OrDiscard(cfg.Logger)

	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		CORS(cfg.CORS),
		RateLimit(cfg.RateLimit, logger),
		OpenTelemetry(cfg.Metrics),
		Logging(logger),
		Timeout(cfg.RequestTimeout),
	}
}
