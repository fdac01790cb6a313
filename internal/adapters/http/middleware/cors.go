package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/go-library-service/internal/platform/config"
)

// CORS returns middleware that lets browser front ends on the configured
// origins call the catalog and lending endpoints. Preflight requests are
// answered here and never reach the rate limiter or handlers. With no
// allowed origins it is a pass-through.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", headerRequestID, headerCorrelationID},
		ExposedHeaders: []string{headerRequestID, headerCorrelationID, "Retry-After"},
		MaxAge:         cfg.MaxAge,
	})
}
