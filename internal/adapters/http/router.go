// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-library-service/internal/domain"
)

// NewRouter builds the library API. Middleware applies to every route,
// health probes included, in the order given. Unknown paths and methods get
// the same problem+json body as handler errors.
func NewRouter(
	bookHandler *handlers.BookHandler,
	personHandler *handlers.PersonHandler,
	lendingHandler *handlers.LendingHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, dto.ErrMethodNotAllowed))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/books", bookHandler.ListBooks)
		r.Get("/books/{bookId}", bookHandler.GetBook)
		r.Get("/persons", personHandler.ListPersons)

		r.Post("/checkouts", lendingHandler.CheckOutBook)
		r.Post("/returns", lendingHandler.ReturnBook)
	})

	return r
}
