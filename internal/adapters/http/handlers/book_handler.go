// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-library-service/internal/app/resolve"
	"github.com/jsamuelsen11/go-library-service/internal/ports"
)

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	svc      ports.LibraryService
	resolver *resolve.Resolver
}

// NewBookHandler creates a new BookHandler with the given service port and
// field resolver.
func NewBookHandler(svc ports.LibraryService, resolver *resolve.Resolver) *BookHandler {
	return &BookHandler{svc: svc, resolver: resolver}
}

// ListBooks handles GET /api/v1/books.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	fields, err := bookFields(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	books, err := h.svc.GetAllBooks(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	views, err := h.resolver.Books(r.Context(), books, fields)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookListResponse(views))
}

// GetBook handles GET /api/v1/books/{bookId}.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	fields, err := bookFields(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.svc.GetBookForID(r.Context(), pathParam(r, "bookId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view, err := h.resolver.Book(r.Context(), *b, fields)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookResponse(view))
}
