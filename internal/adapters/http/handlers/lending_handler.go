package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-library-service/internal/app/resolve"
	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/ports"
)

// LendingHandler handles checkout and return requests. Both respond with
// the updated Book rendered with the caller's field selection.
type LendingHandler struct {
	svc      ports.LibraryService
	resolver *resolve.Resolver
}

// NewLendingHandler creates a new LendingHandler.
func NewLendingHandler(svc ports.LibraryService, resolver *resolve.Resolver) *LendingHandler {
	return &LendingHandler{svc: svc, resolver: resolver}
}

// CheckOutBook handles POST /api/v1/checkouts.
func (h *LendingHandler) CheckOutBook(w http.ResponseWriter, r *http.Request) {
	fields, err := bookFields(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CheckOutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.CheckOutBook(r.Context(), *req.BookID, *req.PersonID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeBook(w, r, b, fields)
}

// ReturnBook handles POST /api/v1/returns.
func (h *LendingHandler) ReturnBook(w http.ResponseWriter, r *http.Request) {
	fields, err := bookFields(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ReturnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.ReturnBook(r.Context(), *req.BookID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeBook(w, r, b, fields)
}

func (h *LendingHandler) writeBook(w http.ResponseWriter, r *http.Request, b *book.Book, fields resolve.FieldSet) {
	view, err := h.resolver.Book(r.Context(), *b, fields)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBookResponse(view))
}
