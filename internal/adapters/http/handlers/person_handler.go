package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-library-service/internal/app/resolve"
	"github.com/jsamuelsen11/go-library-service/internal/ports"
)

// PersonHandler handles HTTP requests for registered persons.
type PersonHandler struct {
	svc      ports.LibraryService
	resolver *resolve.Resolver
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(svc ports.LibraryService, resolver *resolve.Resolver) *PersonHandler {
	return &PersonHandler{svc: svc, resolver: resolver}
}

// ListPersons handles GET /api/v1/persons.
func (h *PersonHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	fields, err := personFields(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	persons, err := h.svc.GetPersons(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	views, err := h.resolver.Persons(r.Context(), persons, fields)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPersonListResponse(views))
}
