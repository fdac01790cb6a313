package dto

import (
	"github.com/jsamuelsen11/go-library-service/internal/domain"
)

// CheckOutRequest represents the JSON body for checking out a book.
// Identifier format is validated by the service so that format errors carry
// INVALID_ID_FORMAT; Validate only rejects absent members.
type CheckOutRequest struct {
	BookID   *string `json:"bookId"`
	PersonID *string `json:"personId"`
}

// Validate checks that both identifiers are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CheckOutRequest) Validate() error {
	fields := make(map[string]string)

	if r.BookID == nil {
		fields["bookId"] = domain.MsgRequired
	}
	if r.PersonID == nil {
		fields["personId"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ReturnRequest represents the JSON body for returning a book.
type ReturnRequest struct {
	BookID *string `json:"bookId"`
}

// Validate checks that the book identifier is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ReturnRequest) Validate() error {
	if r.BookID == nil {
		return &domain.ValidationError{Fields: map[string]string{"bookId": domain.MsgRequired}}
	}
	return nil
}
