// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-library-service/internal/app/resolve"
	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
)

// BookResponse is a Book rendered with only the selected fields. A selected
// field with no value is present as null.
type BookResponse map[string]any

// BookListResponse represents a list of books in HTTP responses.
type BookListResponse struct {
	Books []BookResponse `json:"books"`
	Count int            `json:"count"`
}

// PersonResponse is a Person rendered with only the selected fields.
type PersonResponse map[string]any

// PersonListResponse represents a list of persons in HTTP responses.
type PersonListResponse struct {
	Persons []PersonResponse `json:"persons"`
	Count   int              `json:"count"`
}

// ToBookResponse converts a resolved Book to an HTTP response DTO.
func ToBookResponse(v resolve.BookView) BookResponse {
	resp := bookFields(v.Book, v.Fields)
	if v.Fields.Has(resolve.BookIsCheckedOut) {
		resp[resolve.BookIsCheckedOut] = v.IsCheckedOut
	}
	if v.Fields.Has(resolve.BookCheckedOutBy) {
		if v.CheckedOutBy != nil {
			resp[resolve.BookCheckedOutBy] = personFields(*v.CheckedOutBy, resolve.DefaultPersonFields)
		} else {
			resp[resolve.BookCheckedOutBy] = nil
		}
	}
	return resp
}

// ToBookListResponse converts resolved Books to an HTTP list response DTO.
func ToBookListResponse(views []resolve.BookView) BookListResponse {
	items := make([]BookResponse, len(views))
	for i := range views {
		items[i] = ToBookResponse(views[i])
	}
	return BookListResponse{
		Books: items,
		Count: len(items),
	}
}

// ToPersonResponse converts a resolved Person to an HTTP response DTO.
// Nested books carry the default book fields.
func ToPersonResponse(v resolve.PersonView) PersonResponse {
	resp := personFields(v.Person, v.Fields)
	if v.Fields.Has(resolve.PersonCheckedOutBooks) {
		held := make([]BookResponse, len(v.CheckedOutBooks))
		for i, b := range v.CheckedOutBooks {
			nested := bookFields(b, resolve.DefaultBookFields)
			nested[resolve.BookIsCheckedOut] = resolve.IsCheckedOut(b)
			held[i] = nested
		}
		resp[resolve.PersonCheckedOutBooks] = held
	}
	return resp
}

// ToPersonListResponse converts resolved Persons to an HTTP list response DTO.
func ToPersonListResponse(views []resolve.PersonView) PersonListResponse {
	items := make([]PersonResponse, len(views))
	for i := range views {
		items[i] = ToPersonResponse(views[i])
	}
	return PersonListResponse{
		Persons: items,
		Count:   len(items),
	}
}

func bookFields(b book.Book, fields resolve.FieldSet) BookResponse {
	resp := make(BookResponse, len(fields.Names()))
	for _, name := range fields.Names() {
		switch name {
		case resolve.BookID:
			resp[name] = b.ID
		case resolve.BookTitle:
			resp[name] = b.Title
		case resolve.BookAuthor:
			resp[name] = b.Author
		case resolve.BookCheckedOutByID:
			resp[name] = b.CheckedOutByID
		}
	}
	return resp
}

func personFields(p person.Person, fields resolve.FieldSet) PersonResponse {
	resp := make(PersonResponse, len(fields.Names()))
	for _, name := range fields.Names() {
		switch name {
		case resolve.PersonID:
			resp[name] = p.ID
		case resolve.PersonFirstName:
			resp[name] = p.FirstName
		case resolve.PersonLastName:
			resp[name] = p.LastName
		case resolve.PersonEmailAddress:
			resp[name] = p.EmailAddress
		case resolve.PersonPhoneNumber:
			resp[name] = p.PhoneNumber
		}
	}
	return resp
}
