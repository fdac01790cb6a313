package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrRateLimited = errors.New("rate limit exceeded")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Code is the machine-readable kind of a library error. API clients branch
// on it instead of parsing messages.
type Code string

const (
	CodeInvalidIDFormat       Code = "INVALID_ID_FORMAT"
	CodeValidation            Code = "VALIDATION_ERROR"
	CodeBookNotFound          Code = "BOOK_NOT_FOUND"
	CodePersonNotFound        Code = "PERSON_NOT_FOUND"
	CodeBookAlreadyCheckedOut Code = "BOOK_ALREADY_CHECKED_OUT"
	CodeBookNotCheckedOut     Code = "BOOK_NOT_CHECKED_OUT"
)

// String implements fmt.Stringer.
func (c Code) String() string {
	return string(c)
}

// CodedError is implemented by every library error that carries a code and
// structured metadata (the offending field or entity id).
type CodedError interface {
	error
	Code() Code
	Metadata() map[string]string
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidIdentifierError reports an identifier argument that failed format
// validation. Field names the argument (e.g. "bookId") and Value holds the
// identifier exactly as the caller supplied it.
type InvalidIdentifierError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InvalidIdentifierError) Unwrap() error { return ErrValidation }

// Code implements CodedError.
func (e *InvalidIdentifierError) Code() Code { return CodeInvalidIDFormat }

// Metadata implements CodedError.
func (e *InvalidIdentifierError) Metadata() map[string]string {
	return map[string]string{"field": e.Field, "value": e.Value}
}

// BookNotFoundError is returned when no Book exists for the given id.
type BookNotFoundError struct {
	BookID string
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("book with ID %s not found", e.BookID)
}

func (e *BookNotFoundError) Unwrap() error { return ErrNotFound }

// Code implements CodedError.
func (e *BookNotFoundError) Code() Code { return CodeBookNotFound }

// Metadata implements CodedError.
func (e *BookNotFoundError) Metadata() map[string]string {
	return map[string]string{"bookId": e.BookID}
}

// PersonNotFoundError is returned when no Person exists for the given id.
type PersonNotFoundError struct {
	PersonID string
}

func (e *PersonNotFoundError) Error() string {
	return fmt.Sprintf("person with ID %s not found", e.PersonID)
}

func (e *PersonNotFoundError) Unwrap() error { return ErrNotFound }

// Code implements CodedError.
func (e *PersonNotFoundError) Code() Code { return CodePersonNotFound }

// Metadata implements CodedError.
func (e *PersonNotFoundError) Metadata() map[string]string {
	return map[string]string{"personId": e.PersonID}
}

// BookAlreadyCheckedOutError is returned when checking out a book that is
// not available.
type BookAlreadyCheckedOutError struct {
	BookID string
}

func (e *BookAlreadyCheckedOutError) Error() string {
	return fmt.Sprintf("book with ID %s is already checked out", e.BookID)
}

func (e *BookAlreadyCheckedOutError) Unwrap() error { return ErrConflict }

// Code implements CodedError.
func (e *BookAlreadyCheckedOutError) Code() Code { return CodeBookAlreadyCheckedOut }

// Metadata implements CodedError.
func (e *BookAlreadyCheckedOutError) Metadata() map[string]string {
	return map[string]string{"bookId": e.BookID}
}

// BookNotCheckedOutError is returned when returning a book that is available.
type BookNotCheckedOutError struct {
	BookID string
}

func (e *BookNotCheckedOutError) Error() string {
	return fmt.Sprintf("book with ID %s is not checked out", e.BookID)
}

func (e *BookNotCheckedOutError) Unwrap() error { return ErrConflict }

// Code implements CodedError.
func (e *BookNotCheckedOutError) Code() Code { return CodeBookNotCheckedOut }

// Metadata implements CodedError.
func (e *BookNotCheckedOutError) Metadata() map[string]string {
	return map[string]string{"bookId": e.BookID}
}

// CodeOf returns the library code carried by err, if any. Plain validation
// errors map to CodeValidation; anything else returns "".
func CodeOf(err error) Code {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.Code()
	}
	if errors.Is(err, ErrValidation) {
		return CodeValidation
	}
	return ""
}
