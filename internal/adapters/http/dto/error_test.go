package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-library-service/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid identifier maps to 400",
			err:        &domain.InvalidIdentifierError{Field: "bookId", Value: " 1", Reason: "x"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID_FORMAT",
		},
		{
			name:       "validation error maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"bookId": "is required"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "book not found maps to 404",
			err:        &domain.BookNotFoundError{BookID: "99"},
			wantStatus: http.StatusNotFound,
			wantCode:   "BOOK_NOT_FOUND",
		},
		{
			name:       "person not found maps to 404",
			err:        &domain.PersonNotFoundError{PersonID: "99"},
			wantStatus: http.StatusNotFound,
			wantCode:   "PERSON_NOT_FOUND",
		},
		{
			name:       "already checked out maps to 409",
			err:        &domain.BookAlreadyCheckedOutError{BookID: "2"},
			wantStatus: http.StatusConflict,
			wantCode:   "BOOK_ALREADY_CHECKED_OUT",
		},
		{
			name:       "not checked out maps to 409",
			err:        &domain.BookNotCheckedOutError{BookID: "1"},
			wantStatus: http.StatusConflict,
			wantCode:   "BOOK_NOT_CHECKED_OUT",
		},
		{
			name:       "wrapped coded error keeps mapping",
			err:        fmt.Errorf("checking out: %w", &domain.BookNotFoundError{BookID: "5"}),
			wantStatus: http.StatusNotFound,
			wantCode:   "BOOK_NOT_FOUND",
		},
		{
			name:       "backend failure maps to 502",
			err:        fmt.Errorf("reading book: %w: %w", domain.ErrUnavailable, errors.New("dial tcp")),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "deadline exceeded maps to 504",
			err:        fmt.Errorf("reading book: %w: %w", domain.ErrUnavailable, context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "method not allowed maps to 405",
			err:        dto.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "rate limited maps to 429",
			err:        domain.ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/checkouts", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestNewErrorResponse_Metadata(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/checkouts", nil)

	got := dto.NewErrorResponse(r, &domain.InvalidIdentifierError{Field: "personId", Value: "", Reason: "empty"})
	if got.Field == nil || *got.Field != "personId" {
		t.Errorf("Field = %v, want personId", got.Field)
	}
	if got.Value == nil || *got.Value != "" {
		t.Errorf("Value = %v, want empty string", got.Value)
	}
	if got.BookID != nil || got.PersonID != nil {
		t.Errorf("BookID/PersonID = %v/%v, want nil", got.BookID, got.PersonID)
	}

	got = dto.NewErrorResponse(r, &domain.PersonNotFoundError{PersonID: "42"})
	if got.PersonID == nil || *got.PersonID != "42" {
		t.Errorf("PersonID = %v, want 42", got.PersonID)
	}
	if got.Field != nil {
		t.Errorf("Field = %v, want nil", got.Field)
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/books/99", nil)
	err := &domain.BookNotFoundError{BookID: "99"}

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/books/99" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/books/99")
	}
	if got.Detail != "book with ID 99 not found" {
		t.Errorf("Detail = %q, want %q", got.Detail, "book with ID 99 not found")
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"bookId":   "is required",
		"personId": "is required",
		"fields":   "unknown field \"isbn\"",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/checkouts", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}

	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location >= got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q >= %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}

	for _, detail := range got.Errors {
		if !strings.HasPrefix(detail.Location, "body.") && detail.Location != "query.fields" {
			t.Errorf("Location %q has unexpected prefix", detail.Location)
		}
	}
}

func TestNewErrorResponse_NoValidationErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/books/1", nil)
	got := dto.NewErrorResponse(r, &domain.BookNotFoundError{BookID: "1"})

	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestWriteErrorResponse_ContentType(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/books/42", nil)

	dto.WriteErrorResponse(w, r, &domain.BookNotFoundError{BookID: "42"})

	ct := w.Header().Get("Content-Type")
	if ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestWriteErrorResponse_ExtensionMembers(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/checkouts", nil)

	dto.WriteErrorResponse(w, r, &domain.BookAlreadyCheckedOutError{BookID: "2"})

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if body["code"] != "BOOK_ALREADY_CHECKED_OUT" {
		t.Errorf("code = %v, want BOOK_ALREADY_CHECKED_OUT", body["code"])
	}
	if body["bookId"] != "2" {
		t.Errorf("bookId = %v, want 2", body["bookId"])
	}
	if _, ok := body["personId"]; ok {
		t.Error("personId present, want omitted")
	}
	if body["status"] != float64(http.StatusConflict) {
		t.Errorf("status = %v, want %d", body["status"], http.StatusConflict)
	}
}
