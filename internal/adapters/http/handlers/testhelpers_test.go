package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/seed"
	"github.com/jsamuelsen11/go-library-service/internal/app"
	"github.com/jsamuelsen11/go-library-service/internal/app/resolve"
	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
)

type library struct {
	svc      *app.LibraryService
	resolver *resolve.Resolver
}

// newLibrary returns a service and resolver over freshly seeded memory stores.
func newLibrary(t *testing.T) library {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	books := memory.New[book.Book]()
	persons := memory.New[person.Person]()
	if err := seed.Load(context.Background(), books, persons, seed.Books(), seed.Persons(), logger); err != nil {
		t.Fatalf("seed.Load() error = %v", err)
	}
	return library{
		svc:      app.NewLibraryService(books, persons, nil, logger),
		resolver: resolve.NewResolver(books, persons, 2, logger),
	}
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireCode(t *testing.T, rec *httptest.ResponseRecorder, want string) map[string]any {
	t.Helper()
	body := decodeJSON[map[string]any](t, rec)
	if body["code"] != want {
		t.Errorf("code = %v, want %s; body = %v", body["code"], want, body)
	}
	return body
}
