package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-library-service/internal/app/resolve"
	"github.com/jsamuelsen11/go-library-service/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// pathParam returns a chi URL parameter decoded exactly once. chi matches
// against r.URL.RawPath when it is set and r.URL.Path otherwise, so only the
// former still carries percent-encoding.
func pathParam(r *http.Request, param string) string {
	raw := chi.URLParam(r, param)
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// bookFields parses the ?fields= selection for Book responses.
func bookFields(r *http.Request) (resolve.FieldSet, error) {
	return resolve.ParseBookFields(r.URL.Query().Get(resolve.FieldSelection))
}

// personFields parses the ?fields= selection for Person responses.
func personFields(r *http.Request) (resolve.FieldSet, error) {
	return resolve.ParsePersonFields(r.URL.Query().Get(resolve.FieldSelection))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
