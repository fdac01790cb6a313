// Package identifier implements the format rules every raw identifier must
// pass before it reaches a store, and the normalization applied afterwards.
package identifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-library-service/internal/domain"
)

// MaxLength is the longest identifier accepted, counted in runes.
const MaxLength = 100

// Rejection messages, in rule order.
const (
	MsgEmpty      = "must be a non-empty string"
	MsgWhitespace = "cannot contain leading or trailing whitespace"
	MsgLength     = "length must be between 1 and 100 characters"
	MsgControl    = "cannot contain control characters"
)

// Result is the outcome of validating one value. Reason is empty when Valid.
type Result struct {
	Valid  bool
	Reason string
}

func ok() Result { return Result{Valid: true} }

func fail(reason string) Result { return Result{Reason: reason} }

// Validate applies the identifier rules in order and reports the first one
// that fails. It never modifies raw.
func Validate(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fail(MsgEmpty)
	}
	if trimmed != raw {
		return fail(MsgWhitespace)
	}
	if utf8.RuneCountInString(raw) > MaxLength {
		return fail(MsgLength)
	}
	for _, r := range raw {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return fail(MsgControl)
		}
	}
	return ok()
}

// Normalize trims surrounding whitespace. Interior characters are kept.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// Parse validates raw and returns its normalized form. A rejection is
// reported as *domain.InvalidIdentifierError naming field and the raw value.
func Parse(field, raw string) (string, error) {
	if res := Validate(raw); !res.Valid {
		return "", &domain.InvalidIdentifierError{Field: field, Value: raw, Reason: res.Reason}
	}
	return Normalize(raw), nil
}

// ValidateNonEmpty rejects values that are blank after trimming.
func ValidateNonEmpty(field, value string) Result {
	if strings.TrimSpace(value) == "" {
		return fail(fmt.Sprintf("%s %s", field, MsgEmpty))
	}
	return ok()
}

// ValidateLength rejects values whose rune count falls outside [minLen, maxLen].
func ValidateLength(field, value string, minLen, maxLen int) Result {
	n := utf8.RuneCountInString(value)
	if n < minLen || n > maxLen {
		return fail(fmt.Sprintf("%s length must be between %d and %d characters", field, minLen, maxLen))
	}
	return ok()
}
