package identifier_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-library-service/internal/domain"
	"github.com/jsamuelsen11/go-library-service/internal/domain/identifier"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		wantValid  bool
		wantReason string
	}{
		{name: "simple", raw: "1", wantValid: true},
		{name: "alphanumeric with dash", raw: "book-42_a", wantValid: true},
		{name: "interior space allowed", raw: "a b", wantValid: true},
		{name: "interior tab allowed", raw: "a\tb", wantValid: true},
		{name: "interior newline allowed", raw: "a\nb", wantValid: true},
		{name: "interior carriage return allowed", raw: "a\rb", wantValid: true},
		{name: "exactly max length", raw: strings.Repeat("x", 100), wantValid: true},
		{name: "multibyte counted as runes", raw: strings.Repeat("é", 100), wantValid: true},
		{name: "empty", raw: "", wantReason: identifier.MsgEmpty},
		{name: "whitespace only", raw: "   ", wantReason: identifier.MsgEmpty},
		{name: "tabs only", raw: "\t\t", wantReason: identifier.MsgEmpty},
		{name: "leading space", raw: " 1", wantReason: identifier.MsgWhitespace},
		{name: "trailing space", raw: "1 ", wantReason: identifier.MsgWhitespace},
		{name: "padded both sides", raw: "  1  ", wantReason: identifier.MsgWhitespace},
		{name: "trailing newline", raw: "1\n", wantReason: identifier.MsgWhitespace},
		{name: "over max length", raw: strings.Repeat("x", 101), wantReason: identifier.MsgLength},
		{name: "null byte", raw: "a\x00b", wantReason: identifier.MsgControl},
		{name: "bell", raw: "a\x07b", wantReason: identifier.MsgControl},
		{name: "escape", raw: "a\x1bb", wantReason: identifier.MsgControl},
		{name: "unit separator", raw: "a\x1fb", wantReason: identifier.MsgControl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := identifier.Validate(tt.raw)
			if got.Valid != tt.wantValid {
				t.Errorf("Validate(%q).Valid = %v, want %v", tt.raw, got.Valid, tt.wantValid)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Validate(%q).Reason = %q, want %q", tt.raw, got.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	t.Parallel()

	// Both padded and too long: whitespace rule is checked first.
	raw := " " + strings.Repeat("x", 120)
	if got := identifier.Validate(raw); got.Reason != identifier.MsgWhitespace {
		t.Errorf("Validate().Reason = %q, want %q", got.Reason, identifier.MsgWhitespace)
	}

	// Too long and containing a control character: length wins.
	raw = strings.Repeat("x", 120) + "\x00" + "y"
	if got := identifier.Validate(raw); got.Reason != identifier.MsgLength {
		t.Errorf("Validate().Reason = %q, want %q", got.Reason, identifier.MsgLength)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "1", want: "1"},
		{raw: "  1  ", want: "1"},
		{raw: "\t42\n", want: "42"},
		{raw: "a b", want: "a b"},
		{raw: "book#1!", want: "book#1!"},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		got := identifier.Normalize(tt.raw)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
		if again := identifier.Normalize(got); again != got {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", tt.raw, again, got)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	id, err := identifier.Parse("bookId", "7")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if id != "7" {
		t.Errorf("Parse() = %q, want %q", id, "7")
	}

	_, err = identifier.Parse("personId", " 1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var idErr *domain.InvalidIdentifierError
	if !errors.As(err, &idErr) {
		t.Fatalf("errors.As(err, *InvalidIdentifierError) = false, got %T", err)
	}
	if idErr.Field != "personId" {
		t.Errorf("Field = %q, want %q", idErr.Field, "personId")
	}
	if idErr.Value != " 1" {
		t.Errorf("Value = %q, want %q", idErr.Value, " 1")
	}
	if idErr.Code() != domain.CodeInvalidIDFormat {
		t.Errorf("Code() = %q, want %q", idErr.Code(), domain.CodeInvalidIDFormat)
	}
}

func TestValidateNonEmpty(t *testing.T) {
	t.Parallel()

	if got := identifier.ValidateNonEmpty("author", "Homer"); !got.Valid {
		t.Errorf("ValidateNonEmpty(Homer).Valid = false, reason %q", got.Reason)
	}

	got := identifier.ValidateNonEmpty("author", "  ")
	if got.Valid {
		t.Fatal("ValidateNonEmpty(blank).Valid = true, want false")
	}
	if want := "author must be a non-empty string"; got.Reason != want {
		t.Errorf("Reason = %q, want %q", got.Reason, want)
	}
}

func TestValidateLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value     string
		wantValid bool
	}{
		{value: "a", wantValid: true},
		{value: "abcde", wantValid: true},
		{value: "", wantValid: false},
		{value: "abcdef", wantValid: false},
	}

	for _, tt := range tests {
		got := identifier.ValidateLength("title", tt.value, 1, 5)
		if got.Valid != tt.wantValid {
			t.Errorf("ValidateLength(%q, 1, 5).Valid = %v, want %v", tt.value, got.Valid, tt.wantValid)
		}
		if !got.Valid && got.Reason != "title length must be between 1 and 5 characters" {
			t.Errorf("ValidateLength(%q).Reason = %q", tt.value, got.Reason)
		}
	}
}
