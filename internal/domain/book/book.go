package book

import (
	"github.com/jsamuelsen11/go-library-service/internal/domain"
	"github.com/jsamuelsen11/go-library-service/internal/domain/identifier"
)

const maxTextLength = 500

// Book is a catalog entry. A Book is checked out exactly when CheckedOutByID
// is non-nil; there is no separate stored flag.
type Book struct {
	ID             string
	Title          string
	Author         string
	CheckedOutByID *string
}

// Identity returns the store key of the Book.
func (b Book) Identity() string { return b.ID }

// IsCheckedOut reports whether the Book is currently held by a Person.
func (b Book) IsCheckedOut() bool { return b.CheckedOutByID != nil }

// Validate checks the Book's fields at seed time.
// Returns a *domain.ValidationError with per-field details, or nil.
func (b *Book) Validate() error {
	fields := make(map[string]string)

	if res := identifier.Validate(b.ID); !res.Valid {
		fields["id"] = res.Reason
	}
	for name, value := range map[string]string{"title": b.Title, "author": b.Author} {
		if res := identifier.ValidateNonEmpty(name, value); !res.Valid {
			fields[name] = res.Reason
			continue
		}
		if res := identifier.ValidateLength(name, value, 1, maxTextLength); !res.Valid {
			fields[name] = res.Reason
		}
	}
	if b.CheckedOutByID != nil {
		if res := identifier.Validate(*b.CheckedOutByID); !res.Valid {
			fields["checkedOutById"] = res.Reason
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
