// Package person defines the Person entity, a library patron who can hold
// checked-out books.
package person

import (
	"net/mail"

	"github.com/jsamuelsen11/go-library-service/internal/domain"
	"github.com/jsamuelsen11/go-library-service/internal/domain/identifier"
)

const maxNameLength = 100

// Person is a library patron.
type Person struct {
	ID           string
	FirstName    string
	LastName     string
	EmailAddress string
	PhoneNumber  *string
}

// Identity returns the store key of the Person.
func (p Person) Identity() string { return p.ID }

// FullName joins first and last name.
func (p Person) FullName() string { return p.FirstName + " " + p.LastName }

// Validate checks the Person's fields at seed time.
// Returns a *domain.ValidationError with per-field details, or nil.
func (p *Person) Validate() error {
	fields := make(map[string]string)

	if res := identifier.Validate(p.ID); !res.Valid {
		fields["id"] = res.Reason
	}
	for name, value := range map[string]string{"firstName": p.FirstName, "lastName": p.LastName} {
		if res := identifier.ValidateNonEmpty(name, value); !res.Valid {
			fields[name] = res.Reason
			continue
		}
		if res := identifier.ValidateLength(name, value, 1, maxNameLength); !res.Valid {
			fields[name] = res.Reason
		}
	}
	if _, err := mail.ParseAddress(p.EmailAddress); err != nil {
		fields["emailAddress"] = "must be a valid email address"
	}
	if p.PhoneNumber != nil {
		if res := identifier.ValidateNonEmpty("phoneNumber", *p.PhoneNumber); !res.Valid {
			fields["phoneNumber"] = res.Reason
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
