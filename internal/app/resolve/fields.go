package resolve

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-library-service/internal/domain"
)

// Book field names.
const (
	BookID             = "id"
	BookTitle          = "title"
	BookAuthor         = "author"
	BookCheckedOutByID = "checkedOutById"
	BookIsCheckedOut   = "isCheckedOut"
	BookCheckedOutBy   = "checkedOutBy"
)

// Person field names.
const (
	PersonID              = "id"
	PersonFirstName       = "firstName"
	PersonLastName        = "lastName"
	PersonEmailAddress    = "emailAddress"
	PersonPhoneNumber     = "phoneNumber"
	PersonCheckedOutBooks = "checkedOutBooks"
)

// FieldSelection is the query key callers use to pick fields.
const FieldSelection = "fields"

var (
	bookFields = []string{
		BookID, BookTitle, BookAuthor, BookCheckedOutByID, BookIsCheckedOut, BookCheckedOutBy,
	}
	personFields = []string{
		PersonID, PersonFirstName, PersonLastName, PersonEmailAddress, PersonPhoneNumber, PersonCheckedOutBooks,
	}
)

// DefaultBookFields is used when the caller selects nothing. It never
// includes checkedOutBy, so a default listing performs no Person lookups.
var DefaultBookFields = newFieldSet(BookID, BookTitle, BookAuthor, BookCheckedOutByID, BookIsCheckedOut)

// DefaultPersonFields is used when the caller selects nothing.
var DefaultPersonFields = newFieldSet(PersonID, PersonFirstName, PersonLastName, PersonEmailAddress, PersonPhoneNumber)

// FieldSet is an ordered set of selected field names.
type FieldSet struct {
	names []string
}

func newFieldSet(names ...string) FieldSet {
	return FieldSet{names: names}
}

// Has reports whether name is selected.
func (f FieldSet) Has(name string) bool {
	return slices.Contains(f.names, name)
}

// Names returns the selected fields in selection order.
func (f FieldSet) Names() []string {
	return slices.Clone(f.names)
}

// ParseBookFields parses a comma-separated Book field selection. An empty
// selection yields DefaultBookFields.
func ParseBookFields(raw string) (FieldSet, error) {
	return parse(raw, bookFields, DefaultBookFields)
}

// ParsePersonFields parses a comma-separated Person field selection. An
// empty selection yields DefaultPersonFields.
func ParsePersonFields(raw string) (FieldSet, error) {
	return parse(raw, personFields, DefaultPersonFields)
}

func parse(raw string, known []string, fallback FieldSet) (FieldSet, error) {
	var names []string
	for part := range strings.SplitSeq(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" || slices.Contains(names, name) {
			continue
		}
		if !slices.Contains(known, name) {
			return FieldSet{}, &domain.ValidationError{Fields: map[string]string{
				FieldSelection: fmt.Sprintf("unknown field %q; allowed: %s", name, strings.Join(known, ", ")),
			}}
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		return fallback, nil
	}
	return newFieldSet(names...), nil
}
