package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
)

// Catalog is a set of starting records.
type Catalog struct {
	Books   []book.Book
	Persons []person.Person
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{Books: Books(), Persons: Persons()}
}

type catalogFile struct {
	Persons []personEntry `yaml:"persons"`
	Books   []bookEntry   `yaml:"books"`
}

type personEntry struct {
	ID           string  `yaml:"id"`
	FirstName    string  `yaml:"firstName"`
	LastName     string  `yaml:"lastName"`
	EmailAddress string  `yaml:"emailAddress"`
	PhoneNumber  *string `yaml:"phoneNumber"`
}

type bookEntry struct {
	ID             string  `yaml:"id"`
	Title          string  `yaml:"title"`
	Author         string  `yaml:"author"`
	CheckedOutByID *string `yaml:"checkedOutById"`
}

// ReadFile reads a catalog from a YAML file:
//
//	persons:
//	  - {id: "1", firstName: Ada, lastName: Lovelace, emailAddress: ada@example.org}
//	books:
//	  - {id: "1", title: Notes, author: Ada Lovelace, checkedOutById: "1"}
func ReadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading seed file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. Unknown keys, duplicate ids and checkouts by
// persons missing from the same catalog are rejected.
func Parse(data []byte) (Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("decoding catalog: %w", err)
	}

	var c Catalog
	personIDs := make(map[string]bool, len(f.Persons))
	for _, e := range f.Persons {
		if personIDs[e.ID] {
			return Catalog{}, fmt.Errorf("duplicate person id %q", e.ID)
		}
		personIDs[e.ID] = true
		c.Persons = append(c.Persons, person.Person{
			ID:           e.ID,
			FirstName:    e.FirstName,
			LastName:     e.LastName,
			EmailAddress: e.EmailAddress,
			PhoneNumber:  e.PhoneNumber,
		})
	}

	bookIDs := make(map[string]bool, len(f.Books))
	for _, e := range f.Books {
		if bookIDs[e.ID] {
			return Catalog{}, fmt.Errorf("duplicate book id %q", e.ID)
		}
		bookIDs[e.ID] = true
		if e.CheckedOutByID != nil && !personIDs[*e.CheckedOutByID] {
			return Catalog{}, fmt.Errorf("book %q checked out by unknown person %q", e.ID, *e.CheckedOutByID)
		}
		c.Books = append(c.Books, book.Book{
			ID:             e.ID,
			Title:          e.Title,
			Author:         e.Author,
			CheckedOutByID: e.CheckedOutByID,
		})
	}

	return c, nil
}
