// Package seed loads the starting catalog and patrons into the stores, either
// the built-in set or one read from a YAML file.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
	"github.com/jsamuelsen11/go-library-service/internal/ports"
)

func ref(s string) *string { return &s }

// Books returns the starting catalog. Three books start checked out.
func Books() []book.Book {
	return []book.Book{
		{ID: "1", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
		{ID: "2", Title: "To Kill a Mockingbird", Author: "Harper Lee", CheckedOutByID: ref("1")},
		{ID: "3", Title: "1984", Author: "George Orwell"},
		{ID: "4", Title: "Pride and Prejudice", Author: "Jane Austen", CheckedOutByID: ref("2")},
		{ID: "5", Title: "The Catcher in the Rye", Author: "J.D. Salinger"},
		{ID: "6", Title: "Moby Dick", Author: "Herman Melville"},
		{ID: "7", Title: "War and Peace", Author: "Leo Tolstoy", CheckedOutByID: ref("1")},
		{ID: "8", Title: "The Odyssey", Author: "Homer"},
	}
}

// Persons returns the starting patrons.
func Persons() []person.Person {
	return []person.Person{
		{ID: "1", FirstName: "John", LastName: "Doe", EmailAddress: "john.doe@example.com", PhoneNumber: ref("555-0101")},
		{ID: "2", FirstName: "Jane", LastName: "Smith", EmailAddress: "jane.smith@example.com", PhoneNumber: ref("555-0102")},
		{ID: "3", FirstName: "Bob", LastName: "Johnson", EmailAddress: "bob.johnson@example.com"},
	}
}

// Load validates and writes the given records. Persons are written first so
// that no Book references a Person that has not been stored yet. Loading the
// same data twice leaves the stores unchanged.
func Load(
	ctx context.Context,
	books ports.Store[book.Book],
	persons ports.Store[person.Person],
	bookData []book.Book,
	personData []person.Person,
	logger *slog.Logger,
) error {
	for i := range personData {
		p := personData[i]
		if err := p.Validate(); err != nil {
			return fmt.Errorf("seeding person %s: %w", p.ID, err)
		}
		if _, err := persons.Create(ctx, p); err != nil {
			return fmt.Errorf("seeding person %s: %w", p.ID, err)
		}
	}

	for i := range bookData {
		b := bookData[i]
		if err := b.Validate(); err != nil {
			return fmt.Errorf("seeding book %s: %w", b.ID, err)
		}
		if _, err := books.Create(ctx, b); err != nil {
			return fmt.Errorf("seeding book %s: %w", b.ID, err)
		}
	}

	logger.InfoContext(ctx, "stores seeded",
		slog.Int("books", len(bookData)),
		slog.Int("persons", len(personData)),
	)
	return nil
}
