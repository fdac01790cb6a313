package ports

import (
	"context"

	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
)

// LibraryService defines the service port for catalog queries and lending.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// Every identifier argument is raw caller input. Implementations validate it
// before any store access and return *domain.InvalidIdentifierError on
// rejection, then trim it before lookup.
type LibraryService interface {
	// GetAllBooks returns the whole catalog in insertion order.
	GetAllBooks(ctx context.Context) ([]book.Book, error)

	// GetBookForID returns a single Book.
	// Returns *domain.BookNotFoundError if no Book has that id.
	GetBookForID(ctx context.Context, bookID string) (*book.Book, error)

	// GetPersons returns every Person in insertion order.
	GetPersons(ctx context.Context) ([]person.Person, error)

	// CheckOutBook lends a Book to a Person and returns the updated Book.
	// Returns *domain.BookNotFoundError, *domain.PersonNotFoundError or
	// *domain.BookAlreadyCheckedOutError, checked in that order.
	CheckOutBook(ctx context.Context, bookID, personID string) (*book.Book, error)

	// ReturnBook clears a Book's borrower and returns the updated Book.
	// Returns *domain.BookNotFoundError or *domain.BookNotCheckedOutError.
	ReturnBook(ctx context.Context, bookID string) (*book.Book, error)
}
