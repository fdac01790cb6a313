// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-library-service/internal/domain"
	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/identifier"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
	"github.com/jsamuelsen11/go-library-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-library-service/internal/ports"
)

// Identifier argument names reported in validation errors.
const (
	FieldBookID   = "bookId"
	FieldPersonID = "personId"
)

// Compile-time check that LibraryService implements ports.LibraryService.
var _ ports.LibraryService = (*LibraryService)(nil)

// LibraryService implements ports.LibraryService on top of a Book store and a
// Person store. Every operation validates its raw identifiers before touching
// a store, trims them, and only then performs lookups.
type LibraryService struct {
	books   ports.Store[book.Book]
	persons ports.Store[person.Person]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewLibraryService creates a LibraryService. A nil metrics disables
// transition counting; a nil logger discards output.
func NewLibraryService(
	books ports.Store[book.Book],
	persons ports.Store[person.Person],
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *LibraryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LibraryService{
		books:   books,
		persons: persons,
		metrics: metrics,
		logger:  logger,
	}
}

// GetAllBooks returns the whole catalog in insertion order.
func (s *LibraryService) GetAllBooks(ctx context.Context) ([]book.Book, error) {
	s.logger.DebugContext(ctx, "listing books")

	books, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, s.backendError(ctx, "GetAllBooks", err)
	}
	return books, nil
}

// GetBookForID returns the Book with the given id.
func (s *LibraryService) GetBookForID(ctx context.Context, rawBookID string) (*book.Book, error) {
	bookID, err := identifier.Parse(FieldBookID, rawBookID)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "fetching book", slog.String("book_id", bookID))

	b, err := s.findBook(ctx, "GetBookForID", bookID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetPersons returns every Person in insertion order.
func (s *LibraryService) GetPersons(ctx context.Context) ([]person.Person, error) {
	s.logger.DebugContext(ctx, "listing persons")

	persons, err := s.persons.GetAll(ctx)
	if err != nil {
		return nil, s.backendError(ctx, "GetPersons", err)
	}
	return persons, nil
}

// CheckOutBook lends the Book to the Person. Both identifiers are validated
// before any lookup, the Book id first. The availability rule is checked
// against the loaded Book and again inside the store update, so of several
// concurrent checkouts of one Book exactly one succeeds.
func (s *LibraryService) CheckOutBook(ctx context.Context, rawBookID, rawPersonID string) (*book.Book, error) {
	const op = "CheckOutBook"

	bookID, err := identifier.Parse(FieldBookID, rawBookID)
	if err != nil {
		return nil, s.transition(ctx, op, err)
	}
	personID, err := identifier.Parse(FieldPersonID, rawPersonID)
	if err != nil {
		return nil, s.transition(ctx, op, err)
	}

	current, err := s.findBook(ctx, op, bookID)
	if err != nil {
		return nil, s.transition(ctx, op, err)
	}

	_, found, err := s.persons.Get(ctx, personID)
	if err != nil {
		return nil, s.transition(ctx, op, s.backendError(ctx, op, err, slog.String("person_id", personID)))
	}
	if !found {
		return nil, s.transition(ctx, op, &domain.PersonNotFoundError{PersonID: personID})
	}

	if !book.CanCheckOut(current) {
		return nil, s.transition(ctx, op, &domain.BookAlreadyCheckedOutError{BookID: bookID})
	}

	updated, err := s.applyTransition(ctx, op, bookID, func(b *book.Book) error {
		if !book.CanCheckOut(*b) {
			return &domain.BookAlreadyCheckedOutError{BookID: bookID}
		}
		borrower := personID
		b.CheckedOutByID = &borrower
		return nil
	})
	if err != nil {
		return nil, s.transition(ctx, op, err)
	}

	s.logger.InfoContext(ctx, "book checked out",
		slog.String("book_id", bookID),
		slog.String("person_id", personID),
	)
	return updated, s.transition(ctx, op, nil)
}

// ReturnBook clears the Book's borrower.
func (s *LibraryService) ReturnBook(ctx context.Context, rawBookID string) (*book.Book, error) {
	const op = "ReturnBook"

	bookID, err := identifier.Parse(FieldBookID, rawBookID)
	if err != nil {
		return nil, s.transition(ctx, op, err)
	}

	current, err := s.findBook(ctx, op, bookID)
	if err != nil {
		return nil, s.transition(ctx, op, err)
	}

	if !book.CanReturn(current) {
		return nil, s.transition(ctx, op, &domain.BookNotCheckedOutError{BookID: bookID})
	}
	borrower := *current.CheckedOutByID

	updated, err := s.applyTransition(ctx, op, bookID, func(b *book.Book) error {
		if !book.CanReturn(*b) {
			return &domain.BookNotCheckedOutError{BookID: bookID}
		}
		b.CheckedOutByID = nil
		return nil
	})
	if err != nil {
		return nil, s.transition(ctx, op, err)
	}

	s.logger.InfoContext(ctx, "book returned",
		slog.String("book_id", bookID),
		slog.String("person_id", borrower),
	)
	return updated, s.transition(ctx, op, nil)
}

// findBook loads a Book by normalized id.
func (s *LibraryService) findBook(ctx context.Context, op, bookID string) (book.Book, error) {
	b, found, err := s.books.Get(ctx, bookID)
	if err != nil {
		return book.Book{}, s.backendError(ctx, op, err, slog.String("book_id", bookID))
	}
	if !found {
		return book.Book{}, &domain.BookNotFoundError{BookID: bookID}
	}
	return b, nil
}

// applyTransition runs a guarded update of one Book. A rejection by the
// guard is returned unchanged; a Book that vanished before the write is
// reported as not found.
func (s *LibraryService) applyTransition(
	ctx context.Context, op, bookID string, patch ports.Patch[book.Book],
) (*book.Book, error) {
	updated, found, err := s.books.Update(ctx, bookID, patch)
	if err != nil {
		var coded domain.CodedError
		if errors.As(err, &coded) {
			return nil, err
		}
		return nil, s.backendError(ctx, op, err, slog.String("book_id", bookID))
	}
	if !found {
		return nil, &domain.BookNotFoundError{BookID: bookID}
	}
	return &updated, nil
}

// backendError logs a store failure and wraps it as ErrUnavailable.
func (s *LibraryService) backendError(ctx context.Context, op string, err error, attrs ...slog.Attr) error {
	args := []any{slog.String("operation", op)}
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Any("error", err))
	s.logger.ErrorContext(ctx, "store operation failed", args...)

	return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
}

// transition counts the outcome of a checkout or return and passes err through.
func (s *LibraryService) transition(ctx context.Context, op string, err error) error {
	if s.metrics == nil {
		return err
	}

	result := "success"
	if err != nil {
		result = "error"
		if code := domain.CodeOf(err); code != "" {
			result = code.String()
		}
	}
	s.metrics.LibraryTransitionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	))
	return err
}
