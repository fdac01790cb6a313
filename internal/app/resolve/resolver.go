// Package resolve computes the optional fields of Books and Persons only
// when a caller selects them.
//
// isCheckedOut is derived from the Book itself. checkedOutBy costs one Person
// lookup per checked-out Book and none for available ones. checkedOutBooks
// costs one Book listing per Person. Nothing is memoized: every resolution
// reads the store again.
package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-library-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-library-service/internal/domain"
	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
	"github.com/jsamuelsen11/go-library-service/internal/ports"
)

// BookView is a Book with the selected fields resolved.
type BookView struct {
	Book         book.Book
	Fields       FieldSet
	IsCheckedOut bool
	CheckedOutBy *person.Person
}

// PersonView is a Person with the selected fields resolved.
type PersonView struct {
	Person          person.Person
	Fields          FieldSet
	CheckedOutBooks []book.Book
}

// Resolver resolves selected fields against the stores.
type Resolver struct {
	books   ports.Store[book.Book]
	persons ports.Store[person.Person]
	workers int
	logger  *slog.Logger
}

// NewResolver creates a Resolver. workers bounds concurrent resolution of
// list responses and is raised to 1 if smaller.
func NewResolver(
	books ports.Store[book.Book],
	persons ports.Store[person.Person],
	workers int,
	logger *slog.Logger,
) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		books:   books,
		persons: persons,
		workers: max(workers, 1),
		logger:  logger,
	}
}

// IsCheckedOut reports whether b is held by a Person. It never reads a store.
func IsCheckedOut(b book.Book) bool {
	return b.IsCheckedOut()
}

// CheckedOutBy returns the Person holding b. An available Book yields nil
// without a lookup. A reference to a Person that no longer exists also
// yields nil.
func (r *Resolver) CheckedOutBy(ctx context.Context, b book.Book) (*person.Person, error) {
	if !b.IsCheckedOut() {
		return nil, nil
	}

	personID := *b.CheckedOutByID
	r.logger.DebugContext(ctx, "resolving checkedOutBy",
		slog.String("book_id", b.ID),
		slog.String("person_id", personID),
	)

	p, found, err := r.persons.Get(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("resolving checkedOutBy for book %s: %w: %w", b.ID, domain.ErrUnavailable, err)
	}
	if !found {
		r.logger.DebugContext(ctx, "checkedOutBy references a missing person",
			slog.String("book_id", b.ID),
			slog.String("person_id", personID),
		)
		return nil, nil
	}
	return &p, nil
}

// CheckedOutBooks returns the Books currently held by p, in catalog order.
func (r *Resolver) CheckedOutBooks(ctx context.Context, p person.Person) ([]book.Book, error) {
	all, err := r.books.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving checkedOutBooks for person %s: %w: %w", p.ID, domain.ErrUnavailable, err)
	}

	held := make([]book.Book, 0)
	for _, b := range all {
		if b.CheckedOutByID != nil && *b.CheckedOutByID == p.ID {
			held = append(held, b)
		}
	}
	return held, nil
}

// Book resolves the selected fields of one Book.
func (r *Resolver) Book(ctx context.Context, b book.Book, fields FieldSet) (BookView, error) {
	view := BookView{Book: b, Fields: fields}

	if fields.Has(BookIsCheckedOut) {
		view.IsCheckedOut = IsCheckedOut(b)
	}
	if fields.Has(BookCheckedOutBy) {
		holder, err := r.CheckedOutBy(ctx, b)
		if err != nil {
			return BookView{}, err
		}
		view.CheckedOutBy = holder
	}
	return view, nil
}

// Books resolves the selected fields of every Book, preserving order.
func (r *Resolver) Books(ctx context.Context, books []book.Book, fields FieldSet) ([]BookView, error) {
	results := fanout.Run(ctx, r.workers, books, func(ctx context.Context, b book.Book) (BookView, error) {
		return r.Book(ctx, b, fields)
	})
	return fanout.Collect(results)
}

// Person resolves the selected fields of one Person.
func (r *Resolver) Person(ctx context.Context, p person.Person, fields FieldSet) (PersonView, error) {
	view := PersonView{Person: p, Fields: fields}

	if fields.Has(PersonCheckedOutBooks) {
		held, err := r.CheckedOutBooks(ctx, p)
		if err != nil {
			return PersonView{}, err
		}
		view.CheckedOutBooks = held
	}
	return view, nil
}

// Persons resolves the selected fields of every Person, preserving order.
func (r *Resolver) Persons(ctx context.Context, persons []person.Person, fields FieldSet) ([]PersonView, error) {
	results := fanout.Run(ctx, r.workers, persons, func(ctx context.Context, p person.Person) (PersonView, error) {
		return r.Person(ctx, p, fields)
	})
	return fanout.Collect(results)
}
