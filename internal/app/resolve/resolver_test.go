package resolve

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/seed"
	"github.com/jsamuelsen11/go-library-service/internal/domain"
	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
	"github.com/jsamuelsen11/go-library-service/internal/ports"
	"github.com/jsamuelsen11/go-library-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string { return &s }

// countingStore counts Get and GetAll calls on the wrapped store.
type countingStore[T ports.Identifiable] struct {
	ports.Store[T]
	gets    atomic.Int64
	getAlls atomic.Int64
}

func (c *countingStore[T]) Get(ctx context.Context, id string) (T, bool, error) {
	c.gets.Add(1)
	return c.Store.Get(ctx, id)
}

func (c *countingStore[T]) GetAll(ctx context.Context) ([]T, error) {
	c.getAlls.Add(1)
	return c.Store.GetAll(ctx)
}

type fixture struct {
	resolver *Resolver
	books    *countingStore[book.Book]
	persons  *countingStore[person.Person]
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	books := memory.New[book.Book]()
	persons := memory.New[person.Person]()
	if err := seed.Load(context.Background(), books, persons, seed.Books(), seed.Persons(), discardLogger()); err != nil {
		t.Fatalf("seed.Load() error = %v", err)
	}

	f := fixture{
		books:   &countingStore[book.Book]{Store: books},
		persons: &countingStore[person.Person]{Store: persons},
	}
	f.resolver = NewResolver(f.books, f.persons, 4, discardLogger())
	return f
}

func TestIsCheckedOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    book.Book
		want bool
	}{
		{name: "available", b: book.Book{ID: "1"}, want: false},
		{name: "held", b: book.Book{ID: "2", CheckedOutByID: strPtr("1")}, want: true},
		{name: "held by empty id", b: book.Book{ID: "3", CheckedOutByID: strPtr("")}, want: true},
	}

	for _, tt := range tests {
		got := IsCheckedOut(tt.b)
		if got != tt.want {
			t.Errorf("IsCheckedOut(%s) = %v, want %v", tt.name, got, tt.want)
		}
		if got != tt.b.IsCheckedOut() {
			t.Errorf("IsCheckedOut(%s) = %v, disagrees with Book.IsCheckedOut", tt.name, got)
		}
	}
}

func TestCheckedOutBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		book     book.Book
		wantID   string
		wantNil  bool
		wantGets int64
	}{
		{
			name:     "available book performs no lookup",
			book:     book.Book{ID: "1", Title: "t", Author: "a"},
			wantNil:  true,
			wantGets: 0,
		},
		{
			name:     "held book resolves holder",
			book:     book.Book{ID: "2", Title: "t", Author: "a", CheckedOutByID: strPtr("1")},
			wantID:   "1",
			wantGets: 1,
		},
		{
			name:     "dangling reference resolves to nil",
			book:     book.Book{ID: "9", Title: "t", Author: "a", CheckedOutByID: strPtr("404")},
			wantNil:  true,
			wantGets: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			got, err := f.resolver.CheckedOutBy(context.Background(), tt.book)
			if err != nil {
				t.Fatalf("CheckedOutBy() error = %v", err)
			}
			if tt.wantNil && got != nil {
				t.Errorf("CheckedOutBy() = %+v, want nil", got)
			}
			if !tt.wantNil && (got == nil || got.ID != tt.wantID) {
				t.Errorf("CheckedOutBy() = %+v, want person %s", got, tt.wantID)
			}
			if n := f.persons.gets.Load(); n != tt.wantGets {
				t.Errorf("person lookups = %d, want %d", n, tt.wantGets)
			}
		})
	}
}

func TestCheckedOutBy_BackendFailure(t *testing.T) {
	t.Parallel()

	persons := mocks.NewMockStore[person.Person](t)
	persons.EXPECT().Get(
		context.Background(), "1",
	).Return(person.Person{}, false, errors.New("connection refused"))

	r := NewResolver(memory.New[book.Book](), persons, 1, discardLogger())
	_, err := r.CheckedOutBy(context.Background(), book.Book{ID: "2", CheckedOutByID: strPtr("1")})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("CheckedOutBy() error = %v, want ErrUnavailable", err)
	}
}

func TestBooks_LoadAvoidance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fields   string
		wantGets int64
	}{
		{name: "default selection", fields: "", wantGets: 0},
		{name: "isCheckedOut only", fields: "id,isCheckedOut", wantGets: 0},
		{name: "checkedOutBy selected", fields: "id,checkedOutBy", wantGets: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			fields, err := ParseBookFields(tt.fields)
			if err != nil {
				t.Fatalf("ParseBookFields() error = %v", err)
			}

			all, err := f.books.GetAll(context.Background())
			if err != nil {
				t.Fatalf("GetAll() error = %v", err)
			}
			views, err := f.resolver.Books(context.Background(), all, fields)
			if err != nil {
				t.Fatalf("Books() error = %v", err)
			}
			if len(views) != 8 {
				t.Fatalf("len(views) = %d, want 8", len(views))
			}
			if n := f.persons.gets.Load(); n != tt.wantGets {
				t.Errorf("person lookups = %d, want %d", n, tt.wantGets)
			}
		})
	}
}

func TestBooks_ResolvesInOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	fields, _ := ParseBookFields("id,isCheckedOut,checkedOutBy")

	all, _ := f.books.GetAll(context.Background())
	views, err := f.resolver.Books(context.Background(), all, fields)
	if err != nil {
		t.Fatalf("Books() error = %v", err)
	}

	holders := map[string]string{"2": "1", "4": "2", "7": "1"}
	for i, v := range views {
		if v.Book.ID != all[i].ID {
			t.Errorf("views[%d].Book.ID = %s, want %s", i, v.Book.ID, all[i].ID)
		}
		want, held := holders[v.Book.ID]
		if v.IsCheckedOut != held {
			t.Errorf("book %s IsCheckedOut = %v, want %v", v.Book.ID, v.IsCheckedOut, held)
		}
		switch {
		case held && (v.CheckedOutBy == nil || v.CheckedOutBy.ID != want):
			t.Errorf("book %s CheckedOutBy = %+v, want person %s", v.Book.ID, v.CheckedOutBy, want)
		case !held && v.CheckedOutBy != nil:
			t.Errorf("book %s CheckedOutBy = %+v, want nil", v.Book.ID, v.CheckedOutBy)
		}
	}
}

func TestCheckedOutBooks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		personID string
		want     []string
	}{
		{personID: "1", want: []string{"2", "7"}},
		{personID: "2", want: []string{"4"}},
		{personID: "3", want: []string{}},
	}

	for _, tt := range tests {
		t.Run("person "+tt.personID, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			held, err := f.resolver.CheckedOutBooks(context.Background(), person.Person{ID: tt.personID})
			if err != nil {
				t.Fatalf("CheckedOutBooks() error = %v", err)
			}
			got := make([]string, 0, len(held))
			for _, b := range held {
				got = append(got, b.ID)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("CheckedOutBooks() = %v, want %v", got, tt.want)
			}
			if n := f.books.getAlls.Load(); n != 1 {
				t.Errorf("book listings = %d, want 1", n)
			}
		})
	}
}

func TestPersons_OnlyListsBooksWhenSelected(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	all, _ := f.persons.GetAll(context.Background())

	if _, err := f.resolver.Persons(context.Background(), all, DefaultPersonFields); err != nil {
		t.Fatalf("Persons() error = %v", err)
	}
	if n := f.books.getAlls.Load(); n != 0 {
		t.Errorf("book listings with default fields = %d, want 0", n)
	}

	fields, _ := ParsePersonFields("id,checkedOutBooks")
	views, err := f.resolver.Persons(context.Background(), all, fields)
	if err != nil {
		t.Fatalf("Persons() error = %v", err)
	}
	if n := f.books.getAlls.Load(); n != int64(len(all)) {
		t.Errorf("book listings = %d, want %d", n, len(all))
	}
	if len(views[0].CheckedOutBooks) != 2 {
		t.Errorf("person 1 holds %d books, want 2", len(views[0].CheckedOutBooks))
	}
}
