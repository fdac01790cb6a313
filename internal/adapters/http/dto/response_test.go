package dto_test

import (
	"testing"

	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-library-service/internal/app/resolve"
	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
)

func heldBook() book.Book {
	return book.Book{ID: "2", Title: "The Hobbit", Author: "J.R.R. Tolkien", CheckedOutByID: stringPtr("1")}
}

func holder() person.Person {
	return person.Person{ID: "1", FirstName: "Ada", LastName: "Lovelace", EmailAddress: "ada@example.com"}
}

func TestToBookResponse_DefaultFields(t *testing.T) {
	t.Parallel()

	got := dto.ToBookResponse(resolve.BookView{
		Book:         book.Book{ID: "1", Title: "Dune", Author: "Frank Herbert"},
		Fields:       resolve.DefaultBookFields,
		IsCheckedOut: false,
	})

	if len(got) != 5 {
		t.Errorf("len = %d, want 5; got %v", len(got), got)
	}
	if got["id"] != "1" || got["title"] != "Dune" || got["author"] != "Frank Herbert" {
		t.Errorf("base fields = %v", got)
	}
	v, ok := got["checkedOutById"]
	if !ok {
		t.Fatal("checkedOutById missing, want null")
	}
	if p, _ := v.(*string); p != nil {
		t.Errorf("checkedOutById = %v, want nil", *p)
	}
	if got["isCheckedOut"] != false {
		t.Errorf("isCheckedOut = %v, want false", got["isCheckedOut"])
	}
	if _, ok := got["checkedOutBy"]; ok {
		t.Error("checkedOutBy present without selection")
	}
}

func TestToBookResponse_CheckedOutBy(t *testing.T) {
	t.Parallel()

	fields, err := resolve.ParseBookFields("id,checkedOutBy")
	if err != nil {
		t.Fatalf("ParseBookFields() error = %v", err)
	}

	p := holder()
	got := dto.ToBookResponse(resolve.BookView{Book: heldBook(), Fields: fields, CheckedOutBy: &p})

	if len(got) != 2 {
		t.Errorf("len = %d, want 2; got %v", len(got), got)
	}
	nested, ok := got["checkedOutBy"].(dto.PersonResponse)
	if !ok {
		t.Fatalf("checkedOutBy = %T, want PersonResponse", got["checkedOutBy"])
	}
	if nested["id"] != "1" || nested["emailAddress"] != "ada@example.com" {
		t.Errorf("checkedOutBy = %v", nested)
	}

	got = dto.ToBookResponse(resolve.BookView{Book: heldBook(), Fields: fields})
	if v, ok := got["checkedOutBy"]; !ok || v != nil {
		t.Errorf("dangling checkedOutBy = %v (present %v), want null", v, ok)
	}
}

func TestToBookListResponse(t *testing.T) {
	t.Parallel()

	views := []resolve.BookView{
		{Book: book.Book{ID: "1"}, Fields: resolve.DefaultBookFields},
		{Book: heldBook(), Fields: resolve.DefaultBookFields, IsCheckedOut: true},
	}

	got := dto.ToBookListResponse(views)
	if got.Count != 2 || len(got.Books) != 2 {
		t.Fatalf("Count = %d, len = %d, want 2", got.Count, len(got.Books))
	}
	if got.Books[1]["id"] != "2" || got.Books[1]["isCheckedOut"] != true {
		t.Errorf("Books[1] = %v", got.Books[1])
	}

	empty := dto.ToBookListResponse(nil)
	if empty.Books == nil || empty.Count != 0 {
		t.Errorf("empty list = %+v, want non-nil empty slice", empty)
	}
}

func TestToPersonResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToPersonResponse(resolve.PersonView{Person: holder(), Fields: resolve.DefaultPersonFields})
	if len(got) != 5 {
		t.Errorf("len = %d, want 5; got %v", len(got), got)
	}
	if _, ok := got["checkedOutBooks"]; ok {
		t.Error("checkedOutBooks present without selection")
	}

	fields, _ := resolve.ParsePersonFields("id,checkedOutBooks")
	got = dto.ToPersonResponse(resolve.PersonView{
		Person:          holder(),
		Fields:          fields,
		CheckedOutBooks: []book.Book{heldBook()},
	})
	held, ok := got["checkedOutBooks"].([]dto.BookResponse)
	if !ok || len(held) != 1 {
		t.Fatalf("checkedOutBooks = %v, want one book", got["checkedOutBooks"])
	}
	if held[0]["id"] != "2" || held[0]["isCheckedOut"] != true {
		t.Errorf("checkedOutBooks[0] = %v", held[0])
	}

	list := dto.ToPersonListResponse([]resolve.PersonView{{Person: holder(), Fields: fields}})
	if list.Count != 1 || list.Persons[0]["id"] != "1" {
		t.Errorf("ToPersonListResponse() = %+v", list)
	}
}
