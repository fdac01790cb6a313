package resolve

import (
	"errors"
	"slices"
	"testing"

	"github.com/jsamuelsen11/go-library-service/internal/domain"
)

func TestParseBookFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "empty uses default", raw: "", want: DefaultBookFields.Names()},
		{name: "only separators uses default", raw: " , ,", want: DefaultBookFields.Names()},
		{name: "keeps order", raw: "title,id", want: []string{"title", "id"}},
		{name: "trims and dedupes", raw: " id , id,author ", want: []string{"id", "author"}},
		{name: "relation field", raw: "id,checkedOutBy", want: []string{"id", "checkedOutBy"}},
		{name: "unknown field", raw: "id,isbn", wantErr: true},
		{name: "person field on book", raw: "firstName", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBookFields(tt.raw)
			if tt.wantErr {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ParseBookFields() error = %v, want ValidationError", err)
				}
				if _, ok := verr.Fields[FieldSelection]; !ok {
					t.Errorf("ValidationError.Fields = %v, want key %q", verr.Fields, FieldSelection)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBookFields() error = %v", err)
			}
			if !slices.Equal(got.Names(), tt.want) {
				t.Errorf("ParseBookFields() = %v, want %v", got.Names(), tt.want)
			}
		})
	}
}

func TestDefaultBookFields_ExcludeCheckedOutBy(t *testing.T) {
	t.Parallel()

	if DefaultBookFields.Has(BookCheckedOutBy) {
		t.Error("DefaultBookFields includes checkedOutBy")
	}
	if DefaultPersonFields.Has(PersonCheckedOutBooks) {
		t.Error("DefaultPersonFields includes checkedOutBooks")
	}
}

func TestParsePersonFields(t *testing.T) {
	t.Parallel()

	got, err := ParsePersonFields("firstName,checkedOutBooks")
	if err != nil {
		t.Fatalf("ParsePersonFields() error = %v", err)
	}
	if !got.Has(PersonCheckedOutBooks) || got.Has(PersonID) {
		t.Errorf("ParsePersonFields() = %v", got.Names())
	}

	if _, err := ParsePersonFields("title"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ParsePersonFields(title) error = %v, want ErrValidation", err)
	}
}
