package fields

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mirsardor-ktng/documint/pkg/conventions"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	return New(Options{Profile: conventions.Default()})
}

func TestBuildClassifiesAndOrders(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t)
	form, err := builder.Build("contract.docx", []string{"name", "amount_am", "amount_words"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []string{"name", "amount_am", "amount_words"}
	if diff := cmp.Diff(want, form.Names()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	wordsField, ok := form.FieldByName("amount_words")
	if !ok {
		t.Fatal("amount_words not in form")
	}
	if wordsField.Kind != KindAmountWords {
		t.Fatalf("amount_words kind = %q, want %q", wordsField.Kind, KindAmountWords)
	}
	if wordsField.Base != "amount_am" {
		t.Fatalf("amount_words base = %q, want amount_am", wordsField.Base)
	}
	if !wordsField.ReadOnly {
		t.Fatal("amount_words should be read-only")
	}
}

func TestBuildDerivedFollowsBaseRegardlessOfDiscoveryOrder(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t)
	form, err := builder.Build("", []string{"amount_words", "city", "amount_am"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []string{"city", "amount_am", "amount_words"}
	if diff := cmp.Diff(want, form.Names()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildGenitivePair(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t)
	form, err := builder.Build("", []string{"director_name", "city", "director_name_genitive"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []string{"director_name", "director_name_genitive", "city"}
	if diff := cmp.Diff(want, form.Names()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	genitive, _ := form.FieldByName("director_name_genitive")
	if genitive.Kind != KindNameGenitive {
		t.Fatalf("genitive kind = %q", genitive.Kind)
	}
	if genitive.Base != "director_name" {
		t.Fatalf("genitive base = %q", genitive.Base)
	}
}

func TestBuildOrphanDerivedDegradesToIndependent(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t)
	form, err := builder.Build("", []string{"amount_words", "director_name_genitive"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, name := range []string{"amount_words", "director_name_genitive"} {
		field, ok := form.FieldByName(name)
		if !ok {
			t.Fatalf("%s missing from form", name)
		}
		if field.Kind != KindIndependent {
			t.Fatalf("%s kind = %q, want %q when base is absent", name, field.Kind, KindIndependent)
		}
		if field.ReadOnly {
			t.Fatalf("%s should be editable when base is absent", name)
		}
	}
}

func TestBuildMultipleAmountPairs(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t)
	tokens := []string{"total_am", "advance_am", "total_words", "advance_words", "note"}
	form, err := builder.Build("", tokens)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []string{"total_am", "total_words", "advance_am", "advance_words", "note"}
	if diff := cmp.Diff(want, form.Names()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEditable(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t)

	form, err := builder.Build("", []string{"amount_am", "amount_words"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !form.Editable() {
		t.Fatal("form with a base field should be editable")
	}

	empty, err := builder.Build("", nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if empty.Editable() {
		t.Fatal("empty form should not be editable")
	}
}
