package form

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mirsardor-ktng/documint/pkg/model"
)

func buildModel(t *testing.T, tokens ...string) model.FormModel {
	t.Helper()
	m, err := model.NewBuilder().Build("contract.docx", tokens)
	if err != nil {
		t.Fatalf("build model: %v", err)
	}
	return m
}

func TestSetAmountRecomputesWords(t *testing.T) {
	t.Parallel()

	s, err := NewState(buildModel(t, "total_am", "total_words"))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	if err := s.Set("total_am", "1500"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, _ := s.Get("total_words")
	if want := "Одна тысяча пятьсот сумов 00 тийинов"; got != want {
		t.Errorf("total_words = %q, want %q", got, want)
	}
}

func TestSetAmountWithNoiseStillComputesWords(t *testing.T) {
	t.Parallel()

	s, err := NewState(buildModel(t, "total_am", "total_words"))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	if err := s.Set("total_am", "1 500 сум"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if stored, _ := s.Get("total_am"); stored != "1500" {
		t.Errorf("total_am stored as %q, want normalized %q", stored, "1500")
	}
	got, _ := s.Get("total_words")
	if want := "Одна тысяча пятьсот сумов 00 тийинов"; got != want {
		t.Errorf("total_words = %q, want %q", got, want)
	}
}

func TestInvalidAmountClearsWords(t *testing.T) {
	t.Parallel()

	s, err := NewState(buildModel(t, "total_am", "total_words"))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	if err := s.Set("total_am", "1500"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("total_am", "not a number"); err != nil {
		t.Fatalf("set: %v", err)
	}

	if got, _ := s.Get("total_words"); got != "" {
		t.Errorf("total_words = %q, want empty", got)
	}
}

func TestOversizedAmountClearsWords(t *testing.T) {
	t.Parallel()

	s, err := NewState(buildModel(t, "total_am", "total_words"))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	// 16 digits exceeds the trillion scale the converters can spell.
	if err := s.Set("total_am", "1000000000000000"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := s.Get("total_words"); got != "" {
		t.Errorf("total_words = %q, want empty", got)
	}
}

func TestSetNameRecomputesGenitive(t *testing.T) {
	t.Parallel()

	s, err := NewState(buildModel(t, "director_name", "director_name_genitive"))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	if err := s.Set("director_name", "Иванов Иван Иванович"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, _ := s.Get("director_name_genitive")
	if want := "Иванова Иван Иванович"; got != want {
		t.Errorf("genitive = %q, want %q", got, want)
	}
}

func TestDerivedFieldRejectsDirectWrite(t *testing.T) {
	t.Parallel()

	s, err := NewState(buildModel(t, "total_am", "total_words"))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	if err := s.Set("total_words", "handwritten"); err == nil {
		t.Fatal("expected error writing derived field")
	}
	if err := s.Set("nonexistent", "x"); err == nil {
		t.Fatal("expected error writing unknown field")
	}
}

func TestSeedComputesDerivedAndSkipsJunk(t *testing.T) {
	t.Parallel()

	s, err := NewState(buildModel(t, "city", "total_am", "total_words"))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	s.Seed(map[string]string{
		"city":        "Tashkent",
		"total_am":    "200",
		"total_words": "should be ignored",
		"bogus":       "ignored too",
	})

	want := map[string]string{
		"city":        "Tashkent",
		"total_am":    "200",
		"total_words": "Двести сумов 00 тийинов",
	}
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadFormatsAmounts(t *testing.T) {
	t.Parallel()

	s, err := NewState(buildModel(t, "total_am", "total_words", "city"))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	if err := s.Set("total_am", "1234567.5"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("city", "Samarkand"); err != nil {
		t.Fatalf("set: %v", err)
	}

	payload := s.Payload()
	if want := "1 234 567.5 сум"; payload["total_am"] != want {
		t.Errorf("total_am = %q, want %q", payload["total_am"], want)
	}
	if payload["city"] != "Samarkand" {
		t.Errorf("city = %q", payload["city"])
	}
	if !strings.Contains(payload["total_words"], "сум") {
		t.Errorf("total_words = %q, want currency words", payload["total_words"])
	}
}

func TestMissingAndReset(t *testing.T) {
	t.Parallel()

	s, err := NewState(buildModel(t, "city", "date", "total_am", "total_words"))
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	if err := s.Set("city", "Bukhara"); err != nil {
		t.Fatalf("set: %v", err)
	}
	want := []string{"date", "total_am"}
	if diff := cmp.Diff(want, s.Missing()); diff != "" {
		t.Errorf("missing mismatch (-want +got):\n%s", diff)
	}

	s.Reset()
	if got, _ := s.Get("city"); got != "" {
		t.Errorf("city after reset = %q, want empty", got)
	}
}
