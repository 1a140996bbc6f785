package catalog

import (
	"errors"
	"sort"
	"testing"

	"persona-engine/internal/domain"
)

func validQuestions() []domain.Question {
	questions := make([]domain.Question, 0, 5)
	for _, tr := range domain.Traits {
		questions = append(questions, domain.Question{
			ID:     string(tr) + "1",
			Text:   "item",
			Trait:  tr,
			Facet:  string(tr) + "-core",
			Weight: 1,
		})
	}
	return questions
}

func TestLoadDefault(t *testing.T) {
	cat, err := LoadDefault()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}

	if cat.Version != "quick_v1" {
		t.Fatalf("expected version quick_v1, got %q", cat.Version)
	}
	if cat.MinItemsPerTrait != 3 {
		t.Fatalf("expected min_items_per_trait 3, got %d", cat.MinItemsPerTrait)
	}
	if cat.Len() != 30 {
		t.Fatalf("expected 30 items, got %d", cat.Len())
	}
	for _, tr := range domain.Traits {
		if n := cat.TraitCount(tr); n != 6 {
			t.Fatalf("trait %s: expected 6 items, got %d", tr, n)
		}
	}
	if n := len(cat.Facets()); n != 10 {
		t.Fatalf("expected 10 facets, got %d", n)
	}

	q, ok := cat.Question("o3")
	if !ok {
		t.Fatalf("o3 missing from the bank")
	}
	if !q.Reverse || q.Trait != domain.TraitOpenness {
		t.Fatalf("unexpected o3: %+v", q)
	}

	owner, ok := cat.FacetTrait("sociability")
	if !ok || owner != domain.TraitExtraversion {
		t.Fatalf("expected sociability under E, got %q ok=%v", owner, ok)
	}

	ids := cat.Questions()
	if !sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i].ID < ids[j].ID }) {
		t.Fatalf("questions not in ascending id order")
	}
}

func TestQuestionsReturnsCopy(t *testing.T) {
	cat, err := LoadDefault()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	qs := cat.Questions()
	qs[0].Weight = 99

	again := cat.Questions()
	if again[0].Weight == 99 {
		t.Fatalf("caller mutation leaked into the bank")
	}
}

func TestParseSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing version", `{"min_items_per_trait":1,"questions":[]}`},
		{"zero weight", `{"version":"v","min_items_per_trait":1,"questions":[{"id":"o1","text":"t","trait":"O","facet":"f","weight":0}]}`},
		{"unknown trait", `{"version":"v","min_items_per_trait":1,"questions":[{"id":"x1","text":"t","trait":"X","facet":"f","weight":1}]}`},
		{"extra field", `{"version":"v","min_items_per_trait":1,"bonus":true,"questions":[]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			if !errors.Is(err, ErrSchemaViolation) {
				t.Fatalf("expected ErrSchemaViolation, got %v", err)
			}
		})
	}
}

func TestNewConsistencyChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]domain.Question) []domain.Question
	}{
		{"duplicate id", func(qs []domain.Question) []domain.Question {
			return append(qs, qs[0])
		}},
		{"empty id", func(qs []domain.Question) []domain.Question {
			qs[0].ID = "  "
			return qs
		}},
		{"invalid trait", func(qs []domain.Question) []domain.Question {
			qs[0].Trait = "X"
			return qs
		}},
		{"empty facet", func(qs []domain.Question) []domain.Question {
			qs[0].Facet = ""
			return qs
		}},
		{"non-positive weight", func(qs []domain.Question) []domain.Question {
			qs[0].Weight = -0.5
			return qs
		}},
		{"facet spanning traits", func(qs []domain.Question) []domain.Question {
			qs[1].Facet = qs[0].Facet
			return qs
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("v", 1, tc.mutate(validQuestions()))
			if !errors.Is(err, ErrInconsistent) {
				t.Fatalf("expected ErrInconsistent, got %v", err)
			}
		})
	}
}

func TestNewEnforcesMinItems(t *testing.T) {
	if _, err := New("v", 2, validQuestions()); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent for undersized traits, got %v", err)
	}
	if _, err := New("v", 1, validQuestions()); err != nil {
		t.Fatalf("valid bank rejected: %v", err)
	}
}

func TestNewRejectsBadHeader(t *testing.T) {
	if _, err := New(" ", 1, validQuestions()); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent for blank version, got %v", err)
	}
	if _, err := New("v", 0, validQuestions()); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent for zero min items, got %v", err)
	}
	if _, err := New("v", 1, nil); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent for empty bank, got %v", err)
	}
}
