package testkit

import (
	"testing"
)

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(42).Categorical(100, []string{"A", "B", "C"})
	b := NewGenerator(42).Categorical(100, []string{"A", "B", "C"})

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed must reproduce the same sequence, differs at %d", i)
		}
	}
}

func TestGeneratorCoversCategories(t *testing.T) {
	values := NewGenerator(7).Categorical(500, []string{"A", "B", "C"})

	seen := make(map[string]bool)
	for _, v := range values {
		seen[v] = true
	}
	for _, cat := range []string{"A", "B", "C"} {
		if !seen[cat] {
			t.Errorf("category %s never drawn in 500 rows", cat)
		}
	}
}

func TestDependentOnTracksBase(t *testing.T) {
	g := NewGenerator(11)
	base := g.Categorical(300, []string{"Red", "Green", "Blue"})
	derived := g.DependentOn(base, []string{"Light", "Medium", "Dark"}, 0)

	// with zero noise the mapping is a pure function of the base value
	mapping := make(map[string]string)
	for i, b := range base {
		if prev, ok := mapping[b]; ok && prev != derived[i] {
			t.Fatalf("row %d: base %q mapped to both %q and %q", i, b, prev, derived[i])
		}
		mapping[b] = derived[i]
	}
}

func TestSurveyDatasetShape(t *testing.T) {
	d := NewGenerator(3).SurveyDataset("fixture", 50, "Sem resposta")

	if d.Rows != 50 {
		t.Errorf("expected 50 rows, got %d", d.Rows)
	}
	if len(d.Questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(d.Questions))
	}
	if len(d.Pairs()) != 3 {
		t.Errorf("expected 3 pairs, got %d", len(d.Pairs()))
	}
}
