package survey

import (
	"testing"
)

func TestNewDatasetNormalizesMissingValues(t *testing.T) {
	questions := []Question{
		{Name: "Q1", Values: []string{"Yes", "", "  ", " No "}},
	}

	d := NewDataset("test", questions, "Sem resposta")

	got := d.Questions[0].Values
	expected := []string{"Yes", "Sem resposta", "Sem resposta", "No"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("value %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
	if d.Rows != 4 {
		t.Errorf("expected 4 rows, got %d", d.Rows)
	}
}

func TestPairsEnumerationOrder(t *testing.T) {
	questions := []Question{
		{Name: "A", Values: []string{"x"}},
		{Name: "B", Values: []string{"x"}},
		{Name: "C", Values: []string{"x"}},
	}
	d := NewDataset("test", questions, "n/a")

	pairs := d.Pairs()

	expected := []Pair{
		{First: "A", Second: "B"},
		{First: "A", Second: "C"},
		{First: "B", Second: "C"},
	}
	if len(pairs) != len(expected) {
		t.Fatalf("expected %d pairs, got %d", len(expected), len(pairs))
	}
	for i := range expected {
		if pairs[i] != expected[i] {
			t.Errorf("pair %d: expected %v, got %v", i, expected[i], pairs[i])
		}
	}

	// the materialized list is stable across calls, both passes rely on it
	again := d.Pairs()
	for i := range pairs {
		if pairs[i] != again[i] {
			t.Errorf("pair enumeration must be deterministic")
		}
	}
}

func TestQuestionLookup(t *testing.T) {
	d := NewDataset("test", []Question{{Name: "A", Values: []string{"x"}}}, "n/a")

	if d.Question("A") == nil {
		t.Error("expected to find question A")
	}
	if d.Question("missing") != nil {
		t.Error("expected nil for unknown question")
	}
}
