package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"crosstab/internal/errors"
	"crosstab/internal/testkit"
)

func TestReadCSVDropsTimestampColumn(t *testing.T) {
	dir := t.TempDir()
	path, err := testkit.WriteCSV(dir, "survey", []string{"Q1", "Q2"}, [][]string{
		{"Yes", "X"},
		{"No", "Y"},
		{"Yes", "X"},
	})
	if err != nil {
		t.Fatal(err)
	}

	dataset, err := NewDatasetReader().Read(context.Background(), path, "Sem resposta")
	if err != nil {
		t.Fatal(err)
	}

	if len(dataset.Questions) != 2 {
		t.Fatalf("timestamp column must be dropped: got %d questions", len(dataset.Questions))
	}
	if dataset.Questions[0].Name != "Q1" || dataset.Questions[1].Name != "Q2" {
		t.Errorf("unexpected question names: %v", dataset.ColumnNames())
	}
	if dataset.Rows != 3 {
		t.Errorf("expected 3 respondents, got %d", dataset.Rows)
	}
	if dataset.Name != "survey" {
		t.Errorf("dataset name derives from the filename, got %s", dataset.Name)
	}
}

func TestReadCSVSubstitutesFallback(t *testing.T) {
	dir := t.TempDir()
	path, err := testkit.WriteCSV(dir, "survey", []string{"Q1", "Q2"}, [][]string{
		{"Yes", ""},
		{"", "Y"},
	})
	if err != nil {
		t.Fatal(err)
	}

	dataset, err := NewDatasetReader().Read(context.Background(), path, "Sem resposta")
	if err != nil {
		t.Fatal(err)
	}

	if dataset.Questions[1].Values[0] != "Sem resposta" {
		t.Errorf("empty cell must become the fallback label, got %q", dataset.Questions[1].Values[0])
	}
	if dataset.Questions[0].Values[1] != "Sem resposta" {
		t.Errorf("empty cell must become the fallback label, got %q", dataset.Questions[0].Values[1])
	}
}

func TestReadRejectsDegenerateFiles(t *testing.T) {
	dir := t.TempDir()

	headerOnly := filepath.Join(dir, "header_only.csv")
	if err := os.WriteFile(headerOnly, []byte("Timestamp,Q1,Q2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tooFewColumns := filepath.Join(dir, "one_question.csv")
	if err := os.WriteFile(tooFewColumns, []byte("Timestamp,Q1\n2024-01-01,Yes\n"), 0644); err != nil {
		t.Fatal(err)
	}

	reader := NewDatasetReader()
	for _, path := range []string{headerOnly, tooFewColumns} {
		_, err := reader.Read(context.Background(), path, "n/a")
		if err == nil {
			t.Errorf("%s: expected an error", filepath.Base(path))
			continue
		}
		if errors.GetCode(err) != errors.CodeInvalidInput {
			t.Errorf("%s: expected INVALID_INPUT, got %s", filepath.Base(path), errors.GetCode(err))
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewDatasetReader().Read(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), "n/a")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if errors.GetCode(err) != errors.CodeReadError {
		t.Errorf("expected READ_ERROR, got %s", errors.GetCode(err))
	}
}

func TestReadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewDatasetReader().Read(context.Background(), path, "n/a")
	if err == nil || errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for unsupported extension, got %v", err)
	}
}
