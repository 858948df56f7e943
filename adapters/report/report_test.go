package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crosstab/domain/assoc"
	"crosstab/domain/core"
	"crosstab/domain/run"
	"crosstab/domain/survey"
)

func TestWriteReportProducesMarkdownAndHTML(t *testing.T) {
	dir := t.TempDir()
	manifest := run.NewManifest("survey_a", "/data/survey_a.csv", core.NewHash([]byte("x")))
	manifest.Respondents = 100
	manifest.Questions = 3
	manifest.PairsTested = 3
	manifest.Significant = 1

	ranked := []assoc.Result{
		{
			First: "Q1", Second: "Q2", N: 100, ChiSquare: 15.2, DegreesFreedom: 2,
			AdjustedP: 0.001, CramersV: 0.39, Strength: assoc.StrengthStrong,
			Significant: true, Recommendation: assoc.RecommendStrong,
		},
	}
	profiles := []survey.Profile{
		{Question: "Q1", ValidN: 100, Cardinality: 3, TopCategory: "Yes", TopShare: 0.6, Entropy: 1.2, Gini: 0.55},
	}

	paths, err := NewWriter().WriteReport(dir, manifest, ranked, profiles)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected markdown and html paths, got %v", paths)
	}

	md, err := os.ReadFile(filepath.Join(dir, "report.md"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(md)
	for _, want := range []string{
		"# Survey analysis: survey_a",
		"Respondents: 100",
		"| Q1 | Q2 | 100 |",
		string(assoc.StrengthStrong),
		manifest.RunID.String(),
	} {
		if !strings.Contains(content, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	html, err := os.ReadFile(filepath.Join(dir, "report.html"))
	if err != nil {
		t.Fatal(err)
	}
	page := string(html)
	if !strings.Contains(page, "<table>") {
		t.Error("html report must render the association table")
	}
	if !strings.Contains(page, "<title>survey_a</title>") {
		t.Error("html report must be a complete page with a title")
	}
}

func TestReportEscapesPipes(t *testing.T) {
	dir := t.TempDir()
	manifest := run.NewManifest("s", "/s.csv", core.NewHash([]byte("x")))
	ranked := []assoc.Result{{First: "Agree|Disagree", Second: "Q2", Recommendation: "none"}}

	if _, err := NewWriter().WriteReport(dir, manifest, ranked, nil); err != nil {
		t.Fatal(err)
	}
	md, err := os.ReadFile(filepath.Join(dir, "report.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(md), `Agree\|Disagree`) {
		t.Error("pipes in question names must be escaped in markdown tables")
	}
}
