// Package report writes the per-dataset Markdown and HTML reports.
package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"crosstab/domain/assoc"
	"crosstab/domain/core"
	"crosstab/domain/run"
	"crosstab/domain/survey"
	"crosstab/internal/errors"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Writer renders the dataset report as Markdown and as a standalone HTML
// page.
type Writer struct{}

// NewWriter creates a report writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteReport writes report.md and report.html into dir and returns the
// written paths
func (w *Writer) WriteReport(dir string, manifest *run.Manifest, ranked []assoc.Result, profiles []survey.Profile) ([]string, error) {
	md := w.buildMarkdown(manifest, ranked, profiles)

	mdPath := filepath.Join(dir, "report.md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return nil, errors.WriteError(mdPath, err)
	}

	htmlPath := filepath.Join(dir, "report.html")
	page := w.renderHTML(manifest.Dataset, md)
	if err := os.WriteFile(htmlPath, page, 0644); err != nil {
		return nil, errors.WriteError(htmlPath, err)
	}

	return []string{mdPath, htmlPath}, nil
}

func (w *Writer) buildMarkdown(manifest *run.Manifest, ranked []assoc.Result, profiles []survey.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Survey analysis: %s\n\n", manifest.Dataset)
	fmt.Fprintf(&b, "- Respondents: %d\n", manifest.Respondents)
	fmt.Fprintf(&b, "- Questions: %d\n", manifest.Questions)
	fmt.Fprintf(&b, "- Pairs tested: %d (skipped: %d)\n", manifest.PairsTested, manifest.PairsSkipped)
	fmt.Fprintf(&b, "- Significant associations: %d\n\n", manifest.Significant)

	b.WriteString("## Associations\n\n")
	if len(ranked) == 0 {
		b.WriteString("No testable question pairs.\n\n")
	} else {
		b.WriteString("| Question 1 | Question 2 | N | Chi-square | df | p-adj | Cramer's V | Strength | Significant | Recommendation |\n")
		b.WriteString("|---|---|---|---|---|---|---|---|---|---|\n")
		for _, r := range ranked {
			significant := "No"
			if r.Significant {
				significant = "Yes"
			}
			v := "n/a"
			if !math.IsNaN(r.CramersV) {
				v = fmt.Sprintf("%.3f", r.CramersV)
			}
			fmt.Fprintf(&b, "| %s | %s | %d | %.2f | %d | %.3g | %s | %s | %s | %s |\n",
				escapePipes(r.First), escapePipes(r.Second), r.N, r.ChiSquare,
				r.DegreesFreedom, r.AdjustedP, v, r.Strength, significant,
				escapePipes(r.Recommendation))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Question profiles\n\n")
	b.WriteString("| Question | Valid N | Missing | Categories | Top category | Top share | Entropy | Gini |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, p := range profiles {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %s | %.1f%% | %.2f | %.2f |\n",
			escapePipes(p.Question), p.ValidN, p.Missing, p.Cardinality,
			escapePipes(p.TopCategory), p.TopShare*100, p.Entropy, p.Gini)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "---\n\nGenerated %s, run %s\n", core.Now(), manifest.RunID)
	return b.String()
}

// renderHTML wraps the gomarkdown rendering in a minimal standalone page
func (w *Writer) renderHTML(title string, md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage, Title: title})
	return markdown.Render(doc, renderer)
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
