package excel

import (
	"log"
	"math"

	"crosstab/domain/assoc"
	"crosstab/domain/survey"
	"crosstab/internal/errors"

	"github.com/xuri/excelize/v2"
)

// summaryHeader matches the consolidated table of the original analysis
var summaryHeader = []string{
	"Question 1", "Question 2", "N", "Chi-square", "df",
	"Adjusted p-value", "Cramer's V", "Strength", "Significant", "Recommendation",
}

var questionsHeader = []string{
	"Question", "Valid N", "Missing", "Missing rate", "Categories",
	"Top category", "Top share", "Entropy", "Gini", "Count mean", "Count stddev",
}

// SummaryWriter writes the consolidated summary workbook: one ranked row
// per tested pair plus a question profile sheet.
type SummaryWriter struct{}

// NewSummaryWriter creates a summary workbook writer
func NewSummaryWriter() *SummaryWriter {
	return &SummaryWriter{}
}

// WriteSummary writes the Summary and Questions sheets. Results must
// already be ranked; significant rows are highlighted like the pair
// sheets.
func (w *SummaryWriter) WriteSummary(path string, ranked []assoc.Result, profiles []survey.Profile) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Summary"); err != nil {
		return errors.WriteError(path, err)
	}
	if _, err := f.NewSheet("Questions"); err != nil {
		return errors.WriteError(path, err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.WriteError(path, err)
	}
	strongStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{strongHighlightColor}, Pattern: 1},
	})
	if err != nil {
		return errors.WriteError(path, err)
	}
	lightStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{lightHighlightColor}, Pattern: 1},
	})
	if err != nil {
		return errors.WriteError(path, err)
	}

	if err := w.writeSummarySheet(f, ranked, headerStyle, strongStyle, lightStyle); err != nil {
		return errors.WriteError(path, err)
	}
	if err := w.writeQuestionsSheet(f, profiles, headerStyle); err != nil {
		return errors.WriteError(path, err)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WriteError(path, err)
	}
	log.Printf("[SummaryWriter] Wrote %d association rows and %d question profiles to %s",
		len(ranked), len(profiles), path)
	return nil
}

func (w *SummaryWriter) writeSummarySheet(f *excelize.File, ranked []assoc.Result, headerStyle, strongStyle, lightStyle int) error {
	if err := w.writeRow(f, "Summary", 1, toCells(summaryHeader)); err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(summaryHeader), 1)
	if err := f.SetCellStyle("Summary", "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, r := range ranked {
		row := i + 2
		significant := "No"
		if r.Significant {
			significant = "Yes"
		}
		var v interface{} = "n/a"
		if !math.IsNaN(r.CramersV) {
			v = r.CramersV
		}
		var pAdj interface{} = "n/a"
		if !math.IsNaN(r.AdjustedP) {
			pAdj = r.AdjustedP
		}
		cells := []interface{}{
			r.First, r.Second, r.N, r.ChiSquare, r.DegreesFreedom,
			pAdj, v, string(r.Strength), significant, r.Recommendation,
		}
		if err := w.writeRow(f, "Summary", row, cells); err != nil {
			return err
		}
		if r.Highlightable() {
			style := lightStyle
			if r.StrongHighlight() {
				style = strongStyle
			}
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(len(cells), row)
			if err := f.SetCellStyle("Summary", first, last, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *SummaryWriter) writeQuestionsSheet(f *excelize.File, profiles []survey.Profile, headerStyle int) error {
	if err := w.writeRow(f, "Questions", 1, toCells(questionsHeader)); err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(questionsHeader), 1)
	if err := f.SetCellStyle("Questions", "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, p := range profiles {
		cells := []interface{}{
			p.Question, p.ValidN, p.Missing, p.MissingRate, p.Cardinality,
			p.TopCategory, p.TopShare, p.Entropy, p.Gini, p.CountMean, p.CountStdDev,
		}
		if err := w.writeRow(f, "Questions", i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func (w *SummaryWriter) writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
