// Package excel writes the crosstables and summary workbooks.
package excel

import (
	"log"

	"crosstab/domain/survey"
	"crosstab/internal/errors"
	"crosstab/ports"

	"github.com/xuri/excelize/v2"
)

// Highlight fill colors for significant associations
const (
	strongHighlightColor = "92D050"
	lightHighlightColor  = "C6EFCE"
)

// WorkbookWriter writes one sheet per question pair, holding the
// count+percent display matrix of the total view with conditional
// highlighting driven by the pair's verdict.
type WorkbookWriter struct{}

// NewWorkbookWriter creates a crosstables workbook writer
func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{}
}

// WriteWorkbook writes all pair sheets to path. Sheet names are the
// sanitized pair slugs; collisions within the 31-character cap get a
// numeric suffix instead of silently overwriting.
func (w *WorkbookWriter) WriteWorkbook(path string, sheets []ports.PairSheet) error {
	f := excelize.NewFile()
	defer f.Close()

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
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.WriteError(path, err)
	}

	used := make(map[string]bool)
	for _, sheet := range sheets {
		name := survey.UniqueName(sheet.Pair.Slug(), used)
		if _, err := f.NewSheet(name); err != nil {
			return errors.WriteError(path, err)
		}
		if err := w.writeSheet(f, name, sheet, strongStyle, lightStyle, headerStyle); err != nil {
			return errors.WriteError(path, err)
		}
	}

	if len(sheets) > 0 {
		f.DeleteSheet("Sheet1")
	}
	if err := f.SaveAs(path); err != nil {
		return errors.WriteError(path, err)
	}
	log.Printf("[WorkbookWriter] Wrote %d pair sheets to %s", len(sheets), path)
	return nil
}

// writeSheet lays out one pair: title row, column labels, then one row per
// row category with the display strings, plus marginal totals for real
// tables.
func (w *WorkbookWriter) writeSheet(f *excelize.File, name string, sheet ports.PairSheet, strongStyle, lightStyle, headerStyle int) error {
	setCell := func(col, row int, value interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(name, cell, value)
	}

	if err := setCell(1, 1, sheet.Pair.First+" / "+sheet.Pair.Second); err != nil {
		return err
	}

	view := sheet.View
	for j, label := range view.ColLabels {
		if err := setCell(j+2, 2, label); err != nil {
			return err
		}
	}
	for i, label := range view.RowLabels {
		if err := setCell(1, i+3, label); err != nil {
			return err
		}
		for j := range view.ColLabels {
			if err := setCell(j+2, i+3, view.Display[i][j]); err != nil {
				return err
			}
		}
	}

	// bold the title and the label row/column
	lastCol, _ := excelize.CoordinatesToCellName(len(view.ColLabels)+1, 2)
	if err := f.SetCellStyle(name, "A1", lastCol, headerStyle); err != nil {
		return err
	}

	// marginal totals, skipped for the placeholder sheet
	if sheet.Table != nil && !sheet.Table.IsEmpty() {
		totalRow := len(view.RowLabels) + 3
		if err := setCell(1, totalRow, "Total"); err != nil {
			return err
		}
		for j, total := range sheet.Table.ColTotals() {
			if err := setCell(j+2, totalRow, total); err != nil {
				return err
			}
		}
		totalCol := len(view.ColLabels) + 2
		if err := setCell(totalCol, 2, "Total"); err != nil {
			return err
		}
		for i, total := range sheet.Table.RowTotals() {
			if err := setCell(totalCol, i+3, total); err != nil {
				return err
			}
		}
		if err := setCell(totalCol, totalRow, sheet.Table.Total()); err != nil {
			return err
		}
	}

	// conditional highlighting of the data cells
	if sheet.Result != nil && sheet.Result.Highlightable() {
		style := lightStyle
		if sheet.Result.StrongHighlight() {
			style = strongStyle
		}
		topLeft, _ := excelize.CoordinatesToCellName(2, 3)
		bottomRight, _ := excelize.CoordinatesToCellName(len(view.ColLabels)+1, len(view.RowLabels)+2)
		if err := f.SetCellStyle(name, topLeft, bottomRight, style); err != nil {
			return err
		}
	}
	return nil
}
