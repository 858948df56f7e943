// Package stats implements the association test, the multiple-comparison
// correction, and the question profiler.
package stats

import (
	"crosstab/domain/contingency"
	"crosstab/ports"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquareEngine runs the chi-square test of independence on contingency
// tables. No continuity correction is applied; low expected cell counts
// are a known limitation of the test, not an error.
type ChiSquareEngine struct{}

// NewChiSquareEngine creates a chi-square engine
func NewChiSquareEngine() *ChiSquareEngine {
	return &ChiSquareEngine{}
}

// ChiSquare computes the test statistic, degrees of freedom, and two-sided
// p-value for a table. Tables with fewer than 2 rows or columns, or a zero
// total, are not testable and return ok=false.
func (e *ChiSquareEngine) ChiSquare(table *contingency.Table) (ports.TestResult, bool) {
	rows, cols := table.Rows(), table.Cols()
	total := table.Total()
	if rows < 2 || cols < 2 || total == 0 {
		return ports.TestResult{}, false
	}

	rowTotals := table.RowTotals()
	colTotals := table.ColTotals()

	chi2 := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			expected := float64(rowTotals[i]) * float64(colTotals[j]) / float64(total)
			if expected > 0 {
				observed := float64(table.Counts[i][j])
				diff := observed - expected
				chi2 += diff * diff / expected
			}
		}
	}

	df := (rows - 1) * (cols - 1)
	dist := distuv.ChiSquared{K: float64(df)}
	p := dist.Survival(chi2)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return ports.TestResult{
		ChiSquare:      chi2,
		DegreesFreedom: df,
		PValue:         p,
		N:              total,
	}, true
}
