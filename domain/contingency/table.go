// Package contingency builds observed-count cross-tabulations of two
// categorical columns and their percentage views.
package contingency

// Table is the joint count matrix of two categorical columns. Row and
// column labels are the distinct values observed in each column, in first
// appearance order; unobserved combinations are zero cells.
type Table struct {
	RowLabels []string
	ColLabels []string
	Counts    [][]int
}

// Build cross-tabulates two aligned label sequences. A length mismatch or
// an empty sequence yields an empty table rather than an error; callers
// treat an empty table as "statistics not computable".
func Build(rowValues, colValues []string) *Table {
	if len(rowValues) != len(colValues) || len(rowValues) == 0 {
		return &Table{}
	}

	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	var rowLabels, colLabels []string
	for _, v := range rowValues {
		if _, ok := rowIdx[v]; !ok {
			rowIdx[v] = len(rowLabels)
			rowLabels = append(rowLabels, v)
		}
	}
	for _, v := range colValues {
		if _, ok := colIdx[v]; !ok {
			colIdx[v] = len(colLabels)
			colLabels = append(colLabels, v)
		}
	}

	counts := make([][]int, len(rowLabels))
	for i := range counts {
		counts[i] = make([]int, len(colLabels))
	}
	for k := range rowValues {
		counts[rowIdx[rowValues[k]]][colIdx[colValues[k]]]++
	}

	return &Table{RowLabels: rowLabels, ColLabels: colLabels, Counts: counts}
}

// Rows returns the number of distinct row categories
func (t *Table) Rows() int {
	return len(t.RowLabels)
}

// Cols returns the number of distinct column categories
func (t *Table) Cols() int {
	return len(t.ColLabels)
}

// IsEmpty reports whether the table has no cells
func (t *Table) IsEmpty() bool {
	return t.Rows() == 0 || t.Cols() == 0
}

// Total returns the grand total count N
func (t *Table) Total() int {
	total := 0
	for i := range t.Counts {
		for j := range t.Counts[i] {
			total += t.Counts[i][j]
		}
	}
	return total
}

// RowTotals returns the marginal count of each row
func (t *Table) RowTotals() []int {
	totals := make([]int, t.Rows())
	for i := range t.Counts {
		for j := range t.Counts[i] {
			totals[i] += t.Counts[i][j]
		}
	}
	return totals
}

// ColTotals returns the marginal count of each column
func (t *Table) ColTotals() []int {
	totals := make([]int, t.Cols())
	for i := range t.Counts {
		for j := range t.Counts[i] {
			totals[j] += t.Counts[i][j]
		}
	}
	return totals
}
