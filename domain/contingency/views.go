package contingency

import "fmt"

// ViewKind selects how a percentage view is normalized
type ViewKind string

const (
	ViewTotal  ViewKind = "total"
	ViewRow    ViewKind = "row"
	ViewColumn ViewKind = "column"
)

// ViewKinds lists the three normalizations in artifact emission order
var ViewKinds = []ViewKind{ViewTotal, ViewRow, ViewColumn}

// View pairs a percentage matrix with its count+percent display strings.
// Degenerate denominators (zero total, all-zero row or column) produce 0
// cells instead of NaN so rendering never sees an undefined value.
type View struct {
	Kind      ViewKind
	RowLabels []string
	ColLabels []string
	Percents  [][]float64
	Display   [][]string
}

// NewView derives the requested percentage view from a table
func NewView(t *Table, kind ViewKind) *View {
	rows, cols := t.Rows(), t.Cols()
	percents := make([][]float64, rows)
	display := make([][]string, rows)

	total := t.Total()
	rowTotals := t.RowTotals()
	colTotals := t.ColTotals()

	for i := 0; i < rows; i++ {
		percents[i] = make([]float64, cols)
		display[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			count := t.Counts[i][j]
			var denom int
			switch kind {
			case ViewRow:
				denom = rowTotals[i]
			case ViewColumn:
				denom = colTotals[j]
			default:
				denom = total
			}
			pct := 0.0
			if denom > 0 {
				pct = float64(count) / float64(denom) * 100
			}
			percents[i][j] = pct
			display[i][j] = fmt.Sprintf("%d (%.2f%%)", count, pct)
		}
	}

	return &View{
		Kind:      kind,
		RowLabels: t.RowLabels,
		ColLabels: t.ColLabels,
		Percents:  percents,
		Display:   display,
	}
}

// Views derives all three percentage views of a table
func Views(t *Table) []*View {
	views := make([]*View, len(ViewKinds))
	for i, kind := range ViewKinds {
		views[i] = NewView(t, kind)
	}
	return views
}

// Placeholder is the single-cell stand-in rendered for an empty table. It
// exists for display only and never feeds back into statistics.
func Placeholder(kind ViewKind) *View {
	return &View{
		Kind:      kind,
		RowLabels: []string{"No data"},
		ColLabels: []string{"No data"},
		Percents:  [][]float64{{0}},
		Display:   [][]string{{"0 (0.00%)"}},
	}
}

// ViewOrPlaceholder returns the real view for non-empty tables and the
// placeholder otherwise
func ViewOrPlaceholder(t *Table, kind ViewKind) *View {
	if t.IsEmpty() {
		return Placeholder(kind)
	}
	return NewView(t, kind)
}
