package ports

import (
	"crosstab/domain/contingency"
	"crosstab/domain/survey"
)

// TestResult carries the outcome of one chi-square independence test
type TestResult struct {
	ChiSquare      float64
	DegreesFreedom int
	PValue         float64
	N              int
}

// AssociationEngine runs the chi-square independence test on a
// contingency table. ok is false for tables outside the testable shape
// (fewer than 2 rows or columns, or zero total); that is a degenerate
// input, not an error.
type AssociationEngine interface {
	ChiSquare(table *contingency.Table) (result TestResult, ok bool)
}

// Corrector adjusts a family of raw p-values for multiple comparisons.
// The output preserves input order so adjusted values map back to their
// pairs by position; empty input yields empty output.
type Corrector interface {
	Adjust(rawPValues []float64) []float64
}

// Profiler summarizes the response distribution of each question column
type Profiler interface {
	Profile(dataset *survey.Dataset) []survey.Profile
}
