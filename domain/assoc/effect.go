// Package assoc derives effect sizes, strength labels, and recommendations
// from pairwise categorical association tests.
package assoc

import "math"

// Strength is the qualitative label for an association's effect size
type Strength string

const (
	StrengthNotApplicable Strength = "Not applicable"
	StrengthWeak          Strength = "Weak"
	StrengthModerate      Strength = "Moderate"
	StrengthStrong        Strength = "Strong"
	StrengthVeryStrong    Strength = "Very strong"
)

// thresholdRow holds the Weak/Moderate/Strong upper bounds for one
// category-count bucket; V at or above Strong classifies as Very strong.
type thresholdRow struct {
	weak     float64
	moderate float64
	strong   float64
}

// Cramér's V cutoffs depend on how many categories the smaller side of the
// table has: more categories dilute V, so the cutoffs shrink.
var strengthThresholds = map[int]thresholdRow{
	2: {weak: 0.10, moderate: 0.30, strong: 0.50},
	4: {weak: 0.07, moderate: 0.21, strong: 0.35},
	5: {weak: 0.06, moderate: 0.17, strong: 0.29},
}

// thresholdsFor buckets a category count into its threshold row
func thresholdsFor(categories int) thresholdRow {
	switch {
	case categories <= 2:
		return strengthThresholds[2]
	case categories <= 4:
		return strengthThresholds[4]
	default:
		return strengthThresholds[5]
	}
}

// CramersV computes the normalized association strength
// sqrt(chi2 / (N * (min(rows, cols) - 1))) in [0, 1]. It is undefined
// (NaN) when the smaller table dimension is 1 or N is zero.
func CramersV(chi2 float64, n, rows, cols int) float64 {
	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	if minDim <= 1 || n == 0 {
		return math.NaN()
	}
	return math.Sqrt(chi2 / (float64(n) * float64(minDim-1)))
}

// Classify maps Cramér's V to a qualitative strength label using the
// category-count-dependent cutoffs. An undefined V is Not applicable
// regardless of the category count.
func Classify(v float64, categories int) Strength {
	if math.IsNaN(v) {
		return StrengthNotApplicable
	}
	limits := thresholdsFor(categories)
	switch {
	case v < limits.weak:
		return StrengthWeak
	case v < limits.moderate:
		return StrengthModerate
	case v < limits.strong:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}
