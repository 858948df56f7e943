package assoc

import "math"

// Recommendation texts, ordered from weakest to strongest finding
const (
	RecommendNotApplicable  = "Not applicable (insufficient data)"
	RecommendNotSignificant = "Not significant: no relevant association"
	RecommendWeak           = "Significant but weak association"
	RecommendModerate       = "Significant moderate association, worth exploring in charts and text"
	RecommendStrong         = "Significant strong association, highlight in the analysis"
	RecommendVeryStrong     = "Very strong association, key finding to highlight"

	// SmallSampleCaveat is appended to significant findings when N < 30
	SmallSampleCaveat = " (small sample, interpret with caution)"

	// SmallSampleN is the sample size below which the caveat applies
	SmallSampleN = 30
)

// Recommend produces the textual verdict for one pair. Rules fire in
// order: undefined inputs, then non-significance at the given alpha, then
// the effect-size ladder. The small-sample caveat only applies to
// significant findings; the earlier rules short-circuit past it.
func Recommend(adjustedP, v float64, n, rows, cols int, alpha float64) string {
	if math.IsNaN(v) || math.IsNaN(adjustedP) {
		return RecommendNotApplicable
	}
	if adjustedP >= alpha {
		return RecommendNotSignificant
	}

	categories := rows
	if cols < categories {
		categories = cols
	}
	limits := thresholdsFor(categories)

	var text string
	switch {
	case v < limits.weak:
		text = RecommendWeak
	case v < limits.moderate:
		text = RecommendModerate
	case v < limits.strong:
		text = RecommendStrong
	default:
		text = RecommendVeryStrong
	}

	if n < SmallSampleN {
		text += SmallSampleCaveat
	}
	return text
}
