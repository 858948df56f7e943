package assoc

import (
	"math"
	"sort"
)

// Result is the consolidated association verdict for one question pair.
// Built once after the batch p-value correction and immutable thereafter.
type Result struct {
	First          string   `json:"first"`
	Second         string   `json:"second"`
	N              int      `json:"n"`
	ChiSquare      float64  `json:"chi_square"`
	DegreesFreedom int      `json:"degrees_freedom"`
	RawP           float64  `json:"raw_p"`
	AdjustedP      float64  `json:"adjusted_p"`
	CramersV       float64  `json:"cramers_v"`
	Strength       Strength `json:"strength"`
	Significant    bool     `json:"significant"`
	Recommendation string   `json:"recommendation"`
}

// HasEffectSize reports whether Cramér's V is defined for this result
func (r Result) HasEffectSize() bool {
	return !math.IsNaN(r.CramersV)
}

// Highlightable reports whether the result merits any workbook highlight
func (r Result) Highlightable() bool {
	return r.Significant && r.Strength != StrengthNotApplicable
}

// StrongHighlight reports whether the result gets the strong (vs light)
// workbook highlight: significant with at least moderate strength.
func (r Result) StrongHighlight() bool {
	return r.Significant && (r.Strength == StrengthModerate ||
		r.Strength == StrengthStrong || r.Strength == StrengthVeryStrong)
}

// Rank orders results for the summary artifacts: significant pairs first,
// then by effect size descending, then by adjusted p ascending. Undefined
// effect sizes sort last within their significance group. Returns a new
// slice; the input order (pair enumeration order) is left intact.
func Rank(results []Result) []Result {
	ranked := make([]Result, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Significant != b.Significant {
			return a.Significant
		}
		av, bv := a.CramersV, b.CramersV
		if math.IsNaN(av) {
			av = -1
		}
		if math.IsNaN(bv) {
			bv = -1
		}
		if av != bv {
			return av > bv
		}
		return a.AdjustedP < b.AdjustedP
	})
	return ranked
}

// Significant filters the results down to the significant ones, preserving
// order
func Significant(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Significant {
			out = append(out, r)
		}
	}
	return out
}
