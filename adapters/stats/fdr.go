package stats

import "sort"

// BHCorrector adjusts p-value families with the Benjamini-Hochberg false
// discovery rate procedure.
type BHCorrector struct{}

// NewBHCorrector creates a Benjamini-Hochberg corrector
func NewBHCorrector() *BHCorrector {
	return &BHCorrector{}
}

// Adjust returns the BH-adjusted p-values in the input order. The family
// is sorted ascending, adjusted_i = p_(i) * m / rank_i, made monotone with
// a running minimum from the largest rank down, un-sorted back to the
// original positions, and clipped to [0, 1]. Empty input yields empty
// output.
func (c *BHCorrector) Adjust(rawPValues []float64) []float64 {
	m := len(rawPValues)
	if m == 0 {
		return []float64{}
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rawPValues[order[a]] < rawPValues[order[b]]
	})

	// adjusted value at sorted rank k (1-based): p_(k) * m / k
	sortedAdj := make([]float64, m)
	for k, idx := range order {
		sortedAdj[k] = rawPValues[idx] * float64(m) / float64(k+1)
	}

	// running minimum from the largest rank down enforces monotonicity
	for k := m - 2; k >= 0; k-- {
		if sortedAdj[k] > sortedAdj[k+1] {
			sortedAdj[k] = sortedAdj[k+1]
		}
	}

	adjusted := make([]float64, m)
	for k, idx := range order {
		v := sortedAdj[k]
		if v > 1 {
			v = 1
		}
		if v < 0 {
			v = 0
		}
		adjusted[idx] = v
	}
	return adjusted
}
