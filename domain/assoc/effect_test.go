package assoc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCramersVBounds(t *testing.T) {
	// chi2 can never exceed N*(min-1), so V stays within [0, 1]
	cases := []struct {
		chi2       float64
		n          int
		rows, cols int
	}{
		{0, 100, 2, 2},
		{25, 100, 2, 2},
		{100, 100, 2, 2},
		{123.4, 200, 3, 5},
	}
	for _, tc := range cases {
		v := CramersV(tc.chi2, tc.n, tc.rows, tc.cols)
		assert.False(t, math.IsNaN(v), "V must be defined")
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestCramersVUndefined(t *testing.T) {
	assert.True(t, math.IsNaN(CramersV(10, 100, 1, 5)), "single row")
	assert.True(t, math.IsNaN(CramersV(10, 100, 5, 1)), "single column")
	assert.True(t, math.IsNaN(CramersV(10, 0, 2, 2)), "zero sample")
	assert.False(t, math.IsNaN(CramersV(10, 100, 2, 2)))
}

func TestCramersVKnownValue(t *testing.T) {
	// V = sqrt(25 / (100 * 1)) = 0.5
	v := CramersV(25, 100, 2, 2)
	assert.InDelta(t, 0.5, v, 1e-12)
}

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		v          float64
		categories int
		expected   Strength
	}{
		{0.05, 2, StrengthWeak},
		{0.10, 2, StrengthModerate},
		{0.29, 2, StrengthModerate},
		{0.30, 2, StrengthStrong},
		{0.50, 2, StrengthVeryStrong},
		{0.06, 3, StrengthWeak},
		{0.07, 4, StrengthModerate},
		{0.21, 3, StrengthStrong},
		{0.35, 4, StrengthVeryStrong},
		{0.05, 5, StrengthWeak},
		{0.06, 7, StrengthModerate},
		{0.17, 5, StrengthStrong},
		{0.29, 9, StrengthVeryStrong},
	}
	for _, tc := range cases {
		got := Classify(tc.v, tc.categories)
		assert.Equal(t, tc.expected, got, "V=%.2f categories=%d", tc.v, tc.categories)
	}
}

func TestClassifyUndefined(t *testing.T) {
	for _, categories := range []int{1, 2, 5} {
		assert.Equal(t, StrengthNotApplicable, Classify(math.NaN(), categories))
	}
}

func TestClassifyMonotoneInV(t *testing.T) {
	order := map[Strength]int{
		StrengthWeak:       0,
		StrengthModerate:   1,
		StrengthStrong:     2,
		StrengthVeryStrong: 3,
	}
	for _, categories := range []int{2, 3, 4, 5, 8} {
		prev := -1
		for v := 0.0; v <= 1.0; v += 0.01 {
			rank := order[Classify(v, categories)]
			if rank < prev {
				t.Fatalf("classification not monotone at V=%.2f categories=%d", v, categories)
			}
			prev = rank
		}
	}
}
