package stats

import (
	"math"
	"sort"
	"testing"
)

func TestAdjustEmptyInput(t *testing.T) {
	c := NewBHCorrector()
	if got := c.Adjust(nil); len(got) != 0 {
		t.Errorf("empty input must yield empty output, got %v", got)
	}
}

func TestAdjustSingleValue(t *testing.T) {
	c := NewBHCorrector()
	got := c.Adjust([]float64{0.04})
	if len(got) != 1 || got[0] != 0.04 {
		t.Errorf("single p-value is its own adjustment, got %v", got)
	}
}

func TestAdjustedNeverBelowRaw(t *testing.T) {
	c := NewBHCorrector()
	raw := []float64{0.001, 0.04, 0.03, 0.8, 0.2, 0.01, 0.55}

	adjusted := c.Adjust(raw)

	if len(adjusted) != len(raw) {
		t.Fatalf("length mismatch: %d vs %d", len(adjusted), len(raw))
	}
	for i := range raw {
		if adjusted[i] < raw[i]-1e-12 {
			t.Errorf("adjusted[%d]=%f below raw %f", i, adjusted[i], raw[i])
		}
		if adjusted[i] > 1 {
			t.Errorf("adjusted[%d]=%f above 1", i, adjusted[i])
		}
	}
}

func TestAdjustMonotoneOverSortedRaw(t *testing.T) {
	c := NewBHCorrector()
	raw := []float64{0.002, 0.009, 0.011, 0.04, 0.22, 0.6, 0.9}
	sort.Float64s(raw)

	adjusted := c.Adjust(raw)

	for i := 1; i < len(adjusted); i++ {
		if adjusted[i] < adjusted[i-1] {
			t.Errorf("adjusted values must be non-decreasing over sorted raw: %v", adjusted)
		}
	}
}

func TestAdjustKnownValues(t *testing.T) {
	// m=4: sorted q = {.01*4/1, .02*4/2, .03*4/3, .04*4/4} = {.04, .04, .04, .04}
	c := NewBHCorrector()
	adjusted := c.Adjust([]float64{0.01, 0.02, 0.03, 0.04})
	for i, q := range adjusted {
		if math.Abs(q-0.04) > 1e-12 {
			t.Errorf("adjusted[%d]: expected 0.04, got %f", i, q)
		}
	}
}

func TestAdjustPreservesOrder(t *testing.T) {
	c := NewBHCorrector()
	raw := []float64{0.9, 0.001, 0.5}

	adjusted := c.Adjust(raw)

	// the smallest raw value must map back to index 1
	if adjusted[1] >= adjusted[0] || adjusted[1] >= adjusted[2] {
		t.Errorf("adjusted values must map back by position: %v", adjusted)
	}
}
