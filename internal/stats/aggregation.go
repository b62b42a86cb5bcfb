package stats

import (
	"math"
)

// NaNMean calculates the arithmetic mean over the values that are present,
// treating NaN as a missing observation. Returns NaN when no value is
// present, so an unknown mean stays unknown instead of collapsing to zero.
func NaNMean(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
