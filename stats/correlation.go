package stats

import "math"

// CorrelationCoefficient returns Pearson's r = cov / sqrt(varX·varY).
//
// ok is false when r is undefined: fewer than two points, or a zero variance
// in either dimension. The result is clamped to [-1, 1] to absorb rounding
// slack at the boundary.
//
// Parameters:
//   - sample: The observations; only its length is inspected
//   - variance: Unrounded result of Variance
//   - covariance: Unrounded result of Covariance
//
// Returns:
//   - r: Pearson's correlation coefficient, 0 when ok is false
//   - ok: Whether r is defined
func CorrelationCoefficient(sample Sample, variance Point, covariance float64) (r float64, ok bool) {
	if len(sample) < 2 {
		return 0, false
	}

	denom := math.Sqrt(variance.X * variance.Y)
	if variance.X <= 0 || variance.Y <= 0 || denom == 0 || math.IsNaN(denom) {
		return 0, false
	}

	r = covariance / denom
	switch {
	case r > 1:
		r = 1
	case r < -1:
		r = -1
	}

	return r, true
}
