package stats

import "github.com/arloliu/rechenmodul/errs"

// Mean returns the one-dimensional mean (x̄, ȳ) of the sample.
//
// It returns errs.ErrEmptySample for an empty sample; callers skip all
// further statistics in that case.
//
// A coordinate that is identical for every point is returned exactly rather
// than as the rounded quotient of its sum, so the deviations computed by
// Variance and Covariance are exactly zero for constant columns.
func Mean(sample Sample) (Point, error) {
	n := len(sample)
	if n == 0 {
		return Point{}, errs.ErrEmptySample
	}

	first := sample[0]
	constX, constY := true, true
	var sumX, sumY float64
	for _, p := range sample {
		sumX += p.X
		sumY += p.Y
		constX = constX && p.X == first.X
		constY = constY && p.Y == first.Y
	}

	mean := Point{X: sumX / float64(n), Y: sumY / float64(n)}
	if constX {
		mean.X = first.X
	}
	if constY {
		mean.Y = first.Y
	}

	return mean, nil
}
