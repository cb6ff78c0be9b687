package stats

// Variance returns the population variances (varX, varY) of the sample
// around mean.
//
// mean must be the unrounded result of Mean. A single-point sample has
// variance (0, 0); an empty sample returns (0, 0) as well.
func Variance(sample Sample, mean Point) Point {
	n := len(sample)
	if n == 0 {
		return Point{}
	}

	var ssX, ssY float64
	for _, p := range sample {
		dx := p.X - mean.X
		dy := p.Y - mean.Y
		ssX += dx * dx
		ssY += dy * dy
	}

	return Point{X: ssX / float64(n), Y: ssY / float64(n)}
}

// Covariance returns the population covariance of x and y around mean.
//
// mean must be the unrounded result of Mean. Samples with fewer than two
// points have covariance 0.
func Covariance(sample Sample, mean Point) float64 {
	n := len(sample)
	if n == 0 {
		return 0
	}

	var sum float64
	for _, p := range sample {
		sum += (p.X - mean.X) * (p.Y - mean.Y)
	}

	return sum / float64(n)
}
