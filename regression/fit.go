package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/stats"
)

// Fit returns the least-squares regression line of sample.
//
// variance, covariance and mean must be the unrounded results of the
// corresponding stats functions for the same sample. When variance.X is zero
// (or every x coincides) the result is a *VerticalLine at mean.X; otherwise a
// *SlopedLine with
//
//	Incline      = covariance / variance.X
//	YAxisSection = mean.Y - Incline·mean.X
//
// Parameters:
//   - sample: At least two points
//   - variance: Population variance of x and y
//   - covariance: Population covariance of x and y
//   - mean: Arithmetic mean of x and y
//
// Returns:
//   - Line: *VerticalLine or *SlopedLine, with Quality (R²) and RMSE filled in
//
// Fit panics with an error wrapping errs.ErrInsufficientPoints if the sample
// has fewer than two points.
func Fit(sample stats.Sample, variance stats.Point, covariance float64, mean stats.Point) Line {
	if len(sample) < 2 {
		panic(fmt.Errorf("regression: fit on %d points: %w", len(sample), errs.ErrInsufficientPoints))
	}

	if variance.X == 0 || sample.ConstantX() {
		return fitVertical(sample, mean)
	}

	return fitSloped(sample, variance, covariance, mean)
}

// fitVertical fits x = mean.X. The residuals are horizontal distances, which
// are all zero for a sample with a single x value.
func fitVertical(sample stats.Sample, mean stats.Point) *VerticalLine {
	observed := make([]float64, len(sample))
	predicted := make([]float64, len(sample))
	for i, p := range sample {
		observed[i] = p.X
		predicted[i] = mean.X
	}

	return &VerticalLine{
		XAxisSection: mean.X,
		Goodness: Goodness{
			Quality: calculateRSquared(observed, predicted, mean.X),
			RMSE:    calculateRMSE(observed, predicted),
		},
	}
}

func fitSloped(sample stats.Sample, variance stats.Point, covariance float64, mean stats.Point) *SlopedLine {
	line := &SlopedLine{Incline: covariance / variance.X}
	line.YAxisSection = mean.Y - line.Incline*mean.X

	observed := make([]float64, len(sample))
	predicted := make([]float64, len(sample))
	for i, p := range sample {
		observed[i] = p.Y
		predicted[i] = line.Estimate(p.X)
	}
	line.Goodness = Goodness{
		Quality: calculateRSquared(observed, predicted, mean.Y),
		RMSE:    calculateRMSE(observed, predicted),
	}

	return line
}

// calculateRSquared calculates the coefficient of determination.
//
// Formula: R² = 1 - SS_res / SS_tot, clamped into [0, 1].
//   - SS_res: Σ(observed - predicted)²
//   - SS_tot: Σ(observed - mean)²
//
// When SS_tot is zero the observed values are constant. The fitted value then
// equals that constant, so the fit is perfect and R² is 1.
func calculateRSquared(observed, predicted []float64, mean float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var ssTot, ssRes float64
	for i := range observed {
		d := observed[i] - mean
		r := observed[i] - predicted[i]
		ssTot += d * d
		ssRes += r * r
	}

	if ssTot == 0 {
		return 1
	}

	return clamp01(1.0 - ssRes/ssTot)
}

// calculateRMSE calculates the root mean square error √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var sumSq float64
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
