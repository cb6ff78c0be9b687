// Package calculation runs the complete statistics pipeline for a sample.
//
// Calculate is the single entry point used by the point store pipeline, the
// HTTP API and the presentation layer whenever a sample changes:
//
//	result, ok := calculation.Calculate(sample)
//	if !ok {
//	    // empty sample: nothing to show
//	}
//
// The pipeline is Mean → {Variance, Covariance} → {CorrelationCoefficient,
// RegressionGraph}. It is synchronous, keeps no state and caches nothing, so
// equal samples always produce deeply equal results.
package calculation

import (
	"github.com/arloliu/rechenmodul/regression"
	"github.com/arloliu/rechenmodul/stats"
)

// Result aggregates every statistic of one sample.
//
// Optional fields are nil when they were not computed: for a single-point
// sample only Mean is set. A nil field means "not computed", which is
// different from a computed zero. CorrelationCoefficient is also nil for
// larger samples when it is undefined (zero variance in x or y).
//
// A Result is never mutated after Calculate returns it.
type Result struct {
	Mean                   stats.Point     `json:"oneDimensionalMean"`
	Variance               *stats.Point    `json:"variance,omitempty"`
	Covariance             *float64        `json:"covariance,omitempty"`
	CorrelationCoefficient *float64        `json:"correlationCoefficient,omitempty"`
	RegressionGraph        regression.Line `json:"regressionGraph,omitempty"`
	Points                 stats.Sample    `json:"points"`
}

// Calculate computes all statistics of sample.
//
//   - n = 0: returns (nil, false)
//   - n = 1: returns a Result with only Mean and Points set
//   - n ≥ 2: returns a Result with every field computed
//
// The sample is copied into Result.Points; later changes to the caller's
// slice do not affect the result.
func Calculate(sample stats.Sample) (*Result, bool) {
	mean, err := stats.Mean(sample)
	if err != nil {
		return nil, false
	}

	result := &Result{
		Mean:   mean,
		Points: sample.Clone(),
	}
	if len(sample) < 2 {
		return result, true
	}

	variance := stats.Variance(sample, mean)
	covariance := stats.Covariance(sample, mean)
	result.Variance = &variance
	result.Covariance = &covariance

	if r, ok := stats.CorrelationCoefficient(sample, variance, covariance); ok {
		result.CorrelationCoefficient = &r
	}
	result.RegressionGraph = regression.Fit(sample, variance, covariance, mean)

	return result, true
}

// HasStatistics reports whether the dispersion statistics were computed,
// i.e. the sample had at least two points.
func (r *Result) HasStatistics() bool {
	return r != nil && r.Variance != nil
}

// Len returns the number of points the result was computed from.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Points)
}
