// Package stats implements the descriptive statistics of a bivariate sample.
//
// All functions are pure and synchronous: they read the sample, never modify
// it, and keep no state between calls. Results carry full float64 precision;
// rounding for display is the job of package present.
//
// # Dependency Chain
//
// The statistics build on each other:
//
//	Sample ─▶ Mean ─┬─▶ Variance ───┬─▶ CorrelationCoefficient
//	                └─▶ Covariance ─┘
//
// Variance and Covariance take the unrounded mean as input so that rounding
// errors do not compound.
//
// # Population Statistics
//
// Variance and covariance divide by n, not n-1: the sample is treated as the
// entire population of interest.
//
//	mean := stats.Mean(sample)           // (x̄, ȳ)
//	v := stats.Variance(sample, mean)    // (1/n)·Σ(xᵢ-x̄)², (1/n)·Σ(yᵢ-ȳ)²
//	c := stats.Covariance(sample, mean)  // (1/n)·Σ(xᵢ-x̄)(yᵢ-ȳ)
//
// # Undefined Values
//
// Mean of an empty sample returns errs.ErrEmptySample. The correlation
// coefficient is undefined when either variance is zero; CorrelationCoefficient
// then reports ok == false instead of returning NaN.
package stats
