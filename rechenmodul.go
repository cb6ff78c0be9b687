// Package rechenmodul computes descriptive statistics of bivariate samples.
//
// Given a sample of (x, y) observations it derives the one-dimensional mean,
// the population variance of both coordinates, the population covariance,
// Pearson's correlation coefficient and the least-squares regression line
// together with its coefficient of determination (quality).
//
// # Core Features
//
//   - Pure, synchronous calculation without shared state
//   - Degenerate samples handled explicitly: a vertical line for constant x,
//     a horizontal line for constant y, no correlation when a variance is zero
//   - Full precision results; rounding only happens in package present
//   - Compact, checksummed sample tokens (package samplecodec)
//
// # Basic Usage
//
//	sample := rechenmodul.Sample{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 5}}
//	result, ok := rechenmodul.Calculate(sample)
//	if !ok {
//	    return // empty sample
//	}
//	fmt.Println(result.Mean, result.RegressionGraph)
//
// # Package Structure
//
// This package re-exports the most common entry points. The building blocks
// live in their own packages:
//
//   - stats: Point, Sample, Mean, Variance, Covariance, CorrelationCoefficient
//   - regression: Fit and the Line variants
//   - calculation: Calculate and Result
//   - present: rounding, result list and chart data
//   - store, contingency, csvimport: point management around a session
//   - samplecodec: binary snapshots and URL tokens
package rechenmodul

import (
	"github.com/arloliu/rechenmodul/calculation"
	"github.com/arloliu/rechenmodul/internal/hash"
	"github.com/arloliu/rechenmodul/present"
	"github.com/arloliu/rechenmodul/samplecodec"
	"github.com/arloliu/rechenmodul/stats"
)

type (
	// Point is an (x, y) observation.
	Point = stats.Point
	// Sample is an ordered sequence of observations.
	Sample = stats.Sample
	// Result aggregates every statistic of one sample.
	Result = calculation.Result
)

// Calculate computes all statistics of sample. See calculation.Calculate.
//
// It returns (nil, false) for an empty sample and a result with only the mean
// for a single point.
func Calculate(sample Sample) (*Result, bool) {
	return calculation.Calculate(sample)
}

// Summary returns the rounded, labelled result rows of sample, or an empty
// list for an empty sample.
func Summary(sample Sample) []present.ListItem {
	result, _ := calculation.Calculate(sample)
	return present.ResultList(result)
}

// EncodeToken serializes sample into a URL-safe token. See samplecodec.
func EncodeToken(sample Sample, opts ...samplecodec.Option) (string, error) {
	return samplecodec.EncodeToken(sample, opts...)
}

// DecodeToken reverses EncodeToken.
func DecodeToken(token string, opts ...samplecodec.Option) (Sample, error) {
	return samplecodec.DecodeToken(token, opts...)
}

// PointID returns a stable 64-bit identifier of a point value. Equal values
// always share an ID; distinct values collide only with negligible
// probability.
func PointID(p Point) uint64 {
	return hash.PointID(p.X, p.Y)
}
