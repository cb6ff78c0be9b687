// Package regression fits the least-squares regression line of a bivariate
// sample and reports how well it explains the data.
//
// # Line Variants
//
// A fitted line is one of two variants of the sealed Line interface:
//
//   - *VerticalLine: x = XAxisSection, used when every point shares the same
//     x value (varX = 0). No slope or intercept exists for such a sample.
//   - *SlopedLine: y = Incline·x + YAxisSection, used otherwise. A horizontal
//     line is simply a SlopedLine with Incline = 0.
//
// The vertical case is checked first and takes priority over the general
// formula. Use a type switch to tell the variants apart:
//
//	switch l := line.(type) {
//	case *regression.VerticalLine:
//	    fmt.Printf("x = %g\n", l.XAxisSection)
//	case *regression.SlopedLine:
//	    fmt.Printf("y = %g * x + %g\n", l.Incline, l.YAxisSection)
//	}
//
// # Quality
//
// Every line carries a Goodness with the coefficient of determination R²
// ("quality", clamped into [0, 1]) and the root mean square error of the
// residuals. For a sloped line R² = 1 - SS_res/SS_tot over y, which equals
// the squared correlation coefficient whenever that is defined.
//
// Two degenerate fits have SS_tot = 0 and pass through every point:
//
//   - a horizontal sample (all y equal) fitted by y = ȳ
//   - a vertical sample (all x equal) fitted by x = x̄
//
// Both are perfect fits and report quality 1 with RMSE 0.
//
// # Usage
//
// Fit consumes the statistics computed by package stats:
//
//	mean, _ := stats.Mean(sample)
//	variance := stats.Variance(sample, mean)
//	covariance := stats.Covariance(sample, mean)
//	line := regression.Fit(sample, variance, covariance, mean)
//	fmt.Println(line, line.Metrics().Quality)
//
// Fit is only meaningful for two or more points. Calling it with fewer is a
// programming error and panics; package calculation guards the call.
package regression
