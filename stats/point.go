package stats

import (
	"fmt"
	"math"

	"github.com/arloliu/rechenmodul/errs"
)

// MaxSafeValue is the largest coordinate magnitude accepted by Validate (2^53-1).
// Every integer up to this bound is exactly representable as a float64.
const MaxSafeValue = 1<<53 - 1

// Point is an (x, y) observation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String returns the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Validate reports an error wrapping errs.ErrInvalidValue if a coordinate is
// NaN, infinite or outside ±MaxSafeValue.
func (p Point) Validate() error {
	if err := ValidateValue(p.X); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	if err := ValidateValue(p.Y); err != nil {
		return fmt.Errorf("y: %w", err)
	}

	return nil
}

// ValidateValue reports an error wrapping errs.ErrInvalidValue if v is not a
// finite number within ±MaxSafeValue.
func ValidateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v is not finite", errs.ErrInvalidValue, v)
	}
	if math.Abs(v) > MaxSafeValue {
		return fmt.Errorf("%w: %v exceeds ±%d", errs.ErrInvalidValue, v, int64(MaxSafeValue))
	}

	return nil
}

// Sample is an ordered sequence of observations.
type Sample []Point

// Len returns the number of points.
func (s Sample) Len() int {
	return len(s)
}

// Clone returns an independent copy of the sample. A nil sample clones to an
// empty, non-nil sample.
func (s Sample) Clone() Sample {
	out := make(Sample, len(s))
	copy(out, s)

	return out
}

// Validate checks every point with Point.Validate.
func (s Sample) Validate() error {
	for i, p := range s {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}

	return nil
}

// Bounds returns the component-wise minimum and maximum of the sample.
// ok is false for an empty sample.
func (s Sample) Bounds() (lo, hi Point, ok bool) {
	if len(s) == 0 {
		return Point{}, Point{}, false
	}

	lo, hi = s[0], s[0]
	for _, p := range s[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}

	return lo, hi, true
}

// ConstantX reports whether every point shares the same x value.
// An empty sample is not constant.
func (s Sample) ConstantX() bool {
	if len(s) == 0 {
		return false
	}
	for _, p := range s[1:] {
		if p.X != s[0].X {
			return false
		}
	}

	return true
}
