package regression

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a fitted Line.
type Kind int

const (
	// KindVertical is the line x = c of a sample whose x values all coincide.
	KindVertical Kind = iota
	// KindSloped is the line y = m·x + c; m may be zero.
	KindSloped
)

var kindNames = map[Kind]string{
	KindVertical: "vertical",
	KindSloped:   "sloped",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// KindFromString returns the Kind for a case-insensitive name, or Kind(-1)
// for unknown names.
func KindFromString(name string) Kind {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k
		}
	}

	return Kind(-1)
}

// Goodness describes how well a line fits its sample.
//
// Fields:
//   - Quality: Coefficient of determination (0-1, higher is better)
//   - RMSE: Root mean square error (lower is better)
type Goodness struct {
	// Quality is the coefficient of determination R² in [0, 1].
	Quality float64 `json:"quality"`
	// RMSE is the root mean square of the residuals along the fitted axis.
	RMSE float64 `json:"rmse"`
}

// Line is a fitted regression line: either *VerticalLine or *SlopedLine.
type Line interface {
	// Kind returns the variant of the line.
	Kind() Kind
	// Metrics returns the goodness of fit.
	Metrics() Goodness
	// String returns the line equation with full precision.
	String() string

	sealed()
}

// VerticalLine is the line x = XAxisSection, fitted when every x coincides.
// Its Quality is 1: the line passes through every point.
type VerticalLine struct {
	XAxisSection float64 `json:"xAxisSection"`
	Goodness
}

var _ Line = (*VerticalLine)(nil)

// Kind returns KindVertical.
func (l *VerticalLine) Kind() Kind { return KindVertical }

// Metrics returns the goodness of fit.
func (l *VerticalLine) Metrics() Goodness { return l.Goodness }

// String returns "x = c".
func (l *VerticalLine) String() string {
	return fmt.Sprintf("x = %g", l.XAxisSection)
}

func (l *VerticalLine) sealed() {}

// SlopedLine is the line y = Incline·x + YAxisSection.
type SlopedLine struct {
	Incline      float64 `json:"incline"`
	YAxisSection float64 `json:"yAxisSection"`
	Goodness
}

var _ Line = (*SlopedLine)(nil)

// Kind returns KindSloped.
func (l *SlopedLine) Kind() Kind { return KindSloped }

// Metrics returns the goodness of fit.
func (l *SlopedLine) Metrics() Goodness { return l.Goodness }

// Estimate evaluates the line at x.
func (l *SlopedLine) Estimate(x float64) float64 {
	return l.Incline*x + l.YAxisSection
}

// IsHorizontal reports whether the line has zero incline.
func (l *SlopedLine) IsHorizontal() bool {
	return l.Incline == 0
}

// String returns "y = c" for a horizontal line and "y = m * x + c" otherwise.
func (l *SlopedLine) String() string {
	if l.IsHorizontal() {
		return fmt.Sprintf("y = %g", l.YAxisSection)
	}

	return fmt.Sprintf("y = %g * x + %g", l.Incline, l.YAxisSection)
}

func (l *SlopedLine) sealed() {}
