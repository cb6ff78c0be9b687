package present

import (
	"github.com/arloliu/rechenmodul/calculation"
	"github.com/arloliu/rechenmodul/regression"
	"github.com/arloliu/rechenmodul/stats"
)

// ChartItem holds the data of a scatter chart with its regression line.
//
// Line has two end points, or none when no line was fitted. Coordinates are
// unrounded.
type ChartItem struct {
	Points   stats.Sample  `json:"points"`
	Line     []stats.Point `json:"line"`
	Vertical bool          `json:"vertical"`
}

// Chart builds the chart data for result.
//
// A sloped line is evaluated at the smallest and largest x of the sample. A
// vertical line is drawn at its x axis section from the smallest to the
// largest y.
func Chart(result *calculation.Result) ChartItem {
	item := ChartItem{Points: stats.Sample{}, Line: []stats.Point{}}
	if result == nil {
		return item
	}
	item.Points = result.Points.Clone()

	lo, hi, ok := result.Points.Bounds()
	if !ok {
		return item
	}

	switch l := result.RegressionGraph.(type) {
	case *regression.VerticalLine:
		item.Vertical = true
		item.Line = []stats.Point{{X: l.XAxisSection, Y: lo.Y}, {X: l.XAxisSection, Y: hi.Y}}
	case *regression.SlopedLine:
		item.Line = []stats.Point{{X: lo.X, Y: l.Estimate(lo.X)}, {X: hi.X, Y: l.Estimate(hi.X)}}
	}

	return item
}
