package present

import (
	"fmt"

	"github.com/arloliu/rechenmodul/calculation"
	"github.com/arloliu/rechenmodul/regression"
)

// Row labels of the result list.
const (
	LabelMeanX       = "Eindimensionaler Mittelwert (x)"
	LabelMeanY       = "Eindimensionaler Mittelwert (y)"
	LabelVarianceX   = "Varianz (x)"
	LabelVarianceY   = "Varianz (y)"
	LabelCovariance  = "Kovarianz"
	LabelCorrelation = "Korrelationskoeffizient"
	LabelQuality     = "Qualität der Regressionsgerade (Bestimmtheitsmaß)"
	LabelEquation    = "Gleichung der Regressionsgerade"
)

// ListItem is one labelled row of the result list.
type ListItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResultList renders result as labelled rows. Statistics that were not
// computed are omitted; a nil result yields an empty list.
func ResultList(result *calculation.Result) []ListItem {
	if result == nil {
		return []ListItem{}
	}

	items := []ListItem{
		{Name: LabelMeanX, Value: Format(result.Mean.X)},
		{Name: LabelMeanY, Value: Format(result.Mean.Y)},
	}
	if result.Variance != nil {
		items = append(items,
			ListItem{Name: LabelVarianceX, Value: Format(result.Variance.X)},
			ListItem{Name: LabelVarianceY, Value: Format(result.Variance.Y)},
		)
	}
	if result.Covariance != nil {
		items = append(items, ListItem{Name: LabelCovariance, Value: Format(*result.Covariance)})
	}
	if result.CorrelationCoefficient != nil {
		items = append(items, ListItem{Name: LabelCorrelation, Value: Format(*result.CorrelationCoefficient)})
	}
	if result.RegressionGraph != nil {
		// band on the displayed value so number and label agree
		q := Round(result.RegressionGraph.Metrics().Quality, DefaultPlaces)
		items = append(items,
			ListItem{Name: LabelQuality, Value: fmt.Sprintf("%s (%s)", Format(q), QualityBand(q).Label())},
			ListItem{Name: LabelEquation, Value: Equation(result.RegressionGraph)},
		)
	}

	return items
}

// Equation formats line with display precision: "x = c" for a vertical line,
// "y = c" for a horizontal one and "y = m * x + c" otherwise. A nil line
// yields "-".
func Equation(line regression.Line) string {
	switch l := line.(type) {
	case *regression.VerticalLine:
		return "x = " + Format(l.XAxisSection)
	case *regression.SlopedLine:
		if l.IsHorizontal() {
			return "y = " + Format(l.YAxisSection)
		}

		return fmt.Sprintf("y = %s * x + %s", Format(l.Incline), Format(l.YAxisSection))
	default:
		return "-"
	}
}
