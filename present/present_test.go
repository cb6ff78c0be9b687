package present

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rechenmodul/calculation"
	"github.com/arloliu/rechenmodul/regression"
	"github.com/arloliu/rechenmodul/stats"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{0.125, 2, 0.13},
		{-0.125, 2, -0.13},
		{0.5, 0, 1},
		{-0.5, 0, -1},
		{2.2000000000000002, 2, 2.2},
		{1234.5678, 1, 1234.6},
		{3, 2, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in, tt.places), "Round(%v, %d)", tt.in, tt.places)
	}

	require.True(t, math.IsNaN(Round(math.NaN(), 2)))
	require.Equal(t, math.Inf(1), Round(math.Inf(1), 2))
	require.Equal(t, float64(stats.MaxSafeValue), Round(stats.MaxSafeValue, 2))
}

func TestFormat(t *testing.T) {
	require.Equal(t, "0.6", Format(0.6000000000000001))
	require.Equal(t, "2.2", Format(2.2000000000000002))
	require.Equal(t, "-0.13", Format(-0.125))
	require.Equal(t, "0", Format(-0.001))
	require.Equal(t, "5", Format(5))
}

func TestQualityBand(t *testing.T) {
	tests := []struct {
		q     float64
		band  Band
		label string
	}{
		{0, BandInsufficient, "ungenügend"},
		{0.49, BandInsufficient, "ungenügend"},
		{0.5, BandModerate, "mäßig"},
		{0.7, BandGood, "gut"},
		{0.9, BandExcellent, "sehr gut"},
		{1, BandExcellent, "sehr gut"},
	}
	for _, tt := range tests {
		band := QualityBand(tt.q)
		assert.Equal(t, tt.band, band, "q=%v", tt.q)
		assert.Equal(t, tt.label, band.Label())
	}

	require.Equal(t, "excellent", BandExcellent.String())
	require.Equal(t, "unknown", Band(9).String())
	require.Empty(t, Band(-1).Label())
}

func TestResultList(t *testing.T) {
	t.Run("nil result", func(t *testing.T) {
		require.Empty(t, ResultList(nil))
		require.NotNil(t, ResultList(nil))
	})

	t.Run("single point", func(t *testing.T) {
		result, _ := calculation.Calculate(stats.Sample{{X: 4, Y: 4}})
		require.Equal(t, []ListItem{
			{Name: LabelMeanX, Value: "4"},
			{Name: LabelMeanY, Value: "4"},
		}, ResultList(result))
	})

	t.Run("full sample", func(t *testing.T) {
		result, _ := calculation.Calculate(stats.Sample{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 5}})
		require.Equal(t, []ListItem{
			{Name: LabelMeanX, Value: "3"},
			{Name: LabelMeanY, Value: "4"},
			{Name: LabelVarianceX, Value: "2"},
			{Name: LabelVarianceY, Value: "1.2"},
			{Name: LabelCovariance, Value: "1.2"},
			{Name: LabelCorrelation, Value: "0.77"},
			{Name: LabelQuality, Value: "0.6 (mäßig)"},
			{Name: LabelEquation, Value: "y = 0.6 * x + 2.2"},
		}, ResultList(result))
	})

	t.Run("vertical sample omits correlation", func(t *testing.T) {
		result, _ := calculation.Calculate(stats.Sample{{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 7}})
		items := ResultList(result)
		for _, item := range items {
			require.NotEqual(t, LabelCorrelation, item.Name)
		}
		require.Equal(t, ListItem{Name: LabelEquation, Value: "x = 5"}, items[len(items)-1])
		require.Equal(t, ListItem{Name: LabelQuality, Value: "1 (sehr gut)"}, items[len(items)-2])
	})

	t.Run("quality label follows the rounded value", func(t *testing.T) {
		tests := []struct {
			quality float64
			want    string
		}{
			{0.896, "0.9 (sehr gut)"},
			{0.894, "0.89 (gut)"},
			{0.4961, "0.5 (mäßig)"},
			{0.6949, "0.69 (mäßig)"},
		}

		for _, tt := range tests {
			result := &calculation.Result{
				RegressionGraph: &regression.SlopedLine{
					Incline:  1,
					Goodness: regression.Goodness{Quality: tt.quality},
				},
			}
			items := ResultList(result)
			require.Equal(t, ListItem{Name: LabelQuality, Value: tt.want}, items[len(items)-2], "quality %v", tt.quality)
		}
	})
}

func TestEquation(t *testing.T) {
	require.Equal(t, "x = 5", Equation(&regression.VerticalLine{XAxisSection: 5}))
	require.Equal(t, "y = 3", Equation(&regression.SlopedLine{YAxisSection: 3}))
	require.Equal(t, "y = -1.5 * x + 0.33", Equation(&regression.SlopedLine{Incline: -1.5, YAxisSection: 1.0 / 3}))
	require.Equal(t, "-", Equation(nil))
}

func TestChart(t *testing.T) {
	t.Run("nil result", func(t *testing.T) {
		item := Chart(nil)
		require.Empty(t, item.Points)
		require.Empty(t, item.Line)
		require.False(t, item.Vertical)
	})

	t.Run("single point has no line", func(t *testing.T) {
		result, _ := calculation.Calculate(stats.Sample{{X: 4, Y: 4}})
		item := Chart(result)
		require.Len(t, item.Points, 1)
		require.Empty(t, item.Line)
	})

	t.Run("sloped", func(t *testing.T) {
		result, _ := calculation.Calculate(stats.Sample{{X: 3, Y: 3}, {X: 1, Y: 1}, {X: 2, Y: 2}})
		item := Chart(result)
		require.False(t, item.Vertical)
		require.Len(t, item.Line, 2)
		require.InDelta(t, 1.0, item.Line[0].X, 1e-12)
		require.InDelta(t, 1.0, item.Line[0].Y, 1e-12)
		require.InDelta(t, 3.0, item.Line[1].X, 1e-12)
		require.InDelta(t, 3.0, item.Line[1].Y, 1e-12)
	})

	t.Run("vertical spans y range", func(t *testing.T) {
		result, _ := calculation.Calculate(stats.Sample{{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 7}})
		item := Chart(result)
		require.True(t, item.Vertical)
		require.Equal(t, []stats.Point{{X: 5, Y: 1}, {X: 5, Y: 7}}, item.Line)
	})

	t.Run("points are copied", func(t *testing.T) {
		result, _ := calculation.Calculate(stats.Sample{{X: 1, Y: 2}, {X: 2, Y: 3}})
		item := Chart(result)
		item.Points[0].X = 99
		require.Equal(t, 1.0, result.Points[0].X)
	})
}
