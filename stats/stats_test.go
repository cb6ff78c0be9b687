package stats

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/rechenmodul/errs"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

const tolerance = 1e-9

// randomSample returns a reproducible sample of n integer-ish points in [-50, 50].
func randomSample(seed uint64, n int) Sample {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := make(Sample, n)
	for i := range s {
		s[i] = Point{
			X: float64(rng.IntN(101) - 50),
			Y: math.Round((rng.Float64()*100-50)*100) / 100,
		}
	}

	return s
}

func columns(s Sample) (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i], ys[i] = p.X, p.Y
	}

	return xs, ys
}

func TestMean(t *testing.T) {
	t.Run("empty sample", func(t *testing.T) {
		_, err := Mean(nil)
		require.ErrorIs(t, err, errs.ErrEmptySample)

		_, err = Mean(Sample{})
		require.ErrorIs(t, err, errs.ErrEmptySample)
	})

	t.Run("single point", func(t *testing.T) {
		m, err := Mean(Sample{{X: 4, Y: 4}})
		require.NoError(t, err)
		require.Equal(t, Point{X: 4, Y: 4}, m)
	})

	t.Run("constant column is exact", func(t *testing.T) {
		s := Sample{{X: 0.1, Y: 1}, {X: 0.1, Y: 2}, {X: 0.1, Y: 4}}
		m, err := Mean(s)
		require.NoError(t, err)
		require.Equal(t, 0.1, m.X)
		require.Zero(t, Variance(s, m).X)
		require.Zero(t, Covariance(s, m))
	})

	t.Run("keeps full precision", func(t *testing.T) {
		m, err := Mean(Sample{{X: 1, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}})
		require.NoError(t, err)
		require.InDelta(t, 4.0/3.0, m.X, tolerance)
		require.InDelta(t, 1.0/3.0, m.Y, tolerance)
		require.NotEqual(t, 1.33, m.X)
	})
}

func TestMean_MatchesArithmeticAverage(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		s := randomSample(seed, 1+int(seed%100))
		xs, ys := columns(s)

		m, err := Mean(s)
		require.NoError(t, err)
		require.InDelta(t, stat.Mean(xs, nil), m.X, tolerance)
		require.InDelta(t, stat.Mean(ys, nil), m.Y, tolerance)
	}
}

func TestVarianceAndCovariance(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		s := Sample{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 5}}
		m, err := Mean(s)
		require.NoError(t, err)

		v := Variance(s, m)
		require.InDelta(t, 2.0, v.X, tolerance)
		require.InDelta(t, 1.2, v.Y, tolerance)
		require.InDelta(t, 1.2, Covariance(s, m), tolerance)
	})

	t.Run("single point is zero", func(t *testing.T) {
		s := Sample{{X: 7, Y: -3}}
		m, _ := Mean(s)
		require.Equal(t, Point{}, Variance(s, m))
		require.Zero(t, Covariance(s, m))
	})

	t.Run("empty sample is zero", func(t *testing.T) {
		require.Equal(t, Point{}, Variance(nil, Point{}))
		require.Zero(t, Covariance(nil, Point{}))
	})

	t.Run("vertical sample", func(t *testing.T) {
		s := Sample{{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 7}}
		m, _ := Mean(s)
		v := Variance(s, m)
		require.Zero(t, v.X)
		require.InDelta(t, 62.0/9.0, v.Y, tolerance)
		require.Zero(t, Covariance(s, m))
	})
}

func TestVarianceAndCovariance_MatchOracle(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		n := 2 + int(seed%99)
		s := randomSample(seed, n)
		xs, ys := columns(s)
		m, err := Mean(s)
		require.NoError(t, err)

		v := Variance(s, m)
		require.GreaterOrEqual(t, v.X, 0.0)
		require.GreaterOrEqual(t, v.Y, 0.0)
		require.InDelta(t, stat.PopVariance(xs, nil), v.X, 1e-6)
		require.InDelta(t, stat.PopVariance(ys, nil), v.Y, 1e-6)

		// gonum's Covariance is the unbiased estimator; rescale to population.
		popCov := stat.Covariance(xs, ys, nil) * float64(n-1) / float64(n)
		require.InDelta(t, popCov, Covariance(s, m), 1e-6)
	}
}

func TestCorrelationCoefficient(t *testing.T) {
	corr := func(s Sample) (float64, bool) {
		m, err := Mean(s)
		require.NoError(t, err)

		return CorrelationCoefficient(s, Variance(s, m), Covariance(s, m))
	}

	t.Run("perfect positive", func(t *testing.T) {
		r, ok := corr(Sample{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}})
		require.True(t, ok)
		require.InDelta(t, 1.0, r, tolerance)
	})

	t.Run("perfect negative", func(t *testing.T) {
		r, ok := corr(Sample{{X: 1, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 1}})
		require.True(t, ok)
		require.InDelta(t, -1.0, r, tolerance)
	})

	t.Run("zero variance in x is undefined", func(t *testing.T) {
		r, ok := corr(Sample{{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 7}})
		require.False(t, ok)
		require.False(t, math.IsNaN(r))
	})

	t.Run("zero variance in y is undefined", func(t *testing.T) {
		_, ok := corr(Sample{{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}})
		require.False(t, ok)
	})

	t.Run("identical points are undefined", func(t *testing.T) {
		_, ok := corr(Sample{{X: 2, Y: 2}, {X: 2, Y: 2}})
		require.False(t, ok)
	})

	t.Run("single point is undefined", func(t *testing.T) {
		_, ok := CorrelationCoefficient(Sample{{X: 1, Y: 1}}, Point{X: 1, Y: 1}, 1)
		require.False(t, ok)
	})

	t.Run("clamps rounding slack", func(t *testing.T) {
		r, ok := CorrelationCoefficient(Sample{{}, {}}, Point{X: 1, Y: 1}, 1+1e-15)
		require.True(t, ok)
		require.Equal(t, 1.0, r)
	})
}

func TestCorrelationCoefficient_BoundedAndMatchesOracle(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		s := randomSample(seed, 2+int(seed%99))
		xs, ys := columns(s)
		m, _ := Mean(s)
		v := Variance(s, m)

		r, ok := CorrelationCoefficient(s, v, Covariance(s, m))
		if v.X == 0 || v.Y == 0 {
			require.False(t, ok)
			continue
		}
		require.True(t, ok)
		require.GreaterOrEqual(t, r, -1.0)
		require.LessOrEqual(t, r, 1.0)
		require.InDelta(t, stat.Correlation(xs, ys, nil), r, 1e-9)
	}
}

func TestPointValidate(t *testing.T) {
	require.NoError(t, Point{X: 1, Y: -1}.Validate())
	require.NoError(t, Point{X: MaxSafeValue, Y: -MaxSafeValue}.Validate())

	for _, p := range []Point{
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.Inf(1)},
		{X: math.Inf(-1), Y: 0},
		{X: 0, Y: 1 << 54},
	} {
		require.ErrorIs(t, p.Validate(), errs.ErrInvalidValue, "point %v", p)
	}

	err := Sample{{X: 1, Y: 1}, {X: math.NaN(), Y: 1}}.Validate()
	require.ErrorIs(t, err, errs.ErrInvalidValue)
	require.Contains(t, err.Error(), "point 1")
}

func TestSampleHelpers(t *testing.T) {
	s := Sample{{X: 3, Y: -1}, {X: -2, Y: 4}, {X: 1, Y: 0}}

	lo, hi, ok := s.Bounds()
	require.True(t, ok)
	require.Equal(t, Point{X: -2, Y: -1}, lo)
	require.Equal(t, Point{X: 3, Y: 4}, hi)

	_, _, ok = Sample(nil).Bounds()
	require.False(t, ok)

	require.False(t, s.ConstantX())
	require.True(t, Sample{{X: 2, Y: 1}, {X: 2, Y: 9}}.ConstantX())
	require.False(t, Sample(nil).ConstantX())

	c := s.Clone()
	c[0].X = 99
	require.Equal(t, 3.0, s[0].X)
	require.NotNil(t, Sample(nil).Clone())
	require.Equal(t, 3, s.Len())
	require.Equal(t, "(1.5, -2)", Point{X: 1.5, Y: -2}.String())
}

func BenchmarkStatistics(b *testing.B) {
	s := randomSample(42, 100)
	for b.Loop() {
		m, _ := Mean(s)
		v := Variance(s, m)
		c := Covariance(s, m)
		_, _ = CorrelationCoefficient(s, v, c)
	}
}
