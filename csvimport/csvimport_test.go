package csvimport

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/stats"
	"github.com/arloliu/rechenmodul/store"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"x;y",
		"1;2",
		"1,5;-2,25",
		"",
		"  3 ; 4 ",
		"5;",
		"6",
		"7;8;ignored",
		"nan;1",
		"9007199254740993;1",
		"1e2;0.5\r",
	}, "\n")

	points, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []stats.Point{
		{X: 1, Y: 2},
		{X: 1.5, Y: -2.25},
		{X: 3, Y: 4},
		{X: 7, Y: 8},
		{X: 100, Y: 0.5},
	}, points)
}

func TestParse_Empty(t *testing.T) {
	points, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.NotNil(t, points)
	require.Empty(t, points)
}

func TestParse_ReadError(t *testing.T) {
	_, err := Parse(iotest.ErrReader(errors.New("disk gone")))
	require.Error(t, err)
}

func TestImport(t *testing.T) {
	s, err := store.New()
	require.NoError(t, err)
	_, err = s.Add(stats.Point{X: 99, Y: 99})
	require.NoError(t, err)

	n, err := Import(strings.NewReader("1;1\n2;2\n"), s)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, stats.Sample{{X: 1, Y: 1}, {X: 2, Y: 2}}, s.Sample())
}

func TestImport_RespectsStoreLimits(t *testing.T) {
	s, err := store.New(store.WithLimits(store.Limits{MaxSampleSize: 100, MaxDistinctValues: 2}))
	require.NoError(t, err)

	_, err = Import(strings.NewReader("1;1\n2;2\n3;3\n"), s)
	require.ErrorIs(t, err, errs.ErrTooManyDistinctValues)
	require.Zero(t, s.Len())
}
