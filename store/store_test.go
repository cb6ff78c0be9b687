package store

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rechenmodul/contingency"
	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/stats"
)

func newStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := New(opts...)
	require.NoError(t, err)

	return s
}

func TestNew(t *testing.T) {
	s := newStore(t)
	require.Equal(t, DefaultLimits(), s.Limits())
	require.Zero(t, s.Len())
	require.Zero(t, s.Version())
	require.Empty(t, s.Sample())

	_, err := New(WithLimits(Limits{MaxSampleSize: 0, MaxDistinctValues: 1}))
	require.Error(t, err)

	seeded := newStore(t, WithSample(stats.Sample{{X: 1, Y: 2}, {X: 1, Y: 2}}))
	require.Equal(t, 2, seeded.Len())
	require.Equal(t, 1, seeded.DistinctCount())

	_, err = New(WithSample(stats.Sample{{X: 1, Y: 1}, {X: 2, Y: 2}}), WithLimits(Limits{MaxSampleSize: 1, MaxDistinctValues: 1}))
	require.ErrorIs(t, err, errs.ErrSampleTooLarge)
}

func TestStore_AddUpdateRemove(t *testing.T) {
	s := newStore(t)

	p1, err := s.Add(stats.Point{X: 1, Y: 2})
	require.NoError(t, err)
	p2, err := s.Add(stats.Point{X: 3, Y: 4})
	require.NoError(t, err)
	require.Less(t, p1.ID, p2.ID)

	require.NoError(t, s.Update(p1.ID, stats.Point{X: 5, Y: 6}))
	got, err := s.Get(p1.ID)
	require.NoError(t, err)
	require.Equal(t, stats.Point{X: 5, Y: 6}, got.Value())

	require.NoError(t, s.Remove(p2.ID))
	require.Equal(t, []Point{{ID: p1.ID, X: 5, Y: 6}}, s.Points())
	require.Equal(t, uint64(4), s.Version())

	// IDs are never reused.
	p3, err := s.Add(stats.Point{X: 7, Y: 8})
	require.NoError(t, err)
	require.Greater(t, p3.ID, p2.ID)

	require.ErrorIs(t, s.Remove(p2.ID), errs.ErrPointNotFound)
	require.ErrorIs(t, s.Update(p2.ID, stats.Point{}), errs.ErrPointNotFound)
	_, err = s.Get(p2.ID)
	require.ErrorIs(t, err, errs.ErrPointNotFound)
}

func TestStore_RejectsInvalidValues(t *testing.T) {
	s := newStore(t)

	_, err := s.Add(stats.Point{X: math.NaN(), Y: 1})
	require.ErrorIs(t, err, errs.ErrInvalidValue)
	_, err = s.Add(stats.Point{X: 1, Y: stats.MaxSafeValue + 2})
	require.ErrorIs(t, err, errs.ErrInvalidValue)
	require.ErrorIs(t, s.Set([]stats.Point{{X: math.Inf(-1)}}), errs.ErrInvalidValue)
	require.Zero(t, s.Version())
}

func TestStore_SampleSizeLimit(t *testing.T) {
	s := newStore(t, WithLimits(Limits{MaxSampleSize: 3, MaxDistinctValues: 3}))

	for range 3 {
		_, err := s.Add(stats.Point{X: 1, Y: 1})
		require.NoError(t, err)
	}
	_, err := s.Add(stats.Point{X: 1, Y: 1})
	require.ErrorIs(t, err, errs.ErrSampleTooLarge)
	require.Equal(t, 3, s.Len())
}

func TestStore_DistinctValueLimit(t *testing.T) {
	s := newStore(t, WithLimits(Limits{MaxSampleSize: 10, MaxDistinctValues: 2}))

	a, err := s.Add(stats.Point{X: 1, Y: 1})
	require.NoError(t, err)
	_, err = s.Add(stats.Point{X: 2, Y: 2})
	require.NoError(t, err)

	_, err = s.Add(stats.Point{X: 3, Y: 3})
	require.ErrorIs(t, err, errs.ErrTooManyDistinctValues)

	// Repeating a stored value is still allowed.
	dup, err := s.Add(stats.Point{X: 1, Y: 1})
	require.NoError(t, err)
	require.Equal(t, 2, s.DistinctCount())

	// Updating into a new value is rejected while the old one stays referenced.
	v := s.Version()
	require.ErrorIs(t, s.Update(a.ID, stats.Point{X: 3, Y: 3}), errs.ErrTooManyDistinctValues)
	require.Equal(t, 2, s.DistinctCount())
	require.Equal(t, v, s.Version())
	require.Equal(t, []stats.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, s.tracker.Values(), "first-seen order is kept")
	require.Equal(t, 2, s.tracker.Refs(stats.Point{X: 1, Y: 1}))
	got, _ := s.Get(a.ID)
	require.Equal(t, stats.Point{X: 1, Y: 1}, got.Value())

	// Once the last reference goes away the slot is free.
	require.NoError(t, s.Remove(dup.ID))
	require.NoError(t, s.Update(a.ID, stats.Point{X: 3, Y: 3}))
	require.Equal(t, 2, s.DistinctCount())

	err = s.Set([]stats.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}})
	require.ErrorIs(t, err, errs.ErrTooManyDistinctValues)
}

func TestStore_UpdateSameValueIsNoop(t *testing.T) {
	s := newStore(t)
	p, _ := s.Add(stats.Point{X: 1, Y: 1})
	v := s.Version()

	require.NoError(t, s.Update(p.ID, stats.Point{X: 1, Y: 1}))
	require.Equal(t, v, s.Version())
}

func TestStore_SetReassignsIDs(t *testing.T) {
	s := newStore(t)
	old, _ := s.Add(stats.Point{X: 9, Y: 9})

	require.NoError(t, s.Set([]stats.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}))
	points := s.Points()
	require.Len(t, points, 2)
	require.Greater(t, points[0].ID, old.ID)
	require.Greater(t, points[1].ID, points[0].ID)
	require.Equal(t, stats.Sample{{X: 1, Y: 1}, {X: 2, Y: 2}}, s.Sample())
	require.Equal(t, 2, s.DistinctCount())
}

func TestStore_Table(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Set([]stats.Point{{X: 1, Y: 2}, {X: 1, Y: 2}, {X: 3, Y: 2}}))

	table := s.Table()
	require.Equal(t, []float64{1, 3}, table.X)
	require.Equal(t, []float64{2}, table.Y)
	require.Equal(t, [][]int{{2}, {1}}, table.H)

	require.NoError(t, s.SetTable(contingency.Table{
		X: []float64{0},
		Y: []float64{5, 6},
		H: [][]int{{1, 2}},
	}))
	require.Equal(t, stats.Sample{{X: 0, Y: 5}, {X: 0, Y: 6}, {X: 0, Y: 6}}, s.Sample())

	err := s.SetTable(contingency.Table{X: []float64{0}, Y: []float64{1}, H: [][]int{{101}}})
	require.ErrorIs(t, err, errs.ErrSampleTooLarge)

	err = s.SetTable(contingency.Table{X: []float64{0}, Y: []float64{1, 2}, H: [][]int{{math.MaxInt, 2}}})
	require.ErrorIs(t, err, errs.ErrSampleTooLarge)
	require.Equal(t, 3, s.Len())
}

func TestStore_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newStore(t)

	updates := s.Subscribe(ctx)
	initial := <-updates
	require.Zero(t, initial.Version)
	require.Empty(t, initial.Sample)

	_, err := s.Add(stats.Point{X: 1, Y: 1})
	require.NoError(t, err)
	snap := <-updates
	require.Equal(t, uint64(1), snap.Version)
	require.Equal(t, stats.Sample{{X: 1, Y: 1}}, snap.Sample)

	// A slow subscriber only sees the latest snapshot.
	for i := range 5 {
		_, err := s.Add(stats.Point{X: float64(i), Y: 0})
		require.NoError(t, err)
	}
	latest := <-updates
	require.Equal(t, uint64(6), latest.Version)
	require.Len(t, latest.Sample, 6)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, open := <-updates:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	// Mutations after unsubscribing must not block or panic.
	_, err = s.Add(stats.Point{X: 2, Y: 2})
	require.NoError(t, err)
}

func TestStore_ConcurrentMutations(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := newStore(t)
	updates := s.Subscribe(ctx)

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 10 {
				_, _ = s.Add(stats.Point{X: float64(w), Y: float64(i % 3)})
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 40, s.Len())
	require.Equal(t, 12, s.DistinctCount())

	var last Snapshot
	require.Eventually(t, func() bool {
		select {
		case last = <-updates:
		default:
		}
		return last.Version == s.Version()
	}, time.Second, time.Millisecond)
	require.Len(t, last.Sample, 40)
}
