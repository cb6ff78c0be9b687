package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/rechenmodul/contingency"
	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/internal/distinct"
	"github.com/arloliu/rechenmodul/internal/options"
	"github.com/arloliu/rechenmodul/stats"
)

// Point is a stored point value with its ID.
type Point struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Value returns the point value without its ID.
func (p Point) Value() stats.Point {
	return stats.Point{X: p.X, Y: p.Y}
}

// Snapshot is the store content at one version.
type Snapshot struct {
	Version uint64
	Sample  stats.Sample
}

// Store is an ordered list of points with monotonically increasing IDs.
type Store struct {
	mu      sync.RWMutex
	limits  Limits
	points  []Point
	tracker *distinct.Tracker
	nextID  int
	version uint64
	subs    map[int]chan Snapshot
	nextSub int
	seed    stats.Sample
}

// New creates a store with DefaultLimits unless options override them.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		limits:  DefaultLimits(),
		points:  make([]Point, 0),
		tracker: distinct.NewTracker(),
		nextID:  1,
		subs:    make(map[int]chan Snapshot),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	if s.seed != nil {
		seed := s.seed
		s.seed = nil
		if err := s.Set(seed); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Limits returns the limits of the store.
func (s *Store) Limits() Limits {
	return s.limits
}

// Add appends value with a new ID.
//
// A value that is already stored may be added while the sample size limit
// allows it, even if the distinct value limit is reached.
func (s *Store) Add(value stats.Point) (Point, error) {
	if err := value.Validate(); err != nil {
		return Point{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.points)+1 > s.limits.MaxSampleSize {
		return Point{}, fmt.Errorf("%w: limit %d", errs.ErrSampleTooLarge, s.limits.MaxSampleSize)
	}
	if !s.tracker.Contains(value) && s.tracker.Count()+1 > s.limits.MaxDistinctValues {
		return Point{}, fmt.Errorf("%w: limit %d", errs.ErrTooManyDistinctValues, s.limits.MaxDistinctValues)
	}

	p := Point{ID: s.nextID, X: value.X, Y: value.Y}
	s.nextID++
	s.points = append(s.points, p)
	s.tracker.Track(value)
	s.commitLocked()

	return p, nil
}

// Update replaces the value of the point with the given ID.
func (s *Store) Update(id int, value stats.Point) error {
	if err := value.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", errs.ErrPointNotFound, id)
	}

	old := s.points[idx].Value()
	if old == value {
		return nil
	}

	if !s.tracker.Contains(value) {
		distinct := s.tracker.Count() + 1
		if s.tracker.Refs(old) == 1 {
			distinct--
		}
		if distinct > s.limits.MaxDistinctValues {
			return fmt.Errorf("%w: limit %d", errs.ErrTooManyDistinctValues, s.limits.MaxDistinctValues)
		}
	}
	s.tracker.Untrack(old)
	s.tracker.Track(value)

	s.points[idx].X, s.points[idx].Y = value.X, value.Y
	s.commitLocked()

	return nil
}

// Remove deletes the point with the given ID.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", errs.ErrPointNotFound, id)
	}

	s.tracker.Untrack(s.points[idx].Value())
	s.points = slices.Delete(s.points, idx, idx+1)
	s.commitLocked()

	return nil
}

// Set replaces the whole content with values, assigning new IDs. On error
// the store is unchanged.
func (s *Store) Set(values []stats.Point) error {
	if err := stats.Sample(values).Validate(); err != nil {
		return err
	}
	if len(values) > s.limits.MaxSampleSize {
		return fmt.Errorf("%w: %d points, limit %d", errs.ErrSampleTooLarge, len(values), s.limits.MaxSampleSize)
	}

	tracker := distinct.FromSample(values)
	if tracker.Count() > s.limits.MaxDistinctValues {
		return fmt.Errorf("%w: %d distinct values, limit %d",
			errs.ErrTooManyDistinctValues, tracker.Count(), s.limits.MaxDistinctValues)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{ID: s.nextID, X: v.X, Y: v.Y}
		s.nextID++
	}
	s.points = points
	s.tracker = tracker
	s.commitLocked()

	return nil
}

// SetTable replaces the content with the expansion of table.
func (s *Store) SetTable(table contingency.Table) error {
	if err := table.Validate(s.limits); err != nil {
		return err
	}

	return s.Set(table.Sample())
}

// Table returns the contingency table of the current content.
func (s *Store) Table() contingency.Table {
	return contingency.FromSample(s.Sample())
}

// Get returns the point with the given ID.
func (s *Store) Get(id int) (Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return Point{}, fmt.Errorf("%w: id %d", errs.ErrPointNotFound, id)
	}

	return s.points[idx], nil
}

// Points returns a copy of the stored points in insertion order.
func (s *Store) Points() []Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.points)
}

// Sample returns the stored values as a new sample.
func (s *Store) Sample() stats.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sampleLocked()
}

// Snapshot returns the current version and sample.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{Version: s.version, Sample: s.sampleLocked()}
}

// Version returns the number of mutations applied so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Len returns the number of stored points.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.points)
}

// DistinctCount returns the number of distinct stored values.
func (s *Store) DistinctCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tracker.Count()
}

// HasHashCollision reports whether two distinct values ever shared a point
// ID. Counting stays exact either way.
func (s *Store) HasHashCollision() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tracker.HasCollision()
}

// Subscribe returns a channel that receives the current snapshot right away
// and a new one after every mutation.
//
// The channel buffers a single snapshot: a subscriber that falls behind only
// sees the latest one. The channel is closed once ctx is done.
func (s *Store) Subscribe(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- Snapshot{Version: s.version, Sample: s.sampleLocked()}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func (s *Store) indexLocked(id int) int {
	return slices.IndexFunc(s.points, func(p Point) bool { return p.ID == id })
}

func (s *Store) sampleLocked() stats.Sample {
	sample := make(stats.Sample, len(s.points))
	for i, p := range s.points {
		sample[i] = p.Value()
	}

	return sample
}

// commitLocked bumps the version and publishes the new snapshot.
func (s *Store) commitLocked() {
	s.version++
	if len(s.subs) == 0 {
		return
	}

	snap := Snapshot{Version: s.version, Sample: s.sampleLocked()}
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// replace the stale snapshot; only commitLocked sends, under mu
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
