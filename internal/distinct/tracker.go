// Package distinct counts distinct point values in a sample.
package distinct

import (
	"github.com/arloliu/rechenmodul/internal/hash"
	"github.com/arloliu/rechenmodul/stats"
)

type entry struct {
	value stats.Point
	refs  int
}

// Tracker keeps a reference count per distinct point value.
//
// Values are bucketed by their xxHash64 point ID. Two different values that
// share an ID are kept apart in the same bucket and the collision is recorded,
// so counting stays exact.
type Tracker struct {
	buckets      map[uint64][]entry
	order        []stats.Point // distinct values in first-seen order
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		buckets: make(map[uint64][]entry),
		order:   make([]stats.Point, 0),
	}
}

// FromSample creates a tracker populated with every point of sample.
func FromSample(sample stats.Sample) *Tracker {
	t := NewTracker()
	for _, p := range sample {
		t.Track(p)
	}

	return t
}

// Track adds one reference to p and reports whether p was not tracked before.
func (t *Tracker) Track(p stats.Point) bool {
	id := hash.PointID(p.X, p.Y)
	bucket := t.buckets[id]
	for i := range bucket {
		if bucket[i].value == p {
			bucket[i].refs++
			return false
		}
	}

	if len(bucket) > 0 {
		t.hasCollision = true
	}
	t.buckets[id] = append(bucket, entry{value: p, refs: 1})
	t.order = append(t.order, p)

	return true
}

// Untrack removes one reference to p and reports whether the last reference
// was dropped. Untracking an unknown value is a no-op.
func (t *Tracker) Untrack(p stats.Point) bool {
	id := hash.PointID(p.X, p.Y)
	bucket := t.buckets[id]
	for i := range bucket {
		if bucket[i].value != p {
			continue
		}
		bucket[i].refs--
		if bucket[i].refs > 0 {
			return false
		}

		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(t.buckets, id)
		} else {
			t.buckets[id] = bucket
		}
		t.removeFromOrder(p)

		return true
	}

	return false
}

func (t *Tracker) removeFromOrder(p stats.Point) {
	for i, v := range t.order {
		if v == p {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

// Refs returns the number of references to p, 0 if p is not tracked.
func (t *Tracker) Refs(p stats.Point) int {
	for _, e := range t.buckets[hash.PointID(p.X, p.Y)] {
		if e.value == p {
			return e.refs
		}
	}

	return 0
}

// Contains reports whether p is tracked.
func (t *Tracker) Contains(p stats.Point) bool {
	for _, e := range t.buckets[hash.PointID(p.X, p.Y)] {
		if e.value == p {
			return true
		}
	}

	return false
}

// Count returns the number of distinct tracked values.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Values returns the distinct values in first-seen order.
// The returned slice is owned by the tracker and must not be modified.
func (t *Tracker) Values() []stats.Point {
	return t.order
}

// HasCollision reports whether two distinct values ever shared a point ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Reset clears all tracked values and collision state.
func (t *Tracker) Reset() {
	clear(t.buckets)
	t.order = t.order[:0]
	t.hasCollision = false
}
