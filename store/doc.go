// Package store holds the editable point list of a session.
//
// A Store enforces the sample limits (maximum size, maximum number of
// distinct values), assigns stable IDs to points and notifies subscribers of
// every change with an immutable Snapshot. It is safe for concurrent use.
//
//	s, _ := store.New()
//	updates := s.Subscribe(ctx)
//	_, err := s.Add(stats.Point{X: 1, Y: 2})
//	snap := <-updates
package store
