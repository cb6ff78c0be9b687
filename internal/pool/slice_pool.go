package pool

import "sync"

// float64SlicePool holds coordinate columns used while encoding and decoding samples.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of length size from the pool.
//
// The caller must call the returned cleanup function, typically with defer,
// once the slice is no longer referenced.
//
// Parameters:
//   - size: Required length; contents are not zeroed
//
// Returns:
//   - []float64: Slice of length size
//   - func(): Cleanup that returns the slice to the pool
//
// Example:
//
//	xs, cleanup := pool.GetFloat64Slice(len(sample))
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
