// Package hash derives stable identifiers for point values.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// PointID computes the xxHash64 of the IEEE-754 bits of (x, y).
//
// Negative zero is folded into positive zero so that values comparing equal
// with == share an ID.
func PointID(x, y float64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(x+0))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(y+0))

	return xxhash.Sum64(buf[:])
}
