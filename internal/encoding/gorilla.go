package encoding

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrCorruptGorilla is returned when a Gorilla stream ends early or carries
// trailing bytes.
var ErrCorruptGorilla = errors.New("corrupt gorilla stream")

// GorillaEncoder compresses a sequence of float64 values.
type GorillaEncoder struct {
	w            bitWriter
	prev         uint64
	prevLeading  int
	prevTrailing int
	count        int
}

// NewGorillaEncoder creates an encoder appending to buf.
func NewGorillaEncoder(buf []byte) *GorillaEncoder {
	return &GorillaEncoder{w: bitWriter{buf: buf}, prevLeading: -1}
}

// WriteSlice encodes values in order.
func (e *GorillaEncoder) WriteSlice(values []float64) {
	for _, v := range values {
		e.Write(v)
	}
}

// Write encodes one value.
func (e *GorillaEncoder) Write(v float64) {
	valBits := math.Float64bits(v)
	e.count++

	if e.count == 1 {
		e.prev = valBits
		e.w.writeBits(valBits, 64)

		return
	}

	xor := valBits ^ e.prev
	e.prev = valBits
	if xor == 0 {
		e.w.writeBit(false)
		return
	}
	e.w.writeBit(true)

	leading := min(bits.LeadingZeros64(xor), 31)
	trailing := bits.TrailingZeros64(xor)

	if e.prevLeading >= 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		e.w.writeBit(false)
		e.w.writeBits(xor>>e.prevTrailing, 64-e.prevLeading-e.prevTrailing)

		return
	}

	size := 64 - leading - trailing
	e.w.writeBit(true)
	e.w.writeBits(uint64(leading), 5)
	e.w.writeBits(uint64(size-1), 6)
	e.w.writeBits(xor>>trailing, size)
	e.prevLeading, e.prevTrailing = leading, trailing
}

// Len returns the number of encoded values.
func (e *GorillaEncoder) Len() int {
	return e.count
}

// Bytes returns the encoded stream including the buffer passed to
// NewGorillaEncoder.
func (e *GorillaEncoder) Bytes() []byte {
	return e.w.buf
}

// DecodeGorilla decodes exactly len(dst) values from data into dst.
func DecodeGorilla(data []byte, dst []float64) error {
	if len(dst) == 0 {
		if len(data) != 0 {
			return fmt.Errorf("%w: %d bytes for zero values", ErrCorruptGorilla, len(data))
		}

		return nil
	}

	r := bitReader{data: data}
	first, ok := r.readBits(64)
	if !ok {
		return fmt.Errorf("%w: missing first value", ErrCorruptGorilla)
	}
	dst[0] = math.Float64frombits(first)

	prev := first
	leading, trailing := -1, 0
	for i := 1; i < len(dst); i++ {
		changed, ok := r.readBit()
		if !ok {
			return fmt.Errorf("%w: value %d truncated", ErrCorruptGorilla, i)
		}
		if !changed {
			dst[i] = math.Float64frombits(prev)
			continue
		}

		newWindow, ok := r.readBit()
		if !ok {
			return fmt.Errorf("%w: value %d truncated", ErrCorruptGorilla, i)
		}
		if newWindow {
			l, ok1 := r.readBits(5)
			s, ok2 := r.readBits(6)
			if !ok1 || !ok2 {
				return fmt.Errorf("%w: value %d truncated", ErrCorruptGorilla, i)
			}
			leading = int(l)
			trailing = 64 - leading - int(s) - 1
			if trailing < 0 {
				return fmt.Errorf("%w: value %d has invalid window", ErrCorruptGorilla, i)
			}
		} else if leading < 0 {
			return fmt.Errorf("%w: value %d reuses a missing window", ErrCorruptGorilla, i)
		}

		meaningful, ok := r.readBits(64 - leading - trailing)
		if !ok {
			return fmt.Errorf("%w: value %d truncated", ErrCorruptGorilla, i)
		}
		prev ^= meaningful << trailing
		dst[i] = math.Float64frombits(prev)
	}

	if !r.consumed() {
		return fmt.Errorf("%w: trailing bytes", ErrCorruptGorilla)
	}

	return nil
}
