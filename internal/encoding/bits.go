package encoding

// bitWriter appends bits MSB first to a byte slice.
type bitWriter struct {
	buf  []byte
	free int // unused low bits in the last byte
}

func (w *bitWriter) writeBit(bit bool) {
	if bit {
		w.writeBits(1, 1)
	} else {
		w.writeBits(0, 1)
	}
}

// writeBits writes the low n bits of v, 0 < n <= 64.
func (w *bitWriter) writeBits(v uint64, n int) {
	for n > 0 {
		if w.free == 0 {
			w.buf = append(w.buf, 0)
			w.free = 8
		}

		take := min(n, w.free)
		chunk := (v >> (n - take)) & (1<<take - 1)
		w.buf[len(w.buf)-1] |= byte(chunk << (w.free - take))
		w.free -= take
		n -= take
	}
}

// bitReader reads bits MSB first.
type bitReader struct {
	data []byte
	pos  int // bit offset
}

func (r *bitReader) readBit() (bool, bool) {
	v, ok := r.readBits(1)
	return v == 1, ok
}

// readBits reads n bits, 0 < n <= 64. ok is false past the end of data.
func (r *bitReader) readBits(n int) (uint64, bool) {
	if r.pos+n > len(r.data)*8 {
		return 0, false
	}

	var v uint64
	for n > 0 {
		avail := 8 - r.pos%8
		take := min(n, avail)
		chunk := uint64(r.data[r.pos/8]>>(avail-take)) & (1<<take - 1)
		v = v<<take | chunk
		r.pos += take
		n -= take
	}

	return v, true
}

// consumed reports whether only padding bits are left.
func (r *bitReader) consumed() bool {
	return (r.pos+7)/8 == len(r.data)
}
