// Package endian provides byte order utilities for the binary sample format.
//
// It combines ByteOrder and AppendByteOrder from encoding/binary into a single
// EndianEngine interface and adds column helpers for float64 coordinates.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat64s(engine, buf, xs)
//	xs, rest, err := endian.ReadFloat64s(engine, buf, n)
//
// All functions are safe for concurrent use; engines are stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendFloat64s appends the IEEE-754 bits of each value to buf.
func AppendFloat64s(engine EndianEngine, buf []byte, values []float64) []byte {
	for _, v := range values {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

// ReadFloat64s decodes n float64 values from the front of data into dst and
// returns the remaining bytes.
//
// dst must have length n.
func ReadFloat64s(engine EndianEngine, data []byte, dst []float64) ([]byte, error) {
	need := len(dst) * 8
	if len(data) < need {
		return nil, fmt.Errorf("need %d bytes for %d values, have %d", need, len(dst), len(data))
	}

	for i := range dst {
		dst[i] = math.Float64frombits(engine.Uint64(data[i*8:]))
	}

	return data[need:], nil
}
