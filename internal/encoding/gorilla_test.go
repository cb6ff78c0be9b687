package encoding

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, values []float64) []byte {
	t.Helper()

	enc := NewGorillaEncoder(nil)
	enc.WriteSlice(values)
	require.Equal(t, len(values), enc.Len())

	got := make([]float64, len(values))
	require.NoError(t, DecodeGorilla(enc.Bytes(), got))
	for i := range values {
		require.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]), "value %d", i)
	}

	return enc.Bytes()
}

func TestGorilla_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	random := make([]float64, 200)
	for i := range random {
		random[i] = rng.NormFloat64() * 1e6
	}

	cases := map[string][]float64{
		"empty":    {},
		"single":   {42},
		"constant": {5, 5, 5, 5, 5},
		"grades":   {1, 2, 2, 3, 1, 6, 4, 4, 2, 5},
		"special":  {0, math.Copysign(0, -1), math.MaxFloat64, math.SmallestNonzeroFloat64, -1, 1},
		"random":   random,
	}

	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, values)
		})
	}
}

func TestGorilla_CompressesRepeats(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(1 + i%3)
	}

	data := roundTrip(t, values)
	require.Less(t, len(data), len(values)*8/2)
}

func TestGorilla_ConstantIsOneBitPerValue(t *testing.T) {
	data := roundTrip(t, []float64{7, 7, 7, 7, 7, 7, 7, 7, 7})
	require.Len(t, data, 9) // 64 bits + 8 zero bits
}

func TestDecodeGorilla_Corrupt(t *testing.T) {
	enc := NewGorillaEncoder(nil)
	enc.WriteSlice([]float64{1, 2, 3.5, -8})
	data := enc.Bytes()

	require.ErrorIs(t, DecodeGorilla(data[:len(data)-2], make([]float64, 4)), ErrCorruptGorilla)
	require.ErrorIs(t, DecodeGorilla(append(data, 0, 0), make([]float64, 4)), ErrCorruptGorilla)
	require.ErrorIs(t, DecodeGorilla(data[:4], make([]float64, 1)), ErrCorruptGorilla)
	require.ErrorIs(t, DecodeGorilla([]byte{1}, nil), ErrCorruptGorilla)
	require.NoError(t, DecodeGorilla(nil, nil))
}

func TestBitWriterReader(t *testing.T) {
	var w bitWriter
	w.writeBits(0b101, 3)
	w.writeBit(true)
	w.writeBits(0xABCD, 16)
	w.writeBits(math.MaxUint64, 64)
	require.Len(t, w.buf, 11)

	r := bitReader{data: w.buf}
	v, ok := r.readBits(3)
	require.True(t, ok)
	require.Equal(t, uint64(0b101), v)
	bit, ok := r.readBit()
	require.True(t, ok)
	require.True(t, bit)
	v, _ = r.readBits(16)
	require.Equal(t, uint64(0xABCD), v)
	v, _ = r.readBits(64)
	require.Equal(t, uint64(math.MaxUint64), v)
	require.True(t, r.consumed())

	_, ok = r.readBits(5)
	require.False(t, ok)
}
