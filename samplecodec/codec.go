package samplecodec

import (
	"encoding/base64"
	"fmt"
	"hash/crc32"

	"github.com/arloliu/rechenmodul/compress"
	"github.com/arloliu/rechenmodul/endian"
	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/format"
	"github.com/arloliu/rechenmodul/internal/encoding"
	"github.com/arloliu/rechenmodul/internal/pool"
	"github.com/arloliu/rechenmodul/stats"
)

var tokenEncoding = base64.RawURLEncoding

// Encode serializes sample into a snapshot.
//
// Every point must pass stats.Point.Validate and the sample must not exceed
// the configured maximum (DefaultMaxPoints unless WithMaxPoints is given).
//
// Parameters:
//   - sample: Points to serialize, in order
//   - opts: Payload encoding, compression, byte order and point limit
//
// Returns:
//   - []byte: Header followed by the compressed payload, owned by the caller
//   - error: errs.ErrSampleTooLarge, errs.ErrInvalidValue, errs.ErrInvalidCompression
//     or an invalid option
func Encode(sample stats.Sample, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if len(sample) > cfg.maxPoints {
		return nil, fmt.Errorf("%w: %d points, limit %d", errs.ErrSampleTooLarge, len(sample), cfg.maxPoints)
	}
	if err := sample.Validate(); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	n := len(sample)
	xs, releaseX := pool.GetFloat64Slice(n)
	defer releaseX()
	ys, releaseY := pool.GetFloat64Slice(n)
	defer releaseY()
	for i, p := range sample {
		xs[i], ys[i] = p.X, p.Y
	}

	h := Header{
		Version:     Version,
		Compression: cfg.compression,
		Encoding:    cfg.encoding,
		ByteOrder:   cfg.byteOrder,
		Count:       uint16(n), //nolint:gosec // bounded by maxPoints
	}
	engine := h.Engine()

	raw := pool.GetTokenBuffer()
	defer pool.PutTokenBuffer(raw)
	if cfg.encoding == format.TypeGorilla {
		enc := encoding.NewGorillaEncoder(raw.B)
		enc.WriteSlice(xs)
		enc.WriteSlice(ys)
		raw.B = enc.Bytes()
	} else {
		raw.B = endian.AppendFloat64s(engine, raw.B, xs)
		raw.B = endian.AppendFloat64s(engine, raw.B, ys)
	}
	h.Checksum = crc32.ChecksumIEEE(raw.B)

	payload, err := codec.Compress(raw.B)
	if err != nil {
		return nil, fmt.Errorf("%s compression failed: %w", cfg.compression, err)
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = h.AppendTo(out)
	out = append(out, payload...)

	return out, nil
}

// Decode parses a snapshot produced by Encode.
//
// Only WithMaxPoints affects decoding; encoding, compression and byte order
// are read from the header.
//
// Parameters:
//   - data: A snapshot produced by Encode
//   - opts: Point limit (WithMaxPoints)
//
// Returns:
//   - stats.Sample: Decoded points in their original order
//   - error: errs.ErrInvalidToken for malformed input, errs.ErrInvalidCompression
//     for an unknown codec, errs.ErrChecksumMismatch for corrupted payloads and
//     errs.ErrSampleTooLarge when the point count exceeds the limit
func Decode(data []byte, opts ...Option) (stats.Sample, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if int(h.Count) > cfg.maxPoints {
		return nil, fmt.Errorf("%w: %d points, limit %d", errs.ErrSampleTooLarge, h.Count, cfg.maxPoints)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s payload: %w", errs.ErrInvalidToken, h.Compression, err)
	}

	n := int(h.Count)
	if h.Encoding == format.TypeRaw && len(raw) != n*16 {
		return nil, fmt.Errorf("%w: payload has %d bytes, want %d for %d points", errs.ErrInvalidToken, len(raw), n*16, n)
	}
	if sum := crc32.ChecksumIEEE(raw); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %08x, header %08x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	xs, releaseX := pool.GetFloat64Slice(n)
	defer releaseX()
	ys, releaseY := pool.GetFloat64Slice(n)
	defer releaseY()

	if err := decodeColumns(h, raw, xs, ys); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidToken, err)
	}

	sample := make(stats.Sample, n)
	for i := range sample {
		sample[i] = stats.Point{X: xs[i], Y: ys[i]}
	}
	if err := sample.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidToken, err)
	}

	return sample, nil
}

func decodeColumns(h Header, raw []byte, xs, ys []float64) error {
	n := len(xs)
	if h.Encoding == format.TypeGorilla {
		coords := make([]float64, 2*n)
		if err := encoding.DecodeGorilla(raw, coords); err != nil {
			return err
		}
		copy(xs, coords[:n])
		copy(ys, coords[n:])

		return nil
	}

	engine := h.Engine()
	rest, err := endian.ReadFloat64s(engine, raw, xs)
	if err != nil {
		return err
	}
	_, err = endian.ReadFloat64s(engine, rest, ys)

	return err
}

// EncodeToken encodes sample and returns the snapshot as unpadded base64url.
func EncodeToken(sample stats.Sample, opts ...Option) (string, error) {
	data, err := Encode(sample, opts...)
	if err != nil {
		return "", err
	}

	return tokenEncoding.EncodeToString(data), nil
}

// DecodeToken reverses EncodeToken.
func DecodeToken(token string, opts ...Option) (stats.Sample, error) {
	data, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidToken, err)
	}

	return Decode(data, opts...)
}
