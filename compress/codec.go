package compress

import (
	"fmt"

	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/format"
)

// maxDecompressedSize bounds decompression output; a full token payload is far smaller.
const maxDecompressedSize = 1024 * 1024

// Compressor compresses a complete token payload.
type Compressor interface {
	// Compress compresses data, an encoded sample payload.
	//
	// Memory management:
	//   - Returned slice is owned by the caller
	//   - Input slice is not modified
	//   - The no-op codec returns the input slice itself
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress restores the payload compressed by the matching Compressor.
	//
	// Error conditions:
	//   - Returns error if data is corrupted or truncated
	//   - Returns error if data was compressed with a different algorithm
	//   - Returns error if the output would exceed 1 MiB
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// Thread Safety: all built-in codecs are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the effect of compressing one payload.
//
// Fields:
//   - Algorithm: The compression type that produced the output
//   - OriginalSize: Payload size in bytes before compression
//   - CompressedSize: Payload size in bytes after compression
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size / original size, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
//
// Parameters:
//   - compressionType: One of the format.Compression* constants
//
// Returns:
//   - Codec: Shared codec instance, safe for concurrent use
//   - error: Wraps errs.ErrInvalidCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}

// CompressWithStats compresses data with the codec registered for
// compressionType and reports the size change.
func CompressWithStats(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return out, Stats{Algorithm: compressionType, OriginalSize: len(data), CompressedSize: len(out)}, nil
}
