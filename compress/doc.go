// Package compress provides the compression codecs applied to the coordinate
// payload of a sample token.
//
// A token payload is a pair of float64 columns. Integer-valued and repeated
// coordinates, which are typical for classroom samples and contingency
// tables, compress well with general-purpose algorithms:
//
//   - None: payload stored as-is
//   - Zstd: best ratio, used by default for tokens
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Codecs are stateless values and safe for concurrent use. Zstd uses pooled
// encoders and decoders from klauspost/compress; building with the gozstd tag
// (and cgo) switches to the valyala/gozstd bindings instead.
//
// Use GetCodec to look up the built-in codec for a format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
package compress
