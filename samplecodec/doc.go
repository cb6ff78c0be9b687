// Package samplecodec serializes a sample into a compact, checksummed binary
// snapshot and its URL-safe token form.
//
// A snapshot lets a sample be copied between tools (clipboard, query string)
// without any server-side storage.
//
// # Layout
//
//	offset  size  field
//	0       4     magic "RMSP"
//	4       1     format version (currently 1)
//	5       1     flags: low nibble compression type, bits 4-5 payload
//	              encoding, bit 7 set for big-endian
//	6       2     point count
//	8       4     CRC-32 (IEEE) of the encoded, uncompressed payload
//	12      ...   payload, compressed with the flagged codec
//
// The payload is columnar: all x coordinates followed by all y coordinates.
// With format.TypeRaw each is an IEEE-754 float64 in the flagged byte order;
// format.TypeGorilla packs the same sequence as a Gorilla XOR bit stream.
// Header integers use the flagged byte order. The checksum covers the encoded
// payload before compression.
//
// # Basic Usage
//
//	token, err := samplecodec.EncodeToken(sample, samplecodec.WithCompression(format.CompressionZstd))
//	...
//	sample, err := samplecodec.DecodeToken(token)
package samplecodec
