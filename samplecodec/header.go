package samplecodec

import (
	"fmt"

	"github.com/arloliu/rechenmodul/endian"
	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/format"
)

const (
	// Magic identifies a sample snapshot.
	Magic = "RMSP"
	// Version is the current layout version.
	Version uint8 = 1
	// HeaderSize is the fixed size of the snapshot header in bytes.
	HeaderSize = 12

	compressionMask uint8 = 0x0F
	encodingMask    uint8 = 0x30
	encodingShift         = 4
	bigEndianFlag   uint8 = 0x80
)

// Header is the fixed-size snapshot header.
type Header struct {
	Version     uint8                  // byte offset 4
	Compression format.CompressionType // byte offset 5, low nibble
	Encoding    format.EncodingType    // byte offset 5, bits 4-5
	ByteOrder   format.ByteOrder       // byte offset 5, bit 7
	Count       uint16                 // byte offset 6-7
	Checksum    uint32                 // byte offset 8-11
}

// Engine returns the endian engine matching the header's byte order.
func (h Header) Engine() endian.EndianEngine {
	if h.ByteOrder == format.BigEndian {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// AppendTo appends the serialized header to buf.
func (h Header) AppendTo(buf []byte) []byte {
	flags := uint8(h.Compression) & compressionMask
	flags |= (uint8(h.Encoding) << encodingShift) & encodingMask
	if h.ByteOrder == format.BigEndian {
		flags |= bigEndianFlag
	}

	engine := h.Engine()
	buf = append(buf, Magic...)
	buf = append(buf, h.Version, flags)
	buf = engine.AppendUint16(buf, h.Count)
	buf = engine.AppendUint32(buf, h.Checksum)

	return buf
}

// ParseHeader parses the header at the front of data.
//
// Returns an error wrapping errs.ErrInvalidToken for short input, a wrong
// magic, an unsupported version or an unknown payload encoding.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the %d byte header", errs.ErrInvalidToken, len(data), HeaderSize)
	}
	if string(data[:4]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidToken, data[:4])
	}

	h := Header{
		Version:     data[4],
		Compression: format.CompressionType(data[5] & compressionMask),
		Encoding:    format.EncodingType((data[5] & encodingMask) >> encodingShift),
		ByteOrder:   format.LittleEndian,
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidToken, h.Version)
	}
	if h.Encoding != format.TypeRaw && h.Encoding != format.TypeGorilla {
		return Header{}, fmt.Errorf("%w: unknown payload encoding %d", errs.ErrInvalidToken, h.Encoding)
	}
	if data[5]&bigEndianFlag != 0 {
		h.ByteOrder = format.BigEndian
	}

	engine := h.Engine()
	h.Count = engine.Uint16(data[6:8])
	h.Checksum = engine.Uint32(data[8:12])

	return h, nil
}
