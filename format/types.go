// Package format defines the identifiers written into the binary sample format.
package format

import (
	"fmt"
	"strings"
)

type (
	EncodingType    uint8
	CompressionType uint8
	ByteOrder       uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores coordinates as fixed 8-byte floats.
	TypeGorilla EncodingType = 0x2 // TypeGorilla stores coordinates with Gorilla XOR compression.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	LittleEndian ByteOrder = 0x0 // LittleEndian stores coordinate columns little-endian.
	BigEndian    ByteOrder = 0x1 // BigEndian stores coordinate columns big-endian.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// ParseEncodingType maps a case-insensitive name ("raw", "gorilla") to its
// EncodingType. An empty name selects TypeRaw.
func ParseEncodingType(name string) (EncodingType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw", "":
		return TypeRaw, nil
	case "gorilla":
		return TypeGorilla, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive name ("none", "zstd", "s2", "lz4")
// to its CompressionType.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

func (b ByteOrder) String() string {
	switch b {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	default:
		return "Unknown"
	}
}
