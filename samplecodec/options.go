package samplecodec

import (
	"fmt"

	"github.com/arloliu/rechenmodul/compress"
	"github.com/arloliu/rechenmodul/errs"
	"github.com/arloliu/rechenmodul/format"
	"github.com/arloliu/rechenmodul/internal/options"
)

// DefaultMaxPoints matches the default maximum sample size of the point store.
const DefaultMaxPoints = 100

type config struct {
	encoding    format.EncodingType
	compression format.CompressionType
	byteOrder   format.ByteOrder
	maxPoints   int
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		encoding:    format.TypeRaw,
		compression: format.CompressionNone,
		byteOrder:   format.LittleEndian,
		maxPoints:   DefaultMaxPoints,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures Encode and Decode.
type Option = options.Option[*config]

// WithCompression selects the payload codec used by Encode. Decode ignores it
// and uses the codec recorded in the header.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		cfg.compression = compression

		return nil
	})
}

// WithEncoding selects the payload encoding used by Encode: format.TypeRaw
// (default) or format.TypeGorilla.
func WithEncoding(encoding format.EncodingType) Option {
	return options.New(func(cfg *config) error {
		if encoding != format.TypeRaw && encoding != format.TypeGorilla {
			return fmt.Errorf("unsupported payload encoding: %s", encoding)
		}
		cfg.encoding = encoding

		return nil
	})
}

// WithBigEndian writes header integers and coordinates big-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.byteOrder = format.BigEndian
	})
}

// WithLittleEndian writes header integers and coordinates little-endian (default).
func WithLittleEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.byteOrder = format.LittleEndian
	})
}

// WithMaxPoints bounds the number of points Encode accepts and Decode
// returns. n must be between 1 and 65535.
func WithMaxPoints(n int) Option {
	return options.New(func(cfg *config) error {
		if n < 1 || n > 0xFFFF {
			return fmt.Errorf("%w: max points %d outside [1, 65535]", errs.ErrSampleTooLarge, n)
		}
		cfg.maxPoints = n

		return nil
	})
}
