package store

import (
	"fmt"

	"github.com/arloliu/rechenmodul/contingency"
	"github.com/arloliu/rechenmodul/internal/options"
	"github.com/arloliu/rechenmodul/stats"
)

const (
	// DefaultMaxSampleSize is the default maximum number of points.
	DefaultMaxSampleSize = 100
	// DefaultMaxDistinctValues is the default maximum number of distinct point values.
	DefaultMaxDistinctValues = 30
)

// Limits bounds the content of a store. Contingency tables share the same limits.
type Limits = contingency.Limits

// DefaultLimits returns the default store limits.
func DefaultLimits() Limits {
	return Limits{MaxSampleSize: DefaultMaxSampleSize, MaxDistinctValues: DefaultMaxDistinctValues}
}

// Option configures a Store.
type Option = options.Option[*Store]

// WithLimits replaces both limits. Each must be positive.
func WithLimits(limits Limits) Option {
	return options.New(func(s *Store) error {
		if limits.MaxSampleSize <= 0 || limits.MaxDistinctValues <= 0 {
			return fmt.Errorf("invalid store limits %+v: both must be positive", limits)
		}
		s.limits = limits

		return nil
	})
}

// WithSample seeds the store with sample. It is validated against the final
// limits regardless of option order.
func WithSample(sample stats.Sample) Option {
	return options.NoError(func(s *Store) {
		s.seed = sample.Clone()
	})
}
