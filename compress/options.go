package compress

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by compress functions.
var (
	ErrShape         = errors.New("compress: empty or mismatched input")
	ErrInvalidTarget = errors.New("compress: target accuracy must be in (0, 1]")
	ErrBasisCount    = errors.New("compress: basis count out of range")
	ErrPartition     = errors.New("compress: invalid block partition")
)

// Measure selects how retained accuracy is computed from a coefficient prefix.
type Measure int

const (
	// MeasureNorm compares the L2 norm of the retained coefficients with the
	// L2 norm of all coefficients. This is the default.
	MeasureNorm Measure = iota

	// MeasureEnergy compares cumulative squared magnitude with total squared
	// magnitude. It is the square of MeasureNorm and needs at least as many
	// basis functions for the same target.
	MeasureEnergy
)

// String returns the measure name.
func (m Measure) String() string {
	switch m {
	case MeasureNorm:
		return "norm"
	case MeasureEnergy:
		return "energy"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// ratio converts cumulative and total energy into the retained fraction.
func (m Measure) ratio(cumulative, total float64) float64 {
	r := cumulative / total
	if m == MeasureNorm {
		return math.Sqrt(r)
	}
	return r
}

// Option configures selection behavior.
type Option func(*config)

type config struct {
	measure  Measure
	minBasis int
}

func defaultConfig() config {
	return config{
		measure:  MeasureNorm,
		minBasis: 1,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMeasure sets the accuracy measure. Unknown values are ignored.
func WithMeasure(m Measure) Option {
	return func(c *config) {
		if m == MeasureNorm || m == MeasureEnergy {
			c.measure = m
		}
	}
}

// WithMinBasis sets the number of basis functions that are always kept.
// It is clamped to the coefficient count; values below 1 are ignored.
func WithMinBasis(k int) Option {
	return func(c *config) {
		if k >= 1 {
			c.minBasis = k
		}
	}
}

func checkTarget(target float64) error {
	if math.IsNaN(target) || target <= 0 || target > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, target)
	}
	return nil
}
