// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults for Random. The ranges roughly follow the scale of the classic
// OR-Library uncapacitated benchmarks.
const (
	DefaultSeed         int64   = 1
	DefaultFixedMin     float64 = 100
	DefaultFixedMax     float64 = 1000
	DefaultTransportMin float64 = 1
	DefaultTransportMax float64 = 100
)

const (
	panicRangeInvalid = "instance: cost range must be finite with 0 <= lo <= hi"
)

// RandomOptions configures Random. Use the WithX setters.
type RandomOptions struct {
	seed         int64
	fixedMin     float64
	fixedMax     float64
	transportMin float64
	transportMax float64
	integral     bool
	euclidean    bool
}

// RandomOption mutates RandomOptions.
type RandomOption func(*RandomOptions)

// WithSeed sets the RNG seed. Seed 0 is mapped to DefaultSeed so the zero
// value stays reproducible.
func WithSeed(seed int64) RandomOption {
	return func(o *RandomOptions) { o.seed = seed }
}

// WithFixedRange sets the closed range fixed costs are drawn from.
// Panics if the range is not finite or lo > hi or lo < 0.
func WithFixedRange(lo, hi float64) RandomOption {
	mustRange(lo, hi)

	return func(o *RandomOptions) { o.fixedMin, o.fixedMax = lo, hi }
}

// WithTransportRange sets the closed range transport costs are drawn from.
// In Euclidean mode hi scales the distance on the unit square and lo is
// added as a floor. Panics on an invalid range.
func WithTransportRange(lo, hi float64) RandomOption {
	mustRange(lo, hi)

	return func(o *RandomOptions) { o.transportMin, o.transportMax = lo, hi }
}

// WithIntegral rounds every generated cost to the nearest integer.
// Integral instances can be cross-checked by the exact package.
func WithIntegral() RandomOption {
	return func(o *RandomOptions) { o.integral = true }
}

// WithEuclidean places plants and customers uniformly on the unit square and
// derives transport costs from their distances instead of drawing them
// independently.
func WithEuclidean() RandomOption {
	return func(o *RandomOptions) { o.euclidean = true }
}

func mustRange(lo, hi float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo < 0 || lo > hi {
		panic(panicRangeInvalid)
	}
}

// DefaultRandomOptions returns the documented defaults.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		seed:         DefaultSeed,
		fixedMin:     DefaultFixedMin,
		fixedMax:     DefaultFixedMax,
		transportMin: DefaultTransportMin,
		transportMax: DefaultTransportMax,
	}
}

// Random generates a synthetic instance with the given number of plants and
// customers. The same options always produce the same instance.
//
// Draw order is fixed: fixed costs for plants 0..m−1, then (uniform mode)
// transport costs row by row, or (Euclidean mode) plant points, then
// customer points.
func Random(plants, customers int, opts ...RandomOption) (*Instance, error) {
	if plants < 1 || customers < 1 {
		return nil, fmt.Errorf("random: plants=%d customers=%d: %w", plants, customers, ErrEmpty)
	}

	cfg := DefaultRandomOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seed == 0 {
		cfg.seed = DefaultSeed
	}
	rng := rand.New(rand.NewSource(cfg.seed))

	var (
		j, c  int
		fixed = make([]float64, plants)
	)
	for j = 0; j < plants; j++ {
		fixed[j] = cfg.round(uniform(rng, cfg.fixedMin, cfg.fixedMax))
	}

	transport := make([][]float64, customers)
	if !cfg.euclidean {
		for c = 0; c < customers; c++ {
			transport[c] = make([]float64, plants)
			for j = 0; j < plants; j++ {
				transport[c][j] = cfg.round(uniform(rng, cfg.transportMin, cfg.transportMax))
			}
		}

		return New(fixed, transport)
	}

	type point struct{ x, y float64 }
	sites := make([]point, plants)
	for j = 0; j < plants; j++ {
		sites[j] = point{rng.Float64(), rng.Float64()}
	}
	var p point
	for c = 0; c < customers; c++ {
		p = point{rng.Float64(), rng.Float64()}
		transport[c] = make([]float64, plants)
		for j = 0; j < plants; j++ {
			d := math.Hypot(p.x-sites[j].x, p.y-sites[j].y)
			transport[c][j] = cfg.round(cfg.transportMin + d*cfg.transportMax)
		}
	}

	return New(fixed, transport)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func (o RandomOptions) round(x float64) float64 {
	if o.integral {
		return math.Round(x)
	}

	return x
}
