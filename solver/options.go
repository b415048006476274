// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/uflp/bound"
	"github.com/katalvlaran/uflp/rules"
	"github.com/katalvlaran/uflp/search"
)

const (
	// DefaultBeta runs the reduction loop until every plant is decided or
	// nothing fires any more.
	DefaultBeta = 1.0

	// DefaultWorkers keeps the residual search sequential.
	DefaultWorkers = 1
)

const (
	panicAlphaInvalid      = "solver: WithAlpha: alpha must be in [0, 1]"
	panicBetaInvalid       = "solver: WithBeta: beta must be in [0, 1]"
	panicMaxAssignInvalid  = "solver: WithMaxAssignments: ceiling must be ≥ 1"
	panicWorkersInvalid    = "solver: WithWorkers: workers must be ≥ 1"
	panicMaxTableauInvalid = "solver: WithRelaxationBound: tableau ceiling must be ≥ 1"
)

// Options configures a Solver. Build it with DefaultOptions and Option
// setters; the zero value is not meaningful.
type Options struct {
	// Alpha is the share of plants considered by H1.
	Alpha float64

	// Beta is the share of plants that must be decided before the residual
	// search starts.
	Beta float64

	// MaxAssignments caps the residual search at this many assignments.
	MaxAssignments uint64

	// Workers is the number of residual search goroutines.
	Workers int

	// Greedy and SignPartition enable heuristics H1 and H2.
	Greedy        bool
	SignPartition bool

	// Relaxation requests the LP relaxation bound; MaxTableau caps its size.
	Relaxation bool
	MaxTableau int

	Logger logr.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns α = 0.065, β = 1, a 2^22 assignment ceiling, one
// worker, both heuristics on, no LP bound and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Alpha:          rules.DefaultAlpha,
		Beta:           DefaultBeta,
		MaxAssignments: search.DefaultMaxAssignments,
		Workers:        DefaultWorkers,
		Greedy:         true,
		SignPartition:  true,
		MaxTableau:     bound.DefaultMaxTableau,
		Logger:         logr.Discard(),
	}
}

func unitInterval(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}

// WithAlpha sets the H1 share. Panics outside [0, 1].
func WithAlpha(alpha float64) Option {
	if !unitInterval(alpha) {
		panic(panicAlphaInvalid)
	}
	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the decided share that ends the reduction loop. β = 0 skips
// reduction entirely. Panics outside [0, 1].
func WithBeta(beta float64) Option {
	if !unitInterval(beta) {
		panic(panicBetaInvalid)
	}
	return func(o *Options) { o.Beta = beta }
}

// WithMaxAssignments sets the residual search ceiling. Panics on 0.
func WithMaxAssignments(n uint64) Option {
	if n < 1 {
		panic(panicMaxAssignInvalid)
	}
	return func(o *Options) { o.MaxAssignments = n }
}

// WithWorkers sets the number of residual search goroutines. Panics below 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.Workers = w }
}

// WithoutGreedy disables H1.
func WithoutGreedy() Option {
	return func(o *Options) { o.Greedy = false }
}

// WithoutSignPartition disables H2.
func WithoutSignPartition() Option {
	return func(o *Options) { o.SignPartition = false }
}

// WithoutHeuristics disables H1 and H2, leaving only proof-backed rules.
func WithoutHeuristics() Option {
	return func(o *Options) { o.Greedy, o.SignPartition = false, false }
}

// WithRelaxationBound enables the LP relaxation bound. An optional argument
// overrides the tableau ceiling. Panics on a ceiling below 1.
func WithRelaxationBound(maxTableau ...int) Option {
	limit := bound.DefaultMaxTableau
	if len(maxTableau) > 0 {
		limit = maxTableau[0]
	}
	if limit < 1 {
		panic(panicMaxTableauInvalid)
	}
	return func(o *Options) { o.Relaxation, o.MaxTableau = true, limit }
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
