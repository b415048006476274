// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/uflp/pbf"
)

const (
	// DefaultMaxAssignments bounds enumeration at 2^22 assignments.
	DefaultMaxAssignments uint64 = 1 << 22

	// maxFreeBits is the largest k whose 2^k still fits the counters.
	maxFreeBits = 62

	// parallelThreshold is the smallest mask range worth splitting.
	parallelThreshold uint64 = 1 << 12

	// checkEvery is how many masks are visited between context checks.
	checkEvery uint64 = 4096
)

var (
	// ErrCapacityExceeded indicates that the residual space is larger than
	// the configured assignment ceiling.
	ErrCapacityExceeded = errors.New("search: residual space exceeds capacity")

	// ErrInfeasible indicates that every plant is decided and none is open.
	ErrInfeasible = errors.New("search: every plant is closed")
)

// Options configures Exhaustive.
type Options struct {
	// MaxAssignments is the largest 2^k that may be enumerated.
	// Zero selects DefaultMaxAssignments.
	MaxAssignments uint64

	// Workers is the number of goroutines scanning the mask range.
	// Values below 1 select runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions returns the default ceiling and one worker per CPU.
func DefaultOptions() Options {
	return Options{MaxAssignments: DefaultMaxAssignments, Workers: runtime.GOMAXPROCS(0)}
}

// Result is the best completion found by Exhaustive.
type Result struct {
	// Decisions extends the input with every Free plant fixed to Open or
	// Closed.
	Decisions pbf.Decisions

	// Value is the objective at Decisions.
	Value float64

	// Assignments is the number of masks evaluated.
	Assignments uint64

	// Free is the number of plants that were enumerated.
	Free int
}

// Open returns per-plant open flags of the completed decisions.
func (r Result) Open() []bool {
	out := make([]bool, len(r.Decisions))
	for i, st := range r.Decisions {
		out[i] = st.IsOpen()
	}

	return out
}

// candidate is a (value, mask) pair; the order is value, then mask.
type candidate struct {
	value float64
	mask  uint64
	seen  uint64
	ok    bool
}

func (c candidate) better(o candidate) bool {
	if !o.ok {
		return c.ok
	}
	if !c.ok {
		return false
	}
	if c.value != o.value {
		return c.value < o.value
	}

	return c.mask < o.mask
}

// engine holds the compiled residual function.
type engine struct {
	constant float64
	masks    []uint64
	coefs    []float64
	skip     uint64 // mask that must not be chosen
	hasSkip  bool
}

func (e *engine) eval(mask uint64) float64 {
	var (
		total = e.constant
		i     int
		tm    uint64
	)
	for i, tm = range e.masks {
		if tm&mask == tm {
			total += e.coefs[i]
		}
	}

	return total
}

// scan evaluates masks in [lo, hi) ascending.
func (e *engine) scan(ctx context.Context, lo, hi uint64) (candidate, error) {
	var (
		best candidate
		mask uint64
		v    float64
	)
	for mask = lo; mask < hi; mask++ {
		if (mask-lo)%checkEvery == checkEvery-1 {
			if err := ctx.Err(); err != nil {
				return best, err
			}
		}
		if e.hasSkip && mask == e.skip {
			continue
		}
		v = e.eval(mask)
		best.seen++
		if !best.ok || v < best.value {
			best.value, best.mask, best.ok = v, mask, true
		}
	}

	return best, nil
}

// Exhaustive returns the minimum of f over every completion of d that opens
// at least one plant. f is simplified with d first, so it may be passed in
// any state of reduction.
//
// Errors:
//   - ErrCapacityExceeded when 2^k > opts.MaxAssignments or k > 62;
//   - ErrInfeasible when k = 0 and d opens no plant;
//   - the context error if ctx is cancelled mid-scan.
func Exhaustive(ctx context.Context, f pbf.Function, d pbf.Decisions, opts Options) (Result, error) {
	if opts.MaxAssignments == 0 {
		opts.MaxAssignments = DefaultMaxAssignments
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	var (
		free = d.FreePlants()
		k    = len(free)
		g    = pbf.Simplify(f, d)
	)
	if k == 0 {
		if !d.AnyOpen() {
			return Result{}, ErrInfeasible
		}
		return Result{Decisions: d.Clone(), Value: g.Constant()}, nil
	}
	if k > maxFreeBits || uint64(1)<<k > opts.MaxAssignments {
		return Result{}, fmt.Errorf("%w: %d free plants, ceiling %d assignments",
			ErrCapacityExceeded, k, opts.MaxAssignments)
	}

	e := compile(g, free)
	total := uint64(1) << k
	if !d.AnyOpen() {
		e.skip, e.hasSkip = total-1, true
	}

	best, err := e.run(ctx, total, opts.Workers)
	if err != nil {
		return Result{}, err
	}

	out := d.Clone()
	for b, p := range free {
		if best.mask&(1<<b) != 0 {
			out[p] = pbf.Closed
		} else {
			out[p] = pbf.Open
		}
	}

	return Result{Decisions: out, Value: best.value, Assignments: best.seen, Free: k}, nil
}

// compile maps the terms of g onto bit masks over free.
func compile(g pbf.Function, free []int) *engine {
	bit := make(map[int]uint, len(free))
	for b, p := range free {
		bit[p] = uint(b)
	}

	terms := g.Terms()
	e := &engine{
		constant: g.Constant(),
		masks:    make([]uint64, len(terms)),
		coefs:    make([]float64, len(terms)),
	}
	for i, t := range terms {
		for _, v := range t.Vars {
			e.masks[i] |= 1 << bit[v]
		}
		e.coefs[i] = t.Coef
	}

	return e
}

// run scans [0, total) with up to workers goroutines and reduces the chunk
// winners by (value, mask).
func (e *engine) run(ctx context.Context, total uint64, workers int) (candidate, error) {
	if workers == 1 || total < parallelThreshold {
		return e.scan(ctx, 0, total)
	}
	if uint64(workers) > total {
		workers = int(total)
	}

	var (
		chunk = (total + uint64(workers) - 1) / uint64(workers)
		found = make([]candidate, workers)
	)
	grp, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := uint64(w) * chunk
		hi := min(lo+chunk, total)
		if lo >= hi {
			continue
		}
		w := w
		grp.Go(func() error {
			c, err := e.scan(gctx, lo, hi)
			if err != nil {
				return err
			}
			found[w] = c
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return candidate{}, err
	}

	best := candidate{value: math.Inf(1)}
	var seen uint64
	for _, c := range found {
		seen += c.seen
		if c.better(best) {
			best = c
		}
	}
	best.seen = seen

	return best, nil
}
