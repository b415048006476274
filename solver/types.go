// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/uflp/search"
)

var (
	// ErrNotSolved is returned by every result accessor before Solve has
	// completed successfully.
	ErrNotSolved = errors.New("solver: queried before solving")

	// ErrAlreadySolved is returned by Solve on a solver that has already
	// produced a result.
	ErrAlreadySolved = errors.New("solver: already solved")

	// ErrNilInstance is returned by New for a nil instance.
	ErrNilInstance = errors.New("solver: instance is nil")

	// ErrCapacityExceeded is search.ErrCapacityExceeded, re-exported so that
	// callers of this package need not import search.
	ErrCapacityExceeded = search.ErrCapacityExceeded
)

// State is the lifecycle position of a Solver.
type State uint8

const (
	Unsolved State = iota
	Reducing
	Searching
	Solved
	Failed
)

func (s State) String() string {
	switch s {
	case Unsolved:
		return "unsolved"
	case Reducing:
		return "reducing"
	case Searching:
		return "searching"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// PhaseTimings is the wall time spent in each phase.
type PhaseTimings struct {
	Preparation time.Duration
	Reduction   time.Duration
	Search      time.Duration
}

// Total returns the sum of all phases.
func (p PhaseTimings) Total() time.Duration {
	return p.Preparation + p.Reduction + p.Search
}

// Stats counts what each phase decided.
type Stats struct {
	KhumawalaOpened int
	KhumawalaClosed int
	GreedyOpened    int
	TentativeOpened int

	// Iterations is the number of reduction rounds run.
	Iterations int

	// Residual is the number of plants left to the exhaustive search.
	Residual int

	// Assignments is the number of residual assignments evaluated.
	Assignments uint64

	// Terms is the size of the initial Hammer function.
	Terms int
}

// Result is the immutable outcome of a successful Solve.
type Result struct {
	MinimumCost float64
	LowerBound  float64

	// RelaxationBound is the LP relaxation bound, or NaN when it was not
	// requested or could not be computed.
	RelaxationBound float64

	// PlantsToOpen lists 0-based plant indices in ascending order.
	PlantsToOpen []int

	Timings PhaseTimings
	Stats   Stats
}
