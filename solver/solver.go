// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/uflp/bound"
	"github.com/katalvlaran/uflp/instance"
	"github.com/katalvlaran/uflp/pbf"
	"github.com/katalvlaran/uflp/rules"
	"github.com/katalvlaran/uflp/search"
)

// Solver owns the decision state of one solve. It is not safe for
// concurrent use.
type Solver struct {
	in   *instance.Instance
	opts Options
	log  logr.Logger

	state  State
	err    error
	result Result
}

// New returns an Unsolved solver for in.
func New(in *instance.Instance, opts ...Option) (*Solver, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{in: in, opts: o, log: o.Logger.WithName("solver")}, nil
}

// State returns the current lifecycle state.
func (s *Solver) State() State { return s.state }

// Solve runs the pipeline to completion.
func (s *Solver) Solve() error { return s.SolveContext(context.Background()) }

// SolveContext is Solve with a context observed by the residual search.
func (s *Solver) SolveContext(ctx context.Context) error {
	switch s.state {
	case Solved:
		return ErrAlreadySolved
	case Failed:
		return s.err
	}

	res, err := s.run(ctx)
	if err != nil {
		s.state = Failed
		s.err = fmt.Errorf("solver: %w", err)
		s.log.Error(err, "solve failed")
		return s.err
	}
	s.result = res
	s.state = Solved

	return nil
}

func (s *Solver) run(ctx context.Context) (Result, error) {
	var (
		res   Result
		m     = s.in.Plants()
		start = time.Now()
	)

	// Preparation.
	s.state = Reducing
	order := s.in.CostOrder()
	res.LowerBound = bound.Simple(s.in)
	res.RelaxationBound = math.NaN()
	if s.opts.Relaxation {
		if v, err := bound.Relaxation(s.in, s.opts.MaxTableau); err != nil {
			s.log.V(1).Info("relaxation bound skipped", "reason", err.Error())
		} else {
			res.RelaxationBound = v
		}
	}
	f := pbf.Build(s.in, order)
	d := pbf.NewDecisions(m)
	res.Stats.Terms = f.Len()
	res.Timings.Preparation = time.Since(start)
	s.log.V(1).Info("prepared",
		"plants", m, "customers", s.in.Customers(), "terms", f.Len(),
		"lowerBound", res.LowerBound, "relaxationBound", res.RelaxationBound)

	// Reduction.
	phase := time.Now()
	f, d = s.reduce(f, d, &res.Stats)
	res.Timings.Reduction = time.Since(phase)
	s.log.V(1).Info("reduced",
		"iterations", res.Stats.Iterations, "decided", d.Decided(), "free", m-d.Decided(),
		"terms", f.Len(), "constant", f.Constant())

	// Search.
	s.state = Searching
	phase = time.Now()
	sr, err := search.Exhaustive(ctx, f, d, search.Options{
		MaxAssignments: s.opts.MaxAssignments,
		Workers:        s.opts.Workers,
	})
	if err != nil {
		return Result{}, err
	}
	res.Timings.Search = time.Since(phase)
	res.Stats.Residual = sr.Free
	res.Stats.Assignments = sr.Assignments
	res.MinimumCost = sr.Value
	res.PlantsToOpen = sr.Decisions.OpenPlants()
	s.log.V(1).Info("searched",
		"residual", sr.Free, "assignments", sr.Assignments,
		"cost", res.MinimumCost, "open", len(res.PlantsToOpen))

	return res, nil
}

// reduce runs Khumawala, H1 and H2 in that order until ⌈m·β⌉ plants are
// decided or a full round decides nothing.
func (s *Solver) reduce(f pbf.Function, d pbf.Decisions, st *Stats) (pbf.Function, pbf.Decisions) {
	var (
		target = int(math.Ceil(float64(len(d)) * s.opts.Beta))
		before int
		step   rules.Step
	)
	for d.Decided() < target {
		before = d.Decided()

		step = rules.Khumawala(f, d)
		f, d = step.Function, step.Decisions
		st.KhumawalaOpened += step.Opened
		st.KhumawalaClosed += step.Closed

		if s.opts.Greedy {
			step = rules.GreedyOpen(f, d, s.opts.Alpha)
			f, d = step.Function, step.Decisions
			st.GreedyOpened += step.Opened
		}
		if s.opts.SignPartition {
			step = rules.SignPartition(f, d)
			f, d = step.Function, step.Decisions
			st.TentativeOpened += step.Tentative
		}

		st.Iterations++
		s.log.V(2).Info("reduction round",
			"iteration", st.Iterations, "decided", d.Decided(), "terms", f.Len())
		if d.Decided() == before {
			break
		}
	}

	return f, d
}

// MinimumCost returns the cost of the chosen plants.
func (s *Solver) MinimumCost() (float64, error) {
	if s.state != Solved {
		return 0, ErrNotSolved
	}
	return s.result.MinimumCost, nil
}

// LowerBound returns the simple lower bound of package bound.
func (s *Solver) LowerBound() (float64, error) {
	if s.state != Solved {
		return 0, ErrNotSolved
	}
	return s.result.LowerBound, nil
}

// RelaxationBound returns the LP relaxation bound, NaN when unavailable.
func (s *Solver) RelaxationBound() (float64, error) {
	if s.state != Solved {
		return 0, ErrNotSolved
	}
	return s.result.RelaxationBound, nil
}

// PlantsToOpen returns a copy of the ascending 0-based open plant indices.
func (s *Solver) PlantsToOpen() ([]int, error) {
	if s.state != Solved {
		return nil, ErrNotSolved
	}
	return slices.Clone(s.result.PlantsToOpen), nil
}

// ExecutionTime returns the total time of all phases.
func (s *Solver) ExecutionTime() (time.Duration, error) {
	if s.state != Solved {
		return 0, ErrNotSolved
	}
	return s.result.Timings.Total(), nil
}

// MaxRelativeError returns MinimumCost/LowerBound − 1. With a zero bound it
// is 0 for a zero cost and +Inf otherwise.
func (s *Solver) MaxRelativeError() (float64, error) {
	if s.state != Solved {
		return 0, ErrNotSolved
	}
	lb, cost := s.result.LowerBound, s.result.MinimumCost
	if lb == 0 {
		if cost == 0 {
			return 0, nil
		}
		return math.Inf(1), nil
	}

	return cost/lb - 1, nil
}

// Result returns a copy of the full result.
func (s *Solver) Result() (Result, error) {
	if s.state != Solved {
		return Result{}, ErrNotSolved
	}
	out := s.result
	out.PlantsToOpen = slices.Clone(s.result.PlantsToOpen)

	return out, nil
}
