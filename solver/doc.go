// SPDX-License-Identifier: MIT

// Package solver runs the full UFLP pipeline on an instance.Instance and
// exposes the answer.
//
// Pipeline:
//
//  1. Preparation: cost order, simple lower bound (optionally the LP
//     relaxation bound) and the Hammer function (pbf.Build).
//  2. Reduction: repeat {Khumawala rules, GreedyOpen (H1), SignPartition
//     (H2)}, each followed by simplification, until at least ⌈m·β⌉ plants
//     are decided or an iteration decides nothing.
//  3. Search: exhaustive enumeration of the remaining Free plants, bounded
//     by Options.MaxAssignments.
//
// States:
//
//	Unsolved → Reducing → Searching → Solved
//	                 ↘          ↘
//	                    Failed
//
// Solve may be called once. A second call returns ErrAlreadySolved after
// success, or the original error after a failure. Every result accessor
// returns ErrNotSolved until the solver is Solved.
//
// Options (functional, see DefaultOptions):
//
//   - WithAlpha(α)          share of plants H1 may open, default 0.065.
//   - WithBeta(β)           share of plants to decide before searching, default 1.
//   - WithMaxAssignments(n) residual search ceiling, default 2^22.
//   - WithWorkers(w)        residual search goroutines, default 1.
//   - WithoutGreedy(), WithoutSignPartition() disable H1 or H2.
//   - WithRelaxationBound() also compute the LP relaxation bound.
//   - WithLogger(l)         logr sink; V(1) per phase, V(2) per iteration.
//
// With both heuristics disabled every decision is proof-backed and the
// reported cost is the optimum. H1 may lose optimality; H2 never does.
//
// Example:
//
//	in, _ := instance.New([]float64{10, 1}, [][]float64{{5, 3}})
//	s, _ := solver.New(in)
//	if err := s.Solve(); err != nil {
//	    log.Fatal(err)
//	}
//	cost, _ := s.MinimumCost() // 4
//	open, _ := s.PlantsToOpen() // [1]
package solver
