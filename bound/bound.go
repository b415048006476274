// SPDX-License-Identifier: MIT

// Package bound computes lower bounds on the optimal UFLP cost.
//
//   - Simple:     Σ_c min_j t[c][j] + min_j f[j]. Every customer pays at least
//     its cheapest transport cost and at least one plant opens. O(n·m).
//   - Relaxation: the LP relaxation of the strong (disaggregated)
//     formulation, solved with gonum's simplex. Never weaker than Simple,
//     but its dense tableau grows as O(n²·m²), so it is guarded by a size
//     ceiling.
//
// Bounds are used to report solution quality (cost/bound − 1); the solver
// never prunes with them.
package bound

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/uflp/instance"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultMaxTableau caps rows×columns of the relaxation's constraint matrix.
const DefaultMaxTableau = 2_000_000

// ErrRelaxationTooLarge is returned when the LP would exceed the tableau cap.
var ErrRelaxationTooLarge = errors.New("bound: relaxation exceeds size ceiling")

// ErrRelaxationFailed wraps a simplex failure (singular basis, infeasible, …).
var ErrRelaxationFailed = errors.New("bound: relaxation failed")

// Simple returns Σ_c min_j t[c][j] + min_j f[j].
func Simple(in *instance.Instance) float64 {
	var (
		c    int
		mins = make([]float64, in.Customers())
	)
	for c = 0; c < in.Customers(); c++ {
		mins[c] = floats.Min(in.Row(c))
	}

	return floats.Sum(mins) + floats.Min(in.FixedCosts())
}

// Relaxation solves
//
//	min  Σ_j f_j·x_j + Σ_{c,j} t_cj·z_cj
//	s.t. Σ_j z_cj = 1                 for every customer c
//	     z_cj + s_cj − x_j = 0        for every (c, j)
//	     x, z, s ≥ 0
//
// and returns its optimum. maxTableau ≤ 0 selects DefaultMaxTableau.
//
// Column layout: x_j at j, z_cj at m + c·m + j, s_cj at m + n·m + c·m + j.
func Relaxation(in *instance.Instance, maxTableau int) (float64, error) {
	if maxTableau <= 0 {
		maxTableau = DefaultMaxTableau
	}

	var (
		m    = in.Plants()
		n    = in.Customers()
		rows = n + n*m
		cols = m + 2*n*m
	)
	if rows*cols > maxTableau {
		return 0, fmt.Errorf("tableau %d×%d > %d: %w", rows, cols, maxTableau, ErrRelaxationTooLarge)
	}

	var (
		cost = make([]float64, cols)
		b    = make([]float64, rows)
		a    = mat.NewDense(rows, cols, nil)
		c, j int
		z, s int
		row  int
	)
	for j = 0; j < m; j++ {
		cost[j] = in.FixedCost(j)
	}
	for c = 0; c < n; c++ {
		b[c] = 1
		for j = 0; j < m; j++ {
			z = m + c*m + j
			s = m + n*m + c*m + j
			cost[z] = in.TransportCost(c, j)

			a.Set(c, z, 1)

			row = n + c*m + j
			a.Set(row, z, 1)
			a.Set(row, s, 1)
			a.Set(row, j, -1)
		}
	}

	opt, _, err := lp.Simplex(cost, a, b, 0, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRelaxationFailed, err)
	}

	return opt, nil
}
