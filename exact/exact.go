// SPDX-License-Identifier: MIT

package exact

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/crillab/gophersat/maxsat"

	"github.com/katalvlaran/uflp/instance"
)

const (
	// integralTolerance is how far a scaled cost may sit from an integer.
	integralTolerance = 1e-9

	// maxWeightSum keeps the solver's cost accumulators in int32 range.
	maxWeightSum = math.MaxInt32
)

var (
	// ErrNonIntegral indicates a cost that is not an integer after scaling.
	ErrNonIntegral = errors.New("exact: cost is not integral after scaling")

	// ErrWeightOverflow indicates that the scaled weights are too large.
	ErrWeightOverflow = errors.New("exact: scaled weights overflow")

	// ErrUnsatisfiable indicates that the hard clauses admit no model.
	ErrUnsatisfiable = errors.New("exact: encoding is unsatisfiable")

	// ErrBadScale indicates a non-positive or non-finite scale.
	ErrBadScale = errors.New("exact: scale must be finite and positive")
)

// Solution is an optimal plant selection.
type Solution struct {
	// Cost is the true cost of Open recomputed from the instance.
	Cost float64

	// Weight is the optimal MaxSAT cost, i.e. Cost·scale.
	Weight int

	// Open lists 0-based plant indices in ascending order.
	Open []int
}

func openVar(j int) string { return "o" + strconv.Itoa(j) }

func assignVar(c, j int) string { return "a" + strconv.Itoa(c) + "_" + strconv.Itoa(j) }

// weight converts a cost into an integral soft-clause weight.
func weight(cost, scale float64) (int, error) {
	w := cost * scale
	r := math.Round(w)
	if math.Abs(w-r) > integralTolerance*math.Max(1, math.Abs(w)) {
		return 0, fmt.Errorf("%w: %g×%g", ErrNonIntegral, cost, scale)
	}
	if r > maxWeightSum {
		return 0, fmt.Errorf("%w: %g", ErrWeightOverflow, r)
	}

	return int(r), nil
}

// Solve returns an optimal solution of in, with costs multiplied by scale
// before encoding (use 1 for integral instances).
//
// Complexity: exponential in the worst case; intended for m·n in the low
// hundreds.
func Solve(in *instance.Instance, scale float64) (Solution, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return Solution{}, ErrBadScale
	}

	var (
		m, n    = in.Plants(), in.Customers()
		constrs = make([]maxsat.Constr, 0, m+2*n*m+n)
		served  []maxsat.Lit
		sum     int
		w       int
		err     error
		c, j    int
	)
	for j = 0; j < m; j++ {
		if w, err = weight(in.FixedCost(j), scale); err != nil {
			return Solution{}, err
		}
		if w > 0 {
			constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Not(openVar(j))}, w))
			sum += w
		}
	}
	for c = 0; c < n; c++ {
		served = make([]maxsat.Lit, m)
		for j = 0; j < m; j++ {
			served[j] = maxsat.Var(assignVar(c, j))
			constrs = append(constrs, maxsat.HardClause(maxsat.Not(assignVar(c, j)), maxsat.Var(openVar(j))))

			if w, err = weight(in.TransportCost(c, j), scale); err != nil {
				return Solution{}, err
			}
			if w > 0 {
				constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Not(assignVar(c, j))}, w))
				sum += w
			}
		}
		constrs = append(constrs, maxsat.HardClause(served...))
	}
	if sum > maxWeightSum {
		return Solution{}, fmt.Errorf("%w: weight sum %d", ErrWeightOverflow, sum)
	}

	model, cost := maxsat.New(constrs...).Solve()
	if model == nil {
		return Solution{}, ErrUnsatisfiable
	}

	var (
		flags = make([]bool, m)
		open  = make([]int, 0, m)
	)
	for j = 0; j < m; j++ {
		if model[openVar(j)] {
			flags[j] = true
			open = append(open, j)
		}
	}
	total, err := in.Cost(flags)
	if err != nil {
		return Solution{}, fmt.Errorf("exact: decoding model: %w", err)
	}

	return Solution{Cost: total, Weight: cost, Open: open}, nil
}
