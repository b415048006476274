// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// New validates the cost data and returns an immutable Instance.
// fixed has one entry per plant; transport has one row per customer and one
// column per plant. Both inputs are copied, so later mutation by the caller
// does not leak into the instance.
//
// Validation order (first failure wins):
//  1. len(fixed) ≥ 1 and len(transport) ≥ 1 (ErrEmpty).
//  2. every transport row has len(fixed) entries (ErrDimensionMismatch).
//  3. every cost is finite (ErrNonFinite) and non-negative (ErrNegativeCost).
//
// Complexity: O(n·m).
func New(fixed []float64, transport [][]float64) (*Instance, error) {
	var (
		m = len(fixed)
		n = len(transport)
	)
	if m == 0 || n == 0 {
		return nil, fmt.Errorf("plants=%d customers=%d: %w", m, n, ErrEmpty)
	}

	var (
		j   int
		c   int
		err error
	)
	for j = 0; j < m; j++ {
		if err = checkCost(fixed[j]); err != nil {
			return nil, fmt.Errorf("fixed cost of plant %d: %w", j, err)
		}
	}

	data := make([]float64, 0, n*m)
	for c = 0; c < n; c++ {
		if len(transport[c]) != m {
			return nil, fmt.Errorf("customer %d has %d costs, want %d: %w",
				c, len(transport[c]), m, ErrDimensionMismatch)
		}
		for j = 0; j < m; j++ {
			if err = checkCost(transport[c][j]); err != nil {
				return nil, fmt.Errorf("transport cost (%d,%d): %w", c, j, err)
			}
		}
		data = append(data, transport[c]...)
	}

	fc := make([]float64, m)
	copy(fc, fixed)

	return &Instance{
		plants:    m,
		customers: n,
		fixed:     fc,
		transport: mat.NewDense(n, m, data),
	}, nil
}

// checkCost rejects NaN/±Inf first, then negatives.
func checkCost(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNonFinite
	}
	if x < 0 {
		return ErrNegativeCost
	}

	return nil
}

// Plants returns m, the number of candidate plants.
func (in *Instance) Plants() int { return in.plants }

// Customers returns n, the number of customers.
func (in *Instance) Customers() int { return in.customers }

// FixedCost returns the opening cost of plant j. It panics if j is out of range.
func (in *Instance) FixedCost(j int) float64 { return in.fixed[j] }

// FixedCosts returns a copy of the fixed-cost vector.
func (in *Instance) FixedCosts() []float64 {
	out := make([]float64, in.plants)
	copy(out, in.fixed)

	return out
}

// TransportCost returns the cost of serving customer c from plant j.
// It panics if either index is out of range.
func (in *Instance) TransportCost(c, j int) float64 { return in.transport.At(c, j) }

// Row returns a copy of customer c's transport costs (one per plant).
func (in *Instance) Row(c int) []float64 {
	return mat.Row(nil, c, in.transport)
}

// Transport returns a read-only view of the n×m transport matrix.
func (in *Instance) Transport() mat.Matrix { return in.transport }

// Cost returns the true cost of opening exactly the plants flagged in open:
// the sum of their fixed costs plus, per customer, the cheapest transport
// cost among them.
//
// Errors: ErrBadConfiguration if len(open) != m, ErrNoOpenPlant if no flag is set.
//
// Complexity: O(n·m).
func (in *Instance) Cost(open []bool) (float64, error) {
	if len(open) != in.plants {
		return 0, fmt.Errorf("got %d flags, want %d: %w", len(open), in.plants, ErrBadConfiguration)
	}

	var (
		total  float64
		anyOne bool
		j, c   int
	)
	for j = 0; j < in.plants; j++ {
		if open[j] {
			total += in.fixed[j]
			anyOne = true
		}
	}
	if !anyOne {
		return 0, ErrNoOpenPlant
	}

	var (
		best float64
		row  []float64
	)
	for c = 0; c < in.customers; c++ {
		row = in.transport.RawRowView(c)
		best = math.Inf(1)
		for j = 0; j < in.plants; j++ {
			if open[j] && row[j] < best {
				best = row[j]
			}
		}
		total += best
	}

	return total, nil
}

// CostOrder builds, for every customer, the permutation of plant indices
// sorted by ascending transport cost. The sort is stable, so equal costs keep
// ascending index order and the result is deterministic.
//
// Complexity: O(n·m·log m) time, O(n·m) space.
func (in *Instance) CostOrder() CostOrder {
	order := make(CostOrder, in.customers)

	var (
		c, j int
		row  []float64
	)
	for c = 0; c < in.customers; c++ {
		perm := make([]int, in.plants)
		for j = 0; j < in.plants; j++ {
			perm[j] = j
		}
		row = in.transport.RawRowView(c)
		sort.SliceStable(perm, func(a, b int) bool { return row[perm[a]] < row[perm[b]] })
		order[c] = perm
	}

	return order
}
