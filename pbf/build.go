// SPDX-License-Identifier: MIT

package pbf

import "github.com/katalvlaran/uflp/instance"

// Build returns the Hammer function of in, using order (normally
// in.CostOrder()) as the per-customer ascending plant permutation.
//
// Construction:
//  1. For every plant j: constant += f_j and {j} += −f_j.
//  2. For every customer c with order[c] = p_0 … p_{m−1}: constant +=
//     t_c(p_0); then for k = 1 … m−1 the sorted prefix {p_0 … p_{k−1}}
//     accumulates t_c(p_k) − t_c(p_{k−1}).
//
// Zero increments still create (or touch) their term so that the term set
// matches the telescoping procedure exactly.
//
// Complexity: O(n·m²) time and space in the worst case (one prefix per step).
func Build(in *instance.Instance, order instance.CostOrder) Function {
	var (
		m = in.Plants()
		n = in.Customers()
	)
	acc := newAccumulator(0, m+n)

	var j int
	for j = 0; j < m; j++ {
		acc.constant += in.FixedCost(j)
		acc.add(Subset{j}, -in.FixedCost(j))
	}

	var (
		c, k   int
		perm   []int
		row    []float64
		prefix Subset
		delta  float64
	)
	for c = 0; c < n; c++ {
		perm = order[c]
		row = in.Row(c)
		acc.constant += row[perm[0]]

		prefix = Subset{}
		for k = 1; k < m; k++ {
			delta = row[perm[k]] - row[perm[k-1]]
			// insertSorted allocates, so the stored key never aliases the
			// next prefix.
			prefix = insertSorted(prefix, perm[k-1])
			acc.add(prefix, delta)
		}
	}

	return acc.function()
}
