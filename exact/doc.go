// SPDX-License-Identifier: MIT

// Package exact solves small UFLP instances to optimality through an
// independent weighted partial MaxSAT encoding, for cross-checking the
// reduction pipeline.
//
// Encoding, for plants j and customers c:
//
//	o_j   plant j is open
//	a_cj  customer c is served by plant j
//
//	hard  ∨_j a_cj              every customer is served
//	hard  ¬a_cj ∨ o_j           only by open plants
//	soft  ¬o_j   weight f_j     pay the fixed cost when open
//	soft  ¬a_cj  weight t_cj    pay the transport cost when served
//
// The solver maximizes the weight of satisfied soft clauses, i.e. minimizes
// the total weight of violated ones, which is exactly the UFLP cost. Zero
// costs produce no soft clause, since gophersat treats weight 0 as hard.
//
// Weights must be integers: every cost is multiplied by a scale factor and
// must then be integral (ErrNonIntegral), and the weight sum must fit the
// solver's int arithmetic (ErrWeightOverflow).
package exact
