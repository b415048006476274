// SPDX-License-Identifier: MIT

// Package pbf implements the pseudo-Boolean (multilinear) objective that the
// facility location solver works on: the Hammer function.
//
// A Function is
//
//	constant + Σ_S coef(S) · Π_{i∈S} y_i,   y_i ∈ {0,1}
//
// where every S is a canonical Subset of plant indices. The variable y_i is 1
// when plant i is CLOSED and 0 when it is open. Under that polarity the
// Hammer reduction reads naturally:
//
//   - fixed costs:  f_j − f_j·y_j          (f_j is paid iff j is open)
//   - customer c with plants sorted p_0, p_1, … by ascending cost:
//     t_c(p_0) + Σ_{k≥1} (t_c(p_k) − t_c(p_{k−1}))·y_{p_0}…y_{p_{k−1}}
//     (the k-th increment is paid iff every cheaper plant is closed)
//
// so for any configuration with at least one open plant, Function.Cost equals
// the instance's true cost. Every non-singleton coefficient produced by Build
// is ≥ 0, and Simplify preserves that; the reduction rules depend on it.
//
// Functions are immutable values. Build creates one, Simplify derives a new
// one from a Function and the per-plant Decisions; nothing mutates a
// Function in place. Terms are kept in canonical order (lexicographic over
// their subsets), which makes every floating-point accumulation, and so
// every derived Function, reproducible.
//
// Decisions model the per-plant lifecycle as a tagged variant:
//
//	Free ──► Open            (finalized)
//	     ├─► Closed          (finalized)
//	     └─► TentativeOpen   (sign-partition commitment, folded like Open)
//
// A decided plant never returns to Free.
package pbf
