// SPDX-License-Identifier: MIT

// Package rules fixes plant decisions on a Hammer function (see package pbf).
//
// Every rule takes the current pbf.Function and pbf.Decisions and returns a
// Step: new decisions, the simplified function and counters. Inputs are never
// mutated.
//
// Sound reductions (Khumawala):
//
//   - Rule 1 (open):  the singleton coefficient of plant i is ≥ 0.
//     Every non-singleton coefficient is ≥ 0, so ∂f/∂y_i ≥ linear(i) ≥ 0 and
//     y_i = 0 (open) is never worse.
//   - Rule 2 (close): otherwise, the sum of all coefficients of terms that
//     contain i is < 0. Then ∂f/∂y_i ≤ total(i) < 0 and y_i = 1 (closed) is
//     strictly better, provided another plant is already open; the rule is
//     held back until one is, so the rules can never close every plant.
//
// Heuristics:
//
//   - GreedyOpen (H1): open the plants with positive total weight among the
//     top ⌊m·α⌋ plants ranked by total weight. Fast, not proof-backed.
//   - SignPartition (H2): plants that occur only in terms with non-negative
//     coefficients become TentativeOpen. For such a plant f is
//     non-decreasing in y_i, so the commitment is never contradicted later.
package rules
