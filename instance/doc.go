// SPDX-License-Identifier: MIT

// Package instance holds the immutable input of an Uncapacitated Facility
// Location Problem (UFLP) and the cheap precomputations every solver phase
// relies on.
//
// An Instance has m candidate plants and n customers:
//
//   - FixedCost(j)        – cost of opening plant j (m values, ≥ 0).
//   - TransportCost(c, j) – cost of serving customer c from plant j (n×m, ≥ 0).
//
// The total cost of a set of open plants O is
//
//	Σ_{j∈O} FixedCost(j) + Σ_c min_{j∈O} TransportCost(c, j)
//
// and is undefined when O is empty.
//
// Precomputations:
//
//   - CostOrder: for every customer, plant indices stably sorted by ascending
//     transport cost (ties keep index order). O(n·m·log m).
//
// Lower bounds on the optimum live in package bound.
//
// Capacities and demands are not modelled.
//
// Errors (sentinel, all wrap ErrMalformed):
//
//   - ErrEmpty             – no plants or no customers.
//   - ErrDimensionMismatch – a transport row does not have m entries.
//   - ErrNegativeCost      – a fixed or transport cost is below zero.
//   - ErrNonFinite         – a cost is NaN or ±Inf.
//
// Random produces reproducible synthetic instances for benchmarks and tests.
package instance
