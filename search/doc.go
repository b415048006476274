// SPDX-License-Identifier: MIT

// Package search minimizes the residual Hammer function left after the
// reduction phase by explicit enumeration.
//
// The k Free plants of a pbf.Decisions vector are mapped to bits 0..k−1 of a
// uint64 mask (bit set = plant closed, y = 1). Every term of the simplified
// function is compiled into a mask over the same bits, so evaluating one
// assignment is a single pass of AND/compare over the terms.
//
// Feasibility: when no plant is open among the decided ones, the assignment
// that closes every Free plant is skipped; a solution always opens at least
// one plant.
//
// Determinism: masks are visited in ascending order and the strictly smaller
// value wins, so ties go to the lowest mask (the assignment closing the
// fewest low-index plants). Parallel runs split the mask range into
// contiguous chunks and reduce by (value, mask); they return exactly what a
// sequential run returns.
//
// Capacity: enumeration is refused with ErrCapacityExceeded when 2^k exceeds
// Options.MaxAssignments, or when k > 62 and the count cannot be represented.
//
// Complexity: O(2^k · T) time for T residual terms, O(T + m) memory.
package search
