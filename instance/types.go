// SPDX-License-Identifier: MIT

package instance

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrMalformed is the umbrella sentinel for every rejected instance.
// All other construction errors wrap it, so errors.Is(err, ErrMalformed)
// holds for any of them.
var ErrMalformed = errors.New("instance: malformed instance")

var (
	// ErrEmpty indicates an instance without plants or without customers.
	ErrEmpty = fmt.Errorf("%w: no plants or no customers", ErrMalformed)

	// ErrDimensionMismatch indicates that a transport row length differs from
	// the number of plants declared by the fixed-cost vector.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrMalformed)

	// ErrNegativeCost indicates a negative fixed or transport cost.
	ErrNegativeCost = fmt.Errorf("%w: negative cost", ErrMalformed)

	// ErrNonFinite indicates a NaN or infinite cost.
	ErrNonFinite = fmt.Errorf("%w: non-finite cost", ErrMalformed)
)

// ErrNoOpenPlant is returned by Cost when the evaluated configuration opens
// no plant at all; such a configuration serves nobody and has no cost.
var ErrNoOpenPlant = errors.New("instance: no plant is open")

// ErrBadConfiguration is returned by Cost when the open-flags slice does not
// have one entry per plant.
var ErrBadConfiguration = errors.New("instance: configuration length mismatch")

// Instance is an immutable UFLP input. The zero value is not usable; build
// instances with New or Random.
type Instance struct {
	plants    int
	customers int

	// fixed[j] is the opening cost of plant j.
	fixed []float64

	// transport is n×m: row = customer, column = plant.
	transport *mat.Dense
}

// CostOrder lists, for every customer c, the plant indices sorted by
// non-decreasing TransportCost(c, ·). It is read-only once built.
type CostOrder [][]int
