// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"

	"github.com/katalvlaran/uflp/instance"
	"github.com/katalvlaran/uflp/solver"
)

func ExampleSolver() {
	in, err := instance.New(
		[]float64{10, 1},
		[][]float64{{5, 3}},
	)
	if err != nil {
		panic(err)
	}

	s, err := solver.New(in)
	if err != nil {
		panic(err)
	}
	if err = s.Solve(); err != nil {
		panic(err)
	}

	cost, _ := s.MinimumCost()
	open, _ := s.PlantsToOpen()
	fmt.Println(cost, open)
	// Output: 4 [1]
}
