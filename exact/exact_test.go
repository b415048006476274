// SPDX-License-Identifier: MIT

package exact_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/uflp/exact"
	"github.com/katalvlaran/uflp/instance"
	"github.com/katalvlaran/uflp/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bruteForce(t *testing.T, in *instance.Instance) float64 {
	t.Helper()
	m := in.Plants()
	best := math.Inf(1)
	for mask := 1; mask < 1<<m; mask++ {
		open := make([]bool, m)
		for j := range open {
			open[j] = mask&(1<<j) != 0
		}
		c, err := in.Cost(open)
		require.NoError(t, err)
		best = math.Min(best, c)
	}

	return best
}

func TestSolve_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		fixed     []float64
		transport [][]float64
		cost      float64
		open      []int
	}{
		{"single plant", []float64{10}, [][]float64{{5}}, 15, []int{0}},
		{"two plants", []float64{10, 1}, [][]float64{{5, 3}}, 4, []int{1}},
		{"two customers", []float64{4, 4}, [][]float64{{1, 9}, {9, 1}}, 10, []int{0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := instance.New(tc.fixed, tc.transport)
			require.NoError(t, err)

			sol, err := exact.Solve(in, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.cost, sol.Cost)
			assert.Equal(t, int(tc.cost), sol.Weight)
			assert.Equal(t, tc.open, sol.Open)
		})
	}
}

func TestSolve_MatchesBruteForceAndSolver(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		in, err := instance.Random(6, 5, instance.WithSeed(seed), instance.WithIntegral())
		require.NoError(t, err)

		sol, err := exact.Solve(in, 1)
		require.NoError(t, err)
		assert.InDelta(t, bruteForce(t, in), sol.Cost, 1e-9, "seed %d", seed)
		assert.Equal(t, sol.Cost, float64(sol.Weight))

		s, err := solver.New(in, solver.WithoutHeuristics())
		require.NoError(t, err)
		require.NoError(t, s.Solve())
		cost, err := s.MinimumCost()
		require.NoError(t, err)
		assert.InDelta(t, sol.Cost, cost, 1e-9, "seed %d", seed)
	}
}

func TestSolve_Scale(t *testing.T) {
	in, err := instance.New([]float64{2.5, 0.5}, [][]float64{{1.5, 3}})
	require.NoError(t, err)

	_, err = exact.Solve(in, 1)
	assert.ErrorIs(t, err, exact.ErrNonIntegral)

	sol, err := exact.Solve(in, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, sol.Cost)
	assert.Equal(t, 7, sol.Weight)
	assert.Equal(t, []int{1}, sol.Open)
}

func TestSolve_ZeroCosts(t *testing.T) {
	in, err := instance.New([]float64{0, 3}, [][]float64{{0, 0}, {2, 0}})
	require.NoError(t, err)

	type outcome struct {
		sol exact.Solution
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		sol, err := exact.Solve(in, 1)
		done <- outcome{sol, err}
	}()

	select {
	case got := <-done:
		require.NoError(t, got.err)
		assert.Equal(t, 2.0, got.sol.Cost)
		assert.Equal(t, []int{0}, got.sol.Open)
	case <-time.After(10 * time.Second):
		t.Fatal("exact.Solve did not terminate on zero-cost plants")
	}
}

func TestSolve_BadInput(t *testing.T) {
	in, err := instance.New([]float64{1}, [][]float64{{1}})
	require.NoError(t, err)

	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = exact.Solve(in, scale)
		assert.ErrorIs(t, err, exact.ErrBadScale, "scale %v", scale)
	}

	big, err := instance.New([]float64{3e9}, [][]float64{{1}})
	require.NoError(t, err)
	_, err = exact.Solve(big, 1)
	assert.ErrorIs(t, err, exact.ErrWeightOverflow)
}
