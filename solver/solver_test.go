// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/katalvlaran/uflp/bound"
	"github.com/katalvlaran/uflp/instance"
	"github.com/katalvlaran/uflp/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func mustSolve(t *testing.T, in *instance.Instance, opts ...solver.Option) *solver.Solver {
	t.Helper()
	s, err := solver.New(in, opts...)
	require.NoError(t, err)
	require.NoError(t, s.Solve())
	require.Equal(t, solver.Solved, s.State())

	return s
}

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

func TestSolve_SinglePlant(t *testing.T) {
	in, err := instance.New([]float64{10}, [][]float64{{5}})
	require.NoError(t, err)
	s := mustSolve(t, in)

	cost, err := s.MinimumCost()
	require.NoError(t, err)
	assert.Equal(t, 15.0, cost)

	open, err := s.PlantsToOpen()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, open)
}

func TestSolve_TwoPlants(t *testing.T) {
	in, err := instance.New([]float64{10, 1}, [][]float64{{5, 3}})
	require.NoError(t, err)
	s := mustSolve(t, in)

	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.MinimumCost)
	assert.Equal(t, []int{1}, res.PlantsToOpen)
	assert.Equal(t, 1, res.Stats.KhumawalaOpened)
	assert.Equal(t, 1, res.Stats.KhumawalaClosed)
	assert.Zero(t, res.Stats.Residual)
	assert.Zero(t, res.Stats.Assignments, "k = 0 performs no enumeration")
	assert.True(t, math.IsNaN(res.RelaxationBound))

	lb, err := s.LowerBound()
	require.NoError(t, err)
	assert.Equal(t, 4.0, lb) // 3 + min(10, 1)

	rel, err := s.MaxRelativeError()
	require.NoError(t, err)
	assert.Equal(t, 0.0, rel)
}

func TestSolve_RulesOnlyMatchBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		m := 1 + int(seed%8)
		n := 1 + int((seed/8)%8)
		in, err := instance.Random(m, n, instance.WithSeed(seed))
		require.NoError(t, err)

		s := mustSolve(t, in, solver.WithoutHeuristics())
		cost, err := s.MinimumCost()
		require.NoError(t, err)
		assert.InDelta(t, bruteForce(t, in), cost, tol, "seed %d (m=%d n=%d)", seed, m, n)

		open, err := s.PlantsToOpen()
		require.NoError(t, err)
		flags := make([]bool, m)
		for _, j := range open {
			flags[j] = true
		}
		direct, err := in.Cost(flags)
		require.NoError(t, err)
		assert.InDelta(t, direct, cost, tol, "reported plants reproduce the cost")
	}
}

func TestSolve_SignPartitionKeepsOptimum(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		in, err := instance.Random(8, 6, instance.WithSeed(seed))
		require.NoError(t, err)

		s := mustSolve(t, in, solver.WithoutGreedy())
		cost, err := s.MinimumCost()
		require.NoError(t, err)
		assert.InDelta(t, bruteForce(t, in), cost, tol, "seed %d", seed)
	}
}

func TestSolve_BetaZeroIsPlainSearch(t *testing.T) {
	in, err := instance.Random(8, 8, instance.WithSeed(4))
	require.NoError(t, err)

	s := mustSolve(t, in, solver.WithBeta(0))
	res, err := s.Result()
	require.NoError(t, err)
	assert.Zero(t, res.Stats.Iterations)
	assert.Equal(t, 8, res.Stats.Residual)
	assert.Equal(t, uint64(255), res.Stats.Assignments)
	assert.InDelta(t, bruteForce(t, in), res.MinimumCost, tol)
}

func TestSolve_LowerBoundIsValid(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		in, err := instance.Random(10, 12, instance.WithSeed(seed))
		require.NoError(t, err)

		s := mustSolve(t, in, solver.WithRelaxationBound())
		res, err := s.Result()
		require.NoError(t, err)
		assert.LessOrEqual(t, res.LowerBound, res.MinimumCost+tol)
		require.False(t, math.IsNaN(res.RelaxationBound))
		assert.LessOrEqual(t, res.RelaxationBound, res.MinimumCost+1e-6)
		assert.InDelta(t, bound.Simple(in), res.LowerBound, tol)

		rel, err := s.MaxRelativeError()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rel, -tol)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	in, err := instance.Random(18, 12, instance.WithSeed(77))
	require.NoError(t, err)

	opts := []solver.Option{solver.WithAlpha(0.2), solver.WithBeta(0.9), solver.WithWorkers(4)}
	a, err := mustSolve(t, in, opts...).Result()
	require.NoError(t, err)
	b, err := mustSolve(t, in, opts...).Result()
	require.NoError(t, err)

	assert.Equal(t, a.MinimumCost, b.MinimumCost)
	assert.Equal(t, a.PlantsToOpen, b.PlantsToOpen)
	assert.Equal(t, a.Stats, b.Stats)
}

func TestSolve_CapacityExceeded(t *testing.T) {
	in, err := instance.Random(30, 5, instance.WithSeed(1))
	require.NoError(t, err)
	s, err := solver.New(in, solver.WithBeta(0), solver.WithMaxAssignments(1<<10))
	require.NoError(t, err)

	err = s.Solve()
	assert.ErrorIs(t, err, solver.ErrCapacityExceeded)
	assert.Equal(t, solver.Failed, s.State())
	assert.ErrorIs(t, s.Solve(), solver.ErrCapacityExceeded, "failure is terminal")

	_, err = s.MinimumCost()
	assert.ErrorIs(t, err, solver.ErrNotSolved)
}

func TestAccessorsBeforeSolve(t *testing.T) {
	in, err := instance.New([]float64{1}, [][]float64{{1}})
	require.NoError(t, err)
	s, err := solver.New(in)
	require.NoError(t, err)
	assert.Equal(t, solver.Unsolved, s.State())

	_, err = s.MinimumCost()
	assert.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = s.LowerBound()
	assert.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = s.RelaxationBound()
	assert.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = s.PlantsToOpen()
	assert.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = s.ExecutionTime()
	assert.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = s.MaxRelativeError()
	assert.ErrorIs(t, err, solver.ErrNotSolved)
	_, err = s.Result()
	assert.ErrorIs(t, err, solver.ErrNotSolved)
}

func TestSolveTwice(t *testing.T) {
	in, err := instance.New([]float64{1}, [][]float64{{1}})
	require.NoError(t, err)
	s := mustSolve(t, in)
	assert.ErrorIs(t, s.Solve(), solver.ErrAlreadySolved)

	d, err := s.ExecutionTime()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int64(d), int64(0))
}

func TestPlantsToOpenIsACopy(t *testing.T) {
	in, err := instance.New([]float64{10, 1}, [][]float64{{5, 3}})
	require.NoError(t, err)
	s := mustSolve(t, in)

	open, err := s.PlantsToOpen()
	require.NoError(t, err)
	open[0] = 99
	again, err := s.PlantsToOpen()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, again)
}

func TestMaxRelativeError_ZeroBound(t *testing.T) {
	zero, err := instance.New([]float64{0, 0}, [][]float64{{0, 0}})
	require.NoError(t, err)
	rel, err := mustSolve(t, zero).MaxRelativeError()
	require.NoError(t, err)
	assert.Equal(t, 0.0, rel)
}

func TestNew_Errors(t *testing.T) {
	_, err := solver.New(nil)
	assert.ErrorIs(t, err, solver.ErrNilInstance)

	assert.Panics(t, func() { solver.WithAlpha(-0.1) })
	assert.Panics(t, func() { solver.WithAlpha(math.NaN()) })
	assert.Panics(t, func() { solver.WithBeta(1.5) })
	assert.Panics(t, func() { solver.WithWorkers(0) })
	assert.Panics(t, func() { solver.WithMaxAssignments(0) })
	assert.Panics(t, func() { solver.WithRelaxationBound(0) })
}

func TestWithLogger(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 2})

	in, err := instance.Random(6, 6, instance.WithSeed(2))
	require.NoError(t, err)
	mustSolve(t, in, solver.WithLogger(logger))

	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "solver")
	assert.Contains(t, lines[0], `"prepared"`)
	assert.Contains(t, lines[len(lines)-1], `"searched"`)
}
