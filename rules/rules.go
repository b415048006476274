// SPDX-License-Identifier: MIT

package rules

import (
	"math"
	"sort"

	"github.com/katalvlaran/uflp/pbf"
)

// DefaultAlpha is the share of plants considered by GreedyOpen.
const DefaultAlpha = 0.065

// Step is the outcome of applying one rule.
type Step struct {
	// Function is the input function simplified with Decisions.
	Function pbf.Function

	// Decisions extends the input decisions; it is a fresh slice.
	Decisions pbf.Decisions

	Opened    int // plants fixed to pbf.Open
	Closed    int // plants fixed to pbf.Closed
	Tentative int // plants set to pbf.TentativeOpen
}

// Fixed returns the number of plants this step decided.
func (s Step) Fixed() int { return s.Opened + s.Closed + s.Tentative }

// Khumawala applies both Khumawala rules once to every Free plant, using
// weights computed from f, then simplifies once.
//
// Rule 1 is evaluated for all plants first; rule 2 then runs only if some
// plant is open (counting the opens just made). Since rule 2 only ever looks
// at plants with a negative singleton coefficient, this is the same as
// testing "rule 1, else rule 2" per plant, except for the feasibility guard.
//
// Complexity: O(Σ|S| + m).
func Khumawala(f pbf.Function, d pbf.Decisions) Step {
	var (
		m             = len(d)
		next          = d.Clone()
		linear, total = f.Weights(m)
		step          Step
		i             int
	)
	for i = 0; i < m; i++ {
		if next[i] == pbf.Free && linear[i] >= 0 {
			next.Fix(i, pbf.Open)
			step.Opened++
		}
	}
	if next.AnyOpen() {
		for i = 0; i < m; i++ {
			if next[i] == pbf.Free && total[i] < 0 {
				next.Fix(i, pbf.Closed)
				step.Closed++
			}
		}
	}

	step.Decisions = next
	step.Function = pbf.Simplify(f, next)

	return step
}

// KhumawalaFixpoint repeats Khumawala until a pass fixes nothing and
// returns the accumulated step.
func KhumawalaFixpoint(f pbf.Function, d pbf.Decisions) Step {
	acc := Step{Function: pbf.Simplify(f, d), Decisions: d.Clone()}
	for {
		s := Khumawala(acc.Function, acc.Decisions)
		if s.Fixed() == 0 {
			return acc
		}
		acc.Function, acc.Decisions = s.Function, s.Decisions
		acc.Opened += s.Opened
		acc.Closed += s.Closed
	}
}

// GreedyOpen is heuristic H1. Every plant gets the sum of the coefficients
// of the terms containing it; plants are ranked by that weight, descending,
// ties by index. Among the first ⌊m·alpha⌋ ranked plants, the Free ones
// with a strictly positive weight are opened.
//
// A large positive weight means closing the plant is expensive in many
// terms; opening it is a guess, not a proof.
//
// Complexity: O(Σ|S| + m·log m).
func GreedyOpen(f pbf.Function, d pbf.Decisions, alpha float64) Step {
	var (
		m        = len(d)
		next     = d.Clone()
		_, total = f.Weights(m)
		rank     = make([]int, m)
		step     Step
		i        int
	)
	for i = 0; i < m; i++ {
		rank[i] = i
	}
	sort.SliceStable(rank, func(a, b int) bool { return total[rank[a]] > total[rank[b]] })

	var (
		top = int(math.Floor(float64(m) * alpha))
		p   int
	)
	for i = 0; i < top && i < m; i++ {
		p = rank[i]
		if next[p] == pbf.Free && total[p] > 0 {
			next.Fix(p, pbf.Open)
			step.Opened++
		}
	}

	step.Decisions = next
	step.Function = pbf.Simplify(f, next)

	return step
}

// SignPartition is heuristic H2. Y+ collects the plants of terms with a
// coefficient ≥ 0, Y− those of terms with a coefficient < 0; every Free
// plant in Y+ \ Y− becomes TentativeOpen.
//
// Complexity: O(Σ|S| + m).
func SignPartition(f pbf.Function, d pbf.Decisions) Step {
	var (
		m     = len(d)
		next  = d.Clone()
		plus  = make([]bool, m)
		minus = make([]bool, m)
		step  Step
		t     pbf.Term
		v, i  int
	)
	for _, t = range f.Terms() {
		for _, v = range t.Vars {
			if t.Coef >= 0 {
				plus[v] = true
			} else {
				minus[v] = true
			}
		}
	}
	for i = 0; i < m; i++ {
		if next[i] == pbf.Free && plus[i] && !minus[i] {
			next.Fix(i, pbf.TentativeOpen)
			step.Tentative++
		}
	}

	step.Decisions = next
	step.Function = pbf.Simplify(f, next)

	return step
}
