// SPDX-License-Identifier: MIT

package pbf

import (
	"slices"
	"strconv"
	"strings"
)

// Term is one monomial coef·Π_{i∈Vars} y_i. Vars is never empty inside a
// Function; empty products live in the constant.
type Term struct {
	Vars Subset
	Coef float64
}

// Function is an immutable pseudo-Boolean objective. The zero value is the
// constant function 0.
type Function struct {
	constant float64
	terms    []Term // canonical order, unique subsets
	index    map[string]int
}

// Constant returns the constant term.
func (f Function) Constant() float64 { return f.constant }

// Len returns the number of non-constant terms.
func (f Function) Len() int { return len(f.terms) }

// Terms returns a deep copy of the terms in canonical order.
func (f Function) Terms() []Term {
	out := make([]Term, len(f.terms))
	for i, t := range f.terms {
		out[i] = Term{Vars: slices.Clone(t.Vars), Coef: t.Coef}
	}

	return out
}

// Coefficient returns the coefficient of the subset formed by vars, or 0
// when the function has no such term. vars need not be sorted.
func (f Function) Coefficient(vars ...int) float64 {
	s := NewSubset(vars...)
	if len(s) == 0 {
		return f.constant
	}
	if i, ok := f.index[s.Key()]; ok {
		return f.terms[i].Coef
	}

	return 0
}

// Variables returns the ascending plant indices that occur in any term.
func (f Function) Variables() []int {
	seen := make(map[int]struct{})
	for _, t := range f.terms {
		for _, v := range t.Vars {
			seen[v] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Eval returns the value at y, where y[i] is true when plant i is closed.
// y must cover every variable of f.
func (f Function) Eval(y []bool) float64 {
	var (
		total = f.constant
		t     Term
		v     int
		all   bool
	)
	for _, t = range f.terms {
		all = true
		for _, v = range t.Vars {
			if !y[v] {
				all = false
				break
			}
		}
		if all {
			total += t.Coef
		}
	}

	return total
}

// Cost evaluates f at the configuration where open[i] tells whether plant i
// is open, i.e. Eval with y = ¬open.
func (f Function) Cost(open []bool) float64 {
	y := make([]bool, len(open))
	for i, o := range open {
		y[i] = !o
	}

	return f.Eval(y)
}

// Weights returns, for plants 0..m−1, the singleton coefficient (linear) and
// the sum of the coefficients of every term containing the plant (total).
func (f Function) Weights(m int) (linear, total []float64) {
	linear = make([]float64, m)
	total = make([]float64, m)

	var (
		t Term
		v int
	)
	for _, t = range f.terms {
		if len(t.Vars) == 1 {
			linear[t.Vars[0]] += t.Coef
		}
		for _, v = range t.Vars {
			total[v] += t.Coef
		}
	}

	return linear, total
}

// String renders f as "c + a·y0 + b·y0y3 …" in canonical term order.
func (f Function) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(f.constant, 'g', -1, 64))
	for _, t := range f.terms {
		if t.Coef < 0 {
			sb.WriteString(" - ")
			sb.WriteString(strconv.FormatFloat(-t.Coef, 'g', -1, 64))
		} else {
			sb.WriteString(" + ")
			sb.WriteString(strconv.FormatFloat(t.Coef, 'g', -1, 64))
		}
		sb.WriteString("·")
		for _, v := range t.Vars {
			sb.WriteString("y")
			sb.WriteString(strconv.Itoa(v))
		}
	}

	return sb.String()
}

// accumulator collects terms for a Function under construction. It is the
// only mutable representation; function() freezes it.
type accumulator struct {
	constant float64
	terms    []Term
	index    map[string]int
}

func newAccumulator(constant float64, hint int) *accumulator {
	return &accumulator{
		constant: constant,
		terms:    make([]Term, 0, hint),
		index:    make(map[string]int, hint),
	}
}

// add accumulates coef onto the canonical subset s; the empty subset goes to
// the constant. s is retained, so callers must not mutate it afterwards.
func (a *accumulator) add(s Subset, coef float64) {
	if len(s) == 0 {
		a.constant += coef
		return
	}
	key := s.Key()
	if i, ok := a.index[key]; ok {
		a.terms[i].Coef += coef
		return
	}
	a.index[key] = len(a.terms)
	a.terms = append(a.terms, Term{Vars: s, Coef: coef})
}

// function sorts the terms canonically and rebuilds the index.
func (a *accumulator) function() Function {
	slices.SortFunc(a.terms, func(x, y Term) int { return x.Vars.Compare(y.Vars) })

	index := make(map[string]int, len(a.terms))
	for i, t := range a.terms {
		index[t.Vars.Key()] = i
	}

	return Function{constant: a.constant, terms: a.terms, index: index}
}

// New builds a Function from a constant and terms. Term subsets are
// canonicalized and duplicates are summed; terms with an empty subset are
// folded into the constant. Mostly useful for tests and small examples.
func New(constant float64, terms ...Term) Function {
	acc := newAccumulator(constant, len(terms))
	for _, t := range terms {
		acc.add(NewSubset(t.Vars...), t.Coef)
	}

	return acc.function()
}
