// SPDX-License-Identifier: MIT

package pbf

// Simplify folds every decided plant of d into f and returns the equivalent
// function over the Free plants only.
//
// Per term, in canonical order:
//   - any Open or TentativeOpen plant (y = 0): the product is 0, the term
//     disappears;
//   - otherwise Closed plants (y = 1) are dropped from the subset and the
//     coefficient accumulates onto the reduced subset, or onto the constant
//     when nothing is left;
//   - terms over Free plants only are carried unchanged.
//
// Simplify is idempotent: with no newly decided plants the output has the
// same subsets, coefficients and constant as the input.
//
// Complexity: O(Σ|S|) over the terms of f.
func Simplify(f Function, d Decisions) Function {
	acc := newAccumulator(f.constant, len(f.terms))

	var (
		t       Term
		v       int
		vanish  bool
		reduced Subset
		touched bool
	)
	for _, t = range f.terms {
		vanish, touched = false, false
		for _, v = range t.Vars {
			switch {
			case d[v].IsOpen():
				vanish = true
			case d[v] == Closed:
				touched = true
			}
			if vanish {
				break
			}
		}
		if vanish {
			continue
		}
		if !touched {
			acc.add(t.Vars, t.Coef)
			continue
		}

		reduced = make(Subset, 0, len(t.Vars))
		for _, v = range t.Vars {
			if d[v] == Free {
				reduced = append(reduced, v)
			}
		}
		acc.add(reduced, t.Coef)
	}

	return acc.function()
}
