// SPDX-License-Identifier: MIT

package pbf

import "fmt"

// Status is the decision state of one plant.
type Status uint8

const (
	// Free plants are still undecided and remain variables of the objective.
	Free Status = iota

	// Open is a finalized decision to open the plant (y = 0).
	Open

	// Closed is a finalized decision to close the plant (y = 1).
	Closed

	// TentativeOpen is an open commitment made by the sign-partition
	// heuristic. Simplify folds it exactly like Open, but it is reported
	// apart from finalized decisions.
	TentativeOpen
)

const (
	panicRedecide = "pbf: Decisions.Fix: plant %d is already %s"
	panicFixFree  = "pbf: Decisions.Fix: plant %d cannot be fixed to free"
)

func (s Status) String() string {
	switch s {
	case Free:
		return "free"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case TentativeOpen:
		return "tentative-open"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// IsOpen reports whether the plant is open, finalized or tentatively.
func (s Status) IsOpen() bool { return s == Open || s == TentativeOpen }

// Decided reports whether the plant left the Free state.
func (s Status) Decided() bool { return s != Free }

// Finalized reports whether the decision is locked (Open or Closed).
func (s Status) Finalized() bool { return s == Open || s == Closed }

// Decisions holds one Status per plant, indexed by plant.
type Decisions []Status

// NewDecisions returns m Free statuses.
func NewDecisions(m int) Decisions { return make(Decisions, m) }

// Clone returns an independent copy.
func (d Decisions) Clone() Decisions {
	out := make(Decisions, len(d))
	copy(out, d)

	return out
}

// Fix records a decision for a Free plant. Re-deciding a plant, or "fixing"
// it to Free, is a programmer error and panics.
func (d Decisions) Fix(i int, s Status) {
	if s == Free {
		panic(fmt.Sprintf(panicFixFree, i))
	}
	if d[i] != Free {
		panic(fmt.Sprintf(panicRedecide, i, d[i]))
	}
	d[i] = s
}

// Count returns how many plants carry any of the given statuses.
func (d Decisions) Count(statuses ...Status) int {
	var (
		n  int
		st Status
		w  Status
	)
	for _, st = range d {
		for _, w = range statuses {
			if st == w {
				n++
				break
			}
		}
	}

	return n
}

// Decided returns the number of plants that are not Free.
func (d Decisions) Decided() int { return len(d) - d.Count(Free) }

// AnyOpen reports whether at least one plant is Open or TentativeOpen.
func (d Decisions) AnyOpen() bool {
	for _, st := range d {
		if st.IsOpen() {
			return true
		}
	}

	return false
}

// FreePlants returns the ascending indices of Free plants.
func (d Decisions) FreePlants() []int {
	out := make([]int, 0, len(d))
	for i, st := range d {
		if st == Free {
			out = append(out, i)
		}
	}

	return out
}

// OpenPlants returns the ascending indices of Open or TentativeOpen plants.
func (d Decisions) OpenPlants() []int {
	out := make([]int, 0, len(d))
	for i, st := range d {
		if st.IsOpen() {
			out = append(out, i)
		}
	}

	return out
}
