// SPDX-License-Identifier: MIT

package pbf

import (
	"encoding/binary"
	"slices"
)

// Subset is a canonical set of plant indices: strictly ascending, no
// duplicates. Its Key is the map key of a term, so canonical form must hold
// before every insert or lookup; NewSubset guarantees it.
type Subset []int

// NewSubset copies vars, sorts them and removes duplicates.
func NewSubset(vars ...int) Subset {
	s := make(Subset, len(vars))
	copy(s, vars)
	slices.Sort(s)

	return slices.Compact(s)
}

// Key returns an injective encoding of the subset. Indices are written as
// unsigned varints, which are self-delimiting, so distinct canonical
// subsets always map to distinct keys.
func (s Subset) Key() string {
	buf := make([]byte, 0, 2*len(s))
	for _, v := range s {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// Contains reports whether v is in the subset. O(log |s|).
func (s Subset) Contains(v int) bool {
	_, ok := slices.BinarySearch(s, v)

	return ok
}

// Compare orders subsets lexicographically; a proper prefix sorts first.
func (s Subset) Compare(o Subset) int { return slices.Compare(s, o) }

// insertSorted returns s with v inserted at its sorted position. s must be
// canonical and must not contain v. The result shares no storage with s.
func insertSorted(s Subset, v int) Subset {
	pos, _ := slices.BinarySearch(s, v)
	out := make(Subset, 0, len(s)+1)
	out = append(out, s[:pos]...)
	out = append(out, v)

	return append(out, s[pos:]...)
}
