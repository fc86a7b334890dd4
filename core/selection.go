// Package core - the Selection vector and its comparisons.
//
// A Selection is what every solver returns and what the cross-checks compare.
// Comparisons are exact: equal length and equal at every index.
package core

import "fmt"

// Selection is the per-item 0/1 vector: Selection[i] is true when item i is taken.
type Selection []bool

// NewSelection returns an all-zero selection for n items.
//
// Complexity: O(n).
func NewSelection(n int) Selection {
	return make(Selection, n)
}

// SelectionFromBits converts a 0/1 integer vector into a Selection.
// Any value other than 0 or 1 is rejected.
//
// Complexity: O(n).
func SelectionFromBits(bits []int) (Selection, error) {
	sel := make(Selection, len(bits))
	for i, b := range bits {
		switch b {
		case 0:
		case 1:
			sel[i] = true
		default:
			return nil, fmt.Errorf("core: selection bit %d is %d, want 0 or 1", i, b)
		}
	}

	return sel, nil
}

// Bits returns the selection as a 0/1 integer vector.
//
// Complexity: O(n).
func (s Selection) Bits() []int {
	bits := make([]int, len(s))
	for i, taken := range s {
		if taken {
			bits[i] = 1
		}
	}

	return bits
}

// Count returns the number of taken items.
//
// Complexity: O(n).
func (s Selection) Count() int {
	var n int
	for _, taken := range s {
		if taken {
			n++
		}
	}

	return n
}

// Indices returns the indices of taken items in ascending order.
//
// Complexity: O(n).
func (s Selection) Indices() []int {
	idx := make([]int, 0, s.Count())
	for i, taken := range s {
		if taken {
			idx = append(idx, i)
		}
	}

	return idx
}

// Clone returns an independent copy of s.
//
// Complexity: O(n).
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	out := make(Selection, len(s))
	copy(out, s)

	return out
}

// SameSelection reports whether a and b have the same length and agree at every index.
// There is no partial credit: a single mismatch fails the check.
//
// Complexity: O(n).
func SameSelection(a, b Selection) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Diff returns the indices where a and b disagree. When the lengths differ,
// every index past the shorter vector counts as a mismatch.
//
// Complexity: O(max(len(a), len(b))).
func Diff(a, b Selection) []int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	var out []int
	for i := 0; i < n; i++ {
		var x, y bool
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if i >= len(a) || i >= len(b) || x != y {
			out = append(out, i)
		}
	}

	return out
}
