// Package keyops bundles the capabilities an index needs from its key type:
// equality (via the comparable constraint) and an optional total order.
// Comparators return -1, 0, or 1 for ordering, or Incomparable when the two
// values admit no order; an index built over keys whose comparator yields
// Incomparable degrades to unordered behavior instead of failing.
package keyops

import "golang.org/x/exp/constraints"

// Incomparable is returned by comparators for value pairs that cannot be
// ordered (type mismatch, NULL-like values, keys with no usable order).
const Incomparable = -2

// Ops is the capability record for a key type.
type Ops[K comparable] struct {
	// Compare returns -1, 0, 1, or Incomparable.
	Compare func(a, b K) int
	// Ordered reports whether Compare defines a usable total order.
	// When false, ordering detection is skipped entirely.
	Ordered bool
}

// For returns the capability record for any naturally ordered key type.
func For[K constraints.Ordered]() Ops[K] {
	return Ops[K]{
		Compare: func(a, b K) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		},
		Ordered: true,
	}
}

// FromCompare wraps a caller-supplied comparator.
func FromCompare[K comparable](cmp func(a, b K) int) Ops[K] {
	return Ops[K]{Compare: cmp, Ordered: true}
}

// Unordered returns a capability record for key types that support only
// equality. Compare always yields Incomparable.
func Unordered[K comparable]() Ops[K] {
	return Ops[K]{
		Compare: func(a, b K) int { return Incomparable },
		Ordered: false,
	}
}
