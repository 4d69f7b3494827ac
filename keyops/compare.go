package keyops

import (
	"strings"
	"time"
)

// Any returns a capability record for dynamically typed keys. It orders
// the value kinds a series commonly carries and yields Incomparable for
// nil or mismatched types.
func Any() Ops[any] {
	return Ops[any]{Compare: CompareValues, Ordered: true}
}

// CompareValues returns -1, 0, or 1 for ordering, or Incomparable if the
// values cannot be ordered (e.g. nil or type mismatch).
func CompareValues(a, b any) int {
	if a == nil || b == nil {
		return Incomparable
	}
	switch av := a.(type) {
	case int64:
		switch bv := b.(type) {
		case int64:
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		case float64:
			return compareFloat64(float64(av), bv)
		default:
			return Incomparable
		}
	case int:
		bv, ok := b.(int)
		if !ok {
			return Incomparable
		}
		return CompareValues(int64(av), int64(bv))
	case string:
		bv, ok := b.(string)
		if !ok {
			return Incomparable
		}
		return strings.Compare(av, bv)
	case float64:
		switch bv := b.(type) {
		case float64:
			return compareFloat64(av, bv)
		case int64:
			return compareFloat64(av, float64(bv))
		default:
			return Incomparable
		}
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return Incomparable
		}
		if av == bv {
			return 0
		}
		if !av && bv {
			return -1
		}
		return 1
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return Incomparable
		}
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		default:
			return 0
		}
	default:
		return Incomparable
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
