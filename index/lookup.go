package index

import (
	"sort"

	"framix/addr"
	"framix/keyops"
)

// Semantics selects how Lookup treats a key that is absent (or whose
// address the check predicate rejects).
type Semantics int

const (
	// Exact accepts only the queried key itself.
	Exact Semantics = iota
	// NearestSmaller falls back to the largest key at or below the query.
	NearestSmaller
	// NearestGreater falls back to the smallest key at or above the query.
	NearestGreater
)

func (s Semantics) String() string {
	switch s {
	case Exact:
		return "Exact"
	case NearestSmaller:
		return "NearestSmaller"
	case NearestGreater:
		return "NearestGreater"
	default:
		return "Unknown"
	}
}

// Lookup finds a key under the given semantics. check filters candidate
// addresses — the series layer passes a predicate that rejects addresses
// whose backing cell is missing; nil accepts every address. The returned
// key is the key actually found, which under nearest semantics may differ
// from the queried one.
//
// An exact hit whose address fails check is not returned: with Exact
// semantics the lookup misses, and with nearest semantics the scan
// continues downward (NearestSmaller) or upward (NearestGreater) from the
// hit. Nearest fallback requires an ordered index; on an unordered index
// only exact hits can succeed.
func (ix *Index[K]) Lookup(key K, sem Semantics, check func(addr.Address) bool) (K, addr.Address, bool) {
	if check == nil {
		check = func(addr.Address) bool { return true }
	}
	var zero K

	if a, hit := ix.lookup[key]; hit {
		if check(a) {
			return key, a, true
		}
		if sem == Exact {
			return zero, addr.None, false
		}
		// Failed check on an exact hit: continue scanning past it.
		if !ix.IsOrdered() {
			return zero, addr.None, false
		}
		switch sem {
		case NearestSmaller:
			return ix.scanDown(int(a)-1, check)
		default:
			return ix.scanUp(int(a)+1, check)
		}
	}

	if sem == Exact || !ix.IsOrdered() {
		return zero, addr.None, false
	}

	// pos is the position of the smallest key >= the query.
	pos, ok := ix.lowerBound(key)
	if !ok {
		return zero, addr.None, false
	}
	switch sem {
	case NearestSmaller:
		return ix.scanDown(pos-1, check)
	default:
		return ix.scanUp(pos, check)
	}
}

// lowerBound returns the position of the first key >= target. ok is false
// when the comparator cannot order the target against the keys.
func (ix *Index[K]) lowerBound(target K) (int, bool) {
	failed := false
	pos := sort.Search(len(ix.keys), func(i int) bool {
		c := ix.ops.Compare(ix.keys[i], target)
		if c == keyops.Incomparable {
			failed = true
			return true
		}
		return c >= 0
	})
	if failed {
		return 0, false
	}
	return pos, true
}

func (ix *Index[K]) scanDown(from int, check func(addr.Address) bool) (K, addr.Address, bool) {
	for i := from; i >= 0; i-- {
		if check(addr.Address(i)) {
			return ix.keys[i], addr.Address(i), true
		}
	}
	var zero K
	return zero, addr.None, false
}

func (ix *Index[K]) scanUp(from int, check func(addr.Address) bool) (K, addr.Address, bool) {
	for i := from; i < len(ix.keys); i++ {
		if check(addr.Address(i)) {
			return ix.keys[i], addr.Address(i), true
		}
	}
	var zero K
	return zero, addr.None, false
}
