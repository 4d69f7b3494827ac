package index

import (
	"errors"

	"framix/addr"
	"framix/keyops"
	"framix/vector"
)

// JoinKind selects the alignment a series join asks for. The core exposes
// Union (outer), Intersect (inner) and Reindex (left/right); the series
// layer maps a JoinKind onto those.
type JoinKind int

const (
	Inner JoinKind = iota
	Outer
	Left
	Right
)

// align merges two indices: an ordered merge when both sides are ordered,
// degrading to the unordered concatenation when either side is unordered
// or the comparator fails mid-merge. ordered reports whether the merged
// key sequence is sorted.
func align[K comparable](l, r *Index[K]) (pairs []pairing[K], ordered bool) {
	if l.IsOrdered() && r.IsOrdered() {
		merged, err := alignOrdered(l.Mappings(), r.Mappings(), l.ops.Compare)
		if err == nil {
			return merged, true
		}
		var cf *keyops.ComparisonFailedError
		if !errors.As(err, &cf) {
			panic("index: unexpected alignment error: " + err.Error())
		}
	}
	return alignUnordered(l.Mappings(), r.Mappings()), false
}

// relocations splits an alignment into the two relocation pair lists: the
// i-th pairing's left and right addresses both land at result address i.
func relocations[K comparable](pairs []pairing[K]) (left, right []vector.Pair) {
	for i, p := range pairs {
		if p.left != addr.None {
			left = append(left, vector.Pair{New: addr.Address(i), Old: p.left})
		}
		if p.right != addr.None {
			right = append(right, vector.Pair{New: addr.Address(i), Old: p.right})
		}
	}
	return left, right
}

// Union merges two indices into one containing every key of either side.
// The result is ordered when both inputs are ordered and the merge
// succeeds; otherwise keys follow the unordered concatenation order
// L ++ (R \ keys(L)). The two returned plans relocate the left and right
// vectors onto the merged address range; slots a side does not cover are
// missing.
func Union[K comparable](l, r *Index[K], lv, rv vector.Node) (*Index[K], vector.Node, vector.Node) {
	pairs, ordered := align(l, r)
	keys := make([]K, len(pairs))
	for i, p := range pairs {
		keys[i] = p.key
	}
	lp, rp := relocations(pairs)
	rng := addr.RangeOf(len(pairs))
	merged := mustNew(keys, l.ops, ordered)
	return merged,
		&vector.Relocate{Source: lv, Range: rng, Pairs: lp},
		&vector.Relocate{Source: rv, Range: rng, Pairs: rp}
}

// Append aligns two indices like Union and folds the two relocated
// vectors into one under the given transform.
func Append[K comparable](l, r *Index[K], lv, rv vector.Node, how vector.Transform) (*Index[K], vector.Node) {
	merged, lp, rp := Union(l, r, lv, rv)
	return merged, &vector.Combine{Left: lp, Right: rp, How: how}
}

// Intersect merges two indices keeping only the keys present on both
// sides. Ordering behaves as for Union.
func Intersect[K comparable](l, r *Index[K], lv, rv vector.Node) (*Index[K], vector.Node, vector.Node) {
	pairs, ordered := align(l, r)
	var keys []K
	var lp, rp []vector.Pair
	at := addr.Address(0)
	for _, p := range pairs {
		if p.left == addr.None || p.right == addr.None {
			continue
		}
		keys = append(keys, p.key)
		lp = append(lp, vector.Pair{New: at, Old: p.left})
		rp = append(rp, vector.Pair{New: at, Old: p.right})
		at++
	}
	rng := addr.RangeOf(len(keys))
	common := mustNew(keys, l.ops, ordered)
	return common,
		&vector.Relocate{Source: lv, Range: rng, Pairs: lp},
		&vector.Relocate{Source: rv, Range: rng, Pairs: rp}
}

// Project returns the index and plan unchanged; a linear index is already
// fully evaluated.
func Project[K comparable](ix *Index[K], v vector.Node) (*Index[K], vector.Node) {
	return ix, v
}

// WithKeys maps every address through f and keeps the rows for which f
// yields a key, in their original address order. The result is always
// unordered. Duplicate mapped keys return a DuplicateKeyError.
func WithKeys[K, K2 comparable](ix *Index[K], f func(a addr.Address) (K2, bool), v vector.Node, ops2 keyops.Ops[K2]) (*Index[K2], vector.Node, error) {
	var keys []K2
	var pairs []vector.Pair
	for a := addr.Address(0); int(a) < ix.Len(); a++ {
		k2, ok := f(a)
		if !ok {
			continue
		}
		pairs = append(pairs, vector.Pair{New: addr.Address(len(keys)), Old: a})
		keys = append(keys, k2)
	}
	out, err := NewWithOrder(keys, ops2, false)
	if err != nil {
		return nil, nil, err
	}
	return out, &vector.Relocate{Source: v, Range: addr.RangeOf(len(keys)), Pairs: pairs}, nil
}

// Reindex builds the plan that rearranges a vector keyed by l onto the
// key layout of r: for every key of r found in l (under the given
// semantics and check predicate), the cell at the found address moves to
// that key's address in r. Keys that miss leave their slot missing. The
// resulting vector is indexed by r, so only the plan is returned.
func Reindex[K comparable](l, r *Index[K], sem Semantics, v vector.Node, check func(addr.Address) bool) vector.Node {
	var pairs []vector.Pair
	for _, m := range r.Mappings() {
		if _, found, ok := l.Lookup(m.Key, sem, check); ok {
			pairs = append(pairs, vector.Pair{New: m.Addr, Old: found})
		}
	}
	return &vector.Relocate{Source: v, Range: r.Range(), Pairs: pairs}
}

// LookupLevel keeps the rows whose key satisfies matches, re-addressed
// from zero in their original order. The result inherits the input's
// ordering.
func LookupLevel[K comparable](ix *Index[K], matches func(K) bool, v vector.Node) (*Index[K], vector.Node) {
	var keys []K
	var pairs []vector.Pair
	for _, m := range ix.Mappings() {
		if !matches(m.Key) {
			continue
		}
		pairs = append(pairs, vector.Pair{New: addr.Address(len(keys)), Old: m.Addr})
		keys = append(keys, m.Key)
	}
	out := mustNew(keys, ix.ops, ix.IsOrdered())
	return out, &vector.Relocate{Source: v, Range: addr.RangeOf(len(keys)), Pairs: pairs}
}

// DropItem removes a single key. It returns a KeyNotFoundError when the
// key is absent.
func DropItem[K comparable](ix *Index[K], k K, v vector.Node) (*Index[K], vector.Node, error) {
	a, ok := ix.lookup[k]
	if !ok {
		return nil, nil, &KeyNotFoundError{Key: k}
	}
	keys := make([]K, 0, len(ix.keys)-1)
	keys = append(keys, ix.keys[:a]...)
	keys = append(keys, ix.keys[a+1:]...)
	out := mustNew(keys, ix.ops, ix.IsOrdered())
	return out, &vector.DropRange{Source: v, Range: addr.Range{Lo: a, Hi: a}}, nil
}
