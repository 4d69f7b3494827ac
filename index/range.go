package index

import (
	"framix/addr"
	"framix/vector"
)

// Behavior selects whether a range bound includes its key.
type Behavior int

const (
	Inclusive Behavior = iota
	Exclusive
)

// Bound is one end of a key range. A nil *Bound means the natural end of
// the index.
type Bound[K any] struct {
	Key      K
	Behavior Behavior
}

// Linearize rewrites any index implementation into the canonical linear
// one: the implementation's key iteration order becomes the address order,
// and an upfront Relocate adjusts the plan so later operations see the
// canonical layout. A linear index passes through untouched.
func Linearize[K comparable](ix Keyed[K], v vector.Node) (*Index[K], vector.Node) {
	if lin, ok := ix.(*Index[K]); ok {
		return lin, v
	}
	maps := ix.Mappings()
	keys := make([]K, len(maps))
	pairs := make([]vector.Pair, len(maps))
	for i, m := range maps {
		keys[i] = m.Key
		pairs[i] = vector.Pair{New: addr.Address(i), Old: m.Addr}
	}
	lin := mustNew(keys, ix.Ops(), ix.IsOrdered())
	return lin, &vector.Relocate{Source: v, Range: addr.RangeOf(len(maps)), Pairs: pairs}
}

// GetRange slices the index to the keys between lo and hi. The lower
// bound resolves to the nearest key at or above it, the upper to the
// nearest at or below; an Exclusive bound then steps one address inward.
// A bound that cannot be resolved, or bounds that cross, yield the empty
// index with an Empty plan. The result inherits the input's ordering.
func GetRange[K comparable](ix Keyed[K], lo, hi *Bound[K], v vector.Node) (*Index[K], vector.Node) {
	lin, lv := Linearize(ix, v)

	loA := addr.Address(0)
	hiA := addr.Address(lin.Len() - 1)
	if lo != nil {
		_, a, ok := lin.Lookup(lo.Key, NearestGreater, nil)
		if !ok {
			return emptyLike(lin), &vector.Empty{}
		}
		loA = a
		if lo.Behavior == Exclusive {
			loA = loA.Inc()
		}
	}
	if hi != nil {
		_, a, ok := lin.Lookup(hi.Key, NearestSmaller, nil)
		if !ok {
			return emptyLike(lin), &vector.Empty{}
		}
		hiA = a
		if hi.Behavior == Exclusive {
			hiA = hiA.Dec()
		}
	}
	if loA > hiA {
		return emptyLike(lin), &vector.Empty{}
	}

	keys := lin.keys[loA : hiA+1]
	out := mustNew(keys, lin.ops, lin.IsOrdered())
	return out, &vector.GetRange{Source: lv, Range: addr.Range{Lo: loA, Hi: hiA}}
}

func emptyLike[K comparable](ix *Index[K]) *Index[K] {
	return mustNew(nil, ix.ops, ix.IsOrdered())
}
