package index

import (
	"github.com/google/btree"

	"framix/keyops"
	"framix/vector"
)

const orderTreeDegree = 32

// Order sorts the index by key and emits the relocation that permutes the
// backing vector to match. An already ordered index is returned as is.
// Keys the comparator cannot order return a ComparisonFailedError.
func Order[K comparable](ix *Index[K], v vector.Node) (*Index[K], vector.Node, error) {
	if ix.IsOrdered() {
		return ix, v, nil
	}

	// Ties under the comparator are broken by the original address, so
	// tree order is a stable sort of the mappings even though the tree
	// itself does not keep insert order, and keys that compare equal never
	// replace one another.
	failed := false
	tree := btree.NewG(orderTreeDegree, func(a, b Mapping[K]) bool {
		c := ix.ops.Compare(a.Key, b.Key)
		if c == keyops.Incomparable {
			failed = true
		}
		if c == 0 {
			return a.Addr < b.Addr
		}
		return c < 0
	})
	for _, m := range ix.Mappings() {
		tree.ReplaceOrInsert(m)
		if failed {
			return nil, nil, &keyops.ComparisonFailedError{}
		}
	}

	keys := make([]K, 0, ix.Len())
	byKey := make([]Mapping[K], 0, ix.Len())
	tree.Ascend(func(m Mapping[K]) bool {
		keys = append(keys, m.Key)
		byKey = append(byKey, m)
		return true
	})
	if failed {
		return nil, nil, &keyops.ComparisonFailedError{}
	}
	out := mustNew(keys, ix.ops, true)

	// Route every old address to the position its key sorted to, resolving
	// through the new index so a lost key surfaces immediately.
	pairs := make([]vector.Pair, 0, len(byKey))
	for _, m := range byKey {
		_, at, ok := out.Lookup(m.Key, Exact, nil)
		if !ok {
			panic("index: order lost a key during sort")
		}
		pairs = append(pairs, vector.Pair{New: at, Old: m.Addr})
	}
	return out, &vector.Relocate{Source: v, Range: out.Range(), Pairs: pairs}, nil
}
