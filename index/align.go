package index

import (
	"framix/addr"
	"framix/keyops"
)

// pairing is one row of an alignment: a key and the address it holds on
// each side, addr.None for a side the key is absent from.
type pairing[K comparable] struct {
	key   K
	left  addr.Address
	right addr.Address
}

// alignOrdered merges two key→address streams that are sorted under cmp.
// Equal keys collapse into a single pairing with both sides present, so
// the output keys are strictly increasing. Returns a ComparisonFailedError
// as soon as cmp cannot order a pair; callers fall back to alignUnordered.
func alignOrdered[K comparable](l, r []Mapping[K], cmp func(a, b K) int) ([]pairing[K], error) {
	out := make([]pairing[K], 0, len(l)+len(r))
	i, j := 0, 0
	for i < len(l) && j < len(r) {
		c := cmp(l[i].Key, r[j].Key)
		switch {
		case c == keyops.Incomparable:
			return nil, &keyops.ComparisonFailedError{}
		case c < 0:
			out = append(out, pairing[K]{key: l[i].Key, left: l[i].Addr, right: addr.None})
			i++
		case c > 0:
			out = append(out, pairing[K]{key: r[j].Key, left: addr.None, right: r[j].Addr})
			j++
		default:
			out = append(out, pairing[K]{key: l[i].Key, left: l[i].Addr, right: r[j].Addr})
			i++
			j++
		}
	}
	for ; i < len(l); i++ {
		out = append(out, pairing[K]{key: l[i].Key, left: l[i].Addr, right: addr.None})
	}
	for ; j < len(r); j++ {
		out = append(out, pairing[K]{key: r[j].Key, left: addr.None, right: r[j].Addr})
	}
	return out, nil
}

// alignUnordered concatenates the left stream with the right keys not
// present on the left: L ++ (R \ keys(L)), each side in its own order.
// The output carries no ordering guarantee.
func alignUnordered[K comparable](l, r []Mapping[K]) []pairing[K] {
	out := make([]pairing[K], 0, len(l)+len(r))
	seen := make(map[K]int, len(l))
	for _, m := range l {
		seen[m.Key] = len(out)
		out = append(out, pairing[K]{key: m.Key, left: m.Addr, right: addr.None})
	}
	for _, m := range r {
		if at, dup := seen[m.Key]; dup {
			out[at].right = m.Addr
			continue
		}
		out = append(out, pairing[K]{key: m.Key, left: addr.None, right: m.Addr})
	}
	return out
}
