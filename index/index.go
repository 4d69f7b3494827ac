// Package index implements the key↔address bijection at the core of a
// series: an index maps a unique key sequence onto the contiguous address
// range [0, N) of a backing vector, and the builder operations in this
// package transform indices while emitting the vector-relocation plans
// that keep keys and values aligned. Indices are immutable; every
// operation returns a fresh index together with its plan.
package index

import (
	"errors"
	"sync"

	"framix/addr"
	"framix/keyops"
)

// Mapping is one key together with its address.
type Mapping[K comparable] struct {
	Key  K
	Addr addr.Address
}

// Keyed is the read surface every index implementation provides. The
// concrete linear implementation is Index; builder operations that accept
// a Keyed normalize other implementations with Linearize first.
type Keyed[K comparable] interface {
	// Keys returns the key sequence in address order.
	Keys() []K
	// Mappings returns the keys zipped with their addresses, in address order.
	Mappings() []Mapping[K]
	// Range returns the address range of the index.
	Range() addr.Range
	// IsOrdered reports whether the keys are sorted under the comparator.
	IsOrdered() bool
	// KeyRange returns the first and last key of an ordered index.
	KeyRange() (first, last K, err error)
	// KeyAt returns the key stored at the given address.
	KeyAt(a addr.Address) (K, bool)
	// Lookup finds a key under the given semantics; see Index.Lookup.
	Lookup(key K, sem Semantics, check func(addr.Address) bool) (K, addr.Address, bool)
	// Ops returns the key capability record the index was built with.
	Ops() keyops.Ops[K]
}

// Index is the linear index: the i-th key has address i. The zero value is
// not usable; construct with New or NewWithOrder. An Index is immutable
// after construction and safe for concurrent readers; callers must not
// modify the slices it returns.
type Index[K comparable] struct {
	keys    []K
	lookup  map[K]addr.Address
	ops     keyops.Ops[K]
	ordered func() bool
}

// New builds a linear index over keys. Whether the keys are ordered is
// detected lazily on first use: adjacent keys are compared and any
// Incomparable result makes the index unordered — ordering detection
// never fails. Duplicate keys return a DuplicateKeyError.
func New[K comparable](keys []K, ops keyops.Ops[K]) (*Index[K], error) {
	ix, err := build(keys, ops)
	if err != nil {
		return nil, err
	}
	ix.ordered = sync.OnceValue(func() bool {
		return isSorted(ix.keys, ix.ops)
	})
	return ix, nil
}

// NewWithOrder builds a linear index over keys with the ordering flag
// supplied by the caller instead of detected.
func NewWithOrder[K comparable](keys []K, ops keyops.Ops[K], ordered bool) (*Index[K], error) {
	ix, err := build(keys, ops)
	if err != nil {
		return nil, err
	}
	ix.ordered = func() bool { return ordered }
	return ix, nil
}

func build[K comparable](keys []K, ops keyops.Ops[K]) (*Index[K], error) {
	owned := make([]K, len(keys))
	copy(owned, keys)
	lookup := make(map[K]addr.Address, len(owned))
	for i, k := range owned {
		if _, dup := lookup[k]; dup {
			return nil, &DuplicateKeyError{Key: k}
		}
		lookup[k] = addr.Address(i)
	}
	return &Index[K]{keys: owned, lookup: lookup, ops: ops}, nil
}

func isSorted[K comparable](keys []K, ops keyops.Ops[K]) bool {
	if !ops.Ordered {
		return false
	}
	for i := 1; i < len(keys); i++ {
		c := ops.Compare(keys[i-1], keys[i])
		if c == keyops.Incomparable || c > 0 {
			return false
		}
	}
	return true
}

// Keys returns the key sequence in address order.
func (ix *Index[K]) Keys() []K {
	return ix.keys
}

// Mappings returns the keys zipped with their addresses, in address order.
func (ix *Index[K]) Mappings() []Mapping[K] {
	out := make([]Mapping[K], len(ix.keys))
	for i, k := range ix.keys {
		out[i] = Mapping[K]{Key: k, Addr: addr.Address(i)}
	}
	return out
}

// Len returns the number of keys.
func (ix *Index[K]) Len() int {
	return len(ix.keys)
}

// Range returns the address range of the index.
func (ix *Index[K]) Range() addr.Range {
	return addr.RangeOf(len(ix.keys))
}

// IsOrdered reports whether the keys are sorted under the comparator.
func (ix *Index[K]) IsOrdered() bool {
	return ix.ordered()
}

// KeyRange returns the first and last key. It returns an
// UnorderedIndexError when the index is not ordered.
func (ix *Index[K]) KeyRange() (first, last K, err error) {
	if !ix.IsOrdered() {
		return first, last, &UnorderedIndexError{Op: "key range"}
	}
	if len(ix.keys) == 0 {
		return first, last, errors.New("index: key range of an empty index")
	}
	return ix.keys[0], ix.keys[len(ix.keys)-1], nil
}

// KeyAt returns the key stored at the given address.
func (ix *Index[K]) KeyAt(a addr.Address) (K, bool) {
	if a < 0 || int(a) >= len(ix.keys) {
		var zero K
		return zero, false
	}
	return ix.keys[a], true
}

// Ops returns the key capability record the index was built with.
func (ix *Index[K]) Ops() keyops.Ops[K] {
	return ix.ops
}

// mustNew wraps constructions that cannot produce duplicates; a failure
// there is a logic bug, not an input error.
func mustNew[K comparable](keys []K, ops keyops.Ops[K], ordered bool) *Index[K] {
	ix, err := NewWithOrder(keys, ops, ordered)
	if err != nil {
		panic("index: internal construction produced " + err.Error())
	}
	return ix
}

var _ Keyed[int] = (*Index[int])(nil)
