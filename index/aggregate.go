package index

import (
	"framix/addr"
	"framix/chunk"
	"framix/keyops"
	"framix/vector"
)

// SegmentKind tags a window or chunk segment as complete or truncated at
// a sequence boundary.
type SegmentKind int

const (
	Complete SegmentKind = iota
	Incomplete
)

// Segment is one window or chunk of a source series: the sub-index over
// its keys and the plan producing its cells from the source vector.
type Segment[K comparable] struct {
	Kind  SegmentKind
	Index *Index[K]
	Plan  vector.Node
}

// Aggregation describes how Aggregate carves an ordered index into
// windows or chunks. Construct with WindowSize, ChunkSize, WindowWhile or
// ChunkWhile.
type Aggregation[K any] struct {
	kind     aggKind
	n        int
	boundary chunk.Boundary
	cond     func(first, cur K) bool
}

type aggKind int

const (
	aggWindowSize aggKind = iota
	aggChunkSize
	aggWindowWhile
	aggChunkWhile
)

// WindowSize aggregates over sliding windows of n keys.
func WindowSize[K any](n int, b chunk.Boundary) Aggregation[K] {
	return Aggregation[K]{kind: aggWindowSize, n: n, boundary: b}
}

// ChunkSize aggregates over adjacent chunks of n keys.
func ChunkSize[K any](n int, b chunk.Boundary) Aggregation[K] {
	return Aggregation[K]{kind: aggChunkSize, n: n, boundary: b}
}

// WindowWhile aggregates over windows that extend while cond holds
// between the window's first key and the current key.
func WindowWhile[K any](cond func(first, cur K) bool) Aggregation[K] {
	return Aggregation[K]{kind: aggWindowWhile, cond: cond}
}

// ChunkWhile aggregates over chunks that extend while cond holds between
// the chunk's first key and the current key.
func ChunkWhile[K any](cond func(first, cur K) bool) Aggregation[K] {
	return Aggregation[K]{kind: aggChunkWhile, cond: cond}
}

func (a Aggregation[K]) blocks(keys []K) *chunk.Iterator {
	switch a.kind {
	case aggWindowSize:
		return chunk.WindowedSize(len(keys), a.n, a.boundary)
	case aggChunkSize:
		return chunk.ChunkedSize(len(keys), a.n, a.boundary)
	case aggWindowWhile:
		return chunk.WindowedWhile(keys, a.cond)
	default:
		return chunk.ChunkedWhile(keys, a.cond)
	}
}

// segment cuts the sub-index and sub-plan for one block out of an ordered
// index, via an inclusive key range over the block's first and last key.
func segment[K comparable](ix *Index[K], v vector.Node, b chunk.Block) Segment[K] {
	kind := Complete
	if !b.Complete {
		kind = Incomplete
	}
	if b.Empty() {
		return Segment[K]{Kind: kind, Index: emptyLike(ix), Plan: &vector.Empty{}}
	}
	sub, plan := GetRange[K](ix,
		&Bound[K]{Key: ix.keys[b.Start], Behavior: Inclusive},
		&Bound[K]{Key: ix.keys[b.End], Behavior: Inclusive},
		v)
	return Segment[K]{Kind: kind, Index: sub, Plan: plan}
}

// Aggregate carves an ordered index into windows or chunks, keys each
// segment with keySel and collapses its cells with valSel. The segment
// values are materialized through the vector builder, so Aggregate
// returns a finished vector rather than a plan. The resulting index is
// unordered; duplicate segment keys return a DuplicateKeyError, and an
// unordered input returns an UnorderedIndexError.
func Aggregate[K, K2 comparable](
	ix *Index[K],
	agg Aggregation[K],
	v vector.Node,
	vb vector.Builder,
	valSel func(Segment[K]) vector.Cell,
	keySel func(Segment[K]) K2,
	ops2 keyops.Ops[K2],
) (*Index[K2], vector.Vector, error) {
	if !ix.IsOrdered() {
		return nil, nil, &UnorderedIndexError{Op: "aggregate"}
	}
	var keys []K2
	var cells []vector.Cell
	it := agg.blocks(ix.keys)
	for {
		b, ok := it.Next()
		if !ok {
			break
		}
		seg := segment(ix, v, b)
		keys = append(keys, keySel(seg))
		cells = append(cells, valSel(seg))
	}
	out, err := NewWithOrder(keys, ops2, false)
	if err != nil {
		return nil, nil, err
	}
	return out, vb.CreateMissing(cells), nil
}

// GroupBy partitions the rows by the group key keySel assigns to each row
// key (rows with no group are dropped), then collapses every group with
// valSel. Groups appear in order of first occurrence; each group's
// segment gathers its rows in their original address order.
func GroupBy[K, K2 comparable](
	ix *Index[K],
	keySel func(k K) (K2, bool),
	v vector.Node,
	vb vector.Builder,
	valSel func(group K2, seg Segment[K]) vector.Cell,
	ops2 keyops.Ops[K2],
) (*Index[K2], vector.Vector, error) {
	var groups []K2
	members := make(map[K2][]Mapping[K])
	for _, m := range ix.Mappings() {
		g, ok := keySel(m.Key)
		if !ok {
			continue
		}
		if _, seen := members[g]; !seen {
			groups = append(groups, g)
		}
		members[g] = append(members[g], m)
	}

	cells := make([]vector.Cell, 0, len(groups))
	for _, g := range groups {
		ms := members[g]
		keys := make([]K, len(ms))
		pairs := make([]vector.Pair, len(ms))
		for i, m := range ms {
			keys[i] = m.Key
			pairs[i] = vector.Pair{New: addr.Address(i), Old: m.Addr}
		}
		sub := mustNew(keys, ix.ops, false)
		seg := Segment[K]{
			Kind:  Complete,
			Index: sub,
			Plan:  &vector.Relocate{Source: v, Range: addr.RangeOf(len(ms)), Pairs: pairs},
		}
		cells = append(cells, valSel(g, seg))
	}

	out, err := NewWithOrder(groups, ops2, false)
	if err != nil {
		return nil, nil, err
	}
	return out, vb.CreateMissing(cells), nil
}

// Resample splits an ordered index by marker keys (each marker bounding
// its chunk from below with chunk.Forward, from above with
// chunk.Backward), then keys and collapses each chunk like Aggregate.
// Markers whose interval holds no rows produce an empty segment, so the
// result always has one row per marker.
func Resample[K, K2 comparable](
	ix *Index[K],
	markers []K,
	dir chunk.Direction,
	v vector.Node,
	vb vector.Builder,
	valSel func(marker K, seg Segment[K]) vector.Cell,
	keySel func(marker K, seg Segment[K]) K2,
	ops2 keyops.Ops[K2],
) (*Index[K2], vector.Vector, error) {
	if !ix.IsOrdered() {
		return nil, nil, &UnorderedIndexError{Op: "resample"}
	}
	marked, err := chunk.ChunkedUsing(ix.keys, markers, dir, ix.ops.Compare)
	if err != nil {
		return nil, nil, err
	}
	keys := make([]K2, 0, len(marked))
	cells := make([]vector.Cell, 0, len(marked))
	for _, mk := range marked {
		seg := segment(ix, v, mk.Block)
		keys = append(keys, keySel(mk.Key, seg))
		cells = append(cells, valSel(mk.Key, seg))
	}
	out, err := NewWithOrder(keys, ops2, false)
	if err != nil {
		return nil, nil, err
	}
	return out, vb.CreateMissing(cells), nil
}
