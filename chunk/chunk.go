// Package chunk produces window and chunk views over an ordered key
// sequence. Blocks address positions in the sequence, not keys, so the
// index layer can translate them straight into address ranges. All
// iterators are lazy and single-pass.
package chunk

import "framix/keyops"

// Boundary selects how incomplete leading or trailing blocks are treated.
type Boundary int

const (
	// Skip drops incomplete blocks.
	Skip Boundary = iota
	// AtBeginning emits the incomplete blocks before the complete ones.
	AtBeginning
	// AtEnding emits the incomplete blocks after the complete ones.
	AtEnding
)

// Direction orients marker-based chunking: a marker bounds its chunk from
// below (Forward) or from above (Backward).
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Block is one window or chunk, covering the inclusive position range
// [Start, End] of the key sequence. Start > End means the block is empty.
// Complete is false for blocks truncated at a sequence boundary.
type Block struct {
	Start, End int
	Complete   bool
}

// Empty reports whether the block covers no positions.
func (b Block) Empty() bool {
	return b.Start > b.End
}

// Len returns the number of positions the block covers.
func (b Block) Len() int {
	if b.Empty() {
		return 0
	}
	return b.End - b.Start + 1
}

// Iterator streams blocks one at a time.
type Iterator struct {
	next func() (Block, bool)
}

// Next returns the next block, or ok=false when the sequence is exhausted.
func (it *Iterator) Next() (Block, bool) {
	return it.next()
}

// Collect drains the iterator into a slice. Intended for callers that need
// the block count up front (and for tests).
func (it *Iterator) Collect() []Block {
	var out []Block
	for {
		b, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

// ---------------------------------------------------------------------------
// Fixed-size windows and chunks
// ---------------------------------------------------------------------------

// WindowedSize returns sliding windows of size n over a sequence of count
// positions. Skip yields only complete windows; AtBeginning additionally
// yields the growing prefixes of size 1..n-1 first; AtEnding yields the
// shrinking suffixes last.
func WindowedSize(count, n int, b Boundary) *Iterator {
	if n <= 0 || count <= 0 {
		return emptyIterator()
	}
	switch b {
	case AtBeginning:
		// One window per end position; leading windows are clipped at 0.
		end := 0
		return &Iterator{next: func() (Block, bool) {
			if end >= count {
				return Block{}, false
			}
			start := end - n + 1
			complete := start >= 0
			if start < 0 {
				start = 0
			}
			blk := Block{Start: start, End: end, Complete: complete}
			end++
			return blk, true
		}}
	case AtEnding:
		// One window per start position; trailing windows are clipped.
		start := 0
		return &Iterator{next: func() (Block, bool) {
			if start >= count {
				return Block{}, false
			}
			end := start + n - 1
			complete := end < count
			if end >= count {
				end = count - 1
			}
			blk := Block{Start: start, End: end, Complete: complete}
			start++
			return blk, true
		}}
	default: // Skip
		start := 0
		return &Iterator{next: func() (Block, bool) {
			if start+n > count {
				return Block{}, false
			}
			blk := Block{Start: start, End: start + n - 1, Complete: true}
			start++
			return blk, true
		}}
	}
}

// ChunkedSize returns non-overlapping adjacent chunks of size n over a
// sequence of count positions. The final (AtEnding) or initial
// (AtBeginning) partial chunk is marked incomplete; Skip drops it.
func ChunkedSize(count, n int, b Boundary) *Iterator {
	if n <= 0 || count <= 0 {
		return emptyIterator()
	}
	switch b {
	case AtBeginning:
		// The remainder chunk comes first so all later chunks are full.
		pos := 0
		rem := count % n
		return &Iterator{next: func() (Block, bool) {
			if pos >= count {
				return Block{}, false
			}
			if pos == 0 && rem != 0 {
				blk := Block{Start: 0, End: rem - 1, Complete: false}
				pos = rem
				return blk, true
			}
			blk := Block{Start: pos, End: pos + n - 1, Complete: true}
			pos += n
			return blk, true
		}}
	case AtEnding:
		pos := 0
		return &Iterator{next: func() (Block, bool) {
			if pos >= count {
				return Block{}, false
			}
			end := pos + n - 1
			complete := end < count
			if end >= count {
				end = count - 1
			}
			blk := Block{Start: pos, End: end, Complete: complete}
			pos += n
			return blk, true
		}}
	default: // Skip
		pos := 0
		return &Iterator{next: func() (Block, bool) {
			if pos+n > count {
				return Block{}, false
			}
			blk := Block{Start: pos, End: pos + n - 1, Complete: true}
			pos += n
			return blk, true
		}}
	}
}

// ---------------------------------------------------------------------------
// Predicate-bounded windows and chunks
// ---------------------------------------------------------------------------

// WindowedWhile starts a window at every position and extends it for as
// long as cond(first, current) holds. cond(k, k) is assumed true.
func WindowedWhile[K any](keys []K, cond func(first, cur K) bool) *Iterator {
	start := 0
	return &Iterator{next: func() (Block, bool) {
		if start >= len(keys) {
			return Block{}, false
		}
		end := start
		for end+1 < len(keys) && cond(keys[start], keys[end+1]) {
			end++
		}
		blk := Block{Start: start, End: end, Complete: true}
		start++
		return blk, true
	}}
}

// ChunkedWhile starts a chunk, extends it while cond(first-of-chunk,
// current) holds, then begins the next chunk at the first failing key.
func ChunkedWhile[K any](keys []K, cond func(first, cur K) bool) *Iterator {
	start := 0
	return &Iterator{next: func() (Block, bool) {
		if start >= len(keys) {
			return Block{}, false
		}
		end := start
		for end+1 < len(keys) && cond(keys[start], keys[end+1]) {
			end++
		}
		blk := Block{Start: start, End: end, Complete: true}
		start = end + 1
		return blk, true
	}}
}

// ---------------------------------------------------------------------------
// Marker-based chunking
// ---------------------------------------------------------------------------

// Marked is a block tied to the marker key that bounds it.
type Marked[K any] struct {
	Key   K
	Block Block
}

// ChunkedUsing partitions a sorted key sequence by a sorted sequence of
// marker keys. With Forward each marker is the inclusive lower bound of its
// chunk; with Backward the inclusive upper bound. Keys before the first or
// after the last marker-defined interval merge into the first or last
// marker's chunk. Markers whose interval holds no keys yield empty blocks.
//
// Returns a ComparisonFailedError if cmp cannot order a key against a
// marker.
func ChunkedUsing[K any](keys, markers []K, dir Direction, cmp func(a, b K) int) ([]Marked[K], error) {
	out := make([]Marked[K], 0, len(markers))
	if len(markers) == 0 {
		return out, nil
	}
	pos := 0
	for i, m := range markers {
		start := pos
		switch dir {
		case Forward:
			// Chunk i holds keys < markers[i+1]; the last chunk takes the rest.
			if i+1 < len(markers) {
				next := markers[i+1]
				for pos < len(keys) {
					c := cmp(keys[pos], next)
					if c == keyops.Incomparable {
						return nil, &keyops.ComparisonFailedError{}
					}
					if c >= 0 {
						break
					}
					pos++
				}
			} else {
				pos = len(keys)
			}
		default: // Backward
			// Chunk i holds keys <= markers[i]; the last chunk takes the rest.
			if i+1 < len(markers) {
				for pos < len(keys) {
					c := cmp(keys[pos], m)
					if c == keyops.Incomparable {
						return nil, &keyops.ComparisonFailedError{}
					}
					if c > 0 {
						break
					}
					pos++
				}
			} else {
				pos = len(keys)
			}
		}
		out = append(out, Marked[K]{Key: m, Block: Block{Start: start, End: pos - 1, Complete: true}})
	}
	return out, nil
}

func emptyIterator() *Iterator {
	return &Iterator{next: func() (Block, bool) { return Block{}, false }}
}
