package deepsize

import (
	"testing"
	"unsafe"
)

func TestOf_Nil(t *testing.T) {
	if got := Of(nil); got != 0 {
		t.Errorf("Of(nil) = %d, want 0", got)
	}
}

func TestOf_Scalars(t *testing.T) {
	if got := Of(int64(42)); got != int64(unsafe.Sizeof(int64(0))) {
		t.Errorf("Of(int64) = %d, want %d", got, unsafe.Sizeof(int64(0)))
	}
	if got := Of(true); got != int64(unsafe.Sizeof(true)) {
		t.Errorf("Of(bool) = %d, want %d", got, unsafe.Sizeof(true))
	}
}

func TestOf_String(t *testing.T) {
	s := "series"
	want := int64(unsafe.Sizeof(s)) + int64(len(s))
	if got := Of(s); got != want {
		t.Errorf("Of(%q) = %d, want %d", s, got, want)
	}
}

func TestOf_KeySlice(t *testing.T) {
	keys := make([]int64, 4, 8)
	want := int64(unsafe.Sizeof(keys)) + 8*8 // header + cap * elem
	if got := Of(keys); got != want {
		t.Errorf("Of(key slice) = %d, want %d", got, want)
	}
}

func TestOf_NilSlice(t *testing.T) {
	var keys []int64
	want := int64(unsafe.Sizeof(keys))
	if got := Of(keys); got != want {
		t.Errorf("Of(nil slice) = %d, want %d", got, want)
	}
}

func TestOf_LookupTable(t *testing.T) {
	lookup := map[string]int{"alpha": 0, "beta": 1, "gamma": 2}
	got := Of(lookup)
	// header + overhead + three (key header + content + value) entries
	min := int64(unsafe.Sizeof(lookup)) + mapOverhead
	for k := range lookup {
		min += int64(unsafe.Sizeof(k)) + int64(len(k)) + int64(unsafe.Sizeof(0))
	}
	if got < min {
		t.Errorf("Of(lookup table) = %d, want >= %d", got, min)
	}
}

func TestOf_IndexShapedStruct(t *testing.T) {
	type idx struct {
		keys    []string
		lookup  map[string]int
		ordered bool
	}
	v := &idx{
		keys:   []string{"a", "bb", "ccc"},
		lookup: map[string]int{"a": 0, "bb": 1, "ccc": 2},
	}
	got := Of(v)
	// At least the struct, its key contents (6 bytes twice: slice + map
	// keys) and the map overhead must show up.
	min := int64(unsafe.Sizeof(*v)) + 12 + mapOverhead
	if got < min {
		t.Errorf("Of(index-shaped struct) = %d, want >= %d", got, min)
	}
}

func TestOf_PlanShapedTree(t *testing.T) {
	type node struct {
		kids []*node
		tag  string
	}
	leaf := &node{tag: "leaf"}
	root := &node{kids: []*node{leaf, leaf}, tag: "root"}
	// The shared leaf must be counted once, so the tree costs less than
	// two disjoint leaves would.
	shared := Of(root)
	disjoint := Of(&node{kids: []*node{{tag: "leaf"}, {tag: "leaf"}}, tag: "root"})
	if shared >= disjoint {
		t.Errorf("shared leaf counted twice: shared = %d, disjoint = %d", shared, disjoint)
	}
}

func TestOf_Cycle(t *testing.T) {
	type ring struct {
		next *ring
		val  int
	}
	a := &ring{val: 1}
	b := &ring{val: 2, next: a}
	a.next = b
	if got := Of(a); got <= 0 {
		t.Errorf("Of(cycle) = %d, want > 0", got)
	}
}

func TestOf_InterfaceCells(t *testing.T) {
	cells := []any{int64(1), "hello", nil, true}
	if got := Of(cells); got <= 0 {
		t.Errorf("Of([]any) = %d, want > 0", got)
	}
}
