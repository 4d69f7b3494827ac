package index

import (
	"errors"
	"reflect"
	"testing"

	"framix/keyops"
	"framix/vector"
)

func TestOrder(t *testing.T) {
	ix := mustIndex(t, []int{30, 10, 20})
	out, plan, err := Order(ix, in0)
	if err != nil {
		t.Fatalf("Order returned error: %v", err)
	}
	if got := out.Keys(); !reflect.DeepEqual(got, []int{10, 20, 30}) {
		t.Errorf("keys = %v, want [10 20 30]", got)
	}
	if !out.IsOrdered() {
		t.Error("ordered index should report ordered")
	}
	inputs := []vector.Vector{cellsOf("c", "a", "b")}
	if got := evalPlan(plan, inputs); !reflect.DeepEqual(got, cellVector(cellsOf("a", "b", "c"))) {
		t.Errorf("cells = %v, want [a b c]", got)
	}
}

func TestOrder_AlreadyOrdered(t *testing.T) {
	ix := mustIndex(t, []int{1, 2, 3})
	out, plan, err := Order(ix, in0)
	if err != nil {
		t.Fatalf("Order returned error: %v", err)
	}
	if out != ix || plan != vector.Node(in0) {
		t.Error("ordering an ordered index should be the identity")
	}
}

func TestOrder_Idempotent(t *testing.T) {
	ix := mustIndex(t, []int{5, 2, 9, 1})
	once, _, err := Order(ix, in0)
	if err != nil {
		t.Fatal(err)
	}
	twice, plan, err := Order(once, in0)
	if err != nil {
		t.Fatal(err)
	}
	if twice != once || plan != vector.Node(in0) {
		t.Error("ordering twice should equal ordering once")
	}
}

func TestOrder_ComparisonFailed(t *testing.T) {
	type pair struct{ a, b int }
	ix, err := New([]pair{{2, 1}, {1, 2}}, keyops.Unordered[pair]())
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = Order(ix, in0)
	var cf *keyops.ComparisonFailedError
	if !errors.As(err, &cf) {
		t.Fatalf("error = %v, want ComparisonFailedError", err)
	}
}
