package keyops

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestFor_Int(t *testing.T) {
	ops := For[int]()
	if !ops.Ordered {
		t.Fatal("For[int] should be ordered")
	}
	tests := []struct {
		a, b, want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{3, 3, 0},
	}
	for _, tt := range tests {
		if got := ops.Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFor_String(t *testing.T) {
	ops := For[string]()
	if got := ops.Compare("apple", "banana"); got != -1 {
		t.Errorf("Compare(apple, banana) = %d, want -1", got)
	}
}

func TestUnordered(t *testing.T) {
	ops := Unordered[[2]int]()
	if ops.Ordered {
		t.Error("Unordered should not be ordered")
	}
	if got := ops.Compare([2]int{1, 2}, [2]int{1, 2}); got != Incomparable {
		t.Errorf("Compare on unordered ops = %d, want Incomparable", got)
	}
}

func TestCompareValues(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"int64 less", int64(1), int64(2), -1},
		{"int64 greater", int64(5), int64(2), 1},
		{"int64 equal", int64(3), int64(3), 0},
		{"int64 vs float64", int64(2), 2.5, -1},
		{"float64 vs int64", 2.5, int64(2), 1},
		{"int", 1, 2, -1},
		{"string", "a", "b", -1},
		{"bool", false, true, -1},
		{"time", now, now.Add(time.Second), -1},
		{"nil left", nil, int64(1), Incomparable},
		{"nil right", int64(1), nil, Incomparable},
		{"mismatch", int64(1), "1", Incomparable},
		{"unknown type", []int{1}, []int{2}, Incomparable},
	}
	for _, tt := range tests {
		if got := CompareValues(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: CompareValues(%v, %v) = %d, want %d", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCollated_German(t *testing.T) {
	ops := Collated(language.German)
	if !ops.Ordered {
		t.Fatal("Collated should be ordered")
	}
	// Under German collation "ä" sorts with "a", before "z".
	if got := ops.Compare("ähnlich", "zahl"); got != -1 {
		t.Errorf("Compare(ähnlich, zahl) = %d, want -1", got)
	}
	if got := ops.Compare("zahl", "ähnlich"); got != 1 {
		t.Errorf("Compare(zahl, ähnlich) = %d, want 1", got)
	}
}

func TestDecimalString(t *testing.T) {
	ops := DecimalString()
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"less", "1.5", "2", -1},
		{"greater", "10", "9.99", 1},
		{"equal across scales", "1.50", "1.5", 0},
		{"negative", "-0.01", "0", -1},
		{"garbage left", "abc", "1", Incomparable},
		{"garbage right", "1", "abc", Incomparable},
	}
	for _, tt := range tests {
		if got := ops.Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Compare(%q, %q) = %d, want %d", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}
