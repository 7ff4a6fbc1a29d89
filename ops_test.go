package arrayvec

import (
	"hash/maphash"
	"strings"
	"testing"
)

func TestEqualAcrossCapacities(t *testing.T) {
	a := New[int](6)
	a.TryAppend(1, 2, 3)
	b := From([]int{1, 2, 3})
	if !Equal(a, b) {
		t.Fatalf("vectors with equal contents should be equal regardless of capacity")
	}
	b.Set(2, 4)
	if Equal(a, b) {
		t.Fatalf("vectors with different contents should not be equal")
	}
	if !Equal[int](nil, New[int](4)) {
		t.Fatalf("nil should compare equal to an empty vector")
	}
}

func TestEqualIgnoresFreeSlots(t *testing.T) {
	a := New[int](4)
	a.Push(1)
	b := New[int](4)
	b.Push(1)
	b.Push(99)
	b.Pop() // leaves the free slot zeroed, but lengths matter, not storage
	if !Equal(a, b) {
		t.Fatalf("free slots must not take part in comparisons")
	}
}

func TestCompareOrdering(t *testing.T) {
	cases := []struct {
		a, b []int
		want int
	}{
		{[]int{1, 2}, []int{1, 2}, 0},
		{[]int{1, 2}, []int{1, 2, 0}, -1},
		{[]int{2}, []int{1, 9}, 1},
		{nil, []int{1}, -1},
		{nil, nil, 0},
	}
	for i, c := range cases {
		got := Compare(From(c.a), From(c.b))
		if got != c.want {
			t.Fatalf("case %d: Compare(%v, %v) = %d, want %d", i, c.a, c.b, got, c.want)
		}
	}
}

func TestCompareFuncAndEqualFunc(t *testing.T) {
	a := From([]string{"A", "b"})
	b := From([]string{"a", "B"})
	eq := func(x, y string) bool { return strings.EqualFold(x, y) }
	if !EqualFunc(a, b, eq) {
		t.Fatalf("case-insensitive EqualFunc should match")
	}
	cmpFold := func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	}
	if CompareFunc(a, b, cmpFold) != 0 {
		t.Fatalf("case-insensitive CompareFunc should report equality")
	}
}

func TestHashEqualVectors(t *testing.T) {
	seed := maphash.MakeSeed()
	a := New[int](10)
	a.TryAppend(1, 2, 3)
	b := From([]int{1, 2, 3})
	if Hash(seed, a) != Hash(seed, b) {
		t.Fatalf("equal vectors should hash identically under the same seed")
	}
	c := From([]int{1, 2, 4})
	if Hash(seed, a) == Hash(seed, c) {
		t.Fatalf("different contents should hash differently")
	}
	d := From([]int{1, 2, 3, 0})
	if Hash(seed, a) == Hash(seed, d) {
		t.Fatalf("a trailing zero element must change the hash")
	}
}
