package arrayvec

import (
	"cmp"
	"hash/maphash"
	"slices"
)

// Operations over the live view. All of them are defined by delegating to
// the view returned by Slice: free slots never take part in comparisons or
// hashing, and capacity is runtime state, so vectors of different
// capacities compare like their contents.

// Equal reports whether a and b hold the same elements in the same order.
// A nil vector counts as empty.
func Equal[T comparable](a, b *Vec[T]) bool {
	return slices.Equal(view(a), view(b))
}

// EqualFunc is Equal with a caller-supplied element equivalence.
func EqualFunc[T any](a, b *Vec[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(view(a), view(b), eq)
}

// Compare orders a and b lexicographically over their live elements and
// returns -1, 0, or +1, following the conventions of the slices package.
// A nil vector counts as empty.
func Compare[T cmp.Ordered](a, b *Vec[T]) int {
	return slices.Compare(view(a), view(b))
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vec[T], compare func(T, T) int) int {
	return slices.CompareFunc(view(a), view(b), compare)
}

// Hash returns a seeded hash over the live elements. Vectors that are Equal
// hash identically under the same seed, whatever their capacities.
func Hash[T comparable](seed maphash.Seed, v *Vec[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	items := view(v)
	maphash.WriteComparable(&h, len(items))
	for _, item := range items {
		maphash.WriteComparable(&h, item)
	}
	return h.Sum64()
}

func view[T any](v *Vec[T]) []T {
	if v == nil {
		return nil
	}
	return v.store[:v.n]
}
