package arrayvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Vec is a vector with a fixed capacity. It keeps up to Cap() elements in a
// single backing array and tracks the number of live elements; the backing
// array is never grown, shrunk or reallocated.
//
// Invariants, maintained by every operation:
//   - 0 <= Len() <= Cap(),
//   - the live elements occupy the first Len() slots in order,
//   - free slots hold the zero value of T, so that removing an element also
//     releases the vector's reference to it.
//
// The zero value is a usable vector of capacity 0. A Vec must not be copied
// after first use: both copies would share the backing array but count
// lengths independently.
//
// A Vec is not safe for concurrent use. It is designed for a single owner,
// or for callers which synchronize externally.
type Vec[T any] struct {
	store []T // fixed backing storage; len(store) is the capacity
	n     int // number of live elements, <= len(store)
}

// New creates an empty vector with the given capacity. The backing storage
// is allocated here, once; it is the only allocation the vector will ever
// make. New panics if capacity is negative.
func New[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("arrayvec: New(%d): negative capacity", capacity))
	}
	return &Vec[T]{store: make([]T, capacity)}
}

// Wrap creates an empty vector on top of caller-provided storage, without
// allocating. Capacity is len(storage). The vector takes sole ownership of
// the storage; the caller must not read or write it afterwards.
//
// Pre-existing contents count as free slots. They are never read, but
// non-zero values in them will be reported by Check, so callers should hand
// over fresh or zeroed memory.
func Wrap[T any](storage []T) *Vec[T] {
	return &Vec[T]{store: storage}
}

// From creates a fully populated vector by adopting vals as its backing
// storage: length and capacity are both len(vals), and no elements are
// copied. The caller must not use vals afterwards; the vector owns it.
func From[T any](vals []T) *Vec[T] {
	return &Vec[T]{store: vals, n: len(vals)}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.n
}

// Cap returns the fixed capacity.
func (v *Vec[T]) Cap() int {
	return len(v.store)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.n == 0
}

// IsFull reports whether no free slots remain.
func (v *Vec[T]) IsFull() bool {
	return v.n == len(v.store)
}

// Remaining returns the number of free slots.
func (v *Vec[T]) Remaining() int {
	return len(v.store) - v.n
}

// TryPush appends item to the end of the vector.
//
// If the vector is full, nothing is mutated and the returned CapacityError
// carries item back to the caller.
func (v *Vec[T]) TryPush(item T) error {
	if v.n == len(v.store) {
		return &CapacityError[T]{Item: item}
	}
	v.store[v.n] = item
	v.n++
	return nil
}

// Push appends item to the end of the vector. It panics if the vector is
// full; use TryPush to handle capacity exhaustion gracefully.
func (v *Vec[T]) Push(item T) {
	if err := v.TryPush(item); err != nil {
		panic(fmt.Sprintf("arrayvec: Push: insufficient capacity (len %d, cap %d)", v.n, len(v.store)))
	}
}

// PushUnchecked appends item without a capacity check. The caller must
// guarantee !IsFull(); on a full vector the write escapes the live range
// and the runtime aborts with a slice bounds panic.
//
// Builds with the arrayvecdebug tag assert the precondition.
func (v *Vec[T]) PushUnchecked(item T) {
	assert(v.n < len(v.store), "PushUnchecked on a full vector")
	v.store[v.n] = item
	v.n++
}

// TryInsert inserts item at index idx, shifting the elements at idx and
// beyond right by one. idx == Len() appends. Cost is O(Len() − idx).
//
// If the vector is full, nothing is mutated and the returned CapacityError
// carries item. An index greater than Len() is a programming error and
// panics, in the Try form too: there is nothing to recover from.
func (v *Vec[T]) TryInsert(idx int, item T) error {
	n := v.n
	if idx < 0 || idx > n {
		panicOOB("TryInsert", idx, n)
	}
	if n == len(v.store) {
		return &CapacityError[T]{Item: item}
	}
	if idx < n {
		copy(v.store[idx+1:n+1], v.store[idx:n])
	}
	v.store[idx] = item
	v.n = n + 1
	return nil
}

// Insert inserts item at index idx, shifting the elements at idx and beyond
// right by one. It panics if the vector is full or idx is out of bounds;
// use TryInsert to handle capacity exhaustion gracefully.
func (v *Vec[T]) Insert(idx int, item T) {
	if idx < 0 || idx > v.n {
		panicOOB("Insert", idx, v.n)
	}
	if err := v.TryInsert(idx, item); err != nil {
		panic(fmt.Sprintf("arrayvec: Insert(%d): insufficient capacity (cap %d)", idx, len(v.store)))
	}
}

// TryAppend appends vals in order. The operation is all-or-nothing: if the
// free slots cannot take every value, nothing is mutated and ErrCapacity is
// returned.
//
// vals may alias the vector's own live view; source and destination regions
// are disjoint by the length invariant.
func (v *Vec[T]) TryAppend(vals ...T) error {
	if len(vals) > len(v.store)-v.n {
		return ErrCapacity
	}
	copy(v.store[v.n:v.n+len(vals)], vals)
	v.n += len(vals)
	return nil
}

// Pop removes and returns the last element, zeroing the vacated slot. The
// second return is false on an empty vector.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	item := v.store[v.n]
	v.store[v.n] = zero
	return item, true
}

// Truncate drops all elements at index n and beyond, zeroing the vacated
// slots. Truncating to the current length or more is a no-op. A negative n
// panics.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		panicOOB("Truncate", n, v.n)
	}
	if n >= v.n {
		return
	}
	var zero T
	for i := n; i < v.n; i++ {
		v.store[i] = zero
	}
	v.n = n
}

// Clear removes all elements. Equivalent to Truncate(0).
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Remove removes and returns the element at index idx, shifting all
// following elements left by one and zeroing the vacated last slot. It
// panics if idx is out of bounds.
//
// Cost is O(Len() − idx); SwapRemove is the O(1) variant for callers which
// do not need to preserve element order.
func (v *Vec[T]) Remove(idx int) T {
	n := v.n
	if idx < 0 || idx >= n {
		panicOOB("Remove", idx, n)
	}
	item := v.store[idx]
	if idx < n-1 {
		copy(v.store[idx:n-1], v.store[idx+1:n])
	}
	var zero T
	v.store[n-1] = zero
	v.n = n - 1
	return item
}

// SwapRemove removes and returns the element at index idx by moving the
// last element into its place. O(1), but the order of the remaining
// elements changes. It panics if idx is out of bounds.
func (v *Vec[T]) SwapRemove(idx int) T {
	n := v.n
	if idx < 0 || idx >= n {
		panicOOB("SwapRemove", idx, n)
	}
	item := v.store[idx]
	v.store[idx] = v.store[n-1]
	var zero T
	v.store[n-1] = zero
	v.n = n - 1
	return item
}

// At returns the element at index idx. Like indexing into a slice, it
// panics if idx is out of bounds; Get is the non-panicking form.
func (v *Vec[T]) At(idx int) T {
	if idx < 0 || idx >= v.n {
		panicOOB("At", idx, v.n)
	}
	return v.store[idx]
}

// Set replaces the element at index idx. It panics if idx is out of bounds.
func (v *Vec[T]) Set(idx int, item T) {
	if idx < 0 || idx >= v.n {
		panicOOB("Set", idx, v.n)
	}
	v.store[idx] = item
}

// Get returns the element at index idx, with false if idx is out of bounds.
func (v *Vec[T]) Get(idx int) (T, bool) {
	if idx < 0 || idx >= v.n {
		var zero T
		return zero, false
	}
	return v.store[idx], true
}

// First returns the first element, with false on an empty vector.
func (v *Vec[T]) First() (T, bool) {
	return v.Get(0)
}

// Last returns the last element, with false on an empty vector.
func (v *Vec[T]) Last() (T, bool) {
	return v.Get(v.n - 1)
}

// Slice returns the live elements as a slice sharing the vector's backing
// array: writes through the slice are visible in the vector and vice versa.
// The slice's capacity is clipped to its length, so appending to it moves
// it to fresh memory instead of clobbering free slots.
//
// The view is invalidated by any mutation of the vector.
func (v *Vec[T]) Slice() []T {
	return v.store[:v.n:v.n]
}

// Storage returns the full backing array, including free slots. This is
// the raw access path for bulk initialization (together with SetLen) and
// for white-box inspection. Free slots must stay zeroed; writing them
// without adjusting the length breaks the invariants that Check verifies.
func (v *Vec[T]) Storage() []T {
	return v.store
}

// SetLen sets the logical length to n without touching any slots.
//
// This is a low-level primitive for use with Storage. The caller must
// guarantee 0 <= n <= Cap() and that the first n slots hold intended
// values. Growing the length exposes whatever the slots contain; shrinking
// without zeroing keeps references alive. Both kinds of misuse surface in
// Check.
//
// Builds with the arrayvecdebug tag assert the range precondition.
func (v *Vec[T]) SetLen(n int) {
	assert(n >= 0 && n <= len(v.store), "SetLen length out of range")
	v.n = n
}

// Clone returns a new vector with the same capacity and a copy of the live
// elements. The clone has fresh backing storage; mutations of either
// vector are invisible to the other.
func (v *Vec[T]) Clone() *Vec[T] {
	cloned := &Vec[T]{
		store: make([]T, len(v.store)),
		n:     v.n,
	}
	copy(cloned.store[:cloned.n], v.store[:v.n])
	return cloned
}

// String renders the live elements in slice notation, for debugging. Free
// slots are never rendered.
func (v *Vec[T]) String() string {
	return fmt.Sprintf("%v", v.store[:v.n])
}
