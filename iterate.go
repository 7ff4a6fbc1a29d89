package arrayvec

import "iter"

// Values returns an iterator over the live elements in index order.
//
// The vector must not be mutated while the loop runs.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.store[i]) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs of the live elements,
// in index order.
//
// The vector must not be mutated while the loop runs.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.store[i]) {
				return
			}
		}
	}
}

// Seq returns an iterator over the remaining elements of the Drain, front
// to back. The Drain is closed when the loop ends, whether by exhaustion,
// break, early return, or a panic unwinding through the loop body, so the
// vector is compacted on every path.
//
// The sequence is single-use: once the loop ends the Drain is closed and a
// second range yields nothing.
func (d *Drain[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			item, ok := d.Next()
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// DrainSeq removes the elements in the half-open range [start, end) and
// returns a single-use iterator over them; see Drain for the contract. The
// range is cut out of the vector right here, not when the loop starts, and
// compaction is guaranteed on every way out of the loop:
//
//	for item := range v.DrainSeq(2, 5) {
//		consume(item)
//	}
func (v *Vec[T]) DrainSeq(start, end int) iter.Seq[T] {
	return v.Drain(start, end).Seq()
}
