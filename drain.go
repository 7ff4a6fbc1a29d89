package arrayvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// A Drain removes a contiguous range of elements from a vector. It yields
// the removed elements one at a time, from the front (Next), the back
// (NextBack), or both interleaved, and compacts the vector when closed: the
// elements behind the range slide down to fill the gap.
//
// While a Drain is live its vector must not be used through any other path.
// Close hands the vector back. It runs the compaction exactly once however
// often it is called, and the Seq and DrainSeq adapters run it on every way
// out of a loop, including panics. A Drain that is never closed leaves a
// valid vector holding just the elements in front of the range; the range
// and the tail behind it are lost in that case, never resurrected halfway.
type Drain[T any] struct {
	vec       *Vec[T]
	head      int // next index yielded by Next; head <= tail
	tail      int // one past the next index yielded by NextBack
	start     int // compaction target, the range's first index
	tailStart int // first preserved index, the range's former end
	tailLen   int // number of preserved elements behind the range
	done      bool
}

// Drain removes the elements in the half-open range [start, end) and
// returns an iterator over them. The vector's length drops to start right
// away; the preserved tail slides back into place on Close.
//
// The caller must guarantee 0 <= start <= end <= Len() and must not touch
// the vector before Close. Builds with the arrayvecdebug tag assert the
// range precondition. Most callers are better served by DrainSeq, which
// closes by itself.
func (v *Vec[T]) Drain(start, end int) *Drain[T] {
	assert(0 <= start && start <= end && end <= v.n, "Drain range out of bounds")
	d := &Drain[T]{
		vec:       v,
		head:      start,
		tail:      end,
		start:     start,
		tailStart: end,
		tailLen:   v.n - end,
	}
	// Clip the vector to the prefix. An abandoned Drain then leaks the
	// drained elements and the tail, but the vector stays consistent.
	v.n = start
	return d
}

// Next yields the next element from the front of the range, zeroing its
// slot. The second return is false once the range is exhausted or the
// Drain is closed.
func (d *Drain[T]) Next() (T, bool) {
	var zero T
	if d.head >= d.tail {
		return zero, false
	}
	item := d.vec.store[d.head]
	d.vec.store[d.head] = zero
	d.head++
	return item, true
}

// NextBack yields the next element from the back of the range, zeroing its
// slot. Next and NextBack share one window and never yield an element
// twice; exhaustion is reached when the two cursors meet.
func (d *Drain[T]) NextBack() (T, bool) {
	var zero T
	if d.head >= d.tail {
		return zero, false
	}
	d.tail--
	item := d.vec.store[d.tail]
	d.vec.store[d.tail] = zero
	return item, true
}

// Len returns the exact number of elements not yet yielded.
func (d *Drain[T]) Len() int {
	return d.tail - d.head
}

// Close discards the elements not yet yielded and compacts the vector: the
// preserved elements behind the range move down to the range's start, every
// slot behind them is zeroed, and the vector's length becomes its original
// length minus the size of the range.
//
// Only the first call does any of this; afterwards Close is a no-op and
// Next and NextBack report exhaustion. The error is always nil and exists
// to satisfy io.Closer.
func (d *Drain[T]) Close() error {
	if d.done {
		return nil
	}
	d.done = true
	d.tail = d.head // exhaust the window
	v := d.vec
	origLen := d.tailStart + d.tailLen
	if d.tailLen > 0 {
		copy(v.store[d.start:d.start+d.tailLen], v.store[d.tailStart:origLen])
	}
	newLen := d.start + d.tailLen
	// Unyielded elements not overwritten by the tail move are released here,
	// along with the tail block's vacated source slots.
	var zero T
	for i := newLen; i < origLen; i++ {
		v.store[i] = zero
	}
	v.n = newLen
	return nil
}
