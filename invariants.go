package arrayvec

import (
	"fmt"
	"reflect"
)

// Check validates the vector's invariants: the length is within capacity
// and every free slot holds the zero value of T.
//
// This checker is intentionally strict and meant for tests. It must only
// run on a quiescent vector: a live Drain parks elements beyond the logical
// length, which Check would flag. The zero test uses reflection and is far
// too slow for production paths.
func (v *Vec[T]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvalidState)
	}
	if v.n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidState, v.n)
	}
	if v.n > len(v.store) {
		return fmt.Errorf("%w: length exceeds capacity (%d > %d)", ErrInvalidState, v.n, len(v.store))
	}
	for i := v.n; i < len(v.store); i++ {
		if !reflect.ValueOf(&v.store[i]).Elem().IsZero() {
			return fmt.Errorf("%w: free slot %d is not zeroed", ErrInvalidState, i)
		}
	}
	return nil
}
