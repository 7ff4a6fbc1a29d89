package arrayvec

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity signals that an operation would exceed a vector's fixed capacity.
	ErrCapacity = errors.New("arrayvec: insufficient capacity")
	// ErrInvalidState signals a vector whose internal invariants do not hold,
	// typically after misuse of SetLen or Storage, or an abandoned Drain.
	ErrInvalidState = errors.New("arrayvec: invalid vector state")
)

// CapacityError is returned by failed single-element mutations. It carries
// the rejected item, so the caller gets ownership of the element back
// together with the failure.
//
// CapacityError unwraps to ErrCapacity; errors.Is(err, ErrCapacity) matches
// every capacity failure, payload-carrying or not.
type CapacityError[T any] struct {
	Item T
}

func (e *CapacityError[T]) Error() string {
	return "arrayvec: insufficient capacity"
}

func (e *CapacityError[T]) Unwrap() error {
	return ErrCapacity
}

// panicOOB aborts on an out-of-bounds index. Index violations on positional
// operations are programming errors and have no recoverable form.
func panicOOB(op string, idx, length int) {
	panic(fmt.Sprintf("arrayvec: %s(%d): index out of bounds in vector of length %d", op, idx, length))
}
