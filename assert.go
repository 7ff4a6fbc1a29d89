//go:build arrayvecdebug

package arrayvec

// assert panics with msg if condition does not hold. Assertions guard the
// preconditions of the unchecked primitives (PushUnchecked, SetLen, Drain
// ranges); they are compiled in only with the arrayvecdebug build tag.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
