//go:build !arrayvecdebug

package arrayvec

// assert is a no-op in regular builds; see the arrayvecdebug variant.
func assert(condition bool, msg string) {
}
