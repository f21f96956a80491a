package memutil

import "runtime"

// Wipe overwrites b with zero bytes.
//
// The go:noinline directive keeps the compiler from inlining the loop
// into a caller where the stores could be recognized as dead and
// eliminated. runtime.KeepAlive pins the slice until the final write
// has landed.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
