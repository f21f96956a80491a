//go:build darwin

package memutil

import "golang.org/x/sys/unix"

// Lock pins b's pages in physical memory so they cannot be written to
// swap. Best-effort: a failure leaves the buffer fully usable. macOS
// has no per-region core dump advisory, so only the page lock applies.
func Lock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Mlock(b)
}

// Unlock releases the page lock.
func Unlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}
