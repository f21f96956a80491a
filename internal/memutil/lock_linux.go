//go:build linux

package memutil

import "golang.org/x/sys/unix"

// Lock pins b's pages in physical memory so they cannot be written to
// swap, and advises the kernel to exclude them from core dumps. Both
// calls are best-effort: a failure leaves the buffer fully usable,
// just without the hardening.
func Lock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Mlock(b)
	// madvise rejects regions that do not start on a page boundary;
	// EINVAL on an interior heap pointer is expected and ignored.
	_ = unix.Madvise(b, unix.MADV_DONTDUMP)
}

// Unlock reverses the dump advisory and releases the page lock.
func Unlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Madvise(b, unix.MADV_DODUMP)
	_ = unix.Munlock(b)
}
