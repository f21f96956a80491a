//go:build windows

package memutil

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Lock pins b's pages in physical memory via VirtualLock so they cannot
// be written to the pagefile. Best-effort: a failure leaves the buffer
// fully usable.
func Lock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = windows.VirtualLock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}

// Unlock releases the page lock.
func Unlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = windows.VirtualUnlock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}
