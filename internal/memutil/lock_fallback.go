//go:build !linux && !darwin && !windows

package memutil

// Lock is a no-op on platforms without a page locking facility.
func Lock(b []byte) {}

// Unlock is a no-op on platforms without a page locking facility.
func Unlock(b []byte) {}
