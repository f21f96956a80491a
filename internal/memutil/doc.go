// Package memutil provides the low-level memory primitives the secmem
// containers are built on: optimizer-proof zeroing, constant-time byte
// comparison, and best-effort OS page locking with core dump exclusion.
//
// None of the functions here allocate. Wipe and Equal operate on raw
// byte slices; callers holding typed data are responsible for producing
// the byte view.
//
// # Platform Behavior
//
// Page locking is a hardening measure, not a correctness guarantee:
//
//   - Linux: mlock/munlock plus madvise(MADV_DONTDUMP/MADV_DODUMP)
//   - macOS: mlock/munlock (no per-region dump advisory exists)
//   - Windows: VirtualLock/VirtualUnlock
//   - anywhere else: no-op
//
// All locking failures (RLIMIT_MEMLOCK exhaustion, unaligned regions
// rejected by madvise) are swallowed. A container whose pages could not
// be locked still zeroes and compares correctly; it only loses the
// swap-avoidance hardening.
package memutil
