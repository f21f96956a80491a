// Package secmem provides containers for holding sensitive data such as
// passwords, tokens, and private keys in memory.
//
// Every container guarantees that its content is:
//
//   - Compared in constant time (no timing side channel on content)
//   - Zeroed across its entire allocated capacity on disposal
//   - Page-locked against swapping, with a best-effort core dump
//     exclusion advisory where the platform supports one
//   - Redacted as ***SECRET*** by every fmt verb, so secrets cannot
//     leak through accidental logging
//
// # Container Shapes
//
// Three shapes cover the common cases:
//
//   - Buffer[T] is a resizable slice of secret elements; Bytes is its
//     []byte form, the workhorse for passwords and raw key material.
//   - Box[T] holds a single secret value, such as a fixed-size key array.
//   - String holds secret text and maintains a valid-UTF-8 invariant.
//
// Construction takes ownership of the caller's data, and the capacity is
// page-locked immediately:
//
//	password := secmem.NewBytes([]byte("hunter2"))
//	defer password.Destroy()
//
//	if secmem.Equal(password, expected) {
//	    // grant access
//	}
//
// Callers should pair every container with a deferred Destroy. A
// finalizer wipes containers that were never destroyed explicitly, but
// the finalizer's timing is up to the garbage collector; it is a
// backstop, not a substitute.
//
// # Byte-Wise Comparison and the NoPadding Gate
//
// Equal, EqualBox, Sum64, and Sum64Box work on the raw byte
// representation of the element type. That is only sound for types with
// no padding bytes, so these functions are constrained by the closed
// NoPadding type set. Types outside the set simply cannot be compared
// or hashed byte-wise; there is no runtime check to bypass.
//
// # Hashing
//
// Hasher never emits a stable, content-only digest of a secret. Each
// Hasher instance carries its own random key, so an observed hash value
// is tied to that instance and cannot be attacked offline or correlated
// across processes.
//
// # Serialization
//
// Bytes and String implement the CBOR marshaler interfaces. This is the
// one deliberate, opt-in path that exposes raw content: encoding a
// container writes its secret to the output with no redaction. Nothing
// serializes implicitly; the exposure happens only when the caller
// passes a container to a CBOR encoder.
//
// # What This Package Does Not Do
//
// secmem is not an encryption library: it performs no key derivation,
// no payload encryption, and defines no storage formats. It hardens the
// window during which a secret must exist as plaintext in this process.
// It does NOT protect against attackers who can read the process's
// memory while the secret is alive, nor against hardware-level attacks.
//
// Containers are single-owner values with no internal synchronization
// (Enclave excepted). Sharing one across goroutines requires external
// mutual exclusion.
package secmem
