package secmem

import (
	"crypto/rand"
	"fmt"
	"runtime"

	"github.com/systmms/secmem/internal/memutil"
)

// Bytes is the []byte form of Buffer, the common shape for passwords
// and raw key material.
type Bytes = Buffer[byte]

// Buffer owns a resizable, contiguous run of secret elements. The
// allocated capacity is page-locked whenever it is non-empty, and every
// release path (Destroy, a growing Resize, finalizer) wipes the entire
// capacity, not just the logical prefix, before the memory is unlocked
// and released.
type Buffer[T any] struct {
	// data spans the full allocated capacity.
	data []T
	// length is the logical element count, always <= len(data).
	length int
}

// New takes ownership of data and returns it wrapped in a locked
// Buffer. The slice is adopted, not copied, so no unlocked plaintext
// copy is created; the caller must not touch it afterwards. Capacity
// beyond len(data) is clipped off so the buffer controls exactly the
// region it locks and wipes.
//
// Element types must be plain, pointer-free data: numeric types and
// fixed-size arrays or structs of them. Disposal rewrites the backing
// allocation with raw byte stores, which the garbage collector does
// not permit over pointer words, so types containing pointers,
// strings, slices, maps, or channels are outside the contract.
func New[T any](data []T) *Buffer[T] {
	b := &Buffer[T]{}
	b.adopt(data[:len(data):len(data)], len(data))
	return b
}

// NewBytes takes ownership of data and returns it as a locked Bytes
// buffer.
func NewBytes(data []byte) *Bytes {
	return New(data)
}

// NewBytesRandom returns a locked buffer holding n cryptographically
// random bytes, for freshly generated key material.
func NewBytesRandom(n int) (*Bytes, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("secmem: generate random bytes: %w", err)
	}
	return NewBytes(buf), nil
}

// adopt locks a fresh backing slice and installs it as the new owned
// state, wiping and unlocking any previous allocation first.
func (b *Buffer[T]) adopt(data []T, length int) {
	memutil.Lock(view(data))
	b.release()
	b.data = data
	b.length = length
	// A live buffer being re-adopted (growing Resize, decode into a
	// used container) already carries a finalizer, and installing a
	// second one is a fatal runtime error. Clear before re-arming.
	runtime.SetFinalizer(b, nil)
	runtime.SetFinalizer(b, (*Buffer[T]).Destroy)
}

// release wipes the entire current capacity and unlocks it.
func (b *Buffer[T]) release() {
	if len(b.data) == 0 {
		return
	}
	raw := view(b.data)
	memutil.Wipe(raw)
	memutil.Unlock(raw)
}

// Unsecure borrows the logical content. The returned slice aliases the
// locked allocation: it is valid until the next growing Resize,
// ZeroOut, or Destroy, and writing through it mutates the secret in
// place. Indexing it out of range panics like any slice access.
func (b *Buffer[T]) Unsecure() []T {
	return b.data[:b.length]
}

// Len returns the logical element count.
func (b *Buffer[T]) Len() int {
	return b.length
}

// Resize changes the logical length to n.
//
// Shrinking adjusts only the logical length: capacity and page lock are
// untouched, and the elements beyond n keep their old contents until
// the next ZeroOut or Destroy. Growing allocates a fresh locked region
// of n elements pre-filled with fill, copies the old logical content
// into its prefix, then wipes and unlocks the old allocation.
func (b *Buffer[T]) Resize(n int, fill T) {
	if n < 0 {
		panic("secmem: Resize with negative length")
	}
	if n <= b.length {
		b.length = n
		return
	}
	next := make([]T, n)
	for i := range next {
		next[i] = fill
	}
	copy(next, b.data[:b.length])
	b.adopt(next, n)
}

// ZeroOut overwrites the entire allocated capacity with zeros and
// resets the logical length to zero. The capacity stays allocated and
// locked. Idempotent.
func (b *Buffer[T]) ZeroOut() {
	memutil.Wipe(view(b.data))
	b.length = 0
}

// Destroy wipes the entire capacity, unlocks it, and releases the
// allocation. Idempotent. A finalizer runs Destroy on buffers the
// caller never destroyed, but only at the garbage collector's leisure;
// treat it as a backstop and call Destroy (usually deferred) yourself.
func (b *Buffer[T]) Destroy() {
	if b.data == nil {
		return
	}
	b.release()
	b.data = nil
	b.length = 0
	runtime.SetFinalizer(b, nil)
}

// Clone returns an independent, freshly locked copy with the same
// capacity and logical length. Wiping one never affects the other.
func (b *Buffer[T]) Clone() *Buffer[T] {
	next := make([]T, len(b.data))
	copy(next, b.data)
	c := &Buffer[T]{}
	c.adopt(next, b.length)
	return c
}

// Equal reports whether two buffers hold identical logical content.
// Buffers of different logical length are unequal regardless of
// content; equal-length buffers are compared over their raw bytes in
// constant time with no early exit. Only padding-free element types
// may be compared this way, which the NoPadding constraint enforces at
// compile time.
func Equal[T NoPadding](a, b *Buffer[T]) bool {
	if a.length != b.length {
		return false
	}
	return memutil.Equal(view(a.Unsecure()), view(b.Unsecure()))
}
