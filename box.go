package secmem

import (
	"runtime"

	"github.com/systmms/secmem/internal/memutil"
)

// Box owns a single secret value on the heap, sized exactly for one T.
// The value's bytes are page-locked at construction and wiped through an
// untyped byte view on disposal, so no per-type logic ever runs over
// zeroed memory.
type Box[T any] struct {
	val *T
}

// NewBox copies v into a fresh heap allocation and locks its bytes. The
// caller's own copy of v is not wiped; pass values you own and drop
// them after boxing. As with New, the value type must be plain,
// pointer-free data, since Wipe and Destroy rewrite the allocation
// with raw byte stores.
func NewBox[T any](v T) *Box[T] {
	val := new(T)
	*val = v
	b := &Box[T]{val: val}
	memutil.Lock(viewOne(val))
	runtime.SetFinalizer(b, (*Box[T]).Destroy)
	return b
}

// Unsecure borrows the boxed value. Reads and writes through the
// returned pointer operate on the locked allocation directly. The
// pointer is valid until Destroy; dereferencing it afterwards panics.
func (b *Box[T]) Unsecure() *T {
	return b.val
}

// Wipe overwrites the boxed value with zero bytes while keeping the box
// alive and locked. In Go the all-zero bit pattern is the valid zero
// value of every type, so this is always memory-safe; afterwards the
// box holds T's zero value.
func (b *Box[T]) Wipe() {
	if b.val == nil {
		return
	}
	memutil.Wipe(viewOne(b.val))
}

// Destroy wipes the value through its raw byte view, unlocks the
// region, and releases the allocation. Idempotent. As with Buffer, a
// finalizer backstops boxes that were never destroyed explicitly.
func (b *Box[T]) Destroy() {
	if b.val == nil {
		return
	}
	raw := viewOne(b.val)
	memutil.Wipe(raw)
	memutil.Unlock(raw)
	b.val = nil
	runtime.SetFinalizer(b, nil)
}

// Clone returns an independent, freshly locked copy of the boxed value.
// Panics if the box has been destroyed.
func (b *Box[T]) Clone() *Box[T] {
	return NewBox(*b.val)
}

// EqualBox reports whether two boxes hold byte-identical values,
// compared in constant time. Restricted to padding-free types by the
// NoPadding constraint. Panics if either box has been destroyed.
func EqualBox[T NoPadding](a, b *Box[T]) bool {
	return memutil.Equal(viewOne(a.val), viewOne(b.val))
}
