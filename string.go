package secmem

import (
	"runtime"
	"unsafe"

	"github.com/systmms/secmem/internal/memutil"
)

// String holds secret text in a locked byte buffer with one added
// invariant: the content is always valid UTF-8. The invariant holds
// because a String can only be built from a Go string (valid UTF-8 by
// construction for string literals and validated sources) and exposes
// no mutable view that could introduce invalid byte sequences.
type String struct {
	buf *Bytes
}

// NewString copies s into a locked buffer. Go strings are immutable, so
// the copy is unavoidable; the original remains in the runtime's hands
// and the caller should avoid keeping references to it.
func NewString(s string) *String {
	return &String{buf: NewBytes([]byte(s))}
}

// Unsecure returns the text backed directly by the locked allocation,
// with no copy. The string is valid until the next ZeroOut, Destroy, or
// IntoUnsecure, and its contents change if the buffer is wiped.
func (s *String) Unsecure() string {
	b := s.buf.Unsecure()
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// IntoUnsecure consumes the wrapper and hands the caller a plain,
// unprotected owned string. The secret bytes are deliberately NOT wiped
// by this call: the caller now owns a live plaintext copy, so the
// secrecy guarantee transfers with it. The wrapper's allocation is
// unlocked and released; the String must not be used afterwards.
func (s *String) IntoUnsecure() string {
	out := string(s.buf.Unsecure())
	memutil.Unlock(view(s.buf.data))
	s.buf.data = nil
	s.buf.length = 0
	runtime.SetFinalizer(s.buf, nil)
	return out
}

// Len returns the length of the text in bytes.
func (s *String) Len() int {
	return s.buf.Len()
}

// Equal compares two secret strings byte-for-byte in constant time.
// Strings of different length are unequal regardless of content.
func (s *String) Equal(other *String) bool {
	return memutil.Equal(s.buf.Unsecure(), other.buf.Unsecure())
}

// ZeroOut overwrites the entire allocated capacity with zeros. The
// wrapper then holds the empty string.
func (s *String) ZeroOut() {
	s.buf.ZeroOut()
}

// Destroy wipes, unlocks, and releases the underlying buffer.
// Idempotent.
func (s *String) Destroy() {
	s.buf.Destroy()
}

// Clone returns an independent, freshly locked copy of the text.
func (s *String) Clone() *String {
	return &String{buf: s.buf.Clone()}
}
