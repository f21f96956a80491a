package secmem

import (
	"fmt"
	"io"
)

// Redacted is the literal every container renders for every fmt verb,
// regardless of content, type, or length.
const Redacted = "***SECRET***"

// The containers implement fmt.Stringer, fmt.GoStringer, and
// fmt.Formatter. Formatter takes precedence inside the fmt package and
// covers every verb (including %d, %x, and mistyped ones); Stringer and
// GoStringer remain for code that calls String() or GoString() directly,
// such as structured logging front ends.

// String implements fmt.Stringer. Always returns the redaction literal.
func (b *Buffer[T]) String() string { return Redacted }

// GoString implements fmt.GoStringer so %#v stays redacted.
func (b *Buffer[T]) GoString() string { return Redacted }

// Format implements fmt.Formatter, redacting every verb.
func (b *Buffer[T]) Format(f fmt.State, verb rune) { io.WriteString(f, Redacted) }

// String implements fmt.Stringer. Always returns the redaction literal.
func (b *Box[T]) String() string { return Redacted }

// GoString implements fmt.GoStringer so %#v stays redacted.
func (b *Box[T]) GoString() string { return Redacted }

// Format implements fmt.Formatter, redacting every verb.
func (b *Box[T]) Format(f fmt.State, verb rune) { io.WriteString(f, Redacted) }

// String implements fmt.Stringer. Always returns the redaction literal;
// use Unsecure to read the actual text.
func (s *String) String() string { return Redacted }

// GoString implements fmt.GoStringer so %#v stays redacted.
func (s *String) GoString() string { return Redacted }

// Format implements fmt.Formatter, redacting every verb.
func (s *String) Format(f fmt.State, verb rune) { io.WriteString(f, Redacted) }

// String implements fmt.Stringer. Always returns the redaction literal.
func (e *Enclave) String() string { return Redacted }

// GoString implements fmt.GoStringer so %#v stays redacted.
func (e *Enclave) GoString() string { return Redacted }

// Format implements fmt.Formatter, redacting every verb.
func (e *Enclave) Format(f fmt.State, verb rune) { io.WriteString(f, Redacted) }
