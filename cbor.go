package secmem

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/fxamacker/cbor/v2"

	"github.com/systmms/secmem/internal/memutil"
)

// Serialization is the one deliberate, opt-in path that exposes raw
// secret content: nothing here is invoked implicitly, but a container
// passed to a CBOR encoder writes its secret to the output with no
// redaction. The decode direction constructs a fresh locked container
// and performs no secrecy-related validation beyond shape checks.

// MarshalCBOR implements cbor.Marshaler. The logical content's byte
// representation is encoded as a CBOR byte string (major type 2).
func (b *Buffer[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(view(b.Unsecure()))
}

// UnmarshalCBOR implements cbor.Unmarshaler. It decodes a CBOR byte
// string whose length must be a whole number of elements, adopts the
// decoded bytes into a fresh locked allocation, and wipes the decoder's
// intermediate copy.
func (b *Buffer[T]) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("secmem: decode secret bytes: %w", err)
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		if len(raw) != 0 {
			return fmt.Errorf("secmem: %d bytes for a zero-sized element type", len(raw))
		}
		b.adopt(nil, 0)
		return nil
	}
	if len(raw)%size != 0 {
		return fmt.Errorf("secmem: %d bytes is not a whole number of %d-byte elements", len(raw), size)
	}
	elems := make([]T, len(raw)/size)
	copy(view(elems), raw)
	memutil.Wipe(raw)
	b.adopt(elems, len(elems))
	return nil
}

// MarshalCBOR implements cbor.Marshaler. The text is encoded as a CBOR
// text string (major type 3).
func (s *String) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.Unsecure())
}

// UnmarshalCBOR implements cbor.Unmarshaler. It decodes a CBOR text
// string into a fresh locked buffer. The UTF-8 invariant is checked
// before the bytes are adopted.
func (s *String) UnmarshalCBOR(data []byte) error {
	var text string
	if err := cbor.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("secmem: decode secret string: %w", err)
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("secmem: decoded string is not valid UTF-8")
	}
	if s.buf == nil {
		s.buf = &Bytes{}
	}
	raw := []byte(text)
	s.buf.adopt(raw, len(raw))
	return nil
}
