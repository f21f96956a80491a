package secmem

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Hasher produces salted 64-bit digests of container content for use in
// hash tables and caches.
//
// A deterministic, replayable digest of secret material would itself be
// a side channel: an observer who sees the hash value can attack it
// offline. Hasher therefore never emits a content-only digest. The
// content is hashed once with BLAKE2b-256, and that inner digest is
// hashed again under a key drawn at random when the Hasher was created.
// Digests are stable within one Hasher instance and unlinkable across
// instances or processes.
type Hasher struct {
	key [32]byte
}

// NewHasher returns a Hasher with a fresh random key.
func NewHasher() (*Hasher, error) {
	h := &Hasher{}
	if _, err := rand.Read(h.key[:]); err != nil {
		return nil, fmt.Errorf("secmem: generate hasher key: %w", err)
	}
	return h, nil
}

func (h *Hasher) sum64(content []byte) uint64 {
	inner := blake2b.Sum256(content)
	mac, err := blake2b.New256(h.key[:])
	if err != nil {
		// Unreachable: New256 only rejects keys over 64 bytes.
		panic(err)
	}
	mac.Write(inner[:])
	var outer [blake2b.Size256]byte
	mac.Sum(outer[:0])
	return binary.BigEndian.Uint64(outer[:8])
}

// Sum64 returns the salted digest of a buffer's logical content.
// Restricted to padding-free element types by the NoPadding constraint.
func Sum64[T NoPadding](h *Hasher, b *Buffer[T]) uint64 {
	return h.sum64(view(b.Unsecure()))
}

// Sum64Box returns the salted digest of a boxed value's bytes. Panics
// if the box has been destroyed.
func Sum64Box[T NoPadding](h *Hasher, b *Box[T]) uint64 {
	return h.sum64(viewOne(b.val))
}

// Sum64String returns the salted digest of a secret string's bytes.
func Sum64String(h *Hasher, s *String) uint64 {
	return h.sum64(s.buf.Unsecure())
}
