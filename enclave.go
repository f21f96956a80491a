package secmem

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// Enclave holds a byte secret sealed in a memguard enclave for
// long-lived at-rest storage in memory. While the other containers keep
// plaintext locked in place, an Enclave keeps no plaintext at all
// between uses: the content lives encrypted inside memguard's protected
// storage and is only rehydrated into a fresh locked Bytes buffer on
// Open.
//
// Unlike the plaintext containers, an Enclave is safe for concurrent
// use: Open may be called from multiple goroutines and Destroy is
// idempotent.
type Enclave struct {
	inner *memguard.Enclave
	mu    sync.RWMutex
}

// Seal consumes b into an enclave. The plaintext is handed to memguard,
// which wipes the slice it is given, and b is destroyed; the buffer
// must not be used afterwards.
func Seal(b *Bytes) *Enclave {
	e := &Enclave{}
	if content := b.Unsecure(); len(content) > 0 {
		e.inner = memguard.NewEnclave(content)
	}
	b.Destroy()
	return e
}

// Open decrypts the sealed secret into a fresh locked Bytes buffer. The
// caller owns the returned buffer and should destroy it when done. An
// empty or destroyed enclave opens to an empty buffer.
func (e *Enclave) Open() (*Bytes, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.inner == nil {
		return NewBytes(nil), nil
	}
	locked, err := e.inner.Open()
	if err != nil {
		return nil, fmt.Errorf("secmem: open enclave: %w", err)
	}
	out := NewBytes(bytes.Clone(locked.Bytes()))
	locked.Destroy()
	return out, nil
}

// Destroy drops the sealed data and prevents further use; subsequent
// Opens return an empty buffer. Idempotent. The enclave's content is
// encrypted at rest, so dropping the reference is sufficient; for full
// cleanup of memguard's session state at process exit, callers may
// additionally defer memguard.Purge in main.
func (e *Enclave) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inner = nil
}
