package secmem

import (
	"bytes"
	"fmt"
	"testing"
)

func TestSealOpen(t *testing.T) {
	t.Parallel()

	buf := NewBytes([]byte("super-secret-data"))
	e := Seal(buf)
	defer e.Destroy()

	// Sealing consumes the buffer.
	if got := buf.Unsecure(); len(got) != 0 {
		t.Errorf("buffer still readable after Seal: %v", got)
	}

	out, err := e.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer out.Destroy()

	if !bytes.Equal(out.Unsecure(), []byte("super-secret-data")) {
		t.Errorf("Open() = %q, want %q", out.Unsecure(), "super-secret-data")
	}
}

func TestEnclaveMultipleOpens(t *testing.T) {
	t.Parallel()

	e := Seal(NewBytes([]byte("test-secret")))
	defer e.Destroy()

	for i := 0; i < 3; i++ {
		out, err := e.Open()
		if err != nil {
			t.Fatalf("Open() iteration %d error = %v", i, err)
		}
		if !bytes.Equal(out.Unsecure(), []byte("test-secret")) {
			t.Errorf("Open() iteration %d: got different data", i)
		}
		out.Destroy()
	}
}

func TestEnclaveDestroy(t *testing.T) {
	t.Parallel()

	e := Seal(NewBytes([]byte("secret-to-destroy")))

	e.Destroy()
	// Double destroy should not panic (idempotent).
	e.Destroy()

	// After destroy, Open yields an empty buffer rather than an error.
	out, err := e.Open()
	if err != nil {
		t.Fatalf("Open() after Destroy error = %v", err)
	}
	defer out.Destroy()
	if out.Len() != 0 {
		t.Errorf("Open() after Destroy returned %d bytes, want 0", out.Len())
	}
}

func TestEnclaveEmptySecret(t *testing.T) {
	t.Parallel()

	e := Seal(NewBytes(nil))
	defer e.Destroy()

	out, err := e.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer out.Destroy()
	if out.Len() != 0 {
		t.Errorf("Open() = %d bytes, want 0", out.Len())
	}
}

func TestEnclaveConcurrentOpens(t *testing.T) {
	t.Parallel()

	e := Seal(NewBytes([]byte("concurrent-secret")))
	defer e.Destroy()

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- true }()

			out, err := e.Open()
			if err != nil {
				t.Errorf("Open() error = %v", err)
				return
			}
			defer out.Destroy()

			if !bytes.Equal(out.Unsecure(), []byte("concurrent-secret")) {
				t.Error("data mismatch in concurrent access")
			}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestEnclaveRedaction(t *testing.T) {
	t.Parallel()

	e := Seal(NewBytes([]byte("hello")))
	defer e.Destroy()

	if got := fmt.Sprintf("%v", e); got != Redacted {
		t.Errorf("Sprintf(%%v) = %q, want %q", got, Redacted)
	}
	if got := e.String(); got != Redacted {
		t.Errorf("String() = %q, want %q", got, Redacted)
	}
}
