package secmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasherStableWithinInstance(t *testing.T) {
	t.Parallel()

	h, err := NewHasher()
	require.NoError(t, err)

	a := NewBytes([]byte("hello"))
	defer a.Destroy()
	b := NewBytes([]byte("hello"))
	defer b.Destroy()
	c := NewBytes([]byte("other"))
	defer c.Destroy()

	assert.Equal(t, Sum64(h, a), Sum64(h, b), "identical content must hash identically under one hasher")
	assert.NotEqual(t, Sum64(h, a), Sum64(h, c))
}

func TestHasherUnlinkableAcrossInstances(t *testing.T) {
	t.Parallel()

	h1, err := NewHasher()
	require.NoError(t, err)
	h2, err := NewHasher()
	require.NoError(t, err)

	b := NewBytes([]byte("hello"))
	defer b.Destroy()

	// A 64-bit collision between two random keys is effectively
	// impossible; equality here would mean the salt is not applied.
	assert.NotEqual(t, Sum64(h1, b), Sum64(h2, b))
}

func TestSum64Box(t *testing.T) {
	t.Parallel()

	h, err := NewHasher()
	require.NoError(t, err)

	a := NewBox([32]byte{1, 2, 3})
	defer a.Destroy()
	b := NewBox([32]byte{1, 2, 3})
	defer b.Destroy()
	c := NewBox([32]byte{3, 2, 1})
	defer c.Destroy()

	assert.Equal(t, Sum64Box(h, a), Sum64Box(h, b))
	assert.NotEqual(t, Sum64Box(h, a), Sum64Box(h, c))

	// Hash agreement tracks byte equality.
	assert.True(t, EqualBox(a, b))
	assert.False(t, EqualBox(a, c))
}

func TestSum64String(t *testing.T) {
	t.Parallel()

	h, err := NewHasher()
	require.NoError(t, err)

	a := NewString("hello")
	defer a.Destroy()
	b := NewString("hello")
	defer b.Destroy()

	assert.Equal(t, Sum64String(h, a), Sum64String(h, b))
}

func TestSum64GenericElements(t *testing.T) {
	t.Parallel()

	h, err := NewHasher()
	require.NoError(t, err)

	a := New([]uint32{1, 2, 3})
	defer a.Destroy()
	b := New([]uint32{1, 2, 3})
	defer b.Destroy()

	assert.Equal(t, Sum64(h, a), Sum64(h, b))
}
