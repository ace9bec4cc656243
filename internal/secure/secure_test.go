package secure

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := RandomBytes(32)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, b), "two 256-bit reads should differ")
}

func TestSwapEntropySource(t *testing.T) {
	restore := SwapEntropySource(bytes.NewReader([]byte{1, 2, 3, 4}))
	defer restore()

	got, err := RandomBytes(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)

	// Exhausted source surfaces the error instead of short output.
	_, err = RandomBytes(1)
	assert.Error(t, err)

	// Restoring brings the real source back.
	restore()
	got, err = RandomBytes(8)
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestWipe(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	Wipe(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
}

func TestBufferLifecycle(t *testing.T) {
	b := BufferFrom([]byte("super secret"))
	require.NotNil(t, b.Bytes())
	assert.Equal(t, "super secret", string(b.Bytes()))

	b.Destroy()
	assert.Nil(t, b.Bytes())

	// Destroy is idempotent.
	b.Destroy()
}
