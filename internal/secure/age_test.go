package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassphraseRoundTrip(t *testing.T) {
	plain := []byte("80111001e523b02029c58aceebead70329000")

	sealed, err := EncryptWithPassphrase(plain, "correct horse")
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), string(plain))

	opened, err := DecryptWithPassphrase(sealed, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, plain, opened)
}

func TestWrongPassphraseFails(t *testing.T) {
	sealed, err := EncryptWithPassphrase([]byte("801ff"), "right")
	require.NoError(t, err)

	_, err = DecryptWithPassphrase(sealed, "wrong")
	assert.Error(t, err)
}
