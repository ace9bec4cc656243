package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/secrets/internal/gf"
	"github.com/mrz1836/secrets/internal/rng"
	"github.com/mrz1836/secrets/internal/share"
)

func TestErrorMessage(t *testing.T) {
	e := ErrInvalidBitWidth.WithDetail("bits", "21").WithCause(stderrors.New("boom"))
	msg := e.Error()
	assert.Contains(t, msg, "number of bits")
	assert.Contains(t, msg, "bits: 21")
	assert.Contains(t, msg, "boom")
}

func TestErrorDetailsSorted(t *testing.T) {
	e := ErrInvalidInput.WithDetail("zzz", "1").WithDetail("aaa", "2")
	msg := e.Error()
	assert.Less(t, indexOf(msg, "aaa"), indexOf(msg, "zzz"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestIsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrInvalidShare.WithDetail("index", "3"))
	assert.ErrorIs(t, wrapped, ErrInvalidShare)
	assert.NotErrorIs(t, wrapped, ErrInvalidHex)
}

func TestWithHelpersCopy(t *testing.T) {
	base := ErrInvalidRNGName
	derived := base.WithSuggestion("try cryptoRandomBytes").WithDetail("name", "x")

	assert.Empty(t, base.Suggestion)
	assert.Empty(t, base.Details)
	assert.Equal(t, "try cryptoRandomBytes", derived.Suggestion)
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
	assert.Equal(t, ExitInput, ExitCodeFor(ErrInvalidInput))
	assert.Equal(t, ExitInput, ExitCodeFor(fmt.Errorf("wrap: %w", ErrInvalidShare)))
	assert.Equal(t, ExitGeneral, ExitCodeFor(stderrors.New("anonymous")))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		in   error
		want *Error
	}{
		{gf.ErrInvalidBitWidth, ErrInvalidBitWidth},
		{fmt.Errorf("wrap: %w", gf.ErrInvalidBitWidth), ErrInvalidBitWidth},
		{rng.ErrUnknownSource, ErrInvalidRNGName},
		{rng.ErrNoSecureSource, ErrNoSecureRNG},
		{rng.ErrAllZero, ErrRNGInvalid},
		{rng.ErrNotBinary, ErrRNGInvalid},
		{share.ErrMixedBitWidths, ErrShareMismatch},
		{share.ErrConflictingShares, ErrShareMismatch},
		{share.ErrInvalidShareFormat, ErrInvalidShare},
		{share.ErrInvalidShareID, ErrInvalidShare},
		{share.ErrInvalidShareCount, ErrInvalidInput},
		{share.ErrInvalidThreshold, ErrInvalidInput},
		{stderrors.New("mystery"), ErrGeneral},
	}
	for _, tt := range cases {
		got := Classify(tt.in)
		require.NotNil(t, got, "%v", tt.in)
		assert.Equal(t, tt.want.Code, got.Code, "%v", tt.in)
		assert.ErrorIs(t, got, tt.in)
	}

	assert.Nil(t, Classify(nil))

	// A structured error survives classification untouched.
	e := ErrEncryption.WithDetail("file", "x.age")
	assert.Same(t, e, Classify(e))
	assert.Same(t, e, Classify(fmt.Errorf("wrap: %w", e)))
}
