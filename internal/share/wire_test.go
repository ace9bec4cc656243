package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/secrets/internal/gf"
)

func TestIDWidth(t *testing.T) {
	tests := []struct {
		bits, want int
	}{
		{3, 1}, {4, 1}, {5, 2}, {8, 2}, {9, 3}, {12, 3}, {16, 4}, {17, 5}, {20, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IDWidth(tt.bits), "bits=%d", tt.bits)
	}
}

func TestEncode(t *testing.T) {
	s, err := Encode(8, 1, "abcd")
	require.NoError(t, err)
	assert.Equal(t, "801abcd", s)

	// Wide fields use the base-36 letters and a five-digit id.
	s, err = Encode(20, 1024, "ffff")
	require.NoError(t, err)
	assert.Equal(t, "k00400ffff", s)

	s, err = Encode(10, 1023, "00")
	require.NoError(t, err)
	assert.Equal(t, "a3ff00", s)

	_, err = Encode(2, 1, "ff")
	assert.ErrorIs(t, err, gf.ErrInvalidBitWidth)
	_, err = Encode(21, 1, "ff")
	assert.ErrorIs(t, err, gf.ErrInvalidBitWidth)
	_, err = Encode(8, 0, "ff")
	assert.ErrorIs(t, err, ErrInvalidShareID)
	_, err = Encode(8, 256, "ff")
	assert.ErrorIs(t, err, ErrInvalidShareID)
}

func TestDecode(t *testing.T) {
	c, err := Decode("801abcd")
	require.NoError(t, err)
	assert.Equal(t, Components{Bits: 8, ID: 1, Data: "abcd"}, c)

	// Upper case is accepted on input.
	c, err = Decode("K00400FFFF")
	require.NoError(t, err)
	assert.Equal(t, Components{Bits: 20, ID: 1024, Data: "ffff"}, c)

	cases := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidShareFormat},
		{"8", ErrInvalidShareFormat},
		{"2ff00", gf.ErrInvalidBitWidth},      // bits below the minimum
		{"zff00", gf.ErrInvalidBitWidth},      // bits above the maximum
		{"800ff", ErrInvalidShareID},          // id zero
		{"801", ErrInvalidShareFormat},        // no data
		{"801xyz", ErrInvalidShareFormat},     // non-hex data
		{"8zzff", ErrInvalidShareFormat},      // non-hex id
	}
	for _, tt := range cases {
		_, err := Decode(tt.in)
		assert.ErrorIs(t, err, tt.want, "input %q", tt.in)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, bits := range []int{3, 8, 16, 20} {
		max := 1<<uint(bits) - 1
		for _, id := range []int{1, 2, max} {
			s, err := Encode(bits, id, "00deadbeef")
			require.NoError(t, err)
			c, err := Decode(s)
			require.NoError(t, err)
			assert.Equal(t, Components{Bits: bits, ID: id, Data: "00deadbeef"}, c)
		}
	}
}

// The first three shares of a long-deployed 5-of-10 split. Their layout is
// frozen: combining fielded shares depends on decode never changing.
func TestDecodeLegacyShares(t *testing.T) {
	legacy := []string{
		"80111001e523b02029c58aceebead70329000",
		"802eeb362b5be82beae3499f09bd7f9f19b1c",
		"803d5f7e5216d716a172ebe0af46ca81684f4",
	}
	for i, s := range legacy {
		c, err := Decode(s)
		require.NoError(t, err)
		assert.Equal(t, 8, c.Bits)
		assert.Equal(t, i+1, c.ID)
		assert.Equal(t, s[3:], c.Data)
	}
}
