package cli

import (
	"encoding/base64"
	"strings"
)

// Encrypted shares travel as a single prefixed base64 token so they stay
// one-per-line like plain shares.
const armorPrefix = "age64:"

func armorEncode(sealed []byte) string {
	return armorPrefix + base64.StdEncoding.EncodeToString(sealed)
}

// isArmored reports whether s looks like an encrypted share token.
func isArmored(s string) bool {
	return strings.HasPrefix(s, armorPrefix)
}

func armorDecode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.TrimPrefix(s, armorPrefix))
}
