package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic indicates the phrase failed BIP39 validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

// mnemonicToHex converts a BIP39 phrase to its entropy as hex, the form
// the share engine operates on. Unknown words get a closest-match hint.
func mnemonicToHex(mnemonic string) (string, error) {
	mnemonic = strings.TrimSpace(strings.ToLower(mnemonic))
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		if hint := mnemonicHint(mnemonic); hint != "" {
			return "", fmt.Errorf("%w: %s", ErrInvalidMnemonic, hint)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	return hex.EncodeToString(entropy), nil
}

// hexToMnemonic renders recovered entropy hex as a BIP39 phrase. The
// entropy must be 16 to 32 bytes in 4-byte steps, which holds for any
// phrase that went through mnemonicToHex.
func hexToMnemonic(h string) (string, error) {
	entropy, err := hex.DecodeString(h)
	if err != nil {
		return "", err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("recovered secret is not BIP39 entropy: %w", err)
	}
	return mnemonic, nil
}

// mnemonicHint names the first unknown word, along with its closest
// dictionary entry when one is within two edits.
func mnemonicHint(mnemonic string) string {
	words := bip39.GetWordList()
	inList := make(map[string]bool, len(words))
	for _, w := range words {
		inList[w] = true
	}

	for _, w := range strings.Fields(mnemonic) {
		if inList[w] {
			continue
		}
		best, bestDist := "", 3
		for _, candidate := range words {
			if d := levenshtein.ComputeDistance(w, candidate); d < bestDist {
				best, bestDist = candidate, d
			}
		}
		if best != "" {
			return fmt.Sprintf("unknown word %q (did you mean %q?)", w, best)
		}
		return fmt.Sprintf("unknown word %q", w)
	}
	return ""
}
