// Package rng provides the pluggable random bit-string sources behind
// share generation. Sources are registered by name; a caller-supplied
// source goes through the same validation as the built-ins before it is
// accepted.
package rng

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Source produces a string of exactly bits '0'/'1' characters.
type Source func(bits int) (string, error)

// Registered source names.
const (
	// SourceCryptoBytes reads whole bytes from the platform entropy source
	// and truncates the bit expansion to the requested length.
	SourceCryptoBytes = "cryptoRandomBytes"

	// SourceCryptoWords reads 32-bit words from the platform entropy
	// source and concatenates their binary expansions.
	SourceCryptoWords = "cryptoRandomWords"

	// SourceChaCha20 expands a one-time key from the platform entropy
	// source through a ChaCha20 keystream.
	SourceChaCha20 = "chacha20"

	// SourceTest is the deterministic test generator. It is never chosen
	// by default and must be requested by exact name.
	SourceTest = "testRandom"

	// Default is the source bound when no name is given.
	Default = SourceCryptoBytes
)

// MaxDraw caps a single draw request.
const MaxDraw = 65536

var (
	// ErrUnknownSource is returned for an unregistered source name.
	ErrUnknownSource = errors.New("unknown random source")

	// ErrInvalidBitLength is returned when a draw request is outside
	// [1, MaxDraw].
	ErrInvalidBitLength = errors.New("number of random bits must be an integer between 1 and 65536, inclusive")

	// ErrNoSecureSource is returned when the platform entropy source
	// cannot be read. There is no non-cryptographic fallback.
	ErrNoSecureSource = errors.New("no secure random source available")

	// ErrNotBinary is returned when a source emits characters other than
	// '0' and '1'.
	ErrNotBinary = errors.New("random source output must contain only '0' and '1'")

	// ErrLengthMismatch is returned when a source emits the wrong number
	// of digits.
	ErrLengthMismatch = errors.New("random source output has the wrong length")

	// ErrAllZero is returned when a validation draw comes back all zeros,
	// the signature of a broken integer-truncation path.
	ErrAllZero = errors.New("random source output was all zeros")
)

// builders maps a source name to its constructor. Construction can fail
// when the platform entropy source is unavailable.
//
//nolint:gochecknoglobals // fixed registry
var builders = map[string]func() (Source, error){
	SourceCryptoBytes: newCryptoBytesSource,
	SourceCryptoWords: newCryptoWordsSource,
	SourceChaCha20:    newChaCha20Source,
	SourceTest:        newTestSource,
}

// Names returns the registered source names suitable for user selection.
func Names() []string {
	return []string{SourceCryptoBytes, SourceCryptoWords, SourceChaCha20, SourceTest}
}

// New constructs the named source. Unknown names include a "did you mean"
// hint when a registered name is close.
func New(name string) (Source, error) {
	build, ok := builders[name]
	if !ok {
		if s := Suggest(name); s != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownSource, name, s)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return build()
}

// Suggest returns the registered name closest to name, or "" when nothing
// is within editing distance 4.
func Suggest(name string) string {
	best, bestDist := "", 5
	for _, candidate := range Names() {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// Validate draws bits digits from src once and checks the contract: binary
// characters only, exact length, and not all zeros. Callers bind a source
// only after Validate accepts it.
func Validate(src Source, bits int) error {
	out, err := src(bits)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoSecureSource, err)
	}
	if len(out) != bits {
		return fmt.Errorf("%w: want %d digits, got %d", ErrLengthMismatch, bits, len(out))
	}
	allZero := true
	for i := 0; i < len(out); i++ {
		switch out[i] {
		case '1':
			allZero = false
		case '0':
		default:
			return fmt.Errorf("%w: found %q", ErrNotBinary, string(out[i]))
		}
	}
	if allZero {
		return ErrAllZero
	}
	return nil
}
