package rng

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/chacha20"

	"github.com/mrz1836/secrets/internal/secure"
)

// bitsFromBytes expands raw bytes to a binary digit string and keeps the
// trailing bits digits. The sources below over-read slightly and truncate,
// which keeps the distribution uniform per digit.
func bitsFromBytes(raw []byte, bits int) string {
	var b strings.Builder
	b.Grow(len(raw) * 8)
	for _, v := range raw {
		expanded := strconv.FormatUint(uint64(v), 2)
		b.WriteString(strings.Repeat("0", 8-len(expanded)))
		b.WriteString(expanded)
	}
	s := b.String()
	return s[len(s)-bits:]
}

// newCryptoBytesSource reads floor(bits/8)+1 bytes per draw from the
// platform entropy source.
func newCryptoBytesSource() (Source, error) {
	if err := probeEntropy(); err != nil {
		return nil, err
	}
	return func(bits int) (string, error) {
		raw, err := secure.RandomBytes(bits/8 + 1)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoSecureSource, err)
		}
		return bitsFromBytes(raw, bits), nil
	}, nil
}

// newCryptoWordsSource reads 32-bit words per draw and concatenates their
// 32-digit binary expansions.
func newCryptoWordsSource() (Source, error) {
	if err := probeEntropy(); err != nil {
		return nil, err
	}
	return func(bits int) (string, error) {
		words := bits/32 + 1
		raw, err := secure.RandomBytes(words * 4)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoSecureSource, err)
		}
		var b strings.Builder
		b.Grow(words * 32)
		for i := 0; i < len(raw); i += 4 {
			w := binary.BigEndian.Uint32(raw[i : i+4])
			expanded := strconv.FormatUint(uint64(w), 2)
			b.WriteString(strings.Repeat("0", 32-len(expanded)))
			b.WriteString(expanded)
		}
		s := b.String()
		return s[len(s)-bits:], nil
	}, nil
}

// newChaCha20Source keys a ChaCha20 stream once from the platform entropy
// source and serves draws from its keystream.
func newChaCha20Source() (Source, error) {
	seed, err := secure.RandomBytes(chacha20.KeySize + chacha20.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSecureSource, err)
	}
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:chacha20.KeySize], seed[chacha20.KeySize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSecureSource, err)
	}
	secure.Wipe(seed)

	var mu sync.Mutex
	return func(bits int) (string, error) {
		raw := make([]byte, bits/8+1)
		mu.Lock()
		cipher.XORKeyStream(raw, raw)
		mu.Unlock()
		return bitsFromBytes(raw, bits), nil
	}, nil
}

// probeEntropy fails fast when the platform entropy source is unreadable.
func probeEntropy() error {
	if _, err := secure.RandomBytes(1); err != nil {
		return fmt.Errorf("%w: %w", ErrNoSecureSource, err)
	}
	return nil
}
