// Package share implements the secret-sharing engine: splitting a hex
// secret into shares, recombining them, issuing additional shares, and the
// compact wire encoding shares travel in.
//
// A share string is <bits><id><data>: one base-36 character carrying the
// field exponent ('3'..'9', 'a'..'k'), the share id as big-endian hex
// padded to the width of the largest id the field allows, then the hex
// share data.
package share

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mrz1836/secrets/internal/codec"
	"github.com/mrz1836/secrets/internal/gf"
)

var (
	// ErrInvalidShareID is returned when an id is outside [1, 2^bits-1].
	ErrInvalidShareID = errors.New("share id must be an integer between 1 and 2^bits-1, inclusive")

	// ErrInvalidShareFormat is returned for share strings that cannot be
	// decoded.
	ErrInvalidShareFormat = errors.New("invalid share format")
)

// Components is a decoded share.
type Components struct {
	// Bits is the field exponent the share was produced under.
	Bits int
	// ID is the x-coordinate the per-symbol polynomials were evaluated at.
	ID int
	// Data is the hex-encoded evaluation results.
	Data string
}

// IDWidth returns the number of hex digits needed for the largest id in
// GF(2^bits), which fixes the width of the id field on the wire.
func IDWidth(bits int) int {
	max := 1<<uint(bits) - 1
	return len(strconv.FormatInt(int64(max), 16))
}

// Encode serializes a share. data must already be hex.
func Encode(bits, id int, data string) (string, error) {
	if bits < gf.MinBits || bits > gf.MaxBits {
		return "", fmt.Errorf("%w (got %d)", gf.ErrInvalidBitWidth, bits)
	}
	max := 1<<uint(bits) - 1
	if id < 1 || id > max {
		return "", fmt.Errorf("%w: id %d with bits %d", ErrInvalidShareID, id, bits)
	}

	idHex := strconv.FormatInt(int64(id), 16)
	if pad := IDWidth(bits) - len(idHex); pad > 0 {
		idHex = strings.Repeat("0", pad) + idHex
	}
	return strconv.FormatInt(int64(bits), 36) + idHex + data, nil
}

// Decode parses a share string. Input is case-insensitive; Encode always
// emits lowercase.
func Decode(s string) (Components, error) {
	s = strings.ToLower(s)
	if len(s) < 2 {
		return Components{}, fmt.Errorf("%w: %q is too short", ErrInvalidShareFormat, s)
	}

	bits64, err := strconv.ParseInt(s[:1], 36, 0)
	if err != nil || bits64 < gf.MinBits || bits64 > gf.MaxBits {
		return Components{}, fmt.Errorf("%w: leading character %q", gf.ErrInvalidBitWidth, s[:1])
	}
	bits := int(bits64)

	w := IDWidth(bits)
	if len(s) < 1+w+1 {
		return Components{}, fmt.Errorf("%w: missing id or data", ErrInvalidShareFormat)
	}

	id64, err := strconv.ParseInt(s[1:1+w], 16, 0)
	if err != nil {
		return Components{}, fmt.Errorf("%w: id field %q", ErrInvalidShareFormat, s[1:1+w])
	}
	id := int(id64)
	if max := 1<<uint(bits) - 1; id < 1 || id > max {
		return Components{}, fmt.Errorf("%w: id %d with bits %d", ErrInvalidShareID, id, bits)
	}

	data := s[1+w:]
	if _, err := codec.HexToBin(data); err != nil {
		return Components{}, fmt.Errorf("%w: %w", ErrInvalidShareFormat, err)
	}

	return Components{Bits: bits, ID: id, Data: data}, nil
}
