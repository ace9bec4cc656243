package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Bounds for the bytes-per-code-unit parameter of the text codec.
const (
	MinBytesPerChar = 1
	MaxBytesPerChar = 6
)

// ErrInvalidBytesPerChar is returned when bytesPerChar is outside [1, 6].
var ErrInvalidBytesPerChar = errors.New("bytes per character must be an integer between 1 and 6, inclusive")

func checkBytesPerChar(n int) error {
	if n < MinBytesPerChar || n > MaxBytesPerChar {
		return fmt.Errorf("%w (got %d)", ErrInvalidBytesPerChar, n)
	}
	return nil
}

// StrToHex encodes every UTF-16 code unit of s as 2*bytesPerChar lowercase
// hex digits. Surrogate pairs are preserved as two separate code units, so
// the round trip through HexToStr is lossless for any string.
func StrToHex(s string, bytesPerChar int) (string, error) {
	if err := checkBytesPerChar(bytesPerChar); err != nil {
		return "", err
	}

	units := utf16.Encode([]rune(s))
	width := 2 * bytesPerChar

	var b strings.Builder
	b.Grow(len(units) * width)
	for _, u := range units {
		digits := strconv.FormatUint(uint64(u), 16)
		if rem := len(digits) % width; rem != 0 {
			digits = strings.Repeat("0", width-rem) + digits
		}
		b.WriteString(digits)
	}
	return b.String(), nil
}

// HexToStr decodes h, left-padded to a multiple of 2*bytesPerChar digits,
// chunk by chunk into UTF-16 code units and returns the resulting string.
// Chunk values above 0xffff wrap to their low 16 bits.
func HexToStr(h string, bytesPerChar int) (string, error) {
	if err := checkBytesPerChar(bytesPerChar); err != nil {
		return "", err
	}

	width := 2 * bytesPerChar
	if rem := len(h) % width; rem != 0 {
		h = strings.Repeat("0", width-rem) + h
	}

	units := make([]uint16, 0, len(h)/width)
	for i := 0; i < len(h); i += width {
		chunk := h[i : i+width]
		v, err := strconv.ParseUint(chunk, 16, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidHexChar, chunk)
		}
		units = append(units, uint16(v))
	}
	return string(utf16.Decode(units)), nil
}
