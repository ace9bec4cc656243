package share

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mrz1836/secrets/internal/codec"
	"github.com/mrz1836/secrets/internal/gf"
	"github.com/mrz1836/secrets/internal/rng"
)

// MaxPad bounds the zero-padding a caller can request when splitting.
const MaxPad = 1024

var (
	// ErrInvalidShareCount is returned when n is outside [2, 2^bits-1].
	ErrInvalidShareCount = errors.New("number of shares must be an integer between 2 and 2^bits-1, inclusive")

	// ErrInvalidThreshold is returned when t is outside [2, n].
	ErrInvalidThreshold = errors.New("threshold must be an integer between 2 and the number of shares, inclusive")

	// ErrInvalidPad is returned when pad is outside [0, MaxPad].
	ErrInvalidPad = errors.New("zero-pad length must be an integer between 0 and 1024, inclusive")

	// ErrNoShares is returned when combine receives an empty share list.
	ErrNoShares = errors.New("no shares provided")

	// ErrMixedBitWidths is returned when shares from different fields are
	// combined together.
	ErrMixedBitWidths = errors.New("shares with mixed bit widths cannot be combined")

	// ErrConflictingShares is returned when two shares carry the same id
	// but different data.
	ErrConflictingShares = errors.New("shares with the same id carry different data")
)

// padBits renders v as exactly width binary digits.
func padBits(v, width int) string {
	s := strconv.FormatInt(int64(v), 2)
	if len(s) < width {
		return strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// Split divides hexSecret into n shares over f, any t of which recover it.
// A '1' sentinel bit is prepended before padding so leading zero digits of
// the secret survive the round trip. pad requests left-padding of the bit
// string to a multiple of pad bits (0 means the field width), which masks
// the secret's exact length from share length.
func Split(f *gf.Field, src rng.Source, hexSecret string, n, t, pad int) ([]string, error) {
	if n < 2 || n > f.Max {
		return nil, fmt.Errorf("%w: n=%d with bits %d", ErrInvalidShareCount, n, f.Bits)
	}
	if t < 2 || t > n {
		return nil, fmt.Errorf("%w: t=%d, n=%d", ErrInvalidThreshold, t, n)
	}
	if pad < 0 || pad > MaxPad {
		return nil, fmt.Errorf("%w: pad=%d", ErrInvalidPad, pad)
	}

	bin, err := codec.HexToBin(hexSecret)
	if err != nil {
		return nil, err
	}
	width := f.Bits
	if pad > width {
		width = pad
	}
	bin, err = codec.PadLeft("1"+bin, width)
	if err != nil {
		return nil, err
	}

	// One polynomial per b-bit symbol, walking the bit string from the
	// least significant end. Share bit strings are assembled by prepending
	// so symbols keep their positions.
	parts := make([]string, n+1) // 1-based by share id
	coeffs := make([]int, t)
	for hi := len(bin); hi > 0; hi -= f.Bits {
		lo := hi - f.Bits
		if lo < 0 {
			lo = 0
		}
		symbol, err := strconv.ParseInt(bin[lo:hi], 2, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidShareFormat, err)
		}

		// coeffs[0] is the highest-degree term; the symbol is the constant.
		for i := 0; i < t-1; i++ {
			draw, err := src(f.Bits)
			if err != nil {
				return nil, err
			}
			c, err := strconv.ParseInt(draw, 2, 32)
			if err != nil {
				return nil, fmt.Errorf("random source emitted non-binary output: %w", err)
			}
			coeffs[i] = int(c)
		}
		coeffs[t-1] = int(symbol)

		for id := 1; id <= n; id++ {
			parts[id] = padBits(f.Horner(id, coeffs), f.Bits) + parts[id]
		}
	}

	out := make([]string, 0, n)
	for id := 1; id <= n; id++ {
		encoded, err := Encode(f.Bits, id, codec.BinToHex(parts[id]))
		if err != nil {
			return nil, err
		}
		out = append(out, encoded)
	}
	return out, nil
}

// Combine recovers the value of the per-symbol polynomials at the point
// at from the given shares and returns it hex-encoded along with the bit
// width the shares were produced under. At zero that value is the secret;
// the sentinel bit and everything left of it are stripped. At a nonzero
// point the raw interpolation is returned for share issuance.
//
// Duplicate shares (same id, same data) are tolerated; the same id with
// different data is rejected.
func Combine(shares []string, at int) (string, int, error) {
	if len(shares) == 0 {
		return "", 0, ErrNoShares
	}

	comps := make([]Components, 0, len(shares))
	for _, s := range shares {
		c, err := Decode(s)
		if err != nil {
			return "", 0, err
		}
		comps = append(comps, c)
	}

	bits := comps[0].Bits
	for _, c := range comps[1:] {
		if c.Bits != bits {
			return "", 0, fmt.Errorf("%w: %d and %d", ErrMixedBitWidths, bits, c.Bits)
		}
	}
	f, err := gf.Get(bits)
	if err != nil {
		return "", 0, err
	}

	// Deduplicate by id, expand to bit strings, and normalise lengths.
	seen := make(map[int]string, len(comps))
	ids := make([]int, 0, len(comps))
	bins := make([]string, 0, len(comps))
	maxLen := 0
	for _, c := range comps {
		if prev, ok := seen[c.ID]; ok {
			if prev != c.Data {
				return "", 0, fmt.Errorf("%w: id %d", ErrConflictingShares, c.ID)
			}
			continue
		}
		seen[c.ID] = c.Data

		bin, err := codec.HexToBin(c.Data)
		if err != nil {
			return "", 0, fmt.Errorf("%w: %w", ErrInvalidShareFormat, err)
		}
		ids = append(ids, c.ID)
		bins = append(bins, bin)
		if len(bin) > maxLen {
			maxLen = len(bin)
		}
	}
	for i, bin := range bins {
		if len(bin) < maxLen {
			bins[i] = strings.Repeat("0", maxLen-len(bin)) + bin
		}
	}

	// Interpolate symbol by symbol from the least significant end,
	// prepending so positions are preserved.
	ys := make([]int, len(bins))
	var result string
	for hi := maxLen; hi > 0; hi -= f.Bits {
		lo := hi - f.Bits
		if lo < 0 {
			lo = 0
		}
		for i, bin := range bins {
			y, err := strconv.ParseInt(bin[lo:hi], 2, 32)
			if err != nil {
				return "", 0, fmt.Errorf("%w: %w", ErrInvalidShareFormat, err)
			}
			ys[i] = int(y)
		}
		result = padBits(f.LagrangeAt(at, ids, ys), f.Bits) + result
	}

	if at == 0 {
		// Everything through the sentinel '1' is padding.
		result = result[strings.Index(result, "1")+1:]
	}
	return codec.BinToHex(result), bits, nil
}

// NewShare evaluates the sharing polynomials at a fresh id and encodes the
// result as an additional share, without ever materialising the secret.
func NewShare(id int, shares []string) (string, error) {
	if len(shares) == 0 {
		return "", ErrNoShares
	}
	first, err := Decode(shares[0])
	if err != nil {
		return "", err
	}
	if max := 1<<uint(first.Bits) - 1; id < 1 || id > max {
		return "", fmt.Errorf("%w: id %d with bits %d", ErrInvalidShareID, id, first.Bits)
	}

	data, bits, err := Combine(shares, id)
	if err != nil {
		return "", err
	}
	return Encode(bits, id, data)
}
