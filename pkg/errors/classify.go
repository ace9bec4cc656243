package errors

import (
	"errors"

	"github.com/mrz1836/secrets/internal/codec"
	"github.com/mrz1836/secrets/internal/gf"
	"github.com/mrz1836/secrets/internal/rng"
	"github.com/mrz1836/secrets/internal/share"
)

// Classify maps an error from the engine packages onto the structured
// taxonomy, preserving the original chain as the cause. Already-structured
// errors pass through unchanged.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var structured *Error
	if errors.As(err, &structured) {
		return structured
	}

	switch {
	case errors.Is(err, gf.ErrInvalidBitWidth):
		return ErrInvalidBitWidth.WithCause(err)
	case errors.Is(err, rng.ErrUnknownSource):
		return ErrInvalidRNGName.WithCause(err).
			WithSuggestion("run 'secrets rng list' to see registered sources")
	case errors.Is(err, rng.ErrNoSecureSource):
		return ErrNoSecureRNG.WithCause(err)
	case errors.Is(err, rng.ErrNotBinary),
		errors.Is(err, rng.ErrLengthMismatch),
		errors.Is(err, rng.ErrAllZero):
		return ErrRNGInvalid.WithCause(err)
	case errors.Is(err, codec.ErrInvalidHexChar):
		return ErrInvalidHex.WithCause(err)
	case errors.Is(err, share.ErrMixedBitWidths),
		errors.Is(err, share.ErrConflictingShares):
		return ErrShareMismatch.WithCause(err)
	case errors.Is(err, share.ErrInvalidShareFormat),
		errors.Is(err, share.ErrInvalidShareID):
		return ErrInvalidShare.WithCause(err)
	case errors.Is(err, share.ErrInvalidShareCount),
		errors.Is(err, share.ErrInvalidThreshold),
		errors.Is(err, share.ErrInvalidPad),
		errors.Is(err, share.ErrNoShares),
		errors.Is(err, rng.ErrInvalidBitLength),
		errors.Is(err, codec.ErrInvalidBytesPerChar),
		errors.Is(err, codec.ErrPaddingTooLarge):
		return ErrInvalidInput.WithCause(err)
	default:
		return ErrGeneral.WithCause(err)
	}
}
