// Package secrets implements Shamir's Secret Sharing over the binary
// extension fields GF(2^bits) for bits between 3 and 20. A hex-encoded
// secret is split into n shares such that any t of them reconstruct it
// exactly, while fewer reveal nothing useful. Additional shares can be
// issued later from any t existing shares without reconstructing the
// secret, and arbitrary text converts to and from hex for sharing.
//
// An Engine owns one field configuration and one random source binding.
// Package-level functions mirror the Engine API on a process-wide default
// engine for callers that do not need multiple configurations.
package secrets

import (
	"fmt"
	"sync"

	"github.com/mrz1836/secrets/internal/codec"
	"github.com/mrz1836/secrets/internal/gf"
	"github.com/mrz1836/secrets/internal/rng"
	"github.com/mrz1836/secrets/internal/share"
)

// Radix of secret and share data strings.
const Radix = 16

// DefaultBits is the field exponent used when no option overrides it.
const DefaultBits = 8

// MaxRandomBits caps a single Random request.
const MaxRandomBits = rng.MaxDraw

// ErrInvalidBitLength is returned when a Random request is outside
// [1, MaxRandomBits].
var ErrInvalidBitLength = rng.ErrInvalidBitLength

// CustomSourceName is reported by Config when a caller-supplied source is
// bound instead of a registered one.
const CustomSourceName = "custom"

// Config describes an engine's current configuration.
type Config struct {
	// Radix of secret and share data strings; always 16.
	Radix int `json:"radix"`
	// Bits is the field exponent.
	Bits int `json:"bits"`
	// MaxShares is 2^bits-1, the most shares a split can produce and the
	// largest share id.
	MaxShares int `json:"maxShares"`
	// HasCSPRNG reports whether a source is bound.
	HasCSPRNG bool `json:"hasCSPRNG"`
	// TypeCSPRNG names the bound source.
	TypeCSPRNG string `json:"typeCSPRNG"`
}

// ShareComponents is a decoded share: the field exponent it was produced
// under, its id, and its hex data.
type ShareComponents struct {
	Bits int    `json:"bits"`
	ID   int    `json:"id"`
	Data string `json:"data"`
}

// Engine is a secret-sharing instance. Methods are safe for concurrent
// use; reconfiguration (Reconfigure, SetRNG, and the automatic bit-width
// adoption during Combine) serialises against in-flight operations.
type Engine struct {
	mu      sync.RWMutex
	field   *gf.Field
	src     rng.Source
	srcName string
}

type options struct {
	bits    int
	rngName string
}

// Option configures New and Init.
type Option func(*options)

// WithBits selects the field exponent (3 to 20).
func WithBits(bits int) Option {
	return func(o *options) { o.bits = bits }
}

// WithRNG selects a registered random source by name.
func WithRNG(name string) Option {
	return func(o *options) { o.rngName = name }
}

// New creates an engine. Defaults: GF(2^8) and the platform secure byte
// source. Construction fails if the requested width is unsupported, the
// source name is unknown, or the platform entropy source is unavailable —
// there is no fallback to a weaker generator.
func New(opts ...Option) (*Engine, error) {
	o := options{bits: DefaultBits, rngName: rng.Default}
	for _, opt := range opts {
		opt(&o)
	}

	field, err := gf.Get(o.bits)
	if err != nil {
		return nil, err
	}
	src, err := rng.New(o.rngName)
	if err != nil {
		return nil, err
	}
	if err := rng.Validate(src, field.Bits); err != nil {
		return nil, err
	}

	return &Engine{field: field, src: src, srcName: o.rngName}, nil
}

// Reconfigure re-applies options to a live engine. The random source
// binding persists unless WithRNG overrides it. On error the engine is
// unchanged.
func (e *Engine) Reconfigure(opts ...Option) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	o := options{bits: e.field.Bits}
	for _, opt := range opts {
		opt(&o)
	}

	field, err := gf.Get(o.bits)
	if err != nil {
		return err
	}
	src, srcName := e.src, e.srcName
	if o.rngName != "" {
		if src, err = rng.New(o.rngName); err != nil {
			return err
		}
		srcName = o.rngName
	}
	if err := rng.Validate(src, field.Bits); err != nil {
		return err
	}

	e.field, e.src, e.srcName = field, src, srcName
	return nil
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Config{
		Radix:      Radix,
		Bits:       e.field.Bits,
		MaxShares:  e.field.Max,
		HasCSPRNG:  e.src != nil,
		TypeCSPRNG: e.srcName,
	}
}

// SetRNG binds a registered source by name. The previous binding stays in
// place when the name is unknown or validation fails.
func (e *Engine) SetRNG(name string) error {
	src, err := rng.New(name)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := rng.Validate(src, e.field.Bits); err != nil {
		return err
	}
	e.src, e.srcName = src, name
	return nil
}

// SetRNGSource binds a caller-supplied source after validating one draw:
// the output must be exactly bits '0'/'1' digits and not all zeros. The
// previous binding stays in place on failure.
func (e *Engine) SetRNGSource(src rng.Source) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := rng.Validate(src, e.field.Bits); err != nil {
		return err
	}
	e.src, e.srcName = src, CustomSourceName
	return nil
}

// Split divides hexSecret into n shares, any t of which recover it.
func (e *Engine) Split(hexSecret string, n, t int) ([]string, error) {
	return e.SplitPadded(hexSecret, n, t, 0)
}

// SplitPadded is Split with explicit zero-padding of the secret's bit
// string to a multiple of pad bits, masking its exact length. pad must be
// 0 (no extra padding) to 1024.
func (e *Engine) SplitPadded(hexSecret string, n, t, pad int) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return share.Split(e.field, e.src, hexSecret, n, t, pad)
}

// Combine reconstructs the hex secret from shares. When the shares were
// produced under a different bit width than the engine's current one, the
// engine adopts their width.
func (e *Engine) Combine(shares []string) (string, error) {
	secret, bits, err := share.Combine(shares, 0)
	if err != nil {
		return "", err
	}
	e.adoptBits(bits)
	return secret, nil
}

// NewShare issues an additional share with the given id from t or more
// existing shares, without reconstructing the secret in plaintext.
func (e *Engine) NewShare(id int, shares []string) (string, error) {
	issued, err := share.NewShare(id, shares)
	if err != nil {
		return "", err
	}
	if c, err := share.Decode(issued); err == nil {
		e.adoptBits(c.Bits)
	}
	return issued, nil
}

// Extract decodes a share string and, like Combine, adopts its bit width.
func (e *Engine) Extract(s string) (ShareComponents, error) {
	c, err := share.Decode(s)
	if err != nil {
		return ShareComponents{}, err
	}
	e.adoptBits(c.Bits)
	return ShareComponents{Bits: c.Bits, ID: c.ID, Data: c.Data}, nil
}

// Random draws nBits (1 to 65536) from the bound source and returns them
// hex-encoded.
func (e *Engine) Random(nBits int) (string, error) {
	if nBits < 1 || nBits > MaxRandomBits {
		return "", fmt.Errorf("%w (got %d)", ErrInvalidBitLength, nBits)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	bits, err := e.src(nBits)
	if err != nil {
		return "", err
	}
	return codec.BinToHex(bits), nil
}

// adoptBits switches the engine to a foreign share's field, keeping the
// source binding.
func (e *Engine) adoptBits(bits int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.field.Bits == bits {
		return
	}
	if field, err := gf.Get(bits); err == nil {
		e.field = field
	}
}

// StrToHex encodes every UTF-16 code unit of s as 2*bytesPerChar hex
// digits. bytesPerChar must be 1 to 6; 1 suffices for ASCII, 2 for any
// string.
func StrToHex(s string, bytesPerChar int) (string, error) {
	return codec.StrToHex(s, bytesPerChar)
}

// HexToStr reverses StrToHex with the same bytesPerChar.
func HexToStr(hex string, bytesPerChar int) (string, error) {
	return codec.HexToStr(hex, bytesPerChar)
}

// ExtractShareComponents decodes a share string without touching any
// engine configuration.
func ExtractShareComponents(s string) (ShareComponents, error) {
	c, err := share.Decode(s)
	if err != nil {
		return ShareComponents{}, err
	}
	return ShareComponents{Bits: c.Bits, ID: c.ID, Data: c.Data}, nil
}
