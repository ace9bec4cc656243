// Package errors provides structured error handling for the secrets CLI.
// It defines machine-readable codes, exit codes, and helpers for attaching
// context and suggestions to errors surfaced to users.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes.
const (
	ExitSuccess = 0 // Successful execution
	ExitGeneral = 1 // General/unknown error
	ExitInput   = 2 // Invalid input
)

// Error is the structured error type surfaced at the CLI boundary.
type Error struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for the user
	Cause      error             // Underlying error
	ExitCode   int               // Process exit code
}

func (e *Error) Error() string {
	msg := e.Message

	// Details are sorted for deterministic output.
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches two structured errors by code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetail returns a copy of e carrying an extra key/value detail.
func (e *Error) WithDetail(key, value string) *Error {
	c := *e
	c.Details = make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		c.Details[k] = v
	}
	c.Details[key] = value
	return &c
}

// WithSuggestion returns a copy of e carrying an actionable suggestion.
func (e *Error) WithSuggestion(s string) *Error {
	c := *e
	c.Suggestion = s
	return &c
}

// WithCause returns a copy of e wrapping the underlying error.
func (e *Error) WithCause(err error) *Error {
	c := *e
	c.Cause = err
	return &c
}

// Sentinel errors.
var (
	ErrGeneral = &Error{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &Error{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrInvalidBitWidth = &Error{
		Code:     "INVALID_BIT_WIDTH",
		Message:  "number of bits must be between 3 and 20",
		ExitCode: ExitInput,
	}

	ErrInvalidRNGName = &Error{
		Code:     "INVALID_RNG_NAME",
		Message:  "unknown random source name",
		ExitCode: ExitInput,
	}

	ErrNoSecureRNG = &Error{
		Code:     "NO_SECURE_RNG",
		Message:  "no cryptographically secure random source is available",
		ExitCode: ExitGeneral,
	}

	ErrRNGInvalid = &Error{
		Code:     "RNG_VALIDATION_FAILED",
		Message:  "random source failed validation",
		ExitCode: ExitInput,
	}

	ErrInvalidHex = &Error{
		Code:     "INVALID_HEX",
		Message:  "input is not valid hexadecimal",
		ExitCode: ExitInput,
	}

	ErrInvalidShare = &Error{
		Code:     "INVALID_SHARE",
		Message:  "share string cannot be decoded",
		ExitCode: ExitInput,
	}

	ErrShareMismatch = &Error{
		Code:     "SHARE_MISMATCH",
		Message:  "shares are inconsistent with each other",
		ExitCode: ExitInput,
	}

	ErrEncryption = &Error{
		Code:     "ENCRYPTION_FAILED",
		Message:  "share encryption or decryption failed",
		ExitCode: ExitGeneral,
	}
)

// ExitCodeFor extracts the exit code from an error chain, defaulting to
// ExitGeneral for unclassified errors and ExitSuccess for nil.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode
	}
	return ExitGeneral
}
