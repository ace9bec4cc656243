// Package output renders the secrets CLI's results: share batches, the
// recovered secret, decoded share headers, and errors, as plain text for
// terminals or JSON for pipes. Share batches can additionally be rendered
// as QR codes for printing onto paper backups.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"golang.org/x/term"
	"rsc.io/qr"
)

// Mode selects how results are rendered.
type Mode int

// Rendering modes.
const (
	ModeText Mode = iota
	ModeJSON
)

// Resolve picks the rendering mode. "text" and "json" are honored as
// given; anything else means auto: text when the destination is a
// terminal, JSON when output is piped or redirected.
func Resolve(request string, w io.Writer) Mode {
	switch strings.ToLower(strings.TrimSpace(request)) {
	case "text":
		return ModeText
	case "json":
		return ModeJSON
	}
	if isTerminal(w) {
		return ModeText
	}
	return ModeJSON
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// Printer renders results in one resolved mode. The zero value is not
// usable; construct with NewPrinter.
type Printer struct {
	mode     Mode
	w        io.Writer
	withQR   bool
	qrConfig qrterminal.Config
}

// NewPrinter creates a printer rendering to w in the given mode.
func NewPrinter(mode Mode, w io.Writer) *Printer {
	return &Printer{
		mode: mode,
		w:    w,
		// Medium error correction so a damaged printout still scans.
		qrConfig: qrterminal.Config{
			Level:          qr.M,
			Writer:         w,
			QuietZone:      1,
			HalfBlocks:     true,
			BlackChar:      qrterminal.BLACK_BLACK,
			WhiteChar:      qrterminal.WHITE_WHITE,
			WhiteBlackChar: qrterminal.WHITE_BLACK,
			BlackWhiteChar: qrterminal.BLACK_WHITE,
		},
	}
}

// WithQR enables QR rendering after each share in text mode. Ignored off
// terminals, where QR blocks would corrupt piped output.
func (p *Printer) WithQR(on bool) *Printer {
	p.withQR = on && isTerminal(p.w)
	return p
}

// JSON reports whether the printer renders JSON.
func (p *Printer) JSON() bool {
	return p.mode == ModeJSON
}

// Writer exposes the destination for output the printer has no verb for.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// shareBatch is the JSON shape of a split result.
type shareBatch struct {
	Shares    []string `json:"shares"`
	Count     int      `json:"count"`
	Encrypted bool     `json:"encrypted"`
}

// Shares renders a share batch: one share per line as text, with QR blocks
// interleaved when enabled, or a JSON object carrying the batch and
// whether the shares are passphrase-sealed.
func (p *Printer) Shares(shares []string, encrypted bool) error {
	if p.mode == ModeJSON {
		return p.encode(shareBatch{Shares: shares, Count: len(shares), Encrypted: encrypted})
	}

	for i, s := range shares {
		if _, err := fmt.Fprintln(p.w, s); err != nil {
			return err
		}
		if p.withQR {
			if _, err := fmt.Fprintf(p.w, "  ^ share %d of %d\n", i+1, len(shares)); err != nil {
				return err
			}
			qrterminal.GenerateWithConfig(s, p.qrConfig)
		}
	}
	return nil
}

// Value renders a single named result: the bare value as text, or a
// one-key JSON object so scripted callers get a stable field name.
func (p *Printer) Value(name, value string) error {
	if p.mode == ModeJSON {
		return p.encode(map[string]string{name: value})
	}
	_, err := fmt.Fprintln(p.w, value)
	return err
}

// Object renders a structured result: v marshaled as JSON, or the given
// rows as aligned "key: value" text lines.
func (p *Printer) Object(v any, rows [][2]string) error {
	if p.mode == ModeJSON {
		return p.encode(v)
	}

	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(p.w, "%-*s  %s\n", width+1, row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
