package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/secrets"
	"github.com/mrz1836/secrets/internal/metrics"
	"github.com/mrz1836/secrets/internal/secure"
	secretserr "github.com/mrz1836/secrets/pkg/errors"
)

func newSplitCmd(st *state) *cobra.Command {
	var (
		shares       int
		threshold    int
		pad          int
		asText       bool
		bytesPerChar int
		asMnemonic   bool
		renderQR     bool
		encrypt      bool
	)

	cmd := &cobra.Command{
		Use:   "split <hex-secret|->",
		Short: "Split a secret into shares",
		Long: `Split a secret into n shares, any t of which reconstruct it. The secret
is hex by default; --text accepts arbitrary text and --mnemonic a BIP39
phrase. Pass "-" to be prompted without echo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			out, err := runSplit(cmd, st, args[0], splitOptions{
				shares:       shares,
				threshold:    threshold,
				pad:          pad,
				asText:       asText,
				bytesPerChar: bytesPerChar,
				asMnemonic:   asMnemonic,
				encrypt:      encrypt,
			})
			metrics.Global.RecordSplit(time.Since(start), err)
			if err != nil {
				st.logger.Error("split failed", slog.String("error", err.Error()))
				return secretserr.Classify(err)
			}

			st.logger.Debug("split",
				slog.Int("shares", shares),
				slog.Int("threshold", threshold),
				slog.Int("bits", st.engine.Config().Bits))

			return st.printer.WithQR(renderQR).Shares(out, encrypt)
		},
	}

	cmd.Flags().IntVarP(&shares, "shares", "n", 0, "total number of shares")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "shares required to reconstruct")
	cmd.Flags().IntVar(&pad, "pad", -1, "zero-pad the secret to a multiple of this many bits (default from config)")
	cmd.Flags().BoolVar(&asText, "text", false, "treat the secret as text instead of hex")
	cmd.Flags().IntVar(&bytesPerChar, "bytes-per-char", 2, "bytes per text character, 1 to 6 (with --text)")
	cmd.Flags().BoolVar(&asMnemonic, "mnemonic", false, "treat the secret as a BIP39 mnemonic")
	cmd.Flags().BoolVar(&renderQR, "qr", false, "also render each share as a QR code (terminal only)")
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "encrypt each share with a passphrase (age)")
	_ = cmd.MarkFlagRequired("shares")
	_ = cmd.MarkFlagRequired("threshold")

	return cmd
}

type splitOptions struct {
	shares       int
	threshold    int
	pad          int
	asText       bool
	bytesPerChar int
	asMnemonic   bool
	encrypt      bool
}

func runSplit(cmd *cobra.Command, st *state, arg string, opts splitOptions) ([]string, error) {
	buf, err := readSecretArg(cmd, arg)
	if err != nil {
		return nil, err
	}
	defer buf.Destroy()

	hexSecret := string(buf.Bytes())
	switch {
	case opts.asMnemonic:
		if hexSecret, err = mnemonicToHex(hexSecret); err != nil {
			return nil, err
		}
	case opts.asText:
		if hexSecret, err = secrets.StrToHex(hexSecret, opts.bytesPerChar); err != nil {
			return nil, err
		}
	}

	pad := opts.pad
	if pad < 0 {
		pad = st.cfg.Sharing.Pad
	}
	out, err := st.engine.SplitPadded(hexSecret, opts.shares, opts.threshold, pad)
	if err != nil {
		return nil, err
	}

	if opts.encrypt {
		pass, err := readPassphrase(cmd, "Passphrase: ")
		if err != nil {
			return nil, err
		}
		for i, s := range out {
			sealed, err := secure.EncryptWithPassphrase([]byte(s), pass)
			if err != nil {
				return nil, secretserr.ErrEncryption.WithCause(err)
			}
			out[i] = armorEncode(sealed)
		}
	}
	return out, nil
}
