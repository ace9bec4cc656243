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

func newCombineCmd(st *state) *cobra.Command {
	var (
		asText       bool
		bytesPerChar int
		asMnemonic   bool
	)

	cmd := &cobra.Command{
		Use:   "combine [share...]",
		Short: "Reconstruct a secret from shares",
		Long: `Reconstruct the secret from t or more shares given as arguments or fed
on stdin one per line. Encrypted shares are detected and prompt for their
passphrase. Output is hex unless --text or --mnemonic converts it back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			recovered, err := runCombine(cmd, st, args)
			metrics.Global.RecordCombine(time.Since(start), err)
			if err != nil {
				st.logger.Error("combine failed", slog.String("error", err.Error()))
				return secretserr.Classify(err)
			}

			out := recovered
			switch {
			case asMnemonic:
				if out, err = hexToMnemonic(recovered); err != nil {
					return secretserr.Classify(err)
				}
			case asText:
				if out, err = secrets.HexToStr(recovered, bytesPerChar); err != nil {
					return secretserr.Classify(err)
				}
			}

			st.logger.Debug("combine", slog.Int("bits", st.engine.Config().Bits))
			return st.printer.Value("secret", out)
		},
	}

	cmd.Flags().BoolVar(&asText, "text", false, "decode the recovered hex back to text")
	cmd.Flags().IntVar(&bytesPerChar, "bytes-per-char", 2, "bytes per text character, 1 to 6 (with --text)")
	cmd.Flags().BoolVar(&asMnemonic, "mnemonic", false, "render the recovered entropy as a BIP39 mnemonic")

	return cmd
}

func runCombine(cmd *cobra.Command, st *state, args []string) (string, error) {
	shares, err := readShareArgs(cmd, args)
	if err != nil {
		return "", err
	}
	if shares, err = openShares(cmd, shares); err != nil {
		return "", err
	}
	return st.engine.Combine(shares)
}

// openShares decrypts any armored share tokens in place, prompting for the
// passphrase once.
func openShares(cmd *cobra.Command, shares []string) ([]string, error) {
	pass := ""
	for i, s := range shares {
		if !isArmored(s) {
			continue
		}
		if pass == "" {
			var err error
			if pass, err = readPassphrase(cmd, "Passphrase: "); err != nil {
				return nil, err
			}
		}

		sealed, err := armorDecode(s)
		if err != nil {
			return nil, secretserr.ErrInvalidShare.WithCause(err)
		}
		plain, err := secure.DecryptWithPassphrase(sealed, pass)
		if err != nil {
			return nil, secretserr.ErrEncryption.WithCause(err)
		}
		shares[i] = string(plain)
	}
	return shares, nil
}
