package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/secrets"
	"github.com/mrz1836/secrets/internal/metrics"
	secretserr "github.com/mrz1836/secrets/pkg/errors"
)

func newRandomCmd(st *state) *cobra.Command {
	var asMnemonic bool

	cmd := &cobra.Command{
		Use:   "random <bits>",
		Short: "Generate a random hex secret",
		Long: `Draw the requested number of bits (1 to 65536) from the bound random
source and print them as hex. With --mnemonic the bits must be 128, 160,
192, 224, or 256 and the output is a BIP39 phrase.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			nBits, err := strconv.Atoi(args[0])
			if err != nil {
				return secretserr.ErrInvalidInput.
					WithDetail("bits", args[0]).
					WithCause(secrets.ErrInvalidBitLength)
			}

			if asMnemonic {
				if nBits%32 != 0 || nBits < 128 || nBits > 256 {
					return secretserr.ErrInvalidInput.
						WithDetail("bits", args[0]).
						WithSuggestion("mnemonic entropy must be 128, 160, 192, 224, or 256 bits")
				}
			}

			h, err := st.engine.Random(nBits)
			if err != nil {
				return secretserr.Classify(err)
			}
			metrics.Global.RecordRandom(nBits)

			if asMnemonic {
				mnemonic, err := hexToMnemonic(h)
				if err != nil {
					return secretserr.Classify(err)
				}
				return st.printer.Value("mnemonic", mnemonic)
			}
			return st.printer.Value("random", h)
		},
	}

	cmd.Flags().BoolVar(&asMnemonic, "mnemonic", false, "emit a BIP39 mnemonic instead of hex")

	return cmd
}
