package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/secrets"
	secretserr "github.com/mrz1836/secrets/pkg/errors"
)

func newEncodeCmd(st *state) *cobra.Command {
	var bytesPerChar int

	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Convert text to hex",
		Long:  `Encode each UTF-16 code unit of the text as fixed-width hex digits.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			h, err := secrets.StrToHex(args[0], bytesPerChar)
			if err != nil {
				return secretserr.Classify(err)
			}
			return st.printer.Value("hex", h)
		},
	}
	cmd.Flags().IntVar(&bytesPerChar, "bytes-per-char", 2, "bytes per character, 1 to 6")
	return cmd
}

func newDecodeCmd(st *state) *cobra.Command {
	var bytesPerChar int

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Convert hex back to text",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := secrets.HexToStr(args[0], bytesPerChar)
			if err != nil {
				return secretserr.Classify(err)
			}
			return st.printer.Value("text", s)
		},
	}
	cmd.Flags().IntVar(&bytesPerChar, "bytes-per-char", 2, "bytes per character, 1 to 6")
	return cmd
}
