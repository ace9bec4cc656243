package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/secrets"
	secretserr "github.com/mrz1836/secrets/pkg/errors"
)

func newInspectCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <share>",
		Short: "Decode a share's header",
		Long:  `Print the field width, id, and data of a share without combining it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := secrets.ExtractShareComponents(args[0])
			if err != nil {
				return secretserr.Classify(err)
			}
			return st.printer.Object(c, [][2]string{
				{"bits", strconv.Itoa(c.Bits)},
				{"id", strconv.Itoa(c.ID)},
				{"data", c.Data},
			})
		},
	}
	return cmd
}
