package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/secrets/internal/rng"
)

func newRNGCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rng",
		Short: "Inspect random sources",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered random sources",
		RunE: func(_ *cobra.Command, _ []string) error {
			if st.printer.JSON() {
				return st.printer.Object(map[string][]string{"sources": rng.Names()}, nil)
			}
			for _, name := range rng.Names() {
				marker := " "
				if name == st.engine.Config().TypeCSPRNG {
					marker = "*"
				}
				if _, err := fmt.Fprintf(st.printer.Writer(), "%s %s\n", marker, name); err != nil {
					return err
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the engine configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := st.engine.Config()
			return st.printer.Object(cfg, [][2]string{
				{"bits", strconv.Itoa(cfg.Bits)},
				{"max shares", strconv.Itoa(cfg.MaxShares)},
				{"rng", cfg.TypeCSPRNG},
			})
		},
	})

	return cmd
}
