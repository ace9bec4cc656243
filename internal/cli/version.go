package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/secrets/internal/version"
)

func newVersionCmd(st *state, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		RunE: func(_ *cobra.Command, _ []string) error {
			v := version.New(info.Version, info.Commit, info.Date)
			if st.printer.JSON() {
				return st.printer.Object(v, nil)
			}
			return st.printer.Value("version", v.String())
		},
	}
}
