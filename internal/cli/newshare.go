package cli

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/secrets/internal/metrics"
	"github.com/mrz1836/secrets/internal/share"
	secretserr "github.com/mrz1836/secrets/pkg/errors"
)

func newNewShareCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new-share <id> [share...]",
		Short: "Issue an additional share",
		Long: `Issue the share with the given id from t or more existing shares, without
reconstructing the secret in plaintext. Shares come from the arguments or
from stdin one per line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return secretserr.ErrInvalidShare.
					WithDetail("id", args[0]).
					WithCause(share.ErrInvalidShareID)
			}

			shares, err := readShareArgs(cmd, args[1:])
			if err != nil {
				return err
			}
			if shares, err = openShares(cmd, shares); err != nil {
				return err
			}

			start := time.Now()
			issued, err := st.engine.NewShare(id, shares)
			metrics.Global.RecordIssue(time.Since(start), err)
			if err != nil {
				st.logger.Error("new-share failed", slog.String("error", err.Error()))
				return secretserr.Classify(err)
			}

			st.logger.Debug("new-share", slog.Int("id", id))
			return st.printer.Value("share", issued)
		},
	}
	return cmd
}
