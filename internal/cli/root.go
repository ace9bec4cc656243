// Package cli implements the secrets command-line interface on top of the
// engine in the root package. Commands never write secret material to the
// log; only sizes, counts, and ids are recorded.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/secrets"
	"github.com/mrz1836/secrets/internal/config"
	"github.com/mrz1836/secrets/internal/output"
	secretserr "github.com/mrz1836/secrets/pkg/errors"
)

// BuildInfo carries link-time build metadata from main.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// state bundles everything a command needs after the persistent pre-run.
type state struct {
	cfg     *config.Config
	logger  *config.Logger
	printer *output.Printer
	engine  *secrets.Engine
}

// rootFlags are the persistent flag values bound on the root command.
type rootFlags struct {
	home    string
	format  string
	bits    int
	rngName string
	verbose bool
}

// newRootCmd assembles the command tree. State is initialised once in the
// persistent pre-run and shared by all subcommands through the closure.
func newRootCmd(info BuildInfo) *cobra.Command {
	st := &state{}
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Split and recombine secrets with Shamir's Secret Sharing",
		Long: `secrets splits a hex or text secret into n shares over GF(2^bits), any
t of which reconstruct it exactly. Additional shares can be issued later
without ever reassembling the secret.

Example:
  secrets split deadbeef -n 5 -t 3
  secrets combine 801... 802... 803...
  secrets new-share 9 801... 802... 803...`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initState(cmd, st, flags)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if st.logger != nil {
				_ = st.logger.Close()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.home, "home", "", "config directory (default ~/.secrets)")
	pf.StringVarP(&flags.format, "output", "o", "", "output format: text, json, or auto")
	pf.IntVarP(&flags.bits, "bits", "b", 0, "field exponent, 3 to 20 (default from config)")
	pf.StringVar(&flags.rngName, "rng", "", "random source name (default from config)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newSplitCmd(st),
		newCombineCmd(st),
		newNewShareCmd(st),
		newRandomCmd(st),
		newInspectCmd(st),
		newEncodeCmd(st),
		newDecodeCmd(st),
		newRNGCmd(st),
		newVersionCmd(st, info),
	)
	return cmd
}

// initState loads config, opens the logger, picks the output format, and
// builds the engine with flag overrides applied.
func initState(cmd *cobra.Command, st *state, flags *rootFlags) error {
	home := flags.home
	if home == "" {
		var err error
		if home, err = config.DefaultHome(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(home)
	if err != nil {
		return err
	}
	st.cfg = cfg

	level := config.ParseLogLevel(cfg.Logging.Level)
	if flags.verbose {
		level = config.LogLevelDebug
	}
	if st.logger, err = config.NewLogger(level, cfg.Logging.File); err != nil {
		return err
	}

	request := cfg.Output.Format
	if flags.format != "" {
		request = flags.format
	}
	st.printer = output.NewPrinter(output.Resolve(request, cmd.OutOrStdout()), cmd.OutOrStdout())

	bits := cfg.Sharing.Bits
	if flags.bits != 0 {
		bits = flags.bits
	}
	rngName := cfg.Sharing.RNG
	if flags.rngName != "" {
		rngName = flags.rngName
	}
	st.engine, err = secrets.New(secrets.WithBits(bits), secrets.WithRNG(rngName))
	if err != nil {
		return secretserr.Classify(err)
	}
	return nil
}

// Execute runs the CLI and renders any failure to stderr: text when stderr
// is a terminal, JSON otherwise.
func Execute(info BuildInfo) error {
	cmd := newRootCmd(info)
	err := cmd.Execute()
	if err != nil {
		structured := secretserr.Classify(err)
		_ = output.WriteError(os.Stderr, structured, output.Resolve("", os.Stderr))
	}
	return err
}

// ExitCode maps an error from Execute onto the process exit code.
func ExitCode(err error) int {
	return secretserr.ExitCodeFor(classified(err))
}

func classified(err error) error {
	if err == nil {
		return nil
	}
	var structured *secretserr.Error
	if errors.As(err, &structured) {
		return structured
	}
	return secretserr.Classify(err)
}
