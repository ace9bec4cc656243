package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/secrets/internal/secure"
)

// readSecretArg resolves the secret operand: a literal argument, or "-" to
// read it from the terminal without echo (falling back to stdin when not a
// TTY). The caller owns the returned buffer and must Destroy it.
func readSecretArg(cmd *cobra.Command, arg string) (*secure.Buffer, error) {
	if arg != "-" {
		return secure.BufferFrom([]byte(arg)), nil
	}

	in, ok := cmd.InOrStdin().(*os.File)
	if ok && term.IsTerminal(int(in.Fd())) { //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
		fmt.Fprint(cmd.ErrOrStderr(), "Secret: ")
		raw, err := term.ReadPassword(int(in.Fd())) //nolint:gosec // G115: as above
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		buf := secure.BufferFrom(raw)
		secure.Wipe(raw)
		return buf, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return secure.BufferFrom([]byte(strings.TrimRight(line, "\r\n"))), nil
}

// readPassphrase prompts for an encryption passphrase without echo, or
// reads a line from stdin when it is not a terminal.
func readPassphrase(cmd *cobra.Command, prompt string) (string, error) {
	in, ok := cmd.InOrStdin().(*os.File)
	if ok && term.IsTerminal(int(in.Fd())) { //nolint:gosec // G115: as above
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		raw, err := term.ReadPassword(int(in.Fd())) //nolint:gosec // G115: as above
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		pass := string(raw)
		secure.Wipe(raw)
		return pass, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readShareArgs returns the share operands, falling back to stdin lines
// (one share per line, blanks skipped) when no args were given.
func readShareArgs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var shares []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			shares = append(shares, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return shares, nil
}
