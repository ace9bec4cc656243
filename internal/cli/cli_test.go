package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/secrets"
	secretserr "github.com/mrz1836/secrets/pkg/errors"
)

// execute runs the CLI in-process with a scratch home directory and
// returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(BuildInfo{Version: "test"})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--home", t.TempDir()}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func TestSplitAndCombine(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "--rng", "testRandom",
		"split", "deadbeef", "-n", "3", "-t", "2")
	require.NoError(t, err)

	shares := lines(out)
	require.Len(t, shares, 3)
	for _, s := range shares {
		assert.Regexp(t, `^[3-9a-k][0-9a-f]+$`, s)
	}

	out, err = execute(t, "", "-o", "text", "combine", shares[0], shares[2])
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", strings.TrimSpace(out))
}

func TestCombineFromStdin(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "--rng", "testRandom",
		"split", "00ff", "-n", "4", "-t", "2")
	require.NoError(t, err)
	shares := lines(out)

	stdin := shares[1] + "\n\n" + shares[3] + "\n"
	out, err = execute(t, stdin, "-o", "text", "combine")
	require.NoError(t, err)
	assert.Equal(t, "00ff", strings.TrimSpace(out))
}

func TestSplitTextSecret(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "split", "foo", "--text", "-n", "3", "-t", "2")
	require.NoError(t, err)
	shares := lines(out)
	require.Len(t, shares, 3)

	out, err = execute(t, "", "-o", "text", "combine", "--text", shares[0], shares[1])
	require.NoError(t, err)
	assert.Equal(t, "foo", strings.TrimSpace(out))
}

func TestSplitReadsSecretFromStdin(t *testing.T) {
	out, err := execute(t, "beef\n", "-o", "text", "split", "-", "-n", "3", "-t", "2")
	require.NoError(t, err)
	shares := lines(out)
	require.Len(t, shares, 3)

	out, err = execute(t, "", "-o", "text", "combine", shares[1], shares[2])
	require.NoError(t, err)
	assert.Equal(t, "beef", strings.TrimSpace(out))
}

func TestNewShareCommand(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "split", "0123", "-n", "3", "-t", "2")
	require.NoError(t, err)
	shares := lines(out)

	out, err = execute(t, "", "-o", "text", "new-share", "7", shares[0], shares[1])
	require.NoError(t, err)
	issued := strings.TrimSpace(out)
	assert.Regexp(t, `^807`, issued)

	out, err = execute(t, "", "-o", "text", "combine", issued, shares[2])
	require.NoError(t, err)
	assert.Equal(t, "0123", strings.TrimSpace(out))
}

func TestRandomCommand(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "random", "128")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 32)

	_, err = execute(t, "", "-o", "text", "random", "0")
	assert.Error(t, err)
	assert.Equal(t, secretserr.ExitInput, ExitCode(err))
}

func TestRandomMnemonic(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "random", "128", "--mnemonic")
	require.NoError(t, err)
	words := strings.Fields(strings.TrimSpace(out))
	assert.Len(t, words, 12)

	_, err = execute(t, "", "-o", "text", "random", "100", "--mnemonic")
	assert.Error(t, err)
}

func TestMnemonicRoundTrip(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "random", "128", "--mnemonic")
	require.NoError(t, err)
	mnemonic := strings.TrimSpace(out)

	out, err = execute(t, "", "-o", "text", "split", mnemonic, "--mnemonic", "-n", "3", "-t", "2")
	require.NoError(t, err)
	shares := lines(out)

	out, err = execute(t, "", "-o", "text", "combine", "--mnemonic", shares[0], shares[2])
	require.NoError(t, err)
	assert.Equal(t, mnemonic, strings.TrimSpace(out))
}

func TestInspectJSON(t *testing.T) {
	out, err := execute(t, "", "-o", "json", "inspect", "k00400ffff")
	require.NoError(t, err)

	var c secrets.ShareComponents
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, 20, c.Bits)
	assert.Equal(t, 1024, c.ID)
	assert.Equal(t, "ffff", c.Data)
}

func TestEncodeDecode(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "encode", "αβγ")
	require.NoError(t, err)
	hexed := strings.TrimSpace(out)
	assert.Equal(t, "03b103b203b3", hexed)

	out, err = execute(t, "", "-o", "text", "decode", hexed)
	require.NoError(t, err)
	assert.Equal(t, "αβγ", strings.TrimSpace(out))
}

func TestEncryptedShares(t *testing.T) {
	// Passphrase is read from stdin after the secret prompt is skipped
	// (literal secret argument).
	out, err := execute(t, "hunter2\n", "-o", "text", "split", "cafe",
		"-n", "3", "-t", "2", "--encrypt")
	require.NoError(t, err)
	shares := lines(out)
	require.Len(t, shares, 3)
	for _, s := range shares {
		assert.True(t, isArmored(s), "share should be encrypted: %s", s)
	}

	out, err = execute(t, "hunter2\n", "-o", "text", "combine", shares[0], shares[1])
	require.NoError(t, err)
	assert.Equal(t, "cafe", strings.TrimSpace(out))

	_, err = execute(t, "wrong\n", "-o", "text", "combine", shares[0], shares[1])
	require.Error(t, err)
	assert.ErrorIs(t, err, secretserr.ErrEncryption)
}

func TestBadShareError(t *testing.T) {
	_, err := execute(t, "", "-o", "text", "combine", "801")
	require.Error(t, err)
	assert.Equal(t, secretserr.ExitInput, ExitCode(err))
}

func TestUnknownRNGFails(t *testing.T) {
	_, err := execute(t, "", "-o", "text", "--rng", "mersenne", "random", "8")
	require.Error(t, err)
	assert.ErrorIs(t, err, secretserr.ErrInvalidRNGName)
}

func TestRNGList(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "rng", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "cryptoRandomBytes")
	assert.Contains(t, out, "testRandom")
	// The bound source is marked.
	assert.Contains(t, out, "* cryptoRandomBytes")
}

func TestRNGShow(t *testing.T) {
	out, err := execute(t, "", "-o", "json", "--bits", "16", "rng", "show")
	require.NoError(t, err)

	var cfg secrets.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 16, cfg.Bits)
	assert.Equal(t, 65535, cfg.MaxShares)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "secrets test")
}

func TestWideFieldEndToEnd(t *testing.T) {
	out, err := execute(t, "", "-o", "text", "--bits", "20",
		"split", "0000123456", "-n", "4", "-t", "3")
	require.NoError(t, err)
	shares := lines(out)
	require.Len(t, shares, 4)
	for _, s := range shares {
		assert.Equal(t, byte('k'), s[0])
	}

	out, err = execute(t, "", "-o", "text", "combine", shares[0], shares[2], shares[3])
	require.NoError(t, err)
	assert.Equal(t, "0000123456", strings.TrimSpace(out))
}
