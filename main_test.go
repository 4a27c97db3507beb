package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(append([]string{"--no-color", "--debug=false", "--digits=6"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootArgs(t *testing.T) {
	stdout, stderr, err := execute(t, "", "0x10", "+", "16")
	require.NoError(t, err)
	require.Equal(t, "32\n", stdout)
	require.Empty(t, stderr)
}

func TestRootArgsNegative(t *testing.T) {
	stdout, _, err := execute(t, "", "--", "-2 * 3")
	require.NoError(t, err)
	require.Equal(t, "-6\n", stdout)
}

func TestRootArgsError(t *testing.T) {
	stdout, stderr, err := execute(t, "", "1 / 0")
	require.ErrorIs(t, err, errReported)
	require.Empty(t, stdout)
	require.Equal(t, "error: division by zero at position 2\n", stderr)
}

func TestRootStdin(t *testing.T) {
	stdout, stderr, err := execute(t, "2 + 3 * 4\n(1 + 2\n8 / 2 / 2\n")
	require.NoError(t, err)
	require.Equal(t, "14\n2\n", stdout)
	require.Equal(t, "error: unmatched parenthesis \"(\" at position 0\n", stderr)
}

func TestRootDigits(t *testing.T) {
	stdout, _, err := execute(t, "", "--digits=1", "1 / 4")
	require.NoError(t, err)
	require.Equal(t, "0.2\n", stdout)

	_, _, err = execute(t, "", "--digits=9", "1")
	require.Error(t, err)
	require.NotErrorIs(t, err, errReported)
}

func TestColorable(t *testing.T) {
	require.False(t, colorable(bytes.NewBuffer(nil)))

	// A regular file is never a terminal, even when stdout is one.
	f, err := os.Create(filepath.Join(t.TempDir(), "errs.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }() // Best effort.
	require.False(t, colorable(f))

	t.Setenv("NO_COLOR", "1")
	require.False(t, colorable(os.Stderr))
}

func TestRootErrorNoColorOnPipe(t *testing.T) {
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs([]string{"--no-color=false", "--debug=false", "--digits=6", "1 / 0"})
	require.ErrorIs(t, rootCmd.Execute(), errReported)
	require.Equal(t, "error: division by zero at position 2\n", stderr.String())
}
