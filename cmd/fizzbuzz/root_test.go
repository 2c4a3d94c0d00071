package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFizzbuzz(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFizzbuzz(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"numbers", "1\n3\n5\n15\n", "1\nFizz\nBuzz\nFizzBuzz\n"},
		{"no final line ending", "30\n7", "FizzBuzz\n7\n"},
		{"windows line endings", "9\r\n10\r\n", "Fizz\nBuzz\n"},
		{"stops at garbage", "2\nabc\n4\n", "2\nStopping at position 2: not a number\n"},
		{"garbage first", "x", "Stopping at position 0: not a number\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runFizzbuzz(t, tt.input, "--color=never")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFizzbuzzEcho(t *testing.T) {
	out, _, err := runFizzbuzz(t, "4\n5\n", "--echo")
	require.NoError(t, err)
	assert.Equal(t, "4\nBuzz\nYou entered:\n4\n5\n", out)
}

func TestFizzbuzzColors(t *testing.T) {
	out, _, err := runFizzbuzz(t, "3\n4", "--color=always")
	require.NoError(t, err)
	assert.Equal(t, "\033[33mFizz\033[0m\n\033[37;2m4\033[0m\n", out)

	_, _, err = runFizzbuzz(t, "3", "--color=sometimes")
	assert.Error(t, err)
}

func TestFizzbuzzStats(t *testing.T) {
	_, stats, err := runFizzbuzz(t, "1\n2\n", "--stats")
	require.NoError(t, err)
	assert.Equal(t, "source pulls: 5, peak buffered tokens: 3\n", stats)
}

func TestFizzbuzzFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte("6\n"), 0o600))
	out, _, err := runFizzbuzz(t, "", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "Fizz\n", out)

	_, _, err = runFizzbuzz(t, "", "--file", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, neither, classify(1))
	assert.Equal(t, fizz, classify(-3))
	assert.Equal(t, buzz, classify(10))
	assert.Equal(t, fizzBuzz, classify(0))
}
