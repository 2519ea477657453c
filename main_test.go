package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func findCmd(parent *cobra.Command, name string) *cobra.Command {
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"play", "categories", "logs"} {
		assert.NotNil(t, findCmd(rootCmd, name), name)
	}
	logs := findCmd(rootCmd, "logs")
	require.NotNil(t, logs)
	for _, name := range []string{"list", "show", "serve"} {
		assert.NotNil(t, findCmd(logs, name), name)
	}
	for _, flag := range []string{"category", "random", "daily", "seed"} {
		assert.NotNil(t, playCmd.Flags().Lookup(flag), flag)
	}
}

func TestCategories(t *testing.T) {
	t.Setenv("HANGMAN_LOG_DIR", t.TempDir())
	out, err := execute(t, "", "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Animals (10 words)\n")
	assert.Contains(t, out, "4. Science (10 words)\n")
}

func TestPlayThenInspectLogs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "game_log")
	t.Setenv("HANGMAN_LOG_DIR", dir)

	out, err := execute(t, "7\nquit\n", "play", "--category", "Countries", "--seed", "3", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Category: Countries")
	assert.Contains(t, out, "Invalid input.")
	assert.Contains(t, out, "You quit the game early.")

	b, err := os.ReadFile(filepath.Join(dir, "game1", "log.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Final result: Loss\n")
	assert.Contains(t, string(b), "Attempts used: 0\n")

	out, err = execute(t, "", "logs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "game1")
	assert.Contains(t, out, "Countries")

	out, err = execute(t, "", "logs", "show", "1")
	require.NoError(t, err)
	assert.Equal(t, string(b), out)

	_, err = execute(t, "", "logs", "show", "2")
	assert.Error(t, err)
}

func TestPlayRejectsConflictingFlags(t *testing.T) {
	t.Setenv("HANGMAN_LOG_DIR", t.TempDir())
	_, err := execute(t, "", "play", "--category", "Science", "--daily")
	assert.Error(t, err)
}
