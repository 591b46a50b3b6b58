package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_SubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["run"])
	assert.True(t, names["drives"])
	assert.True(t, names["config"])
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	verboseFlag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("no-color"))
}

func TestRootCmd_SilencesUsageOnError(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestExecute_Version(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"--version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute("1.2.3", "abcdef", "2026-01-01")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "version 1.2.3")
	assert.Contains(t, out.String(), "abcdef")
}
