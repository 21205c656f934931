package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, ".renamerc.yaml", configFlag.DefValue)
	assert.Equal(t, "c", configFlag.Shorthand)

	debugFlag := cmd.Flags().Lookup("debug")
	require.NotNil(t, debugFlag)
	assert.Equal(t, "false", debugFlag.DefValue)

	dryRunFlag := cmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRunFlag)
	assert.Equal(t, "n", dryRunFlag.Shorthand)
}

func TestNewRootCmd_Use(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "renamerc", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
}
