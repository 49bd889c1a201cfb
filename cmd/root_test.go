package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetVersion(t *testing.T) {
	original := rootCmd.Version
	defer SetVersion(original)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", GetVersion())
}

func TestRootCommand_FlagsRegistered(t *testing.T) {
	for _, name := range []string{"regions", "tag", "attributes"} {
		flag := rootCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "flag %q should be registered", name)
		// All three default to unset; defaults are resolved at run time.
		assert.Equal(t, "", flag.DefValue, "flag %q should default to empty", name)
	}

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config-path"))
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
}

func TestRootCommand_SilencesUsageOnError(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestVersionCommand_PrintsVersion(t *testing.T) {
	original := rootCmd.Version
	defer SetVersion(original)
	SetVersion("9.9.9")

	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	assert.Equal(t, "ec2inv version 9.9.9\n", buf.String())
}

func TestSelfUpdate_RefusesDevVersion(t *testing.T) {
	original := rootCmd.Version
	defer SetVersion(original)
	SetVersion("dev")

	cmd := newSelfUpdateCmd()
	err := runSelfUpdate(cmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "development version")
}
