package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the real command tree with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

// isolateConfig points every config layer at empty locations and clears the
// credential variables.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MONGODB_ATLAS_PUBLIC_KEY", "")
	t.Setenv("MONGODB_ATLAS_PRIVATE_KEY", "")
	t.Setenv("MONGODB_ATLAS_PROJECT_ID", "")
	t.Setenv("MONGODB_ATLAS_BASE_URL", "")
}

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "atlas-mcp", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.RunE, "root must serve when run without a subcommand")

	for _, flag := range []string{"transport", "host", "port", "config", "debug", "log-format", "log-file"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(flag), "root flag %s", flag)
		assert.NotNil(t, serveCmd.Flags().Lookup(flag), "serve flag %s", flag)
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "atlas-mcp version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "atlas-mcp version 1.0.0\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	SetVersion("0.4.0")

	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "atlas-mcp version 0.4.0\n", out)
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, expected := range []string{"version", "self-update", "serve", "tool"} {
		assert.True(t, found[expected], "expected subcommand %s to be registered", expected)
	}
}

func TestRootWithoutSubcommandServes(t *testing.T) {
	isolateConfig(t)

	out, err := executeCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing required environment variables:")
	assert.Contains(t, out, "- MONGODB_ATLAS_PUBLIC_KEY")
}
