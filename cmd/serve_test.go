package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/config"
)

func newFlagTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "serve"}
	addServeFlags(c)
	require.NoError(t, c.ParseFlags(args))
	t.Cleanup(func() { addServeFlags(&cobra.Command{}) })
	return c
}

func setCredentials(t *testing.T) {
	t.Helper()
	isolateConfig(t)
	t.Setenv("MONGODB_ATLAS_PUBLIC_KEY", "pub")
	t.Setenv("MONGODB_ATLAS_PRIVATE_KEY", "priv")
	t.Setenv("MONGODB_ATLAS_PROJECT_ID", "proj")
}

func TestLoadServeConfigDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := loadServeConfig(newFlagTestCmd(t))
	require.NoError(t, err)

	assert.Equal(t, config.TransportStdio, cfg.Server.Transport)
	assert.Equal(t, config.DefaultBaseURL, cfg.Atlas.BaseURL)
	assert.Equal(t, "proj", cfg.Atlas.ProjectID)
}

func TestLoadServeConfigFlagsOverrideFile(t *testing.T) {
	setCredentials(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  transport: sse\n  port: 7000\nlogging:\n  format: json\n"), 0o644))

	cfg, err := loadServeConfig(newFlagTestCmd(t, "--config", path, "--port", "9999"))
	require.NoError(t, err)

	assert.Equal(t, config.TransportSSE, cfg.Server.Transport, "file value kept when flag not set")
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadServeConfigRejectsUnknownTransport(t *testing.T) {
	setCredentials(t)

	_, err := loadServeConfig(newFlagTestCmd(t, "--transport", "grpc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported transport "grpc"`)
}

func TestLoadServeConfigMissingCredentials(t *testing.T) {
	isolateConfig(t)
	t.Setenv("MONGODB_ATLAS_PUBLIC_KEY", "pub")

	_, err := loadServeConfig(newFlagTestCmd(t))
	require.Error(t, err)
	assert.Equal(t, "Missing required environment variables:\n"+
		"- MONGODB_ATLAS_PRIVATE_KEY\n"+
		"- MONGODB_ATLAS_PROJECT_ID\n"+
		"Optional:\n"+
		"- MONGODB_ATLAS_BASE_URL (defaults to https://cloud.mongodb.com/api/atlas/v1.0)", err.Error())
}

func TestNewDispatcher(t *testing.T) {
	retry := 1
	cfg := config.GetDefaultConfig()
	cfg.Atlas.PublicKey = "pub"
	cfg.Atlas.PrivateKey = "priv"
	cfg.Atlas.ProjectID = "proj"
	cfg.Atlas.RetryMax = &retry

	d, err := newDispatcher(cfg)
	require.NoError(t, err)
	assert.Equal(t, 76, d.Registry().Len())

	cfg.Atlas.BaseURL = "not a url"
	_, err = newDispatcher(cfg)
	assert.Error(t, err)
}
