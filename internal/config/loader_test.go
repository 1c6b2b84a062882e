package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every file layer and the environment at a temp dir.
func isolate(t *testing.T, env map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	originalLookupEnv := osLookupEnv
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
		osLookupEnv = originalLookupEnv
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "user", configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", configFileName), nil
	}
	osLookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return tempDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolate(t, nil)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.Equal(t, DefaultBaseURL, cfg.Atlas.BaseURL)
	assert.Equal(t, TransportStdio, cfg.Server.Transport)
	require.NotNil(t, cfg.Atlas.RetryMax)
	assert.Equal(t, 3, *cfg.Atlas.RetryMax)
}

func TestLoadConfig_UserThenProjectOverride(t *testing.T) {
	dir := isolate(t, nil)

	writeFile(t, filepath.Join(dir, "user", configFileName), `
atlas:
  publicKey: user-pub
  privateKey: user-priv
  timeout: 30s
logging:
  level: debug
`)
	writeFile(t, filepath.Join(dir, "project", configFileName), `
atlas:
  projectId: project-from-file
  retryMax: 0
server:
  transport: sse
  port: 9000
`)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "user-pub", cfg.Atlas.PublicKey)
	assert.Equal(t, "user-priv", cfg.Atlas.PrivateKey)
	assert.Equal(t, "project-from-file", cfg.Atlas.ProjectID)
	assert.Equal(t, 30*time.Second, cfg.Atlas.Timeout)
	require.NotNil(t, cfg.Atlas.RetryMax)
	assert.Equal(t, 0, *cfg.Atlas.RetryMax)
	assert.Equal(t, TransportSSE, cfg.Server.Transport)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := isolate(t, nil)
	explicit := filepath.Join(dir, "explicit.yaml")
	writeFile(t, explicit, "atlas:\n  baseUrl: https://atlas.example.test/api\n")

	cfg, err := LoadConfig(explicit)
	require.NoError(t, err)
	assert.Equal(t, "https://atlas.example.test/api", cfg.Atlas.BaseURL)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := isolate(t, nil)
	writeFile(t, filepath.Join(dir, "user", configFileName), "atlas: [unclosed")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_EnvBeatsFiles(t *testing.T) {
	dir := isolate(t, map[string]string{
		EnvPublicKey:  "env-pub",
		EnvPrivateKey: "env-priv",
		EnvProjectID:  "env-project",
		EnvBaseURL:    "",
	})
	writeFile(t, filepath.Join(dir, "project", configFileName), `
atlas:
  publicKey: file-pub
  projectId: file-project
  baseUrl: https://from-file.test
`)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env-pub", cfg.Atlas.PublicKey)
	assert.Equal(t, "env-priv", cfg.Atlas.PrivateKey)
	assert.Equal(t, "env-project", cfg.Atlas.ProjectID)
	// empty env values do not clear file values
	assert.Equal(t, "https://from-file.test", cfg.Atlas.BaseURL)
}

func TestValidate_AllMissing(t *testing.T) {
	cfg := GetDefaultConfig()

	err := cfg.Validate()
	require.Error(t, err)

	var missingErr *MissingSettingsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{EnvPublicKey, EnvPrivateKey, EnvProjectID}, missingErr.Missing)

	expected := "Missing required environment variables:\n" +
		"- MONGODB_ATLAS_PUBLIC_KEY\n" +
		"- MONGODB_ATLAS_PRIVATE_KEY\n" +
		"- MONGODB_ATLAS_PROJECT_ID\n" +
		"Optional:\n" +
		"- MONGODB_ATLAS_BASE_URL (defaults to https://cloud.mongodb.com/api/atlas/v1.0)"
	assert.Equal(t, expected, err.Error())
}

func TestValidate_OnlyProjectMissing(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Atlas.PublicKey = "pub"
	cfg.Atlas.PrivateKey = "priv"

	err := cfg.Validate()
	var missingErr *MissingSettingsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{EnvProjectID}, missingErr.Missing)
	assert.NotContains(t, err.Error(), "- "+EnvPublicKey)
}

func TestValidate_DefaultsBaseURL(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Atlas.PublicKey = "pub"
	cfg.Atlas.PrivateKey = "priv"
	cfg.Atlas.ProjectID = "proj"
	cfg.Atlas.BaseURL = ""

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.Atlas.BaseURL)
}

func TestValidate_UnknownTransport(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Atlas.PublicKey = "pub"
	cfg.Atlas.PrivateKey = "priv"
	cfg.Atlas.ProjectID = "proj"
	cfg.Server.Transport = "carrier-pigeon"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported transport "carrier-pigeon"`)
}

func TestGetUserConfigDir(t *testing.T) {
	originalHome := osUserHomeDir
	defer func() { osUserHomeDir = originalHome }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config/atlas-mcp"), dir)
}
