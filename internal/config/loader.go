package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/montumodi/mongodb-atlas-mcp-server/pkg/logging"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/atlas-mcp"
	projectConfigDir = ".atlas-mcp"
	configFileName   = "config.yaml"
)

// Environment variable names.
const (
	EnvPublicKey  = "MONGODB_ATLAS_PUBLIC_KEY"
	EnvPrivateKey = "MONGODB_ATLAS_PRIVATE_KEY"
	EnvProjectID  = "MONGODB_ATLAS_PROJECT_ID"
	EnvBaseURL    = "MONGODB_ATLAS_BASE_URL"
)

// LoadConfig layers defaults, the user file, the project file, the optional
// explicit file and finally the environment. An empty explicitPath skips that layer;
// a non-empty one must exist.
func LoadConfig(explicitPath string) (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if explicitPath != "" {
		explicitConfig, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicitConfig)
	}

	return applyEnv(config), nil
}

func overlayIfExists(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Loaded configuration from %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in overlay
// never clear a base value.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Atlas.PublicKey != "" {
		merged.Atlas.PublicKey = overlay.Atlas.PublicKey
	}
	if overlay.Atlas.PrivateKey != "" {
		merged.Atlas.PrivateKey = overlay.Atlas.PrivateKey
	}
	if overlay.Atlas.ProjectID != "" {
		merged.Atlas.ProjectID = overlay.Atlas.ProjectID
	}
	if overlay.Atlas.BaseURL != "" {
		merged.Atlas.BaseURL = overlay.Atlas.BaseURL
	}
	if overlay.Atlas.RetryMax != nil {
		retryMax := *overlay.Atlas.RetryMax
		merged.Atlas.RetryMax = &retryMax
	}
	if overlay.Atlas.Timeout != 0 {
		merged.Atlas.Timeout = overlay.Atlas.Timeout
	}

	if overlay.Server.Transport != "" {
		merged.Server.Transport = overlay.Server.Transport
	}
	if overlay.Server.Host != "" {
		merged.Server.Host = overlay.Server.Host
	}
	if overlay.Server.Port != 0 {
		merged.Server.Port = overlay.Server.Port
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Format != "" {
		merged.Logging.Format = overlay.Logging.Format
	}
	if overlay.Logging.File != "" {
		merged.Logging.File = overlay.Logging.File
	}

	return merged
}

// applyEnv overrides the Atlas settings with any non-empty environment variables.
func applyEnv(config Config) Config {
	set := func(name string, dst *string) {
		if v, ok := osLookupEnv(name); ok && v != "" {
			*dst = v
		}
	}
	set(EnvPublicKey, &config.Atlas.PublicKey)
	set(EnvPrivateKey, &config.Atlas.PrivateKey)
	set(EnvProjectID, &config.Atlas.ProjectID)
	set(EnvBaseURL, &config.Atlas.BaseURL)
	return config
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
