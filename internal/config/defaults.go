package config

import "time"

const (
	// DefaultBaseURL is the Atlas management API root used when none is configured.
	DefaultBaseURL = "https://cloud.mongodb.com/api/atlas/v1.0"

	defaultRetryMax = 3
	defaultTimeout  = 60 * time.Second
	defaultHost     = "localhost"
	defaultPort     = 8090
)

// GetDefaultConfig returns the built-in defaults. Credentials are always empty.
func GetDefaultConfig() Config {
	retryMax := defaultRetryMax
	return Config{
		Atlas: AtlasConfig{
			BaseURL:  DefaultBaseURL,
			RetryMax: &retryMax,
			Timeout:  defaultTimeout,
		},
		Server: ServerConfig{
			Transport: TransportStdio,
			Host:      defaultHost,
			Port:      defaultPort,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
