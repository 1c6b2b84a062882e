package config

import (
	"time"
)

// Config is the top-level configuration structure for atlas-mcp.
type Config struct {
	Atlas   AtlasConfig   `yaml:"atlas"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// AtlasConfig holds the credentials and client tuning for the Atlas API.
type AtlasConfig struct {
	PublicKey  string        `yaml:"publicKey,omitempty"`
	PrivateKey string        `yaml:"privateKey,omitempty"`
	ProjectID  string        `yaml:"projectId,omitempty"`
	BaseURL    string        `yaml:"baseUrl,omitempty"`
	RetryMax   *int          `yaml:"retryMax,omitempty"` // nil keeps the default; 0 disables retries
	Timeout    time.Duration `yaml:"timeout,omitempty"`
}

const (
	// TransportStdio is the standard I/O transport.
	TransportStdio = "stdio"
	// TransportSSE is the Server-Sent Events transport.
	TransportSSE = "sse"
	// TransportStreamableHTTP is the streamable HTTP transport.
	TransportStreamableHTTP = "streamable-http"
)

// ServerConfig selects how the MCP server is exposed.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"`
	Host      string `yaml:"host,omitempty"`
	Port      int    `yaml:"port,omitempty"`
}

// LoggingConfig configures pkg/logging.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	File   string `yaml:"file,omitempty"`
}
