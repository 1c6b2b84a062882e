package config

import (
	"fmt"
	"strings"
)

// MissingSettingsError lists the required settings absent at startup, in a fixed order.
type MissingSettingsError struct {
	Missing []string
}

func (e *MissingSettingsError) Error() string {
	var b strings.Builder
	b.WriteString("Missing required environment variables:")
	for _, name := range e.Missing {
		b.WriteString("\n- ")
		b.WriteString(name)
	}
	b.WriteString("\nOptional:\n- ")
	fmt.Fprintf(&b, "%s (defaults to %s)", EnvBaseURL, DefaultBaseURL)
	return b.String()
}

// Validate reports every missing credential at once. It fills in the default
// base URL when none is set.
func (c *Config) Validate() error {
	var missing []string
	if c.Atlas.PublicKey == "" {
		missing = append(missing, EnvPublicKey)
	}
	if c.Atlas.PrivateKey == "" {
		missing = append(missing, EnvPrivateKey)
	}
	if c.Atlas.ProjectID == "" {
		missing = append(missing, EnvProjectID)
	}
	if len(missing) > 0 {
		return &MissingSettingsError{Missing: missing}
	}

	if c.Atlas.BaseURL == "" {
		c.Atlas.BaseURL = DefaultBaseURL
	}

	switch c.Server.Transport {
	case TransportStdio, TransportSSE, TransportStreamableHTTP:
	default:
		return fmt.Errorf("unsupported transport %q (want %s, %s or %s)",
			c.Server.Transport, TransportStdio, TransportSSE, TransportStreamableHTTP)
	}
	return nil
}
