package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/atlas"
	"github.com/montumodi/mongodb-atlas-mcp-server/internal/config"
	"github.com/montumodi/mongodb-atlas-mcp-server/internal/server"
	"github.com/montumodi/mongodb-atlas-mcp-server/internal/tools"
	"github.com/montumodi/mongodb-atlas-mcp-server/pkg/logging"
)

var (
	serveTransport  string
	serveHost       string
	servePort       int
	serveConfigPath string
	serveDebug      bool
	serveLogFormat  string
	serveLogFile    string
)

// serveCmd starts the MCP server on the configured transport.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MongoDB Atlas MCP server",
	Long: `Starts the MCP server and exposes every Atlas tool over the selected transport.

Transports:
  stdio            JSON-RPC over stdin/stdout (default). Used by MCP clients that
                   launch the server as a subprocess.
  sse              Server-Sent Events at http://HOST:PORT/sse
  streamable-http  Streamable HTTP at http://HOST:PORT/mcp

Configuration is layered: built-in defaults, ~/.config/atlas-mcp/config.yaml,
./.atlas-mcp/config.yaml, the file given with --config, environment variables and
finally command line flags.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addServeFlags(serveCmd)
}

// addServeFlags registers the serve flags. The root command shares them since it
// serves when run without a subcommand.
func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&serveTransport, "transport", config.TransportStdio, "Transport to serve on (stdio, sse, streamable-http)")
	cmd.Flags().StringVar(&serveHost, "host", "localhost", "Listen host for network transports")
	cmd.Flags().IntVar(&servePort, "port", 8090, "Listen port for network transports")
	cmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to an additional config file")
	cmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&serveLogFormat, "log-format", "text", "Log format (text, json)")
	cmd.Flags().StringVar(&serveLogFile, "log-file", "", "Also write logs to this file, rotated")
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	initLogging(cfg.Logging, serveDebug)
	defer logging.Close()

	dispatcher, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("Bootstrap", "Starting %s %s with %d tools on %s",
		server.Name, rootCmd.Version, dispatcher.Registry().Len(), cfg.Server.Transport)

	srv := server.New(cfg.Server, dispatcher, rootCmd.Version, server.WithDiagnostics(cmd.ErrOrStderr()))
	return srv.Run(ctx)
}

// loadServeConfig layers the config files and environment, applies explicitly
// set flags on top and validates the result.
func loadServeConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadConfig(serveConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("transport") {
		cfg.Server.Transport = serveTransport
	}
	if flags.Changed("host") {
		cfg.Server.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Server.Port = servePort
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = serveLogFormat
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = serveLogFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func initLogging(cfg config.LoggingConfig, debug bool) {
	level := logging.ParseLevel(cfg.Level)
	if debug {
		level = logging.LevelDebug
	}
	logging.Init(logging.Options{
		Level:  level,
		Format: logging.Format(cfg.Format),
		File:   cfg.File,
	})
}

// newDispatcher builds the Atlas client from a validated config.
func newDispatcher(cfg config.Config) (*tools.Dispatcher, error) {
	retryMax := 0
	if cfg.Atlas.RetryMax != nil {
		retryMax = *cfg.Atlas.RetryMax
	}

	client, err := atlas.New(atlas.Config{
		PublicKey:  cfg.Atlas.PublicKey,
		PrivateKey: cfg.Atlas.PrivateKey,
		BaseURL:    cfg.Atlas.BaseURL,
		ProjectID:  cfg.Atlas.ProjectID,
		RetryMax:   retryMax,
		Timeout:    cfg.Atlas.Timeout,
		UserAgent:  fmt.Sprintf("%s/%s", binaryName, rootCmd.Version),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Atlas client: %w", err)
	}
	return tools.NewDispatcher(client, tools.NewRegistry()), nil
}
