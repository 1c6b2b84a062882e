package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/cli"
	"github.com/montumodi/mongodb-atlas-mcp-server/internal/config"
	"github.com/montumodi/mongodb-atlas-mcp-server/internal/server"
	"github.com/montumodi/mongodb-atlas-mcp-server/internal/tools"
	"github.com/montumodi/mongodb-atlas-mcp-server/pkg/logging"
)

var (
	toolOutputFormat string
	toolArgs         string
	toolEndpoint     string
	toolCopy         bool
	toolQuiet        bool
	toolConfigPath   string
)

// toolCmd groups the catalogue and invocation commands.
var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Inspect and call Atlas tools",
	Long: `Inspect and call the MCP tools this server exposes.

Available commands:
  list      - List every tool with its effect and description
  describe  - Show a tool's arguments
  call      - Invoke a tool and print the result

By default 'call' dispatches in-process using the same credentials as 'serve'.
With --endpoint it calls a running streamable-http server instead.`,
}

var toolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tools",
	Args:  cobra.NoArgs,
	RunE:  runToolList,
}

var toolDescribeCmd = &cobra.Command{
	Use:   "describe <tool-name>",
	Short: "Show a tool's description and arguments",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolDescribe,
}

var toolCallCmd = &cobra.Command{
	Use:   "call <tool-name>",
	Short: "Call a tool",
	Long: `Call a tool and print its result.

Arguments are passed as a JSON object, for example:

  atlas-mcp tool call cluster_get --args '{"clustername":"Cluster0"}'
  atlas-mcp tool call cluster_get_all --args '{"options":{"itemsPerPage":5}}' -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runToolCall,
}

func init() {
	rootCmd.AddCommand(toolCmd)

	toolCmd.AddCommand(toolListCmd)
	toolCmd.AddCommand(toolDescribeCmd)
	toolCmd.AddCommand(toolCallCmd)

	toolCmd.PersistentFlags().StringVarP(&toolOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")

	toolCallCmd.Flags().StringVar(&toolArgs, "args", "", "Tool arguments as a JSON object")
	toolCallCmd.Flags().StringVar(&toolEndpoint, "endpoint", "", "Streamable-http endpoint of a running server, e.g. http://localhost:8090/mcp")
	toolCallCmd.Flags().BoolVar(&toolCopy, "copy", false, "Copy the raw JSON result to the clipboard")
	toolCallCmd.Flags().BoolVarP(&toolQuiet, "quiet", "q", false, "Suppress non-essential output")
	toolCallCmd.Flags().StringVar(&toolConfigPath, "config", "", "Path to an additional config file")
}

func runToolList(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(toolOutputFormat)
	if err != nil {
		return err
	}
	return cli.PrintToolList(cmd.OutOrStdout(), tools.NewRegistry().Definitions(), format)
}

func runToolDescribe(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(toolOutputFormat)
	if err != nil {
		return err
	}
	tool, ok := tools.NewRegistry().Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown tool %q; run '%s tool list' to see available tools", args[0], binaryName)
	}
	return cli.DescribeTool(cmd.OutOrStdout(), tool.Definition, format)
}

func runToolCall(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(toolOutputFormat)
	if err != nil {
		return err
	}
	arguments, err := parseToolArgs(toolArgs)
	if err != nil {
		return err
	}

	client, err := newToolClient(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	executor := cli.NewToolExecutor(client, cli.ExecutorOptions{
		Format: format,
		Quiet:  toolQuiet,
		Copy:   toolCopy,
		Out:    cmd.OutOrStdout(),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := executor.Connect(ctx); err != nil {
		return err
	}
	defer executor.Close()

	return executor.Execute(ctx, args[0], arguments)
}

// newToolClient returns a remote client when --endpoint is set and an
// in-process one otherwise.
func newToolClient(logOutput io.Writer) (*cli.CLIClient, error) {
	if toolEndpoint != "" {
		return cli.NewCLIClientWithEndpoint(toolEndpoint), nil
	}

	cfg, err := config.LoadConfig(toolConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.InitForCLI(logging.ParseLevel(cfg.Logging.Level), logOutput)

	dispatcher, err := newDispatcher(cfg)
	if err != nil {
		return nil, err
	}
	srv := server.New(cfg.Server, dispatcher, rootCmd.Version)
	return cli.NewInProcessCLIClient(srv.MCPServer()), nil
}

func parseToolArgs(raw string) (map[string]interface{}, error) {
	if raw == "" {
		return nil, nil
	}
	var arguments map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &arguments); err != nil {
		return nil, fmt.Errorf("--args must be a JSON object: %w", err)
	}
	return arguments, nil
}
