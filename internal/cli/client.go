package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const defaultTimeout = 60 * time.Second

// CLIClient is a small MCP client for CLI commands. It talks either to a running
// streamable-http server or directly to an in-process MCP server.
type CLIClient struct {
	endpoint  string
	inProcess *server.MCPServer
	client    *client.Client
	timeout   time.Duration
}

// NewCLIClientWithEndpoint creates a client for a streamable-http endpoint such as
// http://localhost:8090/mcp.
func NewCLIClientWithEndpoint(endpoint string) *CLIClient {
	return &CLIClient{
		endpoint: endpoint,
		timeout:  defaultTimeout,
	}
}

// NewInProcessCLIClient creates a client bound to s without any network hop.
func NewInProcessCLIClient(s *server.MCPServer) *CLIClient {
	return &CLIClient{
		inProcess: s,
		timeout:   defaultTimeout,
	}
}

// Connect starts the transport and performs the MCP handshake.
func (c *CLIClient) Connect(ctx context.Context) error {
	var (
		mcpClient *client.Client
		err       error
	)
	if c.inProcess != nil {
		mcpClient, err = client.NewInProcessClient(c.inProcess)
	} else {
		mcpClient, err = client.NewStreamableHttpClient(c.endpoint)
	}
	if err != nil {
		return fmt.Errorf("failed to create MCP client: %w", err)
	}

	if err := mcpClient.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MCP client: %w", err)
	}
	c.client = mcpClient

	if err := c.initialize(ctx); err != nil {
		c.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}

	return nil
}

// CallTool executes a tool and returns the raw result.
func (c *CLIClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	if args != nil {
		req.Params.Arguments = args
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CallToolSimple executes a tool and returns its first text content.
func (c *CLIClient) CallToolSimple(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	texts := textContents(result)
	if result.IsError {
		return "", fmt.Errorf("tool error: %s", strings.Join(texts, "\n"))
	}
	if len(texts) == 0 {
		return "", nil
	}
	return texts[0], nil
}

// CallToolJSON executes a tool and decodes its text content as JSON.
// Non-JSON text is returned as-is.
func (c *CLIClient) CallToolJSON(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	textResult, err := c.CallToolSimple(ctx, name, args)
	if err != nil {
		return nil, err
	}

	var jsonResult interface{}
	if err := json.Unmarshal([]byte(textResult), &jsonResult); err != nil {
		return textResult, nil
	}
	return jsonResult, nil
}

// ListTools returns the tools the server advertises.
func (c *CLIClient) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// Close closes the connection. It is safe to call on an unconnected client.
func (c *CLIClient) Close() error {
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
	return nil
}

func (c *CLIClient) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "atlas-mcp-cli",
		Version: "1.0.0",
	}
	req.Params.Capabilities = mcp.ClientCapabilities{}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.Initialize(timeoutCtx, req)
	return err
}

func textContents(result *mcp.CallToolResult) []string {
	var texts []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			texts = append(texts, textContent.Text)
		}
	}
	return texts
}
