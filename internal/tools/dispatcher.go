package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/atlas"
	"github.com/montumodi/mongodb-atlas-mcp-server/pkg/logging"
)

// Dispatcher executes tool invocations against an injected Atlas client.
// It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	client   *atlas.Client
	registry *Registry
}

// NewDispatcher returns a Dispatcher. A nil client is allowed: every call then
// fails with the configuration error.
func NewDispatcher(client *atlas.Client, registry *Registry) *Dispatcher {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Dispatcher{client: client, registry: registry}
}

// Registry returns the registry this dispatcher serves.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Call runs one invocation. On success the result holds a single text content
// with the upstream value as two-space indented JSON. Every failure is a *ToolError.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	if d.client == nil {
		return nil, &ToolError{Kind: KindNotConfigured, Tool: name}
	}

	tool, ok := d.registry.Lookup(name)
	if !ok {
		return nil, &ToolError{Kind: KindUnknownTool, Tool: name, Err: ErrUnknownTool}
	}

	in, err := tool.project(args)
	if err != nil {
		return nil, &ToolError{Kind: KindInvalidArguments, Tool: name, Err: err}
	}

	invocationID := uuid.NewString()
	start := time.Now()
	logging.Debug("Dispatcher", "[%s] calling %s", invocationID, name)

	result, err := tool.call(ctx, d.client, in)
	if err != nil {
		logging.Warn("Dispatcher", "[%s] %s failed after %s: %v", invocationID, name, time.Since(start).Round(time.Millisecond), err)
		return nil, &ToolError{Kind: KindUpstream, Tool: name, Err: err}
	}

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, &ToolError{Kind: KindUpstream, Tool: name, Err: err}
	}

	logging.Debug("Dispatcher", "[%s] %s succeeded in %s", invocationID, name, time.Since(start).Round(time.Millisecond))
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(text))},
	}, nil
}
