package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/atlas"
)

// OptionsArgument is the trailing argument every tool accepts.
const OptionsArgument = "options"

// BodyArgument carries the request payload for create/update tools.
const BodyArgument = "body"

// Effect describes what a tool does upstream. It drives the MCP annotations.
type Effect int

const (
	Read Effect = iota
	Write
	Destroy
)

// Input is the projected argument list handed to a tool's call.
type Input struct {
	// IDs holds the positional string arguments in declaration order.
	IDs     []string
	Body    any
	Options atlas.Options
}

// ID returns the i-th positional argument.
func (in *Input) ID(i int) string {
	return in.IDs[i]
}

// CallFunc performs the single upstream call for a tool.
type CallFunc func(ctx context.Context, c *atlas.Client, in *Input) (any, error)

type param struct {
	name        string
	description string
}

type bodyShape int

const (
	objectBody bodyShape = iota
	arrayBody
)

type bodyParam struct {
	shape  bodyShape
	schema map[string]any
}

// entry is one catalogue row.
type entry struct {
	name        string
	description string
	ids         []param
	body        *bodyParam
	options     string
	effect      Effect
	call        CallFunc
}

// Tool is a registered tool: its MCP definition plus the call it dispatches to.
type Tool struct {
	Definition mcp.Tool
	Effect     Effect

	ids  []param
	body *bodyParam
	call CallFunc
}

// Name returns the tool name.
func (t *Tool) Name() string {
	return t.Definition.Name
}

func newTool(s entry) *Tool {
	return &Tool{
		Definition: s.definition(),
		Effect:     s.effect,
		ids:        s.ids,
		body:       s.body,
		call:       s.call,
	}
}

// project turns raw MCP arguments into an Input. Extra keys are ignored.
func (t *Tool) project(args map[string]any) (*Input, error) {
	in := &Input{IDs: make([]string, 0, len(t.ids))}

	for _, p := range t.ids {
		v, ok := args[p.name]
		if !ok || v == nil {
			return nil, &ArgumentError{Argument: p.name, Problem: "is required"}
		}
		s, ok := v.(string)
		if !ok {
			return nil, &ArgumentError{Argument: p.name, Problem: fmt.Sprintf("must be a string, got %s", jsonType(v))}
		}
		if s == "" {
			return nil, &ArgumentError{Argument: p.name, Problem: "must not be empty"}
		}
		in.IDs = append(in.IDs, s)
	}

	if t.body != nil {
		v, ok := args[BodyArgument]
		if !ok || v == nil {
			return nil, &ArgumentError{Argument: BodyArgument, Problem: "is required"}
		}
		switch t.body.shape {
		case arrayBody:
			list, ok := v.([]any)
			if !ok {
				return nil, &ArgumentError{Argument: BodyArgument, Problem: fmt.Sprintf("must be an array, got %s", jsonType(v))}
			}
			if len(list) == 0 {
				return nil, &ArgumentError{Argument: BodyArgument, Problem: "must contain at least one entry"}
			}
		default:
			if _, ok := v.(map[string]any); !ok {
				return nil, &ArgumentError{Argument: BodyArgument, Problem: fmt.Sprintf("must be an object, got %s", jsonType(v))}
			}
		}
		in.Body = v
	}

	in.Options = atlas.Options{}
	if v, ok := args[OptionsArgument]; ok && v != nil {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, &ArgumentError{Argument: OptionsArgument, Problem: fmt.Sprintf("must be an object, got %s", jsonType(v))}
		}
		for k, val := range m {
			in.Options[k] = val
		}
	}

	return in, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
