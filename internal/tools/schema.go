package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

const defaultOptionsDescription = "Optional parameters"

// definition renders the catalogue row as an MCP tool with a JSON Schema input.
func (s entry) definition() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(s.description)}

	for _, p := range s.ids {
		opts = append(opts, mcp.WithString(p.name, mcp.Required(), mcp.Description(p.description)))
	}
	if s.body != nil {
		opts = append(opts, withBody(s.body.schema))
	}

	optionsDescription := s.options
	if optionsDescription == "" {
		optionsDescription = defaultOptionsDescription
	}
	opts = append(opts, mcp.WithObject(OptionsArgument,
		mcp.Description(optionsDescription),
		withDefault(map[string]any{}),
	))

	switch s.effect {
	case Read:
		opts = append(opts,
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
		)
	case Write:
		opts = append(opts, mcp.WithDestructiveHintAnnotation(false))
	case Destroy:
		opts = append(opts,
			mcp.WithDestructiveHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
		)
	}
	opts = append(opts, mcp.WithOpenWorldHintAnnotation(true))

	return mcp.NewTool(s.name, opts...)
}

// withBody adds the body property and marks it required. The body schema may
// carry its own nested required list, which mcp.Required would clobber.
func withBody(schema map[string]any) mcp.ToolOption {
	return func(t *mcp.Tool) {
		t.InputSchema.Properties[BodyArgument] = schema
		t.InputSchema.Required = append(t.InputSchema.Required, BodyArgument)
	}
}

func withDefault(value any) mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["default"] = value
	}
}

// object builds a body schema for a JSON object. props may be nil for free-form payloads.
func object(description string, props map[string]any, required ...string) *bodyParam {
	schema := map[string]any{
		"type":        "object",
		"description": description,
	}
	if props != nil {
		schema["properties"] = props
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return &bodyParam{shape: objectBody, schema: schema}
}

// array builds a body schema for a non-empty JSON array of objects.
func array(description string, itemProps map[string]any, itemRequired ...string) *bodyParam {
	items := map[string]any{"type": "object"}
	if itemProps != nil {
		items["properties"] = itemProps
	}
	if len(itemRequired) > 0 {
		items["required"] = itemRequired
	}
	return &bodyParam{
		shape: arrayBody,
		schema: map[string]any{
			"type":        "array",
			"description": description,
			"minItems":    1,
			"items":       items,
		},
	}
}

func str() map[string]any {
	return map[string]any{"type": "string"}
}

func obj() map[string]any {
	return map[string]any{"type": "object"}
}

func ids(pairs ...string) []param {
	out := make([]param, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, param{name: pairs[i], description: pairs[i+1]})
	}
	return out
}
