package tools

import (
	"errors"
	"fmt"
)

// Kind classifies invocation failures.
type Kind int

const (
	KindNotConfigured Kind = iota + 1
	KindUnknownTool
	KindInvalidArguments
	KindUpstream
)

// Prefixes carried by ToolError messages.
const (
	UnknownToolPrefix      = "Unknown tool"
	InvalidArgumentsPrefix = "Invalid arguments"
	UpstreamPrefix         = "MongoDB Atlas API error"
)

var (
	// ErrNotConfigured is returned for every invocation when no client is available.
	ErrNotConfigured = errors.New("MongoDB Atlas client not configured. Please set MONGODB_ATLAS_PUBLIC_KEY, MONGODB_ATLAS_PRIVATE_KEY, and MONGODB_ATLAS_PROJECT_ID environment variables.")
	ErrUnknownTool   = errors.New("unknown tool")
	// ErrInvalidArguments matches argument projection failures; the upstream was not called.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrUpstream matches failures of the Atlas call itself.
	ErrUpstream = errors.New("atlas call failed")
)

func (k Kind) String() string {
	switch k {
	case KindNotConfigured:
		return "not_configured"
	case KindUnknownTool:
		return "unknown_tool"
	case KindInvalidArguments:
		return "invalid_arguments"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotConfigured:
		return ErrNotConfigured
	case KindUnknownTool:
		return ErrUnknownTool
	case KindInvalidArguments:
		return ErrInvalidArguments
	case KindUpstream:
		return ErrUpstream
	default:
		return nil
	}
}

// ToolError is the only error type the Dispatcher returns. Its message carries a
// fixed classification prefix; the original cause stays reachable through Unwrap.
type ToolError struct {
	Kind Kind
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	switch e.Kind {
	case KindNotConfigured:
		return ErrNotConfigured.Error()
	case KindUnknownTool:
		return fmt.Sprintf("%s: %s", UnknownToolPrefix, e.Tool)
	case KindInvalidArguments:
		return fmt.Sprintf("%s: %s", InvalidArgumentsPrefix, e.cause())
	default:
		return fmt.Sprintf("%s: %s", UpstreamPrefix, e.cause())
	}
}

func (e *ToolError) cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the Kind sentinels.
func (e *ToolError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// ArgumentError describes one argument that failed projection.
type ArgumentError struct {
	Argument string
	Problem  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s %s", e.Argument, e.Problem)
}
