// Package server exposes the tool dispatcher as an MCP server.
//
// Three transports are supported:
//
//   - stdio: newline-delimited JSON-RPC on stdin/stdout. The readiness line goes to
//     stderr so stdout stays a clean protocol stream.
//   - sse: the legacy SSE transport at /sse with messages posted to /message.
//   - streamable-http: the streamable HTTP transport at /mcp.
//
// The network transports share a chi router that also answers GET /healthz.
package server
