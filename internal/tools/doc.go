// Package tools maps MCP tool invocations onto Atlas client calls.
//
// A single catalogue describes every tool once: its name, description, argument
// schema and the client call it performs. The Registry lists that catalogue and
// the Dispatcher executes it, so the two can never disagree.
//
// Dispatch order for every invocation:
//
//  1. fail with the configuration error when no client was injected
//  2. look the name up (exact match)
//  3. project arguments: positional ids, then body, then options (default {})
//  4. perform exactly one upstream call
//  5. wrap the result as a single pretty-printed JSON text content
package tools
