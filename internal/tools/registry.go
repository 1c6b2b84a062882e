package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// catalogue returns every tool in listing order.
func catalogue() []entry {
	groups := [][]entry{
		databaseUserTools(),
		clusterTools(),
		projectTools(),
		cloudBackupTools(),
		organizationTools(),
		projectAccessListTools(),
		projectWhitelistTools(),
		eventTools(),
		atlasSearchTools(),
		atlasUserTools(),
		alertTools(),
		dataLakeTools(),
		cloudProviderAccessTools(),
		customDBRoleTools(),
	}
	var all []entry
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// Registry is the immutable, ordered set of tools.
type Registry struct {
	tools  []*Tool
	byName map[string]*Tool
}

// NewRegistry builds the registry from the catalogue. It panics on a duplicate
// name, which can only be a programming error.
func NewRegistry() *Registry {
	entries := catalogue()
	r := &Registry{
		tools:  make([]*Tool, 0, len(entries)),
		byName: make(map[string]*Tool, len(entries)),
	}
	for _, s := range entries {
		if _, dup := r.byName[s.name]; dup {
			panic(fmt.Sprintf("tools: duplicate tool name %q", s.name))
		}
		t := newTool(s)
		r.tools = append(r.tools, t)
		r.byName[s.name] = t
	}
	return r
}

// Tools returns the registered tools in listing order.
func (r *Registry) Tools() []*Tool {
	out := make([]*Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Definitions returns the MCP descriptors in listing order.
func (r *Registry) Definitions() []mcp.Tool {
	out := make([]mcp.Tool, len(r.tools))
	for i, t := range r.tools {
		out[i] = t.Definition
	}
	return out
}

// Lookup finds a tool by exact name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns the tool names in listing order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.tools))
	for i, t := range r.tools {
		out[i] = t.Name()
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}
