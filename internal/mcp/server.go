// Package mcp provides a Model Context Protocol server for whichpm.
// It exposes package manager resolution as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/whichpm/internal/resolver"
)

// ResolverFactory builds a resolver for a project directory. Injectable so
// tests can fix the set of installed managers.
type ResolverFactory func(dir string) *resolver.Resolver

// NewServer creates an MCP server with all whichpm tools registered.
// If newResolver is nil, resolver.New is used.
func NewServer(version string, newResolver ResolverFactory) *mcp.Server {
	if newResolver == nil {
		newResolver = func(dir string) *resolver.Resolver {
			return resolver.New(dir)
		}
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "whichpm",
		Version: version,
	}, nil)
	registerTools(server, newResolver)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all whichpm tools to the server.
func registerTools(server *mcp.Server, newResolver ResolverFactory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect which Node.js package manager (npm, pnpm, yarn, bun) a project uses, and which signal source decided it.",
		Annotations: readOnlyAnnotations(),
	}, handleDetect(newResolver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "explain",
		Description: "List every package manager signal source in precedence order (env var, project config, package.json, lockfile, global config, installed binaries) with the value each one yielded.",
		Annotations: readOnlyAnnotations(),
	}, handleExplain(newResolver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_preference",
		Description: "Persist a package manager preference to the project or global .claude/package-manager.json config file.",
		Annotations: writeAnnotations(),
	}, handleSetPreference())
}
