// Package main provides the entry point for the whichpm CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	whichpmmcp "github.com/gorewood/whichpm/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run whichpm as a Model Context Protocol (MCP) server over stdio.

This exposes package manager resolution as MCP tools that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "whichpm": {
        "command": "whichpm",
        "args": ["serve"]
      }
    }
  }

Available tools: detect, explain, set_preference`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := whichpmmcp.NewServer(buildVersion(), nil)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
